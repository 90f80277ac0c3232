package stre

import (
	"fmt"

	"github.com/coregx/stre/internal/errcode"
)

// Sentinel errors, one per entry in the inherited error taxonomy (spec
// §4.6/§7). Use errors.Is against these, or inspect CompileError.Code /
// MatchError.Code for the category.
var (
	ErrUnbalancedParens    = errcode.ErrUnbalancedParens
	ErrMalformedExpression = errcode.ErrMalformedExpression
	ErrTransitionLimit     = errcode.ErrTransitionLimit
	ErrStoreInit           = errcode.ErrStoreInit
	ErrAlloc               = errcode.ErrAlloc
)

// CompileError reports a failure to compile a pattern. It replaces the
// C ancestor's single latched re_error_code global: the error is
// returned directly from Compile/CompileWithOptions instead of being
// read back out of process-wide state.
type CompileError struct {
	Pattern string
	Code    errcode.Code
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("stre: compile %q: %s", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// MatchError reports a failure during matching, currently only raised
// when the transition budget (Options.MaxTransitions) is exhausted.
type MatchError struct {
	Code errcode.Code
	Err  error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("stre: match: %s", e.Err)
}

func (e *MatchError) Unwrap() error { return e.Err }
