// Package stre implements a compact regular-expression engine: a
// recursive-descent compiler that lays a pattern out as a two-successor
// state graph (internal/store), and a non-backtracking simulator
// (internal/sim) that explores that graph simultaneously to find the
// leftmost match.
//
// Basic usage:
//
//	re, err := stre.Compile(`Z(A|B)CC*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if loc := re.FindStringIndex("xZBC"); loc != nil {
//	    fmt.Println(loc.Start, loc.End)
//	}
package stre

import (
	"errors"
	"fmt"

	"github.com/coregx/stre/internal/compile"
	"github.com/coregx/stre/internal/errcode"
	"github.com/coregx/stre/internal/lexer"
	"github.com/coregx/stre/internal/literal"
	"github.com/coregx/stre/internal/prefilter"
	"github.com/coregx/stre/internal/sim"
	"github.com/coregx/stre/internal/store"
)

// Regex is a compiled pattern. It is immutable after Compile returns and
// safe to use concurrently from multiple goroutines: matching never
// mutates the underlying machine (see DESIGN.md on BOL scoping).
type Regex struct {
	pattern string
	machine *store.Machine
	opts    Options
	pf      *prefilter.Scanner
}

// Match is a pair of byte offsets into the searched string, half-open.
type Match struct {
	Start int
	End   int
}

// Compile compiles pattern with DefaultOptions.
func Compile(pattern string) (*Regex, error) {
	return CompileWithOptions(pattern, DefaultOptions())
}

// CompileWithOptions compiles pattern under the given options. It
// returns a *CompileError wrapping one of the sentinel errors in this
// package on failure.
func CompileWithOptions(pattern string, opts Options) (*Regex, error) {
	maxLen := opts.MaxPatternLength
	if maxLen <= 0 || maxLen > lexer.MaxPatternLength {
		maxLen = lexer.MaxPatternLength
	}
	if len(pattern) > maxLen {
		return nil, &CompileError{Pattern: pattern, Code: errcode.Malformed, Err: ErrMalformedExpression}
	}

	m, err := compile.Compile(pattern, opts.Optimise)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Code: codeOf(err), Err: err}
	}

	if opts.Tracer != nil {
		opts.Tracer.DumpMachine(fmt.Sprintf("compiled %q", pattern), m)
	}

	re := &Regex{pattern: pattern, machine: m, opts: opts}
	if lit, ok := literal.Extract(m); ok {
		if pf, ok := prefilter.Build(lit); ok {
			re.pf = pf
		}
	}
	return re, nil
}

// MustCompile is like Compile but panics if pattern does not compile.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("stre: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// String returns the source pattern re was compiled from.
func (re *Regex) String() string {
	return re.pattern
}

// Match reports whether s contains any match of re.
func (re *Regex) Match(s string) bool {
	return re.FindStringIndex(s) != nil
}

// FindStringIndex returns the leftmost match of re in s, or nil if there
// is none. A transition-budget failure is also reported as no match;
// use FindStringIndexErr when that distinction matters.
func (re *Regex) FindStringIndex(s string) *Match {
	m, _ := re.find(s)
	if m == nil {
		return nil
	}
	return &Match{Start: m.Start, End: m.End}
}

// FindStringIndexErr is like FindStringIndex but also returns a
// *MatchError when the transition budget was exhausted, rather than
// collapsing that case into an ordinary no-match result.
func (re *Regex) FindStringIndexErr(s string) (*Match, error) {
	m, err := re.find(s)
	if err != nil {
		return nil, &MatchError{Code: codeOf(err), Err: err}
	}
	if m == nil {
		return nil, nil
	}
	return &Match{Start: m.Start, End: m.End}, nil
}

// find runs the leftmost-match loop, using the extracted-literal
// prefilter to jump between candidate offsets when one was built, or
// falling back to trying every offset via sim.Run.
func (re *Regex) find(s string) (*sim.Match, error) {
	maxTransitions := re.opts.MaxTransitions
	if maxTransitions <= 0 {
		maxTransitions = sim.DefaultMaxTransitions
	}
	if re.pf == nil {
		m, err := sim.Run(re.machine, s, maxTransitions)
		if re.opts.Tracer != nil {
			re.opts.Tracer.Tracef("find %q in %q: match=%v err=%v", re.pattern, s, m, err)
		}
		return m, err
	}

	haystack := []byte(s)
	for from := 0; from <= len(s); {
		cand, ok := re.pf.Next(haystack, from)
		if !ok {
			return nil, nil
		}
		end, matched, err := sim.MatchAt(re.machine, s, cand, maxTransitions)
		if err != nil {
			return nil, err
		}
		if matched {
			return &sim.Match{Start: cand, End: end}, nil
		}
		from = cand + 1
	}
	return nil, nil
}

// codeOf maps an error from internal/compile or internal/sim back to its
// errcode.Code, for CompileError/MatchError.
func codeOf(err error) errcode.Code {
	switch {
	case errors.Is(err, errcode.ErrUnbalancedParens):
		return errcode.Unbalanced
	case errors.Is(err, errcode.ErrMalformedExpression):
		return errcode.Malformed
	case errors.Is(err, errcode.ErrTransitionLimit):
		return errcode.TransitionLimit
	case errors.Is(err, errcode.ErrStoreInit):
		return errcode.StoreInit
	case errors.Is(err, errcode.ErrAlloc):
		return errcode.Alloc
	default:
		return 0
	}
}
