// Package trace implements the debug tracing the CLI's -v flag enables,
// replacing the C ancestor's DEBUG/DEBUGV macros with a small interface
// plus a pretty-printing implementation.
package trace

import (
	"fmt"
	"io"

	"github.com/kylelemons/godebug/pretty"

	"github.com/coregx/stre/internal/store"
)

// Tracer receives progress messages and state dumps during compilation
// and matching. A nil Tracer costs nothing: callers must check for nil
// before invoking it.
type Tracer interface {
	Tracef(format string, args ...any)
	DumpMachine(label string, m *store.Machine)
}

// Pretty writes human-diffable traces to an io.Writer using
// kylelemons/godebug/pretty to render structured dumps, the way the
// teacher's own tests lean on pretty for structural comparisons.
type Pretty struct {
	w io.Writer
}

// NewPretty builds a Pretty tracer writing to w.
func NewPretty(w io.Writer) *Pretty {
	return &Pretty{w: w}
}

// Tracef writes a formatted line, mirroring the DEBUG/DEBUGV macros.
func (p *Pretty) Tracef(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// DumpMachine writes a pretty-printed snapshot of m under label,
// replacing sm_print's fixed column format with a structural dump that
// also shows MaxState.
func (p *Pretty) DumpMachine(label string, m *store.Machine) {
	fmt.Fprintf(p.w, "%s:\n%s", label, pretty.Sprint(m.Get()))
}
