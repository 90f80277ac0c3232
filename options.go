package stre

import (
	"github.com/coregx/stre/internal/lexer"
	"github.com/coregx/stre/internal/sim"
	"github.com/coregx/stre/internal/trace"
)

// Options configures a compile, mirroring coregx-coregex's Config /
// DefaultConfig pattern.
type Options struct {
	// Optimise enables the ε-chain collapsing pass (spec §4.4). The CLI's
	// -o flag disables it by setting this false.
	Optimise bool

	// MaxTransitions bounds transitions per starting offset during
	// matching (spec §4.5's MAX_TRANSITIONS). Zero uses
	// sim.DefaultMaxTransitions.
	MaxTransitions int

	// MaxPatternLength bounds the accepted pattern length (spec §6).
	// Zero, or a value above lexer.MaxPatternLength, uses
	// lexer.MaxPatternLength.
	MaxPatternLength int

	// Tracer, if non-nil, receives a dump of the compiled machine and,
	// for a pattern with no extracted literal prefilter, one line per
	// search. Wired to the CLI's -v flag.
	Tracer trace.Tracer
}

// DefaultOptions returns the default configuration: the optimiser
// enabled, the inherited transition and pattern-length bounds, and no
// tracing.
func DefaultOptions() Options {
	return Options{
		Optimise:         true,
		MaxTransitions:   sim.DefaultMaxTransitions,
		MaxPatternLength: lexer.MaxPatternLength,
	}
}
