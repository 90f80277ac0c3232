// Package prefilter builds a fast candidate scanner from a required
// literal, letting the leftmost-match loop in spec §4.5 skip straight to
// plausible starting offsets instead of invoking the simulator at every
// byte position.
package prefilter

import "github.com/coregx/ahocorasick"

// Scanner finds candidate starting offsets for a single required
// literal.
type Scanner struct {
	automaton *ahocorasick.Automaton
	lit       []byte
}

// Build constructs a Scanner for lit, the way meta/compile.go in the
// inherited tree builds an Aho-Corasick automaton from extracted
// literals. It returns ok=false when lit is empty or the automaton
// fails to build, in which case the caller should fall back to running
// the simulator at every offset.
func Build(lit []byte) (*Scanner, bool) {
	if len(lit) == 0 {
		return nil, false
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(lit)
	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Scanner{automaton: automaton, lit: lit}, true
}

// Next returns the start offset of the literal's first occurrence in
// input at or after from, which is the next offset the simulator should
// try, or ok=false if the literal does not occur again.
func (s *Scanner) Next(input []byte, from int) (candidate int, ok bool) {
	if from > len(input) {
		return 0, false
	}
	m := s.automaton.Find(input, from)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}
