// Package literal extracts the required literal run from a compiled
// machine: the maximal prefix of consecutive bytes that every match of
// the pattern must contain, used to build a prefilter ahead of the
// simulator.
package literal

import (
	"github.com/coregx/stre/internal/conv"
	"github.com/coregx/stre/internal/sparse"
	"github.com/coregx/stre/internal/store"
)

// Extract walks m from its entry successor, collecting consecutive
// unconditional literal byte states. It stops at the first ε-node,
// anchor, wildcard, or state with a branch recorded against it
// (Next2 != 0) — a literal state is only unconditional while nothing
// downstream has rewritten it into a join point — and returns ok=false
// when no byte is guaranteed (for example a pattern that starts with an
// alternation, an anchor, or '.'). seen guards against a state index
// reappearing, which the grammar never produces for a literal run but
// which a malformed or hand-constructed machine could.
func Extract(m *store.Machine) ([]byte, bool) {
	entry, ok := m.State(0)
	if !ok {
		return nil, false
	}

	seen := sparse.NewSparseSet(conv.IntToUint32(m.MaxState() + 2))
	var lit []byte
	idx := entry.Next1
	for {
		if idx < 0 || seen.Contains(conv.IntToUint32(idx)) {
			break
		}
		seen.Insert(conv.IntToUint32(idx))

		st, ok := m.State(idx)
		if !ok || st.Event <= 0 || st.Next2 != 0 {
			break
		}
		lit = append(lit, byte(st.Event))
		idx = st.Next1
	}
	return lit, len(lit) > 0
}
