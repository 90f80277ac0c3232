// Package sim implements the Pike-style simultaneous-state simulator:
// given a compiled machine and an input string, it finds the leftmost
// match by driving a work deque over the state graph, exploring every
// active ε-path at once instead of backtracking.
package sim

import (
	"github.com/coregx/stre/internal/deque"
	"github.com/coregx/stre/internal/errcode"
	"github.com/coregx/stre/internal/store"
)

// DefaultMaxTransitions bounds the number of transitions a single
// starting offset may take before the simulator gives up, protecting
// against pathological loops in a compiled graph.
const DefaultMaxTransitions = 1000

// Match is a pair of byte offsets into the input, half-open. Start == -1
// is never produced by Run; an anchor-only match reports Start == End
// == the offset it matched at.
type Match struct {
	Start int
	End   int
}

// Run finds the leftmost match of m against input, trying successive
// starting offsets 0, 1, ..., len(input) until one succeeds. It returns
// (nil, nil) when no offset matches, and a non-nil error only when the
// transition budget is exhausted.
func Run(m *store.Machine, input string, maxTransitions int) (*Match, error) {
	if maxTransitions <= 0 {
		maxTransitions = DefaultMaxTransitions
	}
	for start := 0; start <= len(input); start++ {
		end, matched, err := MatchAt(m, input, start, maxTransitions)
		if err != nil {
			return nil, err
		}
		if matched {
			return &Match{Start: start, End: end}, nil
		}
	}
	return nil, nil
}

// MatchAt runs one attempt of the simulator beginning at offset start,
// mirroring the C ancestor's matcher(). It returns the end offset and
// true on success, (0, false, nil) on an ordinary failure to match at
// this offset, and a non-nil error if the transition budget is
// exhausted. A maxTransitions of zero or less uses DefaultMaxTransitions.
// Exported so a prefilter-driven caller can try a specific candidate
// offset without repeating the full leftmost loop in Run.
func MatchAt(m *store.Machine, input string, start, maxTransitions int) (int, bool, error) {
	if maxTransitions <= 0 {
		maxTransitions = DefaultMaxTransitions
	}
	entry, ok := m.State(0)
	if !ok {
		return 0, false, errcode.ErrStoreInit
	}

	n := len(input)
	j := start
	state := entry.Next1
	transitions := 0
	bol, eol := false, false

	// anchored[i] records that state i was marked, for this attempt
	// only, as governed by a BOL inside a specific alternate. The C
	// ancestor records this by overwriting the governed state's own
	// Next2 field in the shared machine; tracking it in a scratch slice
	// instead keeps the compiled machine read-only and safe to match
	// against concurrently.
	anchored := make([]bool, m.MaxState()+2)

	// Each transition adds at most one item to the deque, so this
	// capacity cannot wrap around before the transition budget runs out,
	// even when an ε-cycle keeps pushing states.
	dq := deque.New(2*(m.MaxState()+1) + maxTransitions)
	dq.PushTail(int(store.EventScan))

	for state != 0 {
		transitions++
		if transitions > maxTransitions {
			return 0, false, errcode.ErrTransitionLimit
		}

		if state == int(store.EventScan) {
			if bol && j != 0 {
				return 0, false, nil
			}
			bol = false
			j++
			dq.PushTail(int(store.EventScan))
		} else {
			st, ok := m.State(state)
			if !ok {
				return 0, false, nil
			}
			switch {
			case j < n && (st.Event == store.Event(input[j]) || st.Event == store.EventDot):
				if state < len(anchored) && anchored[state] && j != 0 {
					return 0, false, nil
				}
				if dq.PeekTail() != st.Next1 {
					dq.PushTail(st.Next1)
				}
			case st.Event == store.EventNode:
				n1, n2 := st.Next1, st.Next2
				dq.PushHead(n1)
				if n1 != n2 {
					dq.PushHead(n2)
				}
			case st.Event == store.EventBOL:
				if st.Next1 == state+1 {
					if state+1 < len(anchored) {
						anchored[state+1] = true
					}
				} else {
					bol = true
				}
				dq.PushHead(st.Next1)
			case st.Event == store.EventEOL:
				eol = true
				dq.PushHead(st.Next1)
			}
		}

		if dq.Empty() || j == n+1 {
			return 0, false, nil
		}
		state = dq.PopHead()
		if state == 0 && dq.PeekTail() != int(store.EventScan) {
			state = dq.PopHead()
		}
	}

	if eol && j != n {
		return 0, false, nil
	}
	return j, true, nil
}
