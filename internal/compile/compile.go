// Package compile implements the recursive-descent compiler: it turns a
// pattern into a state graph, threading a single "next state to
// allocate" counter through expression, term, and factor the way the C
// ancestor threads its global "state" variable.
package compile

import (
	"github.com/coregx/stre/internal/errcode"
	"github.com/coregx/stre/internal/lexer"
	"github.com/coregx/stre/internal/store"
)

// compiler holds the recursion's shared state: the lexer it reads
// tokens from, the machine it emits states into, and the next state
// index to allocate.
type compiler struct {
	lex   *lexer.Lexer
	m     *store.Machine
	state int
}

// Compile builds pattern into a fresh state machine and returns it. The
// machine's entry point is state 0; its Next1 is the successor that a
// simulator should begin from. optimise enables the ε-chain collapsing
// pass.
func Compile(pattern string, optimise bool) (*store.Machine, error) {
	lex, err := lexer.New(pattern)
	if err != nil {
		return nil, err
	}

	m := store.New()
	c := &compiler{lex: lex, m: m, state: 1}

	start, err := c.expression()
	if err != nil {
		return nil, err
	}
	if err := m.Insert(0, store.EventNode, start, 0); err != nil {
		return nil, errcode.ErrAlloc
	}
	if err := m.Insert(c.state, store.EventNode, 0, 0); err != nil {
		return nil, errcode.ErrAlloc
	}

	if optimise {
		optimizeChains(m)
	}
	return m, nil
}

// expression implements E := T ('|' E)?.
func (c *compiler) expression() (int, error) {
	t1, err := c.term()
	if err != nil {
		return 0, err
	}
	expr := t1

	tok := c.lex.Next()
	if tok == store.EventOr {
		c.state++
		t2 := c.state
		expr = t2
		c.state++

		right, err := c.expression()
		if err != nil {
			return 0, err
		}
		if err := c.m.Insert(t2, store.EventNode, right, t1); err != nil {
			return 0, errcode.ErrAlloc
		}
		if err := c.m.Insert(t2-1, store.EventNode, c.state, c.state); err != nil {
			return 0, errcode.ErrAlloc
		}
	} else {
		c.lex.Pushback()
	}
	return expr, nil
}

// term implements T := F (F)*.
func (c *compiler) term() (int, error) {
	t, err := c.factor()
	if err != nil {
		return 0, err
	}

	tok := c.lex.Next()
	c.lex.Pushback()
	if tok > 0 || tok == store.EventDot || tok == store.EventLP || tok == store.EventBOL || tok == store.EventEOL {
		if _, err := c.term(); err != nil {
			return 0, err
		}
	}
	return t, nil
}

// factor implements F := '(' E ')' | atom, optionally suffixed by '*'.
func (c *compiler) factor() (int, error) {
	t1 := c.state
	var t2 int

	tok := c.lex.Next()
	switch {
	case tok == store.EventLP:
		right, err := c.expression()
		if err != nil {
			return 0, err
		}
		t2 = right

		closeTok := c.lex.Next()
		if closeTok != store.EventRP {
			return 0, errcode.ErrUnbalancedParens
		}

		// The state preceding this group has a provisional successor
		// left over from its own construction; rewrite it to the
		// group's actual start. Use Next1 when the predecessor is a
		// literal/anchor/dot atom; otherwise it is an ε-node and
		// whichever of Next1/Next2 is numerically larger is always
		// the still-unresolved forward stub (closures over '.' have
		// Next1/Next2 swapped specifically so this comparison keeps
		// working for them too).
		st, ok := c.m.State(t1 - 1)
		if !ok {
			return 0, errcode.ErrMalformedExpression
		}
		switch {
		case st.Event > 0:
			st.Next1 = t2
		case st.Next1 > st.Next2:
			st.Next1 = t2
		default:
			st.Next2 = t2
		}
		if err := c.m.Insert(t1-1, st.Event, st.Next1, st.Next2); err != nil {
			return 0, errcode.ErrAlloc
		}

	case tok > 0 || tok == store.EventDot || tok == store.EventBOL || tok == store.EventEOL:
		if err := c.m.Insert(c.state, tok, c.state+1, 0); err != nil {
			return 0, errcode.ErrAlloc
		}
		t2 = c.state
		c.state++

	default:
		return 0, errcode.ErrMalformedExpression
	}

	closureTok := c.lex.Next()
	if closureTok != store.EventCl {
		c.lex.Pushback()
		return t2, nil
	}

	// X* : allocate one ε-node whose loop edge re-enters X and whose
	// exit edge joins past the closure. A closure over '.' swaps which
	// field carries which edge, so the simulator (and the group-close
	// rewrite above) can tell a dot-closure apart from an ordinary one.
	prev, ok := c.m.State(c.state - 1)
	if !ok {
		return 0, errcode.ErrMalformedExpression
	}
	if prev.Event == store.EventDot {
		if err := c.m.Insert(c.state, store.EventNode, t2, c.state+1); err != nil {
			return 0, errcode.ErrAlloc
		}
	} else {
		if err := c.m.Insert(c.state, store.EventNode, c.state+1, t2); err != nil {
			return 0, errcode.ErrAlloc
		}
	}
	fstate := c.state

	pred, ok := c.m.State(t1 - 1)
	if !ok {
		return 0, errcode.ErrMalformedExpression
	}
	if err := c.m.Insert(t1-1, pred.Event, c.state, pred.Next2); err != nil {
		return 0, errcode.ErrAlloc
	}
	c.state++

	return fstate, nil
}

// optimizeChains collapses a maximal run of pass-through ε-states (NODE
// states whose only edge goes to the next sequential index) by
// rewriting the first state in the run to point directly at the run's
// final target. Literal, BOL, EOL, and DOT states terminate a run. The
// loop reaches each later state of the run as the head of a shorter run
// and rewrites it to the same target; every rewrite only skips
// pass-through ε-states, so the language accepted does not change.
func optimizeChains(m *store.Machine) {
	max := m.MaxState()
	for i := 0; i <= max; i++ {
		e, ok := m.State(i)
		if !ok || e.Event != store.EventNode || e.Next1 != i+1 || e.Next2 != i+1 {
			continue
		}
		j := i
		for {
			next, ok := m.State(j + 1)
			if !ok || next.Event != store.EventNode || next.Next1 != j+2 || next.Next2 != j+2 {
				break
			}
			j++
		}
		target := j + 1
		m.Insert(i, e.Event, target, target)
	}
}
