// Package store implements the state table that a compiled pattern is
// built into: a grow-on-demand array of state records, each carrying an
// event code and two successor indices.
package store

import (
	"fmt"
	"io"

	"github.com/coregx/stre/internal/conv"
)

// allocSize is the growth increment used when the table outgrows its
// backing slice, mirroring ALLOC_SIZE in the C ancestor.
const allocSize = 64

// Event identifies what a state does: a positive value is a literal byte
// to match, zero is the legacy "no event" value inherited from the state
// table's C origin, and the named negative constants are sentinels.
type Event int8

// Sentinel events. Negative by construction so they can never collide
// with a literal byte value.
const (
	EventNode    Event = -1 // ε-branch with up to two successors
	EventLP      Event = -2 // '(' lexer token, never stored in a state
	EventRP      Event = -3 // ')' lexer token, never stored in a state
	EventOr      Event = -4 // '|' lexer token, never stored in a state
	EventCl      Event = -5 // '*' lexer token, never stored in a state
	EventBOL     Event = -6 // beginning-of-input anchor
	EventEOL     Event = -7 // end-of-input anchor
	EventDot     Event = -8 // wildcard, matches any input byte
	EventScan    Event = -9 // deque generation marker, never stored in a state
	EventNoMatch Event = -10
)

// String renders the sentinel events the way store.Print does, falling
// back to the literal byte for positive events.
func (e Event) String() string {
	switch e {
	case EventNode:
		return "NODE"
	case EventLP:
		return "LP"
	case EventRP:
		return "RP"
	case EventOr:
		return "OR"
	case EventCl:
		return "CL"
	case EventBOL:
		return "BOL"
	case EventEOL:
		return "EOL"
	case EventDot:
		return "DOT"
	case EventScan:
		return "SCAN"
	case EventNoMatch:
		return "NO_MATCH"
	default:
		if e > 0 {
			return fmt.Sprintf("%q", string(rune(e)))
		}
		return "NUL"
	}
}

// Entry is one state: an event plus two successor indices. A terminal
// state has Next1 == 0 and Next2 == 0.
type Entry struct {
	Event Event
	Next1 int
	Next2 int
}

// IsTerminal reports whether e is the unique accepting state.
func (e Entry) IsTerminal() bool {
	return e.Next1 == 0 && e.Next2 == 0
}

// Machine is a compiled state table. The zero value is not usable; build
// one with New.
type Machine struct {
	entries  []Entry
	maxState int
}

// New allocates a fresh machine with room for allocSize states, mirroring
// sm_init.
func New() *Machine {
	return &Machine{entries: make([]Entry, allocSize)}
}

// Insert writes or overwrites state i, growing the backing array in
// allocSize increments as needed, and mirrors sm_insert.
func (m *Machine) Insert(i int, event Event, next1, next2 int) error {
	if i < 0 {
		return fmt.Errorf("store: negative state index %d", i)
	}
	if i >= len(m.entries) {
		grown := make([]Entry, i+allocSize)
		copy(grown, m.entries)
		m.entries = grown
	}
	m.entries[i] = Entry{Event: event, Next1: next1, Next2: next2}
	if i > m.maxState {
		m.maxState = i
	}
	return nil
}

// State returns state i and true, or the zero Entry and false if i is
// beyond the highest state inserted so far, mirroring sm_state's NULL
// return.
func (m *Machine) State(i int) (Entry, bool) {
	if i < 0 || i > m.maxState {
		return Entry{}, false
	}
	return m.entries[i], true
}

// MaxState returns the highest state index inserted so far.
func (m *Machine) MaxState() int {
	return m.maxState
}

// Handle is a snapshot of a machine's table, returned by Get and
// installed by Set, letting a caller hold more than one compiled table
// and switch the active one explicitly.
type Handle struct {
	Entries    []Entry
	MaxState   int
	StateCount uint32 // len(Entries), narrowed for trace output
}

// Get exposes the current table plus MaxState as a handle, per sm_get.
func (m *Machine) Get() Handle {
	return Handle{
		Entries:    m.entries,
		MaxState:   m.maxState,
		StateCount: conv.IntToUint32(len(m.entries)),
	}
}

// Set installs a previously returned handle as the active table, per
// sm_set.
func (m *Machine) Set(h Handle) {
	m.entries = h.Entries
	m.maxState = h.MaxState
}

// Print writes one line per state to w: index, event, next1, next2,
// mirroring sm_print.
func (m *Machine) Print(w io.Writer) {
	for i := 0; i <= m.maxState; i++ {
		fmt.Fprintf(w, "%2d,%s,%2d,%2d\n", i, m.entries[i].Event, m.entries[i].Next1, m.entries[i].Next2)
	}
}
