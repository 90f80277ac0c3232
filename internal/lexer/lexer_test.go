package lexer

import (
	"strings"
	"testing"

	"github.com/coregx/stre/internal/store"
)

func TestNextLiteralBytes(t *testing.T) {
	l, err := New("ab")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := l.Next(); got != store.Event('a') {
		t.Errorf("Next() = %v, want 'a'", got)
	}
	if got := l.Next(); got != store.Event('b') {
		t.Errorf("Next() = %v, want 'b'", got)
	}
	if got := l.Next(); got != 0 {
		t.Errorf("Next() at end = %v, want 0", got)
	}
}

func TestNextMetaTokens(t *testing.T) {
	l, err := New("(a|b)*")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []store.Event{
		store.EventLP,
		store.Event('a'),
		store.EventOr,
		store.Event('b'),
		store.EventRP,
		store.EventCl,
	}
	for i, w := range want {
		if got := l.Next(); got != w {
			t.Errorf("token %d: Next() = %v, want %v", i, got, w)
		}
	}
}

func TestNextAnchors(t *testing.T) {
	l, err := New("^a$")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := l.Next(); got != store.EventBOL {
		t.Errorf("Next() = %v, want BOL", got)
	}
	if got := l.Next(); got != store.Event('a') {
		t.Errorf("Next() = %v, want 'a'", got)
	}
	if got := l.Next(); got != store.EventEOL {
		t.Errorf("Next() = %v, want EOL", got)
	}
}

func TestCaretAfterLiteralIsLiteral(t *testing.T) {
	// Once a literal has been emitted, a '^' is an ordinary character
	// rather than an anchor.
	l, err := New("a^")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Next() // 'a', marks started
	if got := l.Next(); got != store.Event('^') {
		t.Errorf("Next() = %v, want literal '^'", got)
	}
}

func TestDollarMidPatternIsLiteral(t *testing.T) {
	// '$' only anchors at the end of the pattern or before ')'/'|'.
	l, err := New("a$b")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Next() // 'a'
	if got := l.Next(); got != store.Event('$') {
		t.Errorf("Next() = %v, want literal '$'", got)
	}
}

func TestDollarBeforeCloseParenIsAnchor(t *testing.T) {
	l, err := New("(a$)")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Next() // '('
	l.Next() // 'a'
	if got := l.Next(); got != store.EventEOL {
		t.Errorf("Next() = %v, want EOL", got)
	}
}

func TestDotIsWildcard(t *testing.T) {
	l, _ := New(".")
	if got := l.Next(); got != store.EventDot {
		t.Errorf("Next() = %v, want DOT", got)
	}
}

func TestEscapeYieldsLiteralMetaCharacter(t *testing.T) {
	l, err := New(`\*`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := l.Next(); got != store.Event('*') {
		t.Errorf("Next() = %v, want literal '*'", got)
	}
	if got := l.Next(); got != 0 {
		t.Errorf("Next() at end = %v, want 0", got)
	}
}

func TestPushbackRestoresSingleToken(t *testing.T) {
	l, err := New("ab")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Next() // 'a'
	tok := l.Next()
	if tok != store.Event('b') {
		t.Fatalf("Next() = %v, want 'b'", tok)
	}
	l.Pushback()
	if got := l.Next(); got != store.Event('b') {
		t.Errorf("Next() after Pushback() = %v, want 'b' again", got)
	}
}

func TestPushbackRewindsEscapedPair(t *testing.T) {
	l, err := New(`a\*b`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Next() // 'a'
	if got := l.Next(); got != store.Event('*') {
		t.Fatalf("Next() = %v, want literal '*'", got)
	}
	l.Pushback()
	if got := l.Next(); got != store.Event('*') {
		t.Errorf("Next() after Pushback() over escape = %v, want '*' again", got)
	}
	if got := l.Next(); got != store.Event('b') {
		t.Errorf("Next() = %v, want 'b'", got)
	}
}

func TestNewRejectsOverlongPattern(t *testing.T) {
	pattern := strings.Repeat("a", MaxPatternLength+1)
	if _, err := New(pattern); err == nil {
		t.Error("New should reject a pattern longer than MaxPatternLength")
	}
}
