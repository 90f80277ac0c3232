package compile

import (
	"errors"
	"testing"

	"github.com/coregx/stre/internal/errcode"
	"github.com/coregx/stre/internal/sim"
	"github.com/coregx/stre/internal/store"
)

func TestCompileEntryAndTerminalStates(t *testing.T) {
	m, err := Compile("ab", true)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	entry, ok := m.State(0)
	if !ok {
		t.Fatal("State(0) missing")
	}
	if entry.Event != store.EventNode {
		t.Errorf("state 0 event = %v, want NODE", entry.Event)
	}
	terminal, ok := m.State(m.MaxState())
	if !ok {
		t.Fatal("terminal state missing")
	}
	if !terminal.IsTerminal() {
		t.Errorf("terminal state = %+v, want zero successors", terminal)
	}
}

func TestCompileUnbalancedParens(t *testing.T) {
	if _, err := Compile("(a|b", true); !errors.Is(err, errcode.ErrUnbalancedParens) {
		t.Errorf("Compile(\"(a|b\") error = %v, want ErrUnbalancedParens", err)
	}
}

func TestCompileMalformedExpression(t *testing.T) {
	tests := []string{"|a", "*a", ""}
	for _, p := range tests {
		if _, err := Compile(p, true); !errors.Is(err, errcode.ErrMalformedExpression) {
			t.Errorf("Compile(%q) error = %v, want ErrMalformedExpression", p, err)
		}
	}
}

func TestCompileOptimiseAgreesWithUnoptimised(t *testing.T) {
	patterns := []string{"Z(A|B)CC*", "(a*b|ac)d", "z(a.*|b)z", "^abc$"}
	inputs := []string{"ZACCC", "xZBC", "acd", "zzaaaaaaaaaaaz", "abc", "xabc"}

	for _, p := range patterns {
		opt, err := Compile(p, true)
		if err != nil {
			t.Fatalf("Compile(%q, true): %v", p, err)
		}
		unopt, err := Compile(p, false)
		if err != nil {
			t.Fatalf("Compile(%q, false): %v", p, err)
		}
		for _, in := range inputs {
			a, err := sim.Run(opt, in, 0)
			if err != nil {
				t.Fatalf("sim.Run(optimised %q, %q): %v", p, in, err)
			}
			b, err := sim.Run(unopt, in, 0)
			if err != nil {
				t.Fatalf("sim.Run(unoptimised %q, %q): %v", p, in, err)
			}
			if (a == nil) != (b == nil) {
				t.Errorf("pattern %q input %q: optimised match=%v, unoptimised match=%v", p, in, a, b)
				continue
			}
			if a != nil && *a != *b {
				t.Errorf("pattern %q input %q: optimised=%+v, unoptimised=%+v", p, in, *a, *b)
			}
		}
	}
}
