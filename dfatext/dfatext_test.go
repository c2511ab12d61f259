package dfatext

import (
	"strings"
	"testing"

	"github.com/coregx/dfamin/automaton"
)

// s1Text is spec.md §8 scenario S1: 3 states, alphabet {a}; 0->1, 1->2,
// 2->2; accept {1,2}.
const s1Text = "3 1\na\n1\n2\n2\n1 2\n"

func TestParseS1(t *testing.T) {
	d, err := Parse(strings.NewReader(s1Text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.NStates != 3 || d.NAB != 1 {
		t.Fatalf("NStates/NAB = %d/%d, want 3/1", d.NStates, d.NAB)
	}
	if d.Transitions[1][1] != 2 || d.Transitions[2][1] != 3 || d.Transitions[3][1] != 3 {
		t.Fatalf("transitions not shifted correctly: %v", d.Transitions)
	}
	if len(d.Accepts) != 2 || d.Accepts[0] != 2 || d.Accepts[1] != 3 {
		t.Fatalf("Accepts = %v, want [2 3]", d.Accepts)
	}
	if d.Attrib[2] != automaton.Accept || d.Attrib[3] != automaton.Accept {
		t.Fatalf("accept states not tagged: %v", d.Attrib)
	}
}

func TestParseRejectsMissingHeader(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Fatalf("expected error on empty input")
	}
}

func TestParseRejectsNonInteger(t *testing.T) {
	_, err := Parse(strings.NewReader("2 1\na\nxx -1\n-1 -1\n"))
	if err == nil {
		t.Fatalf("expected error for non-integer transition")
	}
}

func TestParseRejectsOutOfRangeTransition(t *testing.T) {
	_, err := Parse(strings.NewReader("2 1\na\n5 -1\n-1 -1\n"))
	if err == nil {
		t.Fatalf("expected error for out-of-range transition target")
	}
}

func TestParseRejectsOutOfRangeAccept(t *testing.T) {
	_, err := Parse(strings.NewReader("2 1\na\n-1\n-1\n9\n"))
	if err == nil {
		t.Fatalf("expected error for out-of-range accept id")
	}
}

func TestParseRejectsCapacityExceeded(t *testing.T) {
	_, err := Parse(strings.NewReader("2000000 1\na\n"))
	if err == nil {
		t.Fatalf("expected capacity-exceeded error")
	}
}

func TestParseAllowsNoAcceptStates(t *testing.T) {
	d, err := Parse(strings.NewReader("1 1\na\n-1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(d.Accepts) != 0 {
		t.Fatalf("Accepts = %v, want none", d.Accepts)
	}
}

func TestPrintS1(t *testing.T) {
	d := automaton.New(2, 1, []rune{'a'})
	d.Transitions[1][1] = 2
	d.Transitions[2][1] = 2
	d.Attrib[2] = automaton.Accept
	d.Accepts = []int{2}

	var buf strings.Builder
	if err := Print(&buf, d); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "a\n") {
		t.Errorf("missing header row: %q", out)
	}
	if !strings.Contains(out, "A1 A1") {
		t.Errorf("accepting self-loop row not rendered as expected: %q", out)
	}
	if !strings.Contains(out, "initial: s0") {
		t.Errorf("missing initial-state line: %q", out)
	}
}

func TestPrintSuppressesDeadStates(t *testing.T) {
	d := automaton.New(2, 1, []rune{'a'})
	d.Transitions[1][1] = 1
	d.Attrib[2] = automaton.Dead

	var buf strings.Builder
	if err := Print(&buf, d); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if strings.Contains(buf.String(), "D1") {
		t.Errorf("dead state should be suppressed entirely: %q", buf.String())
	}
}

func TestPrintEmptyDFA(t *testing.T) {
	d := automaton.New(1, 1, []rune{'a'})
	d.Attrib[1] = automaton.Dead

	var buf strings.Builder
	if err := Print(&buf, d); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "\nDFA minimized to EMPTY DFA\n"
	if buf.String() != want {
		t.Errorf("Print(empty) = %q, want %q", buf.String(), want)
	}
}

func TestParseThenPrintProducesOutput(t *testing.T) {
	d, err := Parse(strings.NewReader(s1Text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf strings.Builder
	if err := Print(&buf, d); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty printed output")
	}
}
