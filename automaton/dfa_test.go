package automaton

import "testing"

func buildSmall() *DFA {
	d := New(2, 1, []rune{'a'})
	d.Transitions[1][1] = 2
	d.Transitions[2][1] = 1
	d.Attrib[2] = Accept
	d.Accepts = []int{2}
	return d
}

func TestNewZeroValue(t *testing.T) {
	d := New(3, 2, []rune{'a', 'b'})
	if d.InitState != 1 {
		t.Fatalf("InitState = %d, want 1", d.InitState)
	}
	for s := 1; s <= 3; s++ {
		for j := 1; j <= 2; j++ {
			if d.Transitions[s][j] != 0 {
				t.Errorf("fresh DFA should have every transition pointing at the sink")
			}
		}
		if d.Attrib[s] != Normal {
			t.Errorf("fresh DFA states should start Normal")
		}
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	if err := buildSmall().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsOutOfRangeTransition(t *testing.T) {
	d := buildSmall()
	d.Transitions[1][1] = 9
	if err := d.Validate(); err == nil {
		t.Fatalf("expected validation error for out-of-range transition")
	}
}

func TestValidateRejectsBadAcceptTag(t *testing.T) {
	d := buildSmall()
	d.Attrib[2] = Normal // accept id 2 no longer tagged Accept
	if err := d.Validate(); err == nil {
		t.Fatalf("expected validation error for inconsistent accept tag")
	}
}

func TestValidateRejectsZeroStates(t *testing.T) {
	d := &DFA{NStates: 0, NAB: 1, InitState: 1}
	if err := d.Validate(); err == nil {
		t.Fatalf("expected validation error for zero states")
	}
}

func TestAcceptsWord(t *testing.T) {
	d := buildSmall()
	if !d.AcceptsWord([]int{1}) {
		t.Errorf("word [1] ('a') should be accepted")
	}
	if d.AcceptsWord([]int{1, 1}) {
		t.Errorf("word [1,1] ('aa') should not be accepted")
	}
	if !d.AcceptsWord([]int{1, 1, 1}) {
		t.Errorf("word [1,1,1] ('aaa') should be accepted")
	}
}

func TestIsEmpty(t *testing.T) {
	d := buildSmall()
	if d.IsEmpty() {
		t.Fatalf("non-trivial DFA should not report IsEmpty")
	}
	d.Attrib[1] = Dead
	d.Attrib[2] = Dead
	if !d.IsEmpty() {
		t.Fatalf("DFA with every state dead should report IsEmpty")
	}
}

func TestAttribPrefix(t *testing.T) {
	cases := map[Attrib]byte{Accept: 'A', Dead: 'D', Normal: 's'}
	for attrib, want := range cases {
		if got := attrib.Prefix(); got != want {
			t.Errorf("Attrib(%v).Prefix() = %q, want %q", attrib, got, want)
		}
	}
}
