package dfatext

import (
	"errors"
	"fmt"
)

// Sentinel errors naming the §7 "input malformed" taxonomy. ParseError wraps
// one of these with line/field context; errors.Is still sees through it.
var (
	// ErrMalformed indicates the input stream does not match the §6.1 grammar
	// at all: missing header, truncated alphabet row, truncated matrix row,
	// or a non-integer where an integer was expected.
	ErrMalformed = errors.New("dfatext: malformed input")

	// ErrStateOutOfRange indicates a transition target or accept id falls
	// outside [-1, NStates-1] or [0, NStates-1] respectively.
	ErrStateOutOfRange = errors.New("dfatext: state id out of range")

	// ErrCapacityExceeded indicates NSTATES or NAB exceeded the automaton
	// package's capacity ceilings.
	ErrCapacityExceeded = errors.New("dfatext: capacity exceeded")
)

// ParseError pins one of the sentinels above to the line and field that
// triggered it, so a CLI driver can report "the specific violation and the
// current count" per §7.
type ParseError struct {
	Err   error
	Line  int
	Field string
	Value string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("dfatext: line %d: %s %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("dfatext: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return errors.Is(e.Err, target) }
