package dfatext

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/coregx/dfamin/automaton"
)

// tokenizer walks the whitespace-delimited stream one token at a time,
// tracking how many tokens it has handed out so ParseError can point at
// roughly where things went wrong. The format in §6.1 has no line
// structure to speak of — NSTATES and NAB can share a line or not — so
// "Line" in ParseError is really a 1-based token position.
type tokenizer struct {
	s   *bufio.Scanner
	pos int
}

func newTokenizer(r io.Reader) *tokenizer {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &tokenizer{s: s}
}

func (t *tokenizer) next() (string, bool) {
	if !t.s.Scan() {
		return "", false
	}
	t.pos++
	return t.s.Text(), true
}

func (t *tokenizer) nextInt(field string) (int, error) {
	tok, ok := t.next()
	if !ok {
		return 0, &ParseError{Err: ErrMalformed, Line: t.pos + 1, Field: field, Value: "<eof>"}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Err: ErrMalformed, Line: t.pos, Field: field, Value: tok}
	}
	return n, nil
}

// Parse reads a DFA description in the §6.1 text format from r. External
// state ids in the stream are 0-based; Parse shifts them to the 1-based
// ids automaton.DFA uses internally.
//
// Malformed input and capacity violations are reported immediately and
// stop parsing (§7: "fatal and immediate" — no partial DFA is returned).
func Parse(r io.Reader) (*automaton.DFA, error) {
	t := newTokenizer(r)

	nstates, err := t.nextInt("NSTATES")
	if err != nil {
		return nil, err
	}
	nab, err := t.nextInt("NAB")
	if err != nil {
		return nil, err
	}
	if nstates < 1 || nab < 1 {
		return nil, &ParseError{Err: ErrMalformed, Line: t.pos, Field: "header", Value: "NSTATES and NAB must be positive"}
	}
	if nstates > automaton.MaxStates || nab > automaton.MaxAlphabet {
		return nil, &ParseError{Err: ErrCapacityExceeded, Line: t.pos, Field: "header", Value: strconv.Itoa(nstates)}
	}

	alphabet := make([]rune, nab)
	for i := 0; i < nab; i++ {
		tok, ok := t.next()
		if !ok {
			return nil, &ParseError{Err: ErrMalformed, Line: t.pos + 1, Field: "alphabet", Value: "<eof>"}
		}
		r := []rune(tok)
		if len(r) != 1 {
			return nil, &ParseError{Err: ErrMalformed, Line: t.pos, Field: "alphabet symbol", Value: tok}
		}
		alphabet[i] = r[0]
	}

	d := automaton.New(nstates, nab, alphabet)

	for s := 1; s <= nstates; s++ {
		for j := 1; j <= nab; j++ {
			v, err := t.nextInt("transition")
			if err != nil {
				return nil, err
			}
			if v < -1 || v > nstates-1 {
				return nil, &ParseError{Err: ErrStateOutOfRange, Line: t.pos, Field: "transition", Value: strconv.Itoa(v)}
			}
			if v == -1 {
				d.Transitions[s][j] = 0 // sink
			} else {
				d.Transitions[s][j] = v + 1
			}
		}
	}

	for {
		tok, ok := t.next()
		if !ok {
			break
		}
		a, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Err: ErrMalformed, Line: t.pos, Field: "accept id", Value: tok}
		}
		if a < 0 || a > nstates-1 {
			return nil, &ParseError{Err: ErrStateOutOfRange, Line: t.pos, Field: "accept id", Value: tok}
		}
		internal := a + 1
		d.Attrib[internal] = automaton.Accept
		d.Accepts = append(d.Accepts, internal)
	}

	if err := t.s.Err(); err != nil {
		return nil, errors.Wrapf(err, "dfatext: reading input")
	}

	sortInts(d.Accepts)
	if err := d.Validate(); err != nil {
		return nil, errors.Wrapf(err, "dfatext: parsed DFA failed validation")
	}
	return d, nil
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
