package dfatext

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/coregx/dfamin/automaton"
)

// Print renders d in the §6.2 text format to w:
//
//	L1 L2 ... Lnab
//	<prefix><id> <target1> ... <targetNab>
//	...
//	initial: <prefix><id>
//
// one row per non-dead state (dead states are suppressed entirely), each
// target rendered as its own attribute prefix plus external (0-based) id,
// or "-" for no transition. If d.IsEmpty(), the header row is blank and
// the single line "DFA minimized to EMPTY DFA" replaces the table and the
// initial-state line.
func Print(w io.Writer, d *automaton.DFA) error {
	bw := bufio.NewWriter(w)

	if d.IsEmpty() {
		if _, err := fmt.Fprintln(bw, ""); err != nil {
			return errors.Wrapf(err, "dfatext: writing empty header")
		}
		if _, err := fmt.Fprintln(bw, "DFA minimized to EMPTY DFA"); err != nil {
			return errors.Wrapf(err, "dfatext: writing empty-DFA line")
		}
		return errors.Wrapf(bw.Flush(), "dfatext: flushing output")
	}

	header := make([]byte, 0, 2*d.NAB)
	for i, sym := range d.Alphabet {
		if i > 0 {
			header = append(header, ' ')
		}
		header = append(header, []byte(string(sym))...)
	}
	if _, err := fmt.Fprintln(bw, string(header)); err != nil {
		return errors.Wrapf(err, "dfatext: writing header row")
	}

	for s := 1; s <= d.NStates; s++ {
		if d.Attrib[s] == automaton.Dead {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%c%d", d.Attrib[s].Prefix(), s-1); err != nil {
			return errors.Wrapf(err, "dfatext: writing state row")
		}
		for j := 1; j <= d.NAB; j++ {
			target := d.Transitions[s][j]
			if target == 0 {
				if _, err := fmt.Fprint(bw, " -"); err != nil {
					return errors.Wrapf(err, "dfatext: writing transition cell")
				}
				continue
			}
			if _, err := fmt.Fprintf(bw, " %c%d", d.Attrib[target].Prefix(), target-1); err != nil {
				return errors.Wrapf(err, "dfatext: writing transition cell")
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return errors.Wrapf(err, "dfatext: writing state row terminator")
		}
	}

	if _, err := fmt.Fprintf(bw, "initial: %c%d\n", d.Attrib[d.InitState].Prefix(), d.InitState-1); err != nil {
		return errors.Wrapf(err, "dfatext: writing initial-state line")
	}

	return errors.Wrapf(bw.Flush(), "dfatext: flushing output")
}
