package minimize

import (
	"github.com/coregx/dfamin/automaton"
	"github.com/coregx/dfamin/compress"
	"github.com/coregx/dfamin/reach"
	"github.com/coregx/dfamin/refine"
)

// SweepHook is called once per refinement sweep, after Refine returns, with
// the sweep index (1-based), the number of classes before the sweep and the
// number of classes after. It is read-only instrumentation: it never
// influences the minimization result, so wiring one in does not affect
// spec §5's determinism guarantee.
type SweepHook func(sweep, classesBefore, classesAfter int)

// Option configures an orchestration run.
type Option func(*config)

type config struct {
	onSweep SweepHook
}

// WithSweepHook attaches a SweepHook invoked after every refinement sweep.
func WithSweepHook(h SweepHook) Option {
	return func(c *config) { c.onSweep = h }
}

// Minimize runs the full minimization pipeline on in (§4.4):
//
//  1. init_partition seeds two classes (accept / non-accept).
//  2. refine is driven to a fixpoint.
//  3. compress builds a fresh DFA from the final partition.
//  4. mark_dead annotates unreachable / can't-reach-accept states on the result.
//
// in is read-only; the returned DFA is freshly allocated. Every step runs
// unconditionally — there are no early exits (§4.4).
func Minimize(in *automaton.DFA, opts ...Option) (*automaton.DFA, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	p := refine.InitPartition(in.NStates, in.Attrib)

	sweep := 0
	for {
		sweep++
		before := countClasses(p, in.NStates)
		changed := refine.Refine(in, p)
		after := countClasses(p, in.NStates)
		if cfg.onSweep != nil {
			cfg.onSweep(sweep, before, after)
		}
		if !changed {
			break
		}
		if sweep > in.NStates {
			// Can't happen for a validated input (§4.2 termination argument):
			// a programming defect, not a user-facing error.
			panic("minimize: refinement did not converge within NStates sweeps")
		}
	}

	out := compress.Compress(in, p)
	reach.MarkDead(out)

	// §9 open question, pinned: when every state of the compressed DFA comes
	// out dead, collapse to the canonical 1-state empty DFA (initial state
	// preserved, marked dead, no transitions) rather than leaving the full
	// class count around. See SPEC_FULL.md §13 for the invariant this keeps:
	// InitState must always name a real state 1.
	if out.IsEmpty() {
		empty := automaton.New(1, out.NAB, append([]rune(nil), out.Alphabet...))
		empty.Attrib[1] = automaton.Dead
		out = empty
	}

	return out, nil
}

func countClasses(p interface{ Find(int) int }, nstates int) int {
	seen := make(map[int]struct{}, nstates)
	for s := 1; s <= nstates; s++ {
		seen[p.Find(s)] = struct{}{}
	}
	return len(seen)
}
