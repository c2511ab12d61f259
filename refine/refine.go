package refine

import (
	"github.com/coregx/dfamin/automaton"
	"github.com/coregx/dfamin/internal/sparse"
	"github.com/coregx/dfamin/unionfind"
)

// InitPartition seeds a fresh Partition over nstates states with the §4.2
// two-class initial split: all accepting states in one class, all
// non-accepting states in another. If either category is empty, only the
// other class exists (Union is simply never called for the missing side).
func InitPartition(nstates int, attrib []automaton.Attrib) *unionfind.Partition {
	p := unionfind.NewPartition(nstates)

	var firstAccept, firstOther int
	for s := 1; s <= nstates; s++ {
		if attrib[s] == automaton.Accept {
			if firstAccept == 0 {
				firstAccept = s
			} else {
				p.Union(firstAccept, s)
			}
		} else {
			if firstOther == 0 {
				firstOther = s
			} else {
				p.Union(firstOther, s)
			}
		}
	}
	return p
}

// cls implements the same-transition predicate's class function: the sink
// (0) is its own distinguished class, every other target's class is its
// current Union-Find representative.
func cls(p *unionfind.Partition, target int) int {
	if target == 0 {
		return 0
	}
	return p.Find(target)
}

// sameTransitions reports whether s1 and s2 agree, under the current
// partition, on the class of their transition for every alphabet symbol.
func sameTransitions(dfa *automaton.DFA, p *unionfind.Partition, s1, s2 int) bool {
	for j := 1; j <= dfa.NAB; j++ {
		if cls(p, dfa.Transitions[s1][j]) != cls(p, dfa.Transitions[s2][j]) {
			return false
		}
	}
	return true
}

// classes groups the current partition's members into ordered equivalence
// classes, one slice per class, each in ascending state-id order, the
// classes themselves ordered by the state id that first reveals them during
// an ascending scan. This is a snapshot: later mutation of p does not retroactively
// change which states belonged to which class at the start of this sweep.
func classes(p *unionfind.Partition, nstates int) [][]int {
	index := make(map[int]int, nstates)
	var groups [][]int
	for s := 1; s <= nstates; s++ {
		root := p.Find(s)
		if i, ok := index[root]; ok {
			groups[i] = append(groups[i], s)
		} else {
			index[root] = len(groups)
			groups = append(groups, []int{s})
		}
	}
	return groups
}

// Refine performs one sweep over all current classes (§4.2): for each class
// of two or more states, it checks whether the class is still a single
// same-transition equivalence class under the live partition, and if not,
// splits it — applying the split to p immediately, so later classes in the
// same sweep observe the finer partition ("progressive refinement").
//
// Returns whether any class actually split this sweep.
func Refine(dfa *automaton.DFA, p *unionfind.Partition) bool {
	changed := false

	for _, members := range classes(p, dfa.NStates) {
		k := len(members)
		if k < 2 {
			continue
		}

		scratch := unionfind.NewPartition(p.Len())
		merged := make([]bool, k)
		for i := 0; i < k; i++ {
			if merged[i] {
				continue
			}
			for j := i + 1; j < k; j++ {
				if merged[j] {
					continue
				}
				if sameTransitions(dfa, p, members[i], members[j]) {
					scratch.Union(members[i], members[j])
					merged[j] = true
				}
			}
		}

		// The class only really split if the scratch pass produced more than
		// one distinct root among its members; a single surviving root means
		// every member is still mutually same-transition, so rep is left
		// untouched (copying a cosmetically different-but-equivalent root id
		// would spuriously report "changed" every sweep and never converge).
		roots := sparse.NewIntSet(p.Len() + 1)
		for _, m := range members {
			roots.Insert(scratch.Find(m))
		}
		if roots.Size() < 2 {
			continue
		}

		raw, scratchRaw := p.Raw(), scratch.Raw()
		for _, m := range members {
			raw[m] = scratchRaw[m]
		}
		changed = true
	}

	return changed
}
