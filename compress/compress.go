package compress

import "github.com/coregx/dfamin/automaton"

// partitionFinder is the slice of unionfind.Partition that compress needs:
// just Find. Declared locally so this package doesn't need to import
// unionfind's concrete type beyond what §4.5 actually specifies.
type partitionFinder interface {
	Find(e int) int
}

// Compress builds out from in using the final partition rep. Each class
// becomes exactly one state in out; the canonical representative of a class
// is its smallest-internal-id member, which falls out naturally from
// scanning states in ascending order and taking the first member of each
// class encountered that is its own Find root.
func Compress(in *automaton.DFA, rep partitionFinder) *automaton.DFA {
	n := in.NStates

	// map[old] = new, defined only for canonical representatives.
	// pam[new] = old, the inverse.
	forward := make([]int, n+1)
	var backward []int // backward[0] unused, indices 1..repCount

	repCount := 0
	for s := 1; s <= n; s++ {
		if rep.Find(s) == s {
			repCount++
			forward[s] = repCount
			backward = append(backward, s)
		}
	}
	// backward is 0-indexed from repCount's first entry; reindex to 1-based.
	pam := make([]int, repCount+1)
	copy(pam[1:], backward)

	mapOld := func(old int) int {
		if old == 0 {
			return 0
		}
		return forward[rep.Find(old)]
	}

	out := automaton.New(repCount, in.NAB, append([]rune(nil), in.Alphabet...))
	out.InitState = mapOld(in.InitState)

	for i := 1; i <= repCount; i++ {
		oldState := pam[i]
		out.Attrib[i] = in.Attrib[oldState]
		for j := 1; j <= in.NAB; j++ {
			out.Transitions[i][j] = mapOld(in.Transitions[oldState][j])
		}
	}

	for i := 1; i <= repCount; i++ {
		if out.Attrib[i] == automaton.Accept {
			out.Accepts = append(out.Accepts, i)
		}
	}

	return out
}
