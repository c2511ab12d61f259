package reach

import "github.com/coregx/dfamin/automaton"

// Matrix is the connectivity matrix of spec §3.3: Matrix[i][j] is true iff
// state j is reachable from state i via zero or more transitions. It is
// scoped to a single dead-state pass and never persisted.
type Matrix [][]bool

// Reachable reports whether j is reachable from i.
func (m Matrix) Reachable(i, j int) bool { return m[i][j] }

// BuildClosure computes the reflexive transitive closure of dfa's direct
// transition relation via Warshall's algorithm.
//
// Stage 1: seed the matrix with the reflexive + direct-edge relation.
// Stage 2: close it with the k-outermost Warshall loop ordering (§4.3, §9 —
// this implementation documents that choice since either ordering computes
// the same final closure but intermediate snapshots would otherwise diverge
// from a different implementation's).
func BuildClosure(dfa *automaton.DFA) Matrix {
	n := dfa.NStates
	conn := make(Matrix, n+1)
	for i := range conn {
		conn[i] = make([]bool, n+1)
	}

	// Stage 1: reflexive + direct edges.
	for s := 1; s <= n; s++ {
		conn[s][s] = true
		for j := 1; j <= dfa.NAB; j++ {
			if t := dfa.Transitions[s][j]; t > 0 {
				conn[s][t] = true
			}
		}
	}

	// Stage 2: Warshall closure, k outermost.
	for k := 1; k <= n; k++ {
		for i := 1; i <= n; i++ {
			if !conn[i][k] {
				continue
			}
			for j := 1; j <= n; j++ {
				if conn[k][j] {
					conn[i][j] = true
				}
			}
		}
	}

	return conn
}

// MarkDead sets dfa.Attrib[s] = automaton.Dead for every state s that is
// either unreachable from dfa.InitState or cannot reach any accepting
// state (§4.3). The unreachable-from-init test applies to every state,
// accepting ones included; the can't-reach-accept test skips accepting
// states. Accepts is left as it was. Intended to run on
// an already-compressed DFA, so dead-class detection happens once on the
// smallest graph (§4.3 "why after compression").
func MarkDead(dfa *automaton.DFA) {
	conn := BuildClosure(dfa)

	for s := 1; s <= dfa.NStates; s++ {
		if !conn.Reachable(dfa.InitState, s) {
			dfa.Attrib[s] = automaton.Dead
		}
	}

	for s := 1; s <= dfa.NStates; s++ {
		if dfa.Attrib[s] == automaton.Accept || dfa.Attrib[s] == automaton.Dead {
			continue
		}
		reachesAccept := false
		for _, a := range dfa.Accepts {
			if conn.Reachable(s, a) {
				reachesAccept = true
				break
			}
		}
		if !reachesAccept {
			dfa.Attrib[s] = automaton.Dead
		}
	}
}
