// Package reach implements the dead-state marking pass (spec §4.3): a
// Warshall transitive closure over the minimized DFA's transition relation,
// used to find states unreachable from the initial state or unable to reach
// any accepting state.
//
// The triple-nested loop is grounded on
// katalvlaran-lvlath/matrix/ops/floyd_warshal.go's Floyd-Warshall
// implementation — same k-outermost loop shape and staged-comment style,
// adapted from shortest-path relaxation over float64 distances to boolean
// reachability over a connectivity matrix.
package reach
