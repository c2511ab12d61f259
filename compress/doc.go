// Package compress rebuilds a fresh, minimal DFA from a source DFA and a
// converged unionfind.Partition, per spec §4.5: one output state per
// equivalence class, renumbered in ascending scan order of each class's
// canonical (smallest-id) representative.
package compress
