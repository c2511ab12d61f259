// Package minimize wires refine, compress and reach together into the
// orchestration spec §4.4 describes: refine to a fixpoint, compress to a
// fresh minimal DFA, then mark dead states on the result.
package minimize
