// Package dfatext parses and pretty-prints the whitespace-delimited DFA
// text format described by §6.1/§6.2: a header row giving the state and
// symbol counts, an alphabet row, a dense transition matrix, and a
// trailing list of accepting state ids for input; a table of live states
// plus an initial-state line (or a distinguished empty-DFA line) for
// output.
//
// External state ids in this format are 0-based; automaton.DFA is
// 1-based internally. Parse and Print do the +1/-1 shift at the boundary
// so nothing upstream of this package ever sees an external id.
package dfatext
