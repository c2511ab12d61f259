// Package automaton defines the in-memory deterministic finite automaton
// (DFA) type shared by every stage of the minimization pipeline:
// unionfind, refine, reach, compress and minimize.
//
// A DFA here is a dense transition table, not a compiled regex program:
// states are plain integers, the alphabet is an ordered list of symbols,
// and transitions[s][j] names the successor state (or the sink, 0) for
// state s on symbol j. States are numbered 1..NStates internally; state 0
// is reserved as the sink ("no transition"). Callers that speak in
// externally-numbered (0-based) state ids should add/subtract 1 at the
// boundary — see the dfatext package, which does exactly that.
package automaton
