// Package refine drives same-transition equivalence-class refinement to a
// fixpoint over a unionfind.Partition, per spec §4.2.
//
// Grounded on coregx-coregex's own state-classing idiom — nfa/alphabet.go's
// ByteClasses groups bytes into equivalence classes by transition behavior
// the same way this package groups DFA states — reworked from byte-class
// computation (done once, offline) into the iterative state-class splitting
// spec.md §4.2 describes.
package refine
