// Package unionfind implements a weighted, path-compressing disjoint-set
// (Union-Find) structure over a dense partition vector, per spec §3.2 and
// §4.1. It is the substrate the refine package drives to a fixpoint.
//
// Grounded on the teacher's own MST union-find (coregx-coregex has none;
// katalvlaran-lvlath/prim_kruskal/kruskal.go and
// other_examples/56a5baa9_Devi-Muna-CloudSlash__pkg-graph-dsu.go.go both
// implement the same parent/rank shape) but reworked around the spec's
// single-slot weight encoding (root cells store -(size-1), not a separate
// rank array) instead of parallel parent[]/rank[] maps.
package unionfind
