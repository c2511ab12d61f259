package unionfind

// Partition is a dense Union-Find vector over elements 1..n, as specified
// in §3.2. Cell 0 is unused padding so element ids index directly.
//
// Each cell holds one of:
//   - 0 or a negative weight -(size-1): the element is a root.
//   - a positive parent id: the element belongs to the tree rooted there.
//
// A freshly constructed Partition has every element a singleton root (all
// cells 0), which is both "uninitialized" and "root of a size-1 tree" —
// the two sentinels the spec calls out coincide deliberately.
type Partition struct {
	rep []int
}

// NewPartition allocates a Partition over n elements, all singletons.
func NewPartition(n int) *Partition {
	return &Partition{rep: make([]int, n+1)}
}

// Len returns the number of elements the partition was built over.
func (p *Partition) Len() int { return len(p.rep) - 1 }

// Raw exposes the underlying dense vector. refine uses it to splice a
// scratch partition into the live one cell-by-cell; no other package should
// need it.
func (p *Partition) Raw() []int { return p.rep }

// Find returns the representative (root id) of the class containing e,
// compressing the path from e to the root in the process: every node
// traversed is re-parented directly to the root (§4.1, §8 property 5).
func (p *Partition) Find(e int) int {
	root := e
	for p.rep[root] > 0 {
		root = p.rep[root]
	}
	for e != root {
		parent := p.rep[e]
		p.rep[e] = root
		e = parent
	}
	return root
}

// Union merges the classes containing a and b. If they're already the same
// class this is a no-op. Otherwise it performs weighted union: the smaller
// tree's root is attached under the larger tree's root, with ties attaching
// b's root under a's root (§4.1).
func (p *Partition) Union(a, b int) {
	ra, rb := p.Find(a), p.Find(b)
	if ra == rb {
		return
	}
	wa, wb := p.rep[ra], p.rep[rb]
	// wa, wb are both <= 0; size = -w + 1, so wa <= wb iff size(ra) >= size(rb).
	if wa <= wb {
		p.rep[ra] = wa + wb - 1
		p.rep[rb] = ra
	} else {
		p.rep[rb] = wa + wb - 1
		p.rep[ra] = rb
	}
}

// Size returns the number of elements in e's class.
func (p *Partition) Size(e int) int {
	root := p.Find(e)
	return -p.rep[root] + 1
}
