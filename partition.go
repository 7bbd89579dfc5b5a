// partition.go — the Partition Enumerator: a lazy, finite producer of
// set-partitions of the index set {0, …, n-1}, generated in restricted
// growth string (RGS) order via explicit backtracking (no goroutine, no
// channel — a plain Next()-style iterator, safe to hold but not safe for
// concurrent use by two goroutines at once).
package payback

// Partition is a set-partition of {0, …, n-1}: each block is a slice of
// indices, blocks are non-empty, pairwise disjoint, and their union is the
// full index set.
type Partition [][]int

// Enumerator lazily produces every Partition of an n-element index set, in
// RGS order. When balances is non-nil, it additionally prunes and filters so
// that only zero-sum partitions (every block's indices' balances sum to
// zero) are yielded — see NewZeroSumEnumerator.
type Enumerator struct {
	n        int
	balances []int64 // nil unless zero-sum filtering is enabled
	suffix   []int64 // suffix[i] = sum of abs(balances[i:]); len n+1

	labels  []int   // labels[i]: block assigned to index i, valid for i < depth
	maxUsed []int   // maxUsed[d]: highest block label used among labels[0:d]; len n+1
	choice  []int   // choice[d]: next block label to try for index d
	sums    []int64 // sums[L]: running balance sum of block L (zero-sum mode only)

	depth     int
	started   bool
	exhausted bool
}

// NewEnumerator returns an Enumerator over every set-partition of an
// n-element index set, unfiltered.
func NewEnumerator(n int) *Enumerator {
	return newEnumerator(n, nil)
}

// NewZeroSumEnumerator returns an Enumerator that yields only the
// set-partitions of {0, …, len(balances)-1} whose every block sums to zero.
func NewZeroSumEnumerator(balances []int64) *Enumerator {
	return newEnumerator(len(balances), balances)
}

func newEnumerator(n int, balances []int64) *Enumerator {
	e := &Enumerator{
		n:        n,
		balances: balances,
		labels:   make([]int, n),
		maxUsed:  make([]int, n+1),
		choice:   make([]int, n+1),
	}
	e.maxUsed[0] = -1
	if balances != nil {
		e.sums = make([]int64, n)
		e.suffix = make([]int64, n+1)
		for i := n - 1; i >= 0; i-- {
			e.suffix[i] = e.suffix[i+1] + abs64(balances[i])
		}
	}
	return e
}

// Next returns the next partition and true, or (nil, false) once every
// (qualifying) partition has been produced.
func (e *Enumerator) Next() (Partition, bool) {
	if e.exhausted {
		return nil, false
	}
	if !e.started {
		e.started = true
		e.choice[0] = 0
	}

	for {
		if e.depth == e.n {
			ok := e.balances == nil || e.leafIsZeroSum()
			part := e.currentPartition()
			if !e.stepBack() {
				e.exhausted = true
			}
			if ok {
				return part, true
			}
			if e.exhausted {
				return nil, false
			}
			continue
		}

		maxAllowed := e.maxUsed[e.depth] + 1
		if e.choice[e.depth] > maxAllowed {
			if !e.stepBack() {
				e.exhausted = true
				return nil, false
			}
			continue
		}

		label := e.choice[e.depth]
		isNew := label == e.maxUsed[e.depth]+1
		e.labels[e.depth] = label
		if isNew {
			e.maxUsed[e.depth+1] = label
		} else {
			e.maxUsed[e.depth+1] = e.maxUsed[e.depth]
		}

		if e.balances != nil {
			if isNew {
				e.sums[label] = e.balances[e.depth]
			} else {
				e.sums[label] += e.balances[e.depth]
			}
			if abs64(e.sums[label]) > e.suffix[e.depth+1] {
				// No combination of the remaining entries can bring this
				// block back to zero; prune without descending.
				if isNew {
					// nothing persists for an unused label
				} else {
					e.sums[label] -= e.balances[e.depth]
				}
				e.choice[e.depth]++
				continue
			}
		}

		e.depth++
		e.choice[e.depth] = 0
	}
}

// stepBack undoes the assignment at the current depth (if any) and moves to
// the next untried choice at the parent depth. It returns false when there
// is nothing left to back into (enumeration is complete).
func (e *Enumerator) stepBack() bool {
	if e.depth == 0 {
		return false
	}
	e.depth--
	label := e.labels[e.depth]
	if e.balances != nil && label != e.maxUsed[e.depth]+1 {
		e.sums[label] -= e.balances[e.depth]
	}
	e.choice[e.depth]++
	return true
}

// leafIsZeroSum reports whether every block in the current full assignment
// sums to zero. Only meaningful when e.depth == e.n.
func (e *Enumerator) leafIsZeroSum() bool {
	top := e.maxUsed[e.n]
	for l := 0; l <= top; l++ {
		if e.sums[l] != 0 {
			return false
		}
	}
	return true
}

// currentPartition materializes the block structure implied by
// labels[0:n] into a Partition.
func (e *Enumerator) currentPartition() Partition {
	top := e.maxUsed[e.n]
	blocks := make(Partition, top+1)
	for i := 0; i < e.n; i++ {
		l := e.labels[i]
		blocks[l] = append(blocks[l], i)
	}
	return blocks
}
