// exact.go — the Exact Partition Solver: finds an optimal Solution by
// searching for a zero-sum partition of maximum block count and solving
// each block independently with a chosen approximation.
package payback

// approximation is the per-block solver signature shared by StarExpand and
// GreedySatisfaction, letting the exact solver stay agnostic to which one
// it composes with (see Method in solve.go).
type approximation func(*Balances) (Solution, error)

// SolvePartitioning finds a zero-sum partition of the participants with the
// maximum number of blocks, then solves each block with approx and
// concatenates the results. Because every zero-sum block of size k
// contributes exactly k-1 edges under a correct per-block approximation,
// the total edge count is b.Len() minus the number of blocks — the true
// optimum.
//
// Ties among maximum-cardinality partitions are broken by the partition
// enumerator's emission order (first encountered wins), making this
// deterministic for a given b.
//
// Complexity: worst-case exponential in b.Len() (bounded by the Bell
// number), pruned aggressively by NewZeroSumEnumerator but with no
// polynomial guarantee — this problem is NP-hard in general.
func SolvePartitioning(b *Balances, approx approximation) (Solution, error) {
	n := b.Len()
	if n == 0 {
		return Solution{}, nil
	}

	enumerator := NewZeroSumEnumerator(b.Values())

	var (
		best       Partition
		bestBlocks = -1
		examined   int
	)
	for {
		part, ok := enumerator.Next()
		if !ok {
			break
		}
		examined++
		if len(part) > bestBlocks {
			bestBlocks = len(part)
			best = part
			logger.Info().Int("blocks", bestBlocks).Msg("partitioning solver found a new best partition")
		}
	}
	logger.Info().Int("best_blocks", bestBlocks).Int("partitions_examined", examined).Msg("partitioning solver finished searching")

	edges := make([]Edge, 0, n-bestBlocks)
	for _, block := range best {
		blockBalances, err := subBalances(b, block)
		if err != nil {
			return Solution{}, err
		}
		sol, err := approx(blockBalances)
		if err != nil {
			return Solution{}, err
		}
		edges = append(edges, sol.Edges...)
	}

	return Solution{Edges: edges}, nil
}

// subBalances builds a fresh Balances restricted to the given indices of b,
// preserving their relative order. Every block produced by a zero-sum
// partition already sums to zero by construction, so this never fails in
// practice; the error return exists only because NewBalances is the
// general-purpose constructor it reuses.
func subBalances(b *Balances, indices []int) (*Balances, error) {
	pairs := make([]BalancePair, len(indices))
	for i, idx := range indices {
		pairs[i] = BalancePair{ID: b.ID(idx), Balance: b.Balance(idx)}
	}
	return NewBalances(pairs)
}
