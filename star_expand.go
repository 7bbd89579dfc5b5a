// star_expand.go — the Star Expand 2-approximation solver.
package payback

// StarExpand chooses the participant with the largest absolute balance as a
// center and routes every other participant's settlement through it: a
// creditor p (balance(p) > 0) receives an edge center→p of weight balance(p);
// a debtor p (balance(p) < 0) sends an edge p→center of weight -balance(p).
//
// Center selection ties are broken by first position in b's order.
//
// Guarantees: exactly b.Len()-1 edges (0 if b is empty); O(n) time and
// memory; validity follows directly from Σ balances == 0, which makes the
// center's own net flow (inflow minus outflow) equal to balance(center)
// without any edge being emitted for the center's balance itself.
func StarExpand(b *Balances) (Solution, error) {
	n := b.Len()
	if n == 0 {
		return Solution{}, nil
	}

	center := 0
	for i := 1; i < n; i++ {
		if abs64(b.Balance(i)) > abs64(b.Balance(center)) {
			center = i
		}
	}
	logger.Debug().Str("center", b.ID(center)).Int64("balance", b.Balance(center)).Msg("star expand center selected")

	edges := make([]Edge, 0, n-1)
	for i := 0; i < n; i++ {
		if i == center {
			continue
		}
		bal := b.Balance(i)
		if bal > 0 {
			edges = append(edges, Edge{From: b.ID(center), To: b.ID(i), Weight: bal})
		} else {
			edges = append(edges, Edge{From: b.ID(i), To: b.ID(center), Weight: -bal})
		}
	}

	return Solution{Edges: edges}, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
