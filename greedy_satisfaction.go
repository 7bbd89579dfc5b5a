// greedy_satisfaction.go — the Greedy Satisfaction 2-approximation solver.
//
// Resolved design choice (SPEC_FULL §9): rather than the naive O(n²) repeated
// linear scan for the current extreme creditor/debtor, this implementation
// keeps two container/heap priority queues — one max-heap over creditors,
// one min-heap over debtors — so each step's selection and update costs
// O(log n), for O(n log n) total.
package payback

import "container/heap"

// GreedySatisfaction iteratively pairs the largest creditor with the largest
// debtor and settles the smaller of their absolute balances in one edge,
// repeating until every balance reaches zero.
//
// Ties (equal balance) are broken by first position in b's order, both when
// selecting the creditor and when selecting the debtor, so the result is
// deterministic for a given b.
//
// Guarantees: at most b.Len()-1 edges; total edge weight equals
// Σ max(balance, 0), the minimum possible total money moved by any valid
// solution; a 2-approximation on edge count in the worst case.
func GreedySatisfaction(b *Balances) (Solution, error) {
	n := b.Len()
	if n == 0 {
		return Solution{}, nil
	}

	creditors := extremeHeap{mode: maxByAmount, items: make([]*extremeItem, 0, n)}
	debtors := extremeHeap{mode: minByAmount, items: make([]*extremeItem, 0, n)}
	for i := 0; i < n; i++ {
		bal := b.Balance(i)
		item := &extremeItem{id: b.ID(i), order: i, amount: bal}
		if bal > 0 {
			creditors.items = append(creditors.items, item)
		} else {
			debtors.items = append(debtors.items, item)
		}
	}
	heap.Init(&creditors)
	heap.Init(&debtors)

	edges := make([]Edge, 0, n-1)
	for creditors.Len() > 0 && debtors.Len() > 0 {
		c := creditors.items[0]
		d := debtors.items[0]

		w := c.amount
		if -d.amount < w {
			w = -d.amount
		}

		edges = append(edges, Edge{From: d.id, To: c.id, Weight: w})
		logger.Debug().Str("from", d.id).Str("to", c.id).Int64("weight", w).Msg("greedy satisfaction settled an edge")

		c.amount -= w
		d.amount += w

		if c.amount == 0 {
			heap.Pop(&creditors)
		} else {
			heap.Fix(&creditors, 0)
		}
		if d.amount == 0 {
			heap.Pop(&debtors)
		} else {
			heap.Fix(&debtors, 0)
		}
	}

	return Solution{Edges: edges}, nil
}

// extremeHeapMode selects whether an extremeHeap surfaces the maximum or the
// minimum amount at its root; both break ties by first-seen order.
type extremeHeapMode int

const (
	maxByAmount extremeHeapMode = iota
	minByAmount
)

// extremeItem is one participant tracked by an extremeHeap, with its
// remaining (mutable, working-copy) balance.
type extremeItem struct {
	id     string
	order  int // first-seen position in the originating Balances
	amount int64
}

// extremeHeap is a container/heap priority queue over extremeItem, ordered
// by mode with ties broken by order ascending (first-seen wins).
type extremeHeap struct {
	items []*extremeItem
	mode  extremeHeapMode
}

func (h extremeHeap) Len() int { return len(h.items) }

func (h extremeHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.amount == b.amount {
		return a.order < b.order
	}
	if h.mode == maxByAmount {
		return a.amount > b.amount
	}
	return a.amount < b.amount
}

func (h extremeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *extremeHeap) Push(x any) { h.items = append(h.items, x.(*extremeItem)) }

func (h *extremeHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}
