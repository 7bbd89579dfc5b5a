// balances.go — the Balances model: a finite ordered sequence of
// (participant, balance) pairs, plus every constructor that builds one.
//
// A *Balances value is read-only after construction (see NewBalances and its
// siblings) and may be shared freely across goroutines: no field is mutated
// after the constructor returns, so no lock is needed — unlike the teacher
// library's Graph, which stays mutable for its lifetime and pays for RWMutex
// guards accordingly. Solvers never see this type mutate and never mutate it:
// star_expand.go only reads it, and greedy_satisfaction.go keeps its
// changing balances in private working copies.
package payback

import "fmt"

// Balances is a finite ordered sequence of (identifier, balance) pairs with
// pairwise-distinct identifiers, each a non-zero signed integer, summing to
// exactly zero. It is produced once by a constructor and never mutated.
type Balances struct {
	ids  []string
	vals []int64
	idx  map[string]int
}

// Len returns the number of participants.
func (b *Balances) Len() int {
	if b == nil {
		return 0
	}
	return len(b.ids)
}

// ID returns the identifier of the participant at position i.
func (b *Balances) ID(i int) string { return b.ids[i] }

// Balance returns the net balance of the participant at position i.
func (b *Balances) Balance(i int) int64 { return b.vals[i] }

// IndexOf returns the position of id and true, or (-1, false) if absent.
func (b *Balances) IndexOf(id string) (int, bool) {
	if b == nil {
		return -1, false
	}
	i, ok := b.idx[id]
	return i, ok
}

// IDs returns a copy of the participant identifiers, in model order.
func (b *Balances) IDs() []string {
	out := make([]string, len(b.ids))
	copy(out, b.ids)
	return out
}

// Values returns a copy of the participant balances, in model order,
// parallel to IDs.
func (b *Balances) Values() []int64 {
	out := make([]int64, len(b.vals))
	copy(out, b.vals)
	return out
}

// sum returns the sum of all balances; used by constructors to enforce the
// closed-network invariant and by tests to assert it holds.
func (b *Balances) sum() int64 {
	var total int64
	for _, v := range b.vals {
		total += v
	}
	return total
}

// BalancePair is one (identifier, balance) entry for NewBalances.
type BalancePair struct {
	ID      string
	Balance int64
}

// EdgeAmount is one ((from, to), weight) entry for NewBalancesFromEdges,
// meaning From owes To the given Weight.
type EdgeAmount struct {
	From, To string
	Weight   int64
}

// newBalances is the common tail of every balance-shaped constructor: drop
// zero balances, verify the closed-network invariant, and freeze the index.
// entries are assumed already deduplicated by the caller.
func newBalances(ids []string, vals []int64) (*Balances, error) {
	b := &Balances{
		ids:  make([]string, 0, len(ids)),
		vals: make([]int64, 0, len(vals)),
		idx:  make(map[string]int, len(ids)),
	}
	for i, v := range vals {
		if v == 0 {
			logger.Debug().Str("participant", ids[i]).Msg("dropping zero-balance participant")
			continue
		}
		b.idx[ids[i]] = len(b.ids)
		b.ids = append(b.ids, ids[i])
		b.vals = append(b.vals, v)
	}
	if total := b.sum(); total != 0 {
		logger.Debug().Int64("sum", total).Msg("net balances do not sum to zero")
		return nil, ErrUnbalancedNetwork
	}
	logger.Debug().Int("participants", len(b.ids)).Msg("normalized balance model")
	return b, nil
}

// NewBalances builds a Balances from a sequence of (identifier, balance)
// pairs. A repeated identifier is always an error — sequence inputs cannot
// be silently coalesced (see Input Normalization, §4.1).
func NewBalances(pairs []BalancePair) (*Balances, error) {
	ids := make([]string, len(pairs))
	vals := make([]int64, len(pairs))
	seen := make(map[string]struct{}, len(pairs))
	for i, p := range pairs {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIdentifier, p.ID)
		}
		seen[p.ID] = struct{}{}
		ids[i] = p.ID
		vals[i] = p.Balance
	}
	return newBalances(ids, vals)
}

// NewBalancesFromMap builds a Balances from a mapping identifier→balance.
// Go's map type already enforces key uniqueness, so there is no duplicate
// check; entry order is the map's iteration order, which Go randomizes —
// callers that need stable ordering should use NewBalances instead.
func NewBalancesFromMap(m map[string]int64) (*Balances, error) {
	ids := make([]string, 0, len(m))
	vals := make([]int64, 0, len(m))
	for id, v := range m {
		ids = append(ids, id)
		vals = append(vals, v)
	}
	return newBalances(ids, vals)
}

// NewBalancesFromSequence builds a Balances from bare balances; identifiers
// become "0", "1", … as decimal strings, in slice order.
func NewBalancesFromSequence(balances []int64) (*Balances, error) {
	ids := make([]string, len(balances))
	for i := range balances {
		ids[i] = fmt.Sprintf("%d", i)
	}
	return newBalances(ids, balances)
}

// NewBalancesFromEdges builds a Balances from a sequence of weighted debt
// edges: ((from, to), weight) means from owes to the given weight.
// Self-loops are dropped silently (they cancel in the balance computation).
// Repeated (from, to) keys are summed before balances are derived.
// The result always sums to zero by construction, so UnbalancedNetwork
// cannot occur on this path.
func NewBalancesFromEdges(edges []EdgeAmount) (*Balances, error) {
	coalesced := make(map[EdgeKey]int64, len(edges))
	order := make([]EdgeKey, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			logger.Debug().Str("participant", e.From).Msg("dropping self-loop edge")
			continue
		}
		k := EdgeKey{e.From, e.To}
		if _, seen := coalesced[k]; !seen {
			order = append(order, k)
		}
		coalesced[k] += e.Weight
	}
	return balancesFromCoalescedEdges(order, coalesced)
}

// NewBalancesFromEdgeMap builds a Balances from a mapping (from, to)→weight.
// As with NewBalancesFromEdges, self-loops are dropped; map keys are
// inherently unique so no coalescing is required, but iteration order is
// Go's randomized map order.
func NewBalancesFromEdgeMap(m map[EdgeKey]int64) (*Balances, error) {
	coalesced := make(map[EdgeKey]int64, len(m))
	order := make([]EdgeKey, 0, len(m))
	for k, w := range m {
		if k.From == k.To {
			continue
		}
		order = append(order, k)
		coalesced[k] = w
	}
	return balancesFromCoalescedEdges(order, coalesced)
}

// EdgeKey is the map-key shape accepted by NewBalancesFromEdgeMap, and the
// internal coalescing key for NewBalancesFromEdges.
type EdgeKey struct{ From, To string }

func balancesFromCoalescedEdges(order []EdgeKey, coalesced map[EdgeKey]int64) (*Balances, error) {
	vals := make(map[string]int64)
	var ids []string
	seen := make(map[string]struct{})
	addVertex := func(id string) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, k := range order {
		addVertex(k.From)
		addVertex(k.To)
	}
	for k, w := range coalesced {
		vals[k.From] -= w
		vals[k.To] += w
	}
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = vals[id]
	}
	return newBalances(ids, out)
}
