// solve.go — unified dispatcher over the solver stack, mirroring the
// teacher library's Algo-enum dispatch pattern (tsp.SolveWithMatrix).
package payback

import (
	"errors"
	"fmt"
)

// Method selects which solving strategy Solve uses.
type Method int

const (
	// ApproxStarExpand runs the Star Expand 2-approximation directly.
	ApproxStarExpand Method = iota
	// ApproxGreedySatisfaction runs the Greedy Satisfaction 2-approximation
	// directly.
	ApproxGreedySatisfaction
	// PartitioningStarExpand runs the exact partition solver, using Star
	// Expand to solve each zero-sum block.
	PartitioningStarExpand
	// PartitioningGreedySatisfaction runs the exact partition solver, using
	// Greedy Satisfaction to solve each zero-sum block.
	PartitioningGreedySatisfaction
)

// String renders the canonical CLI spelling of m (see §6 of the method
// contract): "approx-star-expand", "approx-greedy-satisfaction",
// "partitioning-star-expand", or "partitioning-greedy-satisfaction".
func (m Method) String() string {
	switch m {
	case ApproxStarExpand:
		return "approx-star-expand"
	case ApproxGreedySatisfaction:
		return "approx-greedy-satisfaction"
	case PartitioningStarExpand:
		return "partitioning-star-expand"
	case PartitioningGreedySatisfaction:
		return "partitioning-greedy-satisfaction"
	default:
		return "unknown"
	}
}

// ParseMethod parses the canonical CLI spelling of a Method. Any other
// spelling — including near-misses like "PartitioningsGreedySatisfaction" —
// is rejected; the canonical method set is exactly the four names above.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "approx-star-expand":
		return ApproxStarExpand, nil
	case "approx-greedy-satisfaction":
		return ApproxGreedySatisfaction, nil
	case "partitioning-star-expand":
		return PartitioningStarExpand, nil
	case "partitioning-greedy-satisfaction":
		return PartitioningGreedySatisfaction, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized method %q", ErrInvalidMethod, s)
	}
}

// ErrInvalidMethod indicates a method name outside the canonical set
// accepted by ParseMethod.
var ErrInvalidMethod = errors.New("payback: invalid method")

// Solve runs the requested Method against b and returns the resulting
// Solution. It never mutates b.
func Solve(b *Balances, method Method) (Solution, error) {
	logger.Info().Stringer("method", method).Int("participants", b.Len()).Msg("solving")
	switch method {
	case ApproxStarExpand:
		return StarExpand(b)
	case ApproxGreedySatisfaction:
		return GreedySatisfaction(b)
	case PartitioningStarExpand:
		return SolvePartitioning(b, StarExpand)
	case PartitioningGreedySatisfaction:
		return SolvePartitioning(b, GreedySatisfaction)
	default:
		return Solution{}, fmt.Errorf("%w: method %d", ErrInvalidMethod, method)
	}
}
