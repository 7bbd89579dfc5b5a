// Package payback minimizes the number of monetary transactions required to
// settle debts within a group.
//
// 💸 What is payback?
//
//	A small library that turns a set of IOUs — either per-person net
//	balances or raw "who owes whom" edges — into the smallest possible set
//	of payments that settles everyone up.
//
// It offers three solving strategies, selected through Solve:
//
//   - ApproxStarExpand           — O(n) 2-approximation, routes every
//     payment through a single hub participant.
//   - ApproxGreedySatisfaction   — O(n log n) 2-approximation, always moves
//     the minimum possible total amount of money.
//   - PartitioningStarExpand / PartitioningGreedySatisfaction — exact
//     (NP-hard worst case), splits participants into independently
//     settleable zero-sum groups and solves each group with the named
//     approximation, recovering the true optimum edge count.
//
// Construction accepts balances (sequence, map, or bare ints) or edges
// (sequence or map); see balances.go for the full constructor surface.
//
// Under the hood:
//
//	balances.go   — the Balances model and its constructors
//	solution.go   — the Solution model and its Validate contract
//	star_expand.go, greedy_satisfaction.go — the two approximations
//	partition.go  — the lazy set-partition enumerator
//	exact.go      — the partitioning (exact) solver built on it
//	solve.go      — the Method dispatcher
//	report.go     — transaction pretty-printing and DOT rendering
//
//	go get github.com/katalvlaran/payback
package payback
