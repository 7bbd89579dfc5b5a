// report.go — reporting: pretty-printed transaction lists and DOT
// (Graphviz) rendering of a Solution.
package payback

import (
	"fmt"
	"io"
	"strings"
)

// PrintSolution writes one line per edge of s to w, in s's own edge order,
// formatted as `"<from>" to "<to>": <weight>.0` — the CLI's textual
// contract. b is accepted for API symmetry with SolutionToDOT and future
// callers that want to annotate output with participant context; the
// current format only needs the edges themselves.
func PrintSolution(w io.Writer, b *Balances, s Solution) error {
	for _, e := range s.Edges {
		if _, err := fmt.Fprintf(w, "%q to %q: %d.0\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	return nil
}

// SolutionToDOT renders s as a Graphviz digraph block, with identifiers
// quoted and edge weights as labels.
func SolutionToDOT(b *Balances, s Solution) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	for _, e := range s.Edges {
		fmt.Fprintf(&sb, "\t%q -> %q [label=%q];\n", e.From, e.To, fmt.Sprintf("%d", e.Weight))
	}
	sb.WriteString("}\n")
	return sb.String()
}
