// Command payback settles a set of participant balances or weighted debts
// into a minimal-ish set of payments, printed as a transaction list or a
// Graphviz DOT graph.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/payback"
	"github.com/katalvlaran/payback/internal/cliconfig"
)

var (
	logLevel string
	noColor  bool

	debtorStyle   = lipgloss.NewStyle().Faint(true)
	creditorStyle = lipgloss.NewStyle().Bold(true)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, err := cliconfig.Load()
	if err != nil {
		cfg = &cliconfig.Config{Method: "approx-star-expand", Output: "transactions", LogLevel: "info"}
	}

	cmd := &cobra.Command{
		Use:   "payback <FILE> [OUTPUT] [METHOD]",
		Short: "Settle a set of participant balances into a minimal set of payments",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 3 {
				return fmt.Errorf("expected between 1 and 3 positional arguments, got %d", len(args))
			}
			if len(args) >= 2 {
				switch args[1] {
				case "transactions", "dot":
				default:
					return fmt.Errorf("invalid OUTPUT %q: want \"transactions\" or \"dot\"", args[1])
				}
			}
			if len(args) == 3 {
				if _, err := payback.ParseMethod(args[2]); err != nil {
					return err
				}
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, cfg)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides PAYBACK_LOG_LEVEL)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled terminal output")

	return cmd
}

func run(cmd *cobra.Command, args []string, cfg *cliconfig.Config) error {
	output := cfg.Output
	method := cfg.Method
	if len(args) >= 2 {
		output = args[1]
	}
	if len(args) == 3 {
		method = args[2]
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	payback.SetLogger(newLogger(level))

	switch output {
	case "transactions", "dot":
	default:
		return fmt.Errorf("invalid OUTPUT %q: want \"transactions\" or \"dot\"", output)
	}

	m, err := payback.ParseMethod(method)
	if err != nil {
		return err
	}

	src, closeSrc, err := openInput(args[0])
	if err != nil {
		return fmt.Errorf("payback: %w", err)
	}
	defer closeSrc()

	balances, err := payback.BalancesFromCSV(src)
	if err != nil {
		return err
	}

	solution, err := payback.Solve(balances, m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output == "dot" {
		fmt.Fprint(out, payback.SolutionToDOT(balances, solution))
		return nil
	}
	return printStyled(out, balances, solution)
}

// openInput resolves path into a readable source: "-" for stdin, otherwise
// a file on disk. The returned close func is always safe to call.
func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { _ = f.Close() }, nil
}

// printStyled writes one transaction line per edge, colored by sign
// convention (debtor side dim, creditor side bold) when color is enabled;
// color is suppressed by --no-color or when stdout is not a terminal.
func printStyled(w io.Writer, b *payback.Balances, s payback.Solution) error {
	colorize := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	for _, e := range s.Edges {
		from, to := fmt.Sprintf("%q", e.From), fmt.Sprintf("%q", e.To)
		if colorize {
			from = debtorStyle.Render(from)
			to = creditorStyle.Render(to)
		}
		if _, err := fmt.Fprintf(w, "%s to %s: %d.0\n", from, to, e.Weight); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
