// logging.go — ambient structured logging for the solver stack.
//
// The library is silent by default: logger starts as zerolog.Nop() so that
// importing payback never produces output a caller didn't ask for. The CLI
// (cmd/payback) calls SetLogger with a live logger wired to stderr; library
// code elsewhere just calls the package-level logger variable.
//
// This mirrors the verbosity of the original implementation's log::debug!/
// log::info! call sites (graph.rs, probleminstance.rs, exact_partitioning.rs)
// without requiring every caller to configure logging just to link the
// package.
package payback

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger installs l as the package-level logger used for debug/info
// tracing inside constructors and solvers. Passing a disabled logger (the
// default) silences all tracing.
func SetLogger(l zerolog.Logger) { logger = l }
