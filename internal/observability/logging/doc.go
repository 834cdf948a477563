// Package logging provides structured logging helpers on top of log/slog.
//
// Key features:
//   - JSON and text output formats
//   - Level parsing from configuration strings
//
// Example usage:
//
//	import "publishing-graph/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stdout, "text", logging.ParseLevel("debug"))
//	    logger.Info("application started", slog.String("version", "1.0"))
//	}
package logging
