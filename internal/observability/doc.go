// Package observability groups the logging and metrics infrastructure.
//
// Subpackages:
//   - logging: slog logger construction from configuration
//   - metrics: Prometheus collectors and the Recorder used by the publishing service
package observability
