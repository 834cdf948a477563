// Package metrics provides the Prometheus metrics for the publishing graph.
//
// It tracks:
//   - entities constructed, by kind
//   - field writes rejected by a validation rule, by entity, field and policy
//   - registry sizes
//
// All metrics are registered with the Prometheus default registry through promauto.
// Code that should not touch the default registry takes a Recorder and uses NoopRecorder.
//
// Example usage:
//
//	import "publishing-graph/internal/observability/metrics"
//
//	rec := metrics.NewPrometheusRecorder()
//	rec.EntityCreated("article")
//	rec.RegistrySize("articles", 42)
package metrics
