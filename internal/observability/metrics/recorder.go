package metrics

// Recorder receives publishing events worth counting.
type Recorder interface {
	EntityCreated(kind string)
	ValidationRejected(entity, field, policy string)
	RegistrySize(registry string, n int)
}

// PrometheusRecorder records into the package-level Prometheus collectors.
type PrometheusRecorder struct{}

// NewPrometheusRecorder returns a Recorder backed by the default Prometheus registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	return &PrometheusRecorder{}
}

// EntityCreated increments the construction counter for kind.
func (PrometheusRecorder) EntityCreated(kind string) {
	EntitiesCreatedTotal.WithLabelValues(kind).Inc()
}

// ValidationRejected increments the rejection counter.
func (PrometheusRecorder) ValidationRejected(entity, field, policy string) {
	ValidationRejectionsTotal.WithLabelValues(entity, field, policy).Inc()
}

// RegistrySize sets the size gauge for registry.
func (PrometheusRecorder) RegistrySize(registry string, n int) {
	RegistrySizeGauge.WithLabelValues(registry).Set(float64(n))
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) EntityCreated(string)                      {}
func (NoopRecorder) ValidationRejected(string, string, string) {}
func (NoopRecorder) RegistrySize(string, int)                  {}
