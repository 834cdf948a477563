package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Publishing metrics
var (
	// EntitiesCreatedTotal counts successfully constructed entities by kind
	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publishing_entities_created_total",
			Help: "Total number of authors, magazines and articles constructed",
		},
		[]string{"kind"},
	)

	// ValidationRejectionsTotal counts rejected field writes
	ValidationRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publishing_validation_rejections_total",
			Help: "Total number of field values rejected by validation",
		},
		[]string{"entity", "field", "policy"}, // policy: fail_fast|silent_ignore
	)

	// RegistrySizeGauge tracks the length of each registry
	RegistrySizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "publishing_registry_size",
			Help: "Number of entries in each append-only registry",
		},
		[]string{"registry"},
	)
)
