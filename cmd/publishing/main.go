package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"publishing-graph/internal/config"
	"publishing-graph/internal/infra/adapter/persistence/memory"
	"publishing-graph/internal/observability/logging"
	"publishing-graph/internal/observability/metrics"
	pubUC "publishing-graph/internal/usecase/publishing"
)

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	svc := pubUC.NewService(
		memory.NewArticleRegistry(),
		memory.NewMagazineRegistry(),
		logger,
		metrics.NewPrometheusRecorder(),
	)

	if err := seed(svc); err != nil {
		logger.Error("failed to seed publishing graph", slog.Any("error", err))
		os.Exit(1)
	}
	report(logger, svc)

	if cfg.MetricsDump {
		dumpMetrics(logger, prometheus.DefaultGatherer)
	}
}

// dumpMetrics logs the publishing metric families from g.
func dumpMetrics(logger *slog.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		logger.Error("failed to gather metrics", slog.Any("error", err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{slog.String("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, slog.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, slog.Float64("value", m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				attrs = append(attrs, slog.Float64("value", m.GetGauge().GetValue()))
			default:
				continue
			}
			logger.Info("metric", attrs...)
		}
	}
}
