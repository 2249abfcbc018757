package engine

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"quorumid/internal/platform/config"
	"quorumid/internal/platform/logger"
	"quorumid/internal/platform/metrics"
)

// FromConfig builds an Engine with logging and metrics configured from cfg.
// Logs go to w; metrics register with reg. Extra options are applied last.
func FromConfig(cfg *config.Config, w io.Writer, reg prometheus.Registerer, opts ...Option) (*Engine, error) {
	base := []Option{
		WithLogger(logger.NewWithWriter(w, cfg.LogLevel, cfg.LogFormat)),
	}
	if reg != nil {
		base = append(base, WithMetrics(metrics.New(reg, cfg.MetricsNamespace)))
	}
	return New(cfg.Authority, append(base, opts...)...)
}
