package prometheus

import (
	"context"
	"log/slog"
)

type RegistrationStatePublisher struct {
	logger   *slog.Logger
	exporter *Exporter
}

func NewRegistrationStatePublisher(logger *slog.Logger, exporter *Exporter) *RegistrationStatePublisher {
	return &RegistrationStatePublisher{
		logger:   logger,
		exporter: exporter,
	}
}

func (p *RegistrationStatePublisher) Publish(ctx context.Context, backend string, registered bool) error {
	p.logger.DebugContext(ctx, "Publishing registration state",
		slog.Group("publish",
			slog.String("backend", backend),
			slog.Bool("registered", registered),
		))

	m := p.exporter.metrics

	result := "failure"
	status := 0.0

	if registered {
		result = "success"
		status = 1.0
	}

	m.discoveryRegistered.WithLabelValues(backend).Set(status)
	m.discoveryAttempts.WithLabelValues(backend, result).Inc()

	return nil
}
