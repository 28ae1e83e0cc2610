package observer

import (
	"github.com/rs/zerolog"
)

// config holds the settings shared by both subject flavors.
type config struct {
	name    string
	logger  zerolog.Logger
	metrics Metrics
}

func defaultConfig(kind string) config {
	return config{
		name:    kind,
		logger:  zerolog.Nop(),
		metrics: noopMetrics{},
	}
}

// Option configures a subject at construction time.
type Option func(*config)

// WithName sets the name the subject reports in logs and metrics. It defaults to "pull" or "push".
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the structured logger for the subject. By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics sink for the subject.
func WithMetrics(m Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}
