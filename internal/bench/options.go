package bench

import "log/slog"

// Option configures a Runner during creation.
type Option func(*Runner)

// WithLogger sets the logger for run progress.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records observations into m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}
