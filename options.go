package dedupe

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Engine constructor behavior.
//
// Options exist to avoid exploding the API surface as ambient concerns
// (logging, metrics) grow.
type Option func(*options)

// WithLogger configures structured logging for the engine.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// filter passes. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dedupe.BasicMetricsCollector{}
//	eng := dedupe.New(dedupe.WithMetricsCollector(metrics))
//	...
//	stats := metrics.GetStats()
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
