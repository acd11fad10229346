package config

// MetricsConfig controls telemetry collection. Metrics are written to a
// Prometheus textfile rather than served.
type MetricsConfig struct {
	Enabled      bool   `env:"METRICS_ENABLED"`
	TextfilePath string `env:"METRICS_TEXTFILE"`
	ServiceName  string `env:"OTEL_SERVICE_NAME"`
}
