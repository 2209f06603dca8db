package configs

// Metrics configures the Prometheus exposition endpoint.
type Metrics struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Path    string `env:"PATH" envDefault:"/metrics"`
}
