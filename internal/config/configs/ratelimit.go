package configs

// RateLimit configures the global token bucket applied to /api routes.
type RateLimit struct {
	Enabled bool    `env:"ENABLED" envDefault:"false"`
	RPS     float64 `env:"RPS" envDefault:"50"`
	Burst   int     `env:"BURST" envDefault:"100"`
}
