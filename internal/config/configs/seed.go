package configs

// Seed controls the deterministic demo data loaded into the in-memory
// stores at startup. The same Value always yields the same creatives,
// performance rows and A/B tests for a given start time.
type Seed struct {
	Value     int64 `env:"VALUE" envDefault:"12345"`
	Creatives int   `env:"CREATIVES" envDefault:"60"`
	// Days is the trailing window of daily performance rows per creative.
	Days int `env:"DAYS" envDefault:"90"`
}
