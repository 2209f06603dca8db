package configs

const (
	TodoBackendMemory   = "memory"
	TodoBackendPostgres = "postgres"
)

// Todo selects where lists and todos live. Creatives, performance rows and
// tests are always kept in memory; only the list/todo domain can be backed
// by PostgreSQL.
type Todo struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
}
