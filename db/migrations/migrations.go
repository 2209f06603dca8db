package migrations

import "embed"

// FS embeds the SQL migrations for the list/todo schema. golang-migrate
// reads them through its iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
