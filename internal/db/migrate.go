package db

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"creative-pulse/db/migrations"
)

// Migrate brings the postgres list store at addr up to migrations.Version.
// The schema holds two tables: todo_lists, and todos whose list_id
// references todo_lists with ON DELETE CASCADE, so dropping a list drops its
// todos in the same statement. Creatives, performance rows and A/B tests
// stay in memory and have no tables. A database left dirty by a failed
// migration is reported, not repaired.
func Migrate(addr string) error {
	driver, err := openSource()
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// openSource opens the embedded list/todo migrations and checks that the
// newest one is migrations.Version.
func openSource() (source.Driver, error) {
	d, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	v, err := d.First()
	for err == nil {
		var next uint
		if next, err = d.Next(v); err == nil {
			v = next
		}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		d.Close()
		return nil, fmt.Errorf("walk embedded migrations: %w", err)
	}
	if v != migrations.Version {
		d.Close()
		return nil, fmt.Errorf("embedded migrations end at %d, want %d", v, migrations.Version)
	}
	return d, nil
}
