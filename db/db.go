package db

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	// one console game writes a single row at the end
	maxOpenConns = 4
	maxIdleConns = 2
)

//go:embed migration/*.sql
var migrations embed.FS

// MigrationSource serves the migrations built into the binary, so the
// schema does not depend on the working directory.
func MigrationSource() (source.Driver, error) {
	return iofs.New(migrations, "migration")
}

func MustMigrate(db *sql.DB, logger mb.Logger) {
	src, err := MigrationSource()
	if err != nil {
		panic(err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		panic(err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		panic(err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		panic(err)
	}
	if dirty {
		panic("database is dirty")
	}
	logger.Info("migration version", "version", version)

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return
		}
		panic(err)
	}
	logger.Info("migration successful")
}

// MustConnectToDb opens and pings psqlUrl, then brings the schema up to date.
func MustConnectToDb(psqlUrl string, logger mb.Logger) *sql.DB {
	if logger == nil {
		logger = mb.DiscardLogger()
	}

	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		panic(err)
	}

	// Open may not connect at all
	if err := db.Ping(); err != nil {
		panic(err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	MustMigrate(db, logger)
	return db
}
