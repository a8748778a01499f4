package main

import (
	"errors"
	"flag"
	"fmt"

	"bistro-booking/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationUp   = "up"
	migrationDown = "down"
)

func mustMigrateUp(m *migrate.Migrate) {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}

		panic(err)
	}

	fmt.Println("migrations applied successfully")
}

func mustMigrateDown(m *migrate.Migrate) {
	if err := m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}

		panic(err)
	}

	fmt.Println("migrations downed successfully")
}

func main() {
	var migrationsPath, migrationType string
	flag.StringVar(&migrationType, "migration-type", migrationUp, "migration type")
	flag.StringVar(&migrationsPath, "migrations-path", "db/migrations", "path to migrations")
	flag.Parse()

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		panic(err)
	}

	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dbCfg.BuildDSN(),
	)
	if err != nil {
		panic(err)
	}

	if migrationType == migrationDown {
		mustMigrateDown(m)
		return
	}

	mustMigrateUp(m)
}
