package tubedb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"tubemap.nanjingmetro.org/internal/appconf"
)

// createDB opens a SQLite database and creates the network tables.
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("refusing to create database file %q in the test environment", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	if err := createTables(tx); err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, err
	}

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_stations_name_key ON stations(name_key);
		CREATE INDEX IF NOT EXISTS idx_line_stations_line_id ON line_stations(line_id);
		CREATE INDEX IF NOT EXISTS idx_line_stations_station_id ON line_stations(station_id);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

func createTables(tx *sql.Tx) error {
	stmts := []struct {
		table string
		ddl   string
	}{
		{"lines", `
			CREATE TABLE IF NOT EXISTS lines (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL
			);`},
		{"stations", `
			CREATE TABLE IF NOT EXISTS stations (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				name_key TEXT NOT NULL
			);`},
		{"line_stations", `
			CREATE TABLE IF NOT EXISTS line_stations (
				line_id TEXT NOT NULL REFERENCES lines(id),
				station_id TEXT NOT NULL REFERENCES stations(id),
				position INTEGER NOT NULL,
				PRIMARY KEY (line_id, position)
			);`},
	}

	for _, s := range stmts {
		if _, err := tx.Exec(s.ddl); err != nil {
			return fmt.Errorf("error creating table %s: %w", s.table, err)
		}
	}
	return nil
}
