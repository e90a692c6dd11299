package tubedb

import (
	"context"
	"database/sql"

	"tubemap.nanjingmetro.org/internal/mapdoc"
	"tubemap.nanjingmetro.org/internal/models"
)

func insertLines(ctx context.Context, tx *sql.Tx, lines []models.Line) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO lines (id, name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close() // nolint:errcheck

	for _, line := range lines {
		if _, err := stmt.ExecContext(ctx, line.ID, line.Name); err != nil {
			return err
		}
	}
	return nil
}

func insertStations(ctx context.Context, tx *sql.Tx, stations []models.Station) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO stations (id, name, name_key) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close() // nolint:errcheck

	for _, station := range stations {
		if _, err := stmt.ExecContext(ctx, station.ID, station.Name, mapdoc.NameKey(station.Name)); err != nil {
			return err
		}
	}
	return nil
}

func insertLineStations(ctx context.Context, tx *sql.Tx, lines []models.Line) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO line_stations (line_id, station_id, position) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close() // nolint:errcheck

	for _, line := range lines {
		for position, stationID := range line.StationIDs {
			if _, err := stmt.ExecContext(ctx, line.ID, stationID, position); err != nil {
				return err
			}
		}
	}
	return nil
}
