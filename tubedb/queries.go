package tubedb

import (
	"context"
	"database/sql"

	"tubemap.nanjingmetro.org/internal/mapdoc"
)

// Queries wraps the read side of the network index.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

type StationRow struct {
	ID   string
	Name string
}

type LineRow struct {
	ID   string
	Name string
}

// GetStation returns a single station by id. sql.ErrNoRows when absent.
func (q *Queries) GetStation(ctx context.Context, id string) (StationRow, error) {
	var row StationRow
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name FROM stations WHERE id = ?`, id).Scan(&row.ID, &row.Name)
	return row, err
}

// GetStationsByName returns every station bearing the given name, matched
// case-insensitively on the normalized name key.
func (q *Queries) GetStationsByName(ctx context.Context, name string) ([]StationRow, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name FROM stations WHERE name_key = ? ORDER BY id`, mapdoc.NameKey(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanStations(rows)
}

// SearchStationsByName returns stations whose name contains the query,
// matched case-insensitively, capped at limit.
func (q *Queries) SearchStationsByName(ctx context.Context, query string, limit int) ([]StationRow, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name FROM stations WHERE name_key LIKE '%' || ? || '%' ORDER BY id LIMIT ?`,
		mapdoc.NameKey(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanStations(rows)
}

// GetStationsForLine returns the stations of a line in topology order.
func (q *Queries) GetStationsForLine(ctx context.Context, lineID string) ([]StationRow, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT s.id, s.name
		FROM line_stations ls
		JOIN stations s ON s.id = ls.station_id
		WHERE ls.line_id = ?
		ORDER BY ls.position`, lineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanStations(rows)
}

// GetLine returns a single line by id. sql.ErrNoRows when absent.
func (q *Queries) GetLine(ctx context.Context, id string) (LineRow, error) {
	var row LineRow
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name FROM lines WHERE id = ?`, id).Scan(&row.ID, &row.Name)
	return row, err
}

// GetLines returns all lines.
func (q *Queries) GetLines(ctx context.Context) ([]LineRow, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, name FROM lines ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var lines []LineRow
	for rows.Next() {
		var row LineRow
		if err := rows.Scan(&row.ID, &row.Name); err != nil {
			return nil, err
		}
		lines = append(lines, row)
	}
	return lines, rows.Err()
}

// GetLineIDsForStation returns the ids of lines serving the given station id.
func (q *Queries) GetLineIDsForStation(ctx context.Context, stationID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT line_id FROM line_stations WHERE station_id = ? ORDER BY line_id`, stationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountStations returns the number of stations in the index.
func (q *Queries) CountStations(ctx context.Context) (int, error) {
	var count int
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stations`).Scan(&count)
	return count, err
}

// CountLines returns the number of lines in the index.
func (q *Queries) CountLines(ctx context.Context) (int, error) {
	var count int
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lines`).Scan(&count)
	return count, err
}

func scanStations(rows *sql.Rows) ([]StationRow, error) {
	var stations []StationRow
	for rows.Next() {
		var row StationRow
		if err := rows.Scan(&row.ID, &row.Name); err != nil {
			return nil, err
		}
		stations = append(stations, row)
	}
	return stations, rows.Err()
}
