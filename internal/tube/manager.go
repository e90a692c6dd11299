package tube

import (
	"context"
	"fmt"
	"log"

	"tubemap.nanjingmetro.org/internal/mapdoc"
	"tubemap.nanjingmetro.org/internal/models"
	"tubemap.nanjingmetro.org/tubedb"
)

// DefaultDocumentPath names the bundled map document reported by
// DocumentPath when no override is configured.
const DefaultDocumentPath = "embedded:data/nanjing-metro.xml"

// Manager owns the loaded metro network and provides methods to query it.
// The map document is read once at construction and the derived graph is
// immutable for the Manager's lifetime.
type Manager struct {
	config Config
	doc    *mapdoc.Document
	engine *Engine
	TubeDB *tubedb.Client
}

var _ Finder = (*Manager)(nil)

// InitManager loads the configured map document, derives the graph engine,
// and populates the SQLite network index.
func InitManager(config Config) (*Manager, error) {
	doc, err := mapdoc.Load(config.MapPath)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		config: config,
		doc:    doc,
		engine: NewEngine(doc),
	}

	dbClient, err := buildTubeDB(config, doc)
	if err != nil {
		return nil, fmt.Errorf("error building network index: %w", err)
	}
	manager.TubeDB = dbClient

	return manager, nil
}

func buildTubeDB(config Config, doc *mapdoc.Document) (*tubedb.Client, error) {
	dbConfig := tubedb.NewConfig(config.dbPath(), config.Env, config.Verbose)
	client, err := tubedb.NewClient(dbConfig)
	if err != nil {
		return nil, err
	}

	if err := client.ImportDocument(context.Background(), doc); err != nil {
		client.Close() // nolint:errcheck
		return nil, err
	}

	return client, nil
}

// Shutdown releases the network index.
func (manager *Manager) Shutdown() {
	if manager.TubeDB != nil {
		_ = manager.TubeDB.Close()
	}
}

// Name returns the metro system's display name.
func (manager *Manager) Name() string {
	return manager.doc.Name
}

// Document returns the loaded map document.
func (manager *Manager) Document() *mapdoc.Document {
	return manager.doc
}

// DocumentPath returns the resolved map document location.
func (manager *Manager) DocumentPath() string {
	if manager.config.MapPath == "" {
		return DefaultDocumentPath
	}
	return manager.config.MapPath
}

func (manager *Manager) StationByID(id string) (models.Station, error) {
	return manager.engine.StationByID(id)
}

func (manager *Manager) StationsByName(name string) []models.Station {
	return manager.engine.StationsByName(name)
}

func (manager *Manager) LineByID(id string) (models.Line, error) {
	return manager.engine.LineByID(id)
}

func (manager *Manager) LineByName(name string) (models.Line, error) {
	return manager.engine.LineByName(name)
}

func (manager *Manager) Lines() []models.Line {
	return manager.engine.Lines()
}

func (manager *Manager) StationsForLine(idOrName string) ([]models.Station, error) {
	return manager.engine.StationsForLine(idOrName)
}

func (manager *Manager) ShortestRoute(from, to string) (models.Route, error) {
	return manager.engine.ShortestRoute(from, to)
}

func (manager *Manager) AllRoutes(from, to string) ([]models.Route, error) {
	return manager.engine.AllRoutes(from, to)
}

// SearchStations finds stations whose name contains the query, using the
// SQLite index for the scan and resolving matches against the in-memory
// network.
func (manager *Manager) SearchStations(ctx context.Context, query string, limit int) ([]models.Station, error) {
	rows, err := manager.TubeDB.Queries.SearchStationsByName(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	stations := make([]models.Station, 0, len(rows))
	for _, row := range rows {
		station, err := manager.engine.StationByID(row.ID)
		if err != nil {
			continue
		}
		stations = append(stations, station)
	}
	return stations, nil
}

// NetworkStats summarizes the loaded network.
type NetworkStats struct {
	Name         string `json:"name"`
	DocumentPath string `json:"documentPath"`
	Stations     int    `json:"stations"`
	Lines        int    `json:"lines"`
	Interchanges int    `json:"interchanges"`
}

// Stats reports station and line counts from the index plus the number of
// interchange names in the network.
func (manager *Manager) Stats(ctx context.Context) (NetworkStats, error) {
	stations, err := manager.TubeDB.Queries.CountStations(ctx)
	if err != nil {
		return NetworkStats{}, err
	}
	lines, err := manager.TubeDB.Queries.CountLines(ctx)
	if err != nil {
		return NetworkStats{}, err
	}

	interchanges := 0
	counted := make(map[string]bool)
	for _, station := range manager.doc.Stations {
		key := mapdoc.NameKey(station.Name)
		if counted[key] {
			continue
		}
		if len(manager.doc.StationIDsByName(station.Name)) > 1 {
			interchanges++
		}
		counted[key] = true
	}

	return NetworkStats{
		Name:         manager.Name(),
		DocumentPath: manager.DocumentPath(),
		Stations:     stations,
		Lines:        lines,
		Interchanges: interchanges,
	}, nil
}

// PrintStatistics logs a short summary of the loaded network.
func (manager *Manager) PrintStatistics() {
	log.Printf("Map: %s (%s)", manager.Name(), manager.DocumentPath())
	log.Println("Stations Count: ", len(manager.doc.Stations))
	log.Println("Lines Count: ", len(manager.doc.Lines))
}
