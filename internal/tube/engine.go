package tube

import (
	"tubemap.nanjingmetro.org/internal/mapdoc"
	"tubemap.nanjingmetro.org/internal/models"
)

// Edge costs. Travel between adjacent stations on a line costs segmentCost;
// switching lines at an interchange costs transferCost. The transfer cost is
// positive but smaller than a segment so that, between routes of equal
// station count, the one with fewer transfers always wins.
const (
	segmentCost  = 10
	transferCost = 3
)

type edge struct {
	to       string
	cost     int
	lineID   string // empty for interchange edges
	transfer bool
}

// Engine answers all queries against one loaded map document. It is built
// once and immutable afterwards; concurrent use requires no locking.
type Engine struct {
	doc       *mapdoc.Document
	adjacency map[string][]edge
	routes    *routeCache
}

var _ Finder = (*Engine)(nil)

// NewEngine derives the network graph from a loaded document.
func NewEngine(doc *mapdoc.Document) *Engine {
	engine := &Engine{
		doc:       doc,
		adjacency: make(map[string][]edge, len(doc.Stations)),
		routes:    newRouteCache(),
	}
	engine.buildAdjacency()
	return engine
}

func (e *Engine) buildAdjacency() {
	for _, line := range e.doc.Lines {
		for i := 0; i+1 < len(line.StationIDs); i++ {
			a, b := line.StationIDs[i], line.StationIDs[i+1]
			e.addEdge(a, b, segmentCost, line.ID, false)
			e.addEdge(b, a, segmentCost, line.ID, false)
		}
	}

	// Interchange edges between every pair of ids sharing a station name.
	for _, station := range e.doc.Stations {
		for _, otherID := range e.doc.StationIDsByName(station.Name) {
			if otherID != station.ID {
				e.addEdge(station.ID, otherID, transferCost, "", true)
			}
		}
	}
}

func (e *Engine) addEdge(from, to string, cost int, lineID string, transfer bool) {
	e.adjacency[from] = append(e.adjacency[from], edge{
		to:       to,
		cost:     cost,
		lineID:   lineID,
		transfer: transfer,
	})
}

// Name returns the display name of the metro system.
func (e *Engine) Name() string {
	return e.doc.Name
}

func (e *Engine) StationByID(id string) (models.Station, error) {
	station, ok := e.doc.StationByID(id)
	if !ok {
		return models.Station{}, &NotFoundError{Kind: "station", ID: id}
	}
	return station, nil
}

func (e *Engine) StationsByName(name string) []models.Station {
	ids := e.doc.StationIDsByName(name)
	stations := make([]models.Station, 0, len(ids))
	for _, id := range ids {
		if station, ok := e.doc.StationByID(id); ok {
			stations = append(stations, station)
		}
	}
	return stations
}

func (e *Engine) LineByID(id string) (models.Line, error) {
	line, ok := e.doc.LineByID(id)
	if !ok {
		return models.Line{}, &NotFoundError{Kind: "line", ID: id}
	}
	return line, nil
}

func (e *Engine) LineByName(name string) (models.Line, error) {
	line, ok := e.doc.LineByName(name)
	if !ok {
		return models.Line{}, &NotFoundError{Kind: "line", ID: name}
	}
	return line, nil
}

func (e *Engine) Lines() []models.Line {
	lines := make([]models.Line, len(e.doc.Lines))
	copy(lines, e.doc.Lines)
	return lines
}

func (e *Engine) StationsForLine(idOrName string) ([]models.Station, error) {
	line, ok := e.doc.LineByID(idOrName)
	if !ok {
		line, ok = e.doc.LineByName(idOrName)
	}
	if !ok {
		return nil, &InvalidLineError{Line: idOrName}
	}

	stations := make([]models.Station, 0, len(line.StationIDs))
	for _, id := range line.StationIDs {
		station, ok := e.doc.StationByID(id)
		if !ok {
			// The loader guarantees every listed id is declared.
			return nil, &NotFoundError{Kind: "station", ID: id}
		}
		stations = append(stations, station)
	}
	return stations, nil
}
