package mapdoc

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"tubemap.nanjingmetro.org/internal/models"
)

// defaultDocument is the bundled Nanjing Metro network. It is the document
// used whenever no override path is configured.
//
//go:embed data/nanjing-metro.xml
var defaultDocument []byte

type xmlMap struct {
	XMLName  xml.Name     `xml:"map"`
	Name     string       `xml:"name,attr"`
	Stations []xmlStation `xml:"stations>station"`
	Lines    []xmlLine    `xml:"lines>line"`
}

type xmlStation struct {
	ID    string `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Lines string `xml:"lines,attr"`
}

type xmlLine struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	Stations string `xml:"stations,attr"`
}

// Load parses the map document at path. An empty path loads the bundled
// Nanjing Metro document. A missing or unreadable file yields a
// ResourceError; malformed content yields a ParseError.
func Load(path string) (*Document, error) {
	if path == "" {
		return LoadBytes(defaultDocument)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}

	return LoadBytes(data)
}

// LoadBytes parses and links a map document held in memory. The load either
// fully succeeds or fully fails; a partially valid document is never returned.
func LoadBytes(data []byte) (*Document, error) {
	var raw xmlMap
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid XML: %v", err)}
	}

	if strings.TrimSpace(raw.Name) == "" {
		return nil, &ParseError{Reason: "map name attribute is missing"}
	}
	if len(raw.Stations) == 0 {
		return nil, &ParseError{Reason: "map declares no stations"}
	}
	if len(raw.Lines) == 0 {
		return nil, &ParseError{Reason: "map declares no lines"}
	}

	doc := &Document{
		Name:             strings.TrimSpace(raw.Name),
		Stations:         make([]models.Station, 0, len(raw.Stations)),
		Lines:            make([]models.Line, 0, len(raw.Lines)),
		stationsByID:     make(map[string]int, len(raw.Stations)),
		linesByID:        make(map[string]int, len(raw.Lines)),
		linesByName:      make(map[string]int, len(raw.Lines)),
		stationIDsByName: make(map[string][]string),
	}

	for _, l := range raw.Lines {
		line, err := parseLine(l)
		if err != nil {
			return nil, err
		}
		if _, dup := doc.linesByID[line.ID]; dup {
			return nil, &ParseError{Reason: fmt.Sprintf("duplicate line id %q", line.ID)}
		}
		if _, dup := doc.linesByName[NameKey(line.Name)]; dup {
			return nil, &ParseError{Reason: fmt.Sprintf("duplicate line name %q", line.Name)}
		}
		doc.linesByID[line.ID] = len(doc.Lines)
		doc.linesByName[NameKey(line.Name)] = len(doc.Lines)
		doc.Lines = append(doc.Lines, line)
	}

	for _, s := range raw.Stations {
		station, err := parseStation(s)
		if err != nil {
			return nil, err
		}
		if _, dup := doc.stationsByID[station.ID]; dup {
			return nil, &ParseError{Reason: fmt.Sprintf("duplicate station id %q", station.ID)}
		}
		for _, lineID := range station.LineIDs {
			if _, ok := doc.linesByID[lineID]; !ok {
				return nil, &ParseError{Reason: fmt.Sprintf("station %q references undeclared line %q", station.ID, lineID)}
			}
		}
		doc.stationsByID[station.ID] = len(doc.Stations)
		doc.Stations = append(doc.Stations, station)

		key := NameKey(station.Name)
		doc.stationIDsByName[key] = append(doc.stationIDsByName[key], station.ID)
	}

	if err := doc.link(); err != nil {
		return nil, err
	}

	return doc, nil
}

func parseStation(s xmlStation) (models.Station, error) {
	id := strings.TrimSpace(s.ID)
	name := normalizeName(s.Name)
	if id == "" {
		return models.Station{}, &ParseError{Reason: "station with empty id"}
	}
	if name == "" {
		return models.Station{}, &ParseError{Reason: fmt.Sprintf("station %q has no name", id)}
	}

	lineIDs := splitIDList(s.Lines)
	if len(lineIDs) == 0 {
		return models.Station{}, &ParseError{Reason: fmt.Sprintf("station %q belongs to no line", id)}
	}

	return models.NewStation(id, name, lineIDs), nil
}

func parseLine(l xmlLine) (models.Line, error) {
	id := strings.TrimSpace(l.ID)
	name := normalizeName(l.Name)
	if id == "" {
		return models.Line{}, &ParseError{Reason: "line with empty id"}
	}
	if name == "" {
		return models.Line{}, &ParseError{Reason: fmt.Sprintf("line %q has no name", id)}
	}

	stationIDs := splitIDList(l.Stations)
	if len(stationIDs) == 0 {
		return models.Line{}, &ParseError{Reason: fmt.Sprintf("line %q lists no stations", id)}
	}

	return models.NewLine(id, name, stationIDs), nil
}

// link verifies cross references between lines and stations: every station id
// a line lists must be declared and must claim membership of that line, and
// every station must appear on each line it claims.
func (d *Document) link() error {
	seenOnLine := make(map[string]map[string]bool, len(d.Lines))

	for _, line := range d.Lines {
		seen := make(map[string]bool, len(line.StationIDs))
		for _, stationID := range line.StationIDs {
			if seen[stationID] {
				return &ParseError{Reason: fmt.Sprintf("line %q lists station %q twice", line.ID, stationID)}
			}
			seen[stationID] = true

			station, ok := d.StationByID(stationID)
			if !ok {
				return &ParseError{Reason: fmt.Sprintf("line %q references undeclared station %q", line.ID, stationID)}
			}
			if !station.ServesLine(line.ID) {
				return &ParseError{Reason: fmt.Sprintf("station %q is listed on line %q but does not declare it", stationID, line.ID)}
			}
		}
		seenOnLine[line.ID] = seen
	}

	for _, station := range d.Stations {
		for _, lineID := range station.LineIDs {
			if !seenOnLine[lineID][station.ID] {
				return &ParseError{Reason: fmt.Sprintf("station %q declares line %q but is not in its sequence", station.ID, lineID)}
			}
		}
	}

	return nil
}

func splitIDList(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
