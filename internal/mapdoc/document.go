package mapdoc

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"tubemap.nanjingmetro.org/internal/models"
)

// Document is the fully linked, immutable in-memory form of a map document.
// Stations and Lines preserve declaration order.
type Document struct {
	Name     string
	Stations []models.Station
	Lines    []models.Line

	stationsByID     map[string]int
	linesByID        map[string]int
	linesByName      map[string]int
	stationIDsByName map[string][]string
}

// NameKey normalizes a station or line name for lookup: NFC normalization,
// trimmed whitespace, lower-cased. Name matching throughout the module is
// case-insensitive per this key.
func NameKey(name string) string {
	return strings.ToLower(normalizeName(name))
}

// normalizeName produces the canonical display form of a name: NFC with
// surrounding whitespace trimmed. Chinese station names can arrive in mixed
// normalization forms depending on the editor that produced the document.
func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// StationByID returns the station with the given id.
func (d *Document) StationByID(id string) (models.Station, bool) {
	i, ok := d.stationsByID[id]
	if !ok {
		return models.Station{}, false
	}
	return d.Stations[i], true
}

// StationIDsByName returns the ids of all stations bearing the given name,
// one per line for interchanges. The empty slice means no match.
func (d *Document) StationIDsByName(name string) []string {
	return d.stationIDsByName[NameKey(name)]
}

// LineByID returns the line with the given id.
func (d *Document) LineByID(id string) (models.Line, bool) {
	i, ok := d.linesByID[id]
	if !ok {
		return models.Line{}, false
	}
	return d.Lines[i], true
}

// LineByName returns the line with the given display name.
func (d *Document) LineByName(name string) (models.Line, bool) {
	i, ok := d.linesByName[NameKey(name)]
	if !ok {
		return models.Line{}, false
	}
	return d.Lines[i], true
}
