package tube

import "tubemap.nanjingmetro.org/internal/models"

// Finder is the query contract of the network graph engine. The Manager
// facade holds a concrete Engine and delegates to it; consumers that only
// query the network can depend on this interface instead.
type Finder interface {
	// StationByID returns the station with the given id, or a NotFoundError.
	StationByID(id string) (models.Station, error)

	// StationsByName returns every station bearing the given name, one per
	// line at interchanges. An unknown name yields an empty slice and no
	// error; callers distinguish "no station with this name" from a failed
	// definite lookup.
	StationsByName(name string) []models.Station

	// LineByID returns the line with the given id, or a NotFoundError.
	LineByID(id string) (models.Line, error)

	// LineByName returns the line with the given display name, or a
	// NotFoundError.
	LineByName(name string) (models.Line, error)

	// Lines returns all lines of the network, in no particular order.
	Lines() []models.Line

	// StationsForLine returns the stations of a line in line-topology order.
	// The line may be named by id or display name; anything else yields an
	// InvalidLineError.
	StationsForLine(idOrName string) ([]models.Station, error)

	// ShortestRoute returns a minimum-cost route between two station names.
	// Endpoint resolution is case-insensitive. An unresolvable endpoint
	// yields an InvalidStationError.
	ShortestRoute(from, to string) (models.Route, error)

	// AllRoutes enumerates alternative routes between two station names,
	// cheapest first. Best effort: the enumeration is bounded in both cost
	// and count.
	AllRoutes(from, to string) ([]models.Route, error)
}
