package models

// RouteLeg is one step of a computed route. LineID names the line ridden to
// reach the station; it is empty for the origin leg. Transfer legs switch the
// platform at an interchange without riding a train.
type RouteLeg struct {
	Station  Station `json:"station"`
	LineID   string  `json:"lineId,omitempty"`
	Transfer bool    `json:"transfer,omitempty"`
}

// Route is an ordered path of stations with the lines traversed between them.
// Routes are built fresh per query and never persisted.
type Route struct {
	Legs      []RouteLeg `json:"legs"`
	Cost      int        `json:"cost"`
	Transfers int        `json:"transfers"`
}

// Visits reports whether the route passes through a station with the given
// name on any of its legs.
func (r Route) Visits(name string) bool {
	for _, leg := range r.Legs {
		if leg.Station.Name == name {
			return true
		}
	}
	return false
}

// StationNames returns the names visited by the route in order, with
// consecutive duplicates (interchange platform switches) collapsed.
func (r Route) StationNames() []string {
	names := make([]string, 0, len(r.Legs))
	for _, leg := range r.Legs {
		if n := len(names); n > 0 && names[n-1] == leg.Station.Name {
			continue
		}
		names = append(names, leg.Station.Name)
	}
	return names
}

type RoutesResponse struct {
	List []Route `json:"list"`
}
