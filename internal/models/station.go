package models

// Station is one metro stop on one line. Interchange stations share a Name
// across lines but carry a distinct ID per line.
type Station struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	LineIDs []string `json:"lineIds"`
}

func NewStation(id, name string, lineIDs []string) Station {
	return Station{
		ID:      id,
		Name:    name,
		LineIDs: lineIDs,
	}
}

// ServesLine reports whether the station belongs to the given line.
func (s Station) ServesLine(lineID string) bool {
	for _, id := range s.LineIDs {
		if id == lineID {
			return true
		}
	}
	return false
}

type StationsResponse struct {
	List []Station `json:"list"`
}
