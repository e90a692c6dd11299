package models

// Line is an ordered sequence of stations forming one metro route. Adjacency
// along the line is implied by the order of StationIDs, not by explicit edge
// records.
type Line struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	StationIDs []string `json:"stationIds"`
}

func NewLine(id, name string, stationIDs []string) Line {
	return Line{
		ID:         id,
		Name:       name,
		StationIDs: stationIDs,
	}
}

type LinesResponse struct {
	List []Line `json:"list"`
}
