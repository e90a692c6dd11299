package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Lines    []Line        `json:"lines"`
	Stations []Station     `json:"stations"`
	Routes   []interface{} `json:"routes"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Lines:    []Line{},
		Stations: []Station{},
		Routes:   []interface{}{},
	}
}
