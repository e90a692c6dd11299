package tube

import "fmt"

// NotFoundError reports a lookup by id or name where a single definite result
// was expected and nothing matched.
type NotFoundError struct {
	Kind string // "station" or "line"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q", e.Kind, e.ID)
}

// InvalidLineError reports a line query parameter that does not resolve to a
// known line by id or name.
type InvalidLineError struct {
	Line string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid line %q", e.Line)
}

// InvalidStationError reports a route endpoint that does not resolve to any
// station name in the network.
type InvalidStationError struct {
	Station string
}

func (e *InvalidStationError) Error() string {
	return fmt.Sprintf("invalid station %q", e.Station)
}
