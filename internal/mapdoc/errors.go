package mapdoc

import "fmt"

// ParseError reports malformed map document content. Loading is all or
// nothing, so a ParseError always means no document was produced.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("map document parse error: %s", e.Reason)
}

// ResourceError reports a map document that is missing or unreadable.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("map document %q unreadable: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
