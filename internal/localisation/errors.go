package localisation

import "fmt"

// ParseError is a malformed record in a localisation file. Unlike trait
// parse failures it is recoverable: callers warn and treat the file as
// empty.
type ParseError struct {
	Line  int
	Found string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("localisation: line %d: expected \"key;text\" record, found %q", e.Line, e.Found)
}
