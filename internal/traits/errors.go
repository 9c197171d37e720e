package traits

import (
	"errors"
	"fmt"
)

// Sentinel errors for trait parsing.
var (
	// ErrAlreadyLinearised indicates the input starts with the generation
	// marker and must not be processed again.
	ErrAlreadyLinearised = errors.New("traits: file already carries the generation marker")

	// ErrNothingToLinearise indicates a section has one trait or fewer.
	ErrNothingToLinearise = errors.New("traits: a section has one trait or fewer, nothing to linearise")
)

// ParseError is a structural parse failure with position and an
// expected-vs-found description.
type ParseError struct {
	Line     int
	Col      int
	Expected string
	Found    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("traits: %d:%d: expected %s, found %s", e.Line, e.Col, e.Expected, e.Found)
}
