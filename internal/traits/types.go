// Package traits parses and serialises the Clausewitz-style trait
// definition file: a personality section and a background section, each a
// sequence of named attribute blocks. Attribute values are opaque to the
// tool and round-trip unchanged.
package traits

// Attribute is one name/value pair inside a trait block. Value holds the
// raw source text of the right-hand side, either a scalar token or a
// balanced brace block, so attributes the tool does not understand still
// round-trip.
type Attribute struct {
	Name  string
	Value string
}

// Trait is a single named block from the personality or background
// section. Its name doubles as its localisation key.
type Trait struct {
	Name       string
	Attributes []Attribute
}

// Document is a parsed traits file with both sections in source order.
// Section order drives the cross-product iteration order, so it is
// preserved exactly.
type Document struct {
	Personalities []Trait
	Backgrounds   []Trait
}

// PersonalityKeys returns the localisation keys of all personalities in
// document order.
func (d *Document) PersonalityKeys() []string {
	return traitKeys(d.Personalities)
}

// BackgroundKeys returns the localisation keys of all backgrounds in
// document order.
func (d *Document) BackgroundKeys() []string {
	return traitKeys(d.Backgrounds)
}

func traitKeys(ts []Trait) []string {
	keys := make([]string, len(ts))
	for i, t := range ts {
		keys[i] = t.Name
	}
	return keys
}

// CheckLinearisable verifies the document actually has a cross product to
// compute. A section with one trait or fewer means the file is degenerate
// or has already been linearised (linearised output carries exactly one
// background).
func (d *Document) CheckLinearisable() error {
	if len(d.Personalities) <= 1 || len(d.Backgrounds) <= 1 {
		return ErrNothingToLinearise
	}
	return nil
}
