package linearise

import (
	"traitlin/internal/localisation"
	"traitlin/internal/traits"
)

// Composite is one cell of the personalities x backgrounds cross product.
type Composite struct {
	Personality traits.Trait
	Background  traits.Trait
	Name        string
	Attributes  []traits.Attribute
}

// Trait returns the composite as a plain trait record for formatting.
func (c Composite) Trait() traits.Trait {
	return traits.Trait{Name: c.Name, Attributes: c.Attributes}
}

// Traits computes the full cross product, personalities outer and
// backgrounds inner, both in document order. The output order mirrors
// that nested iteration exactly: the game resolves identically named
// entries by file order, so this ordering is part of the contract.
func Traits(doc *traits.Document, c Combiner) []Composite {
	out := make([]Composite, 0, len(doc.Personalities)*len(doc.Backgrounds))
	for _, p := range doc.Personalities {
		for _, b := range doc.Backgrounds {
			out = append(out, Composite{
				Personality: p,
				Background:  b,
				Name:        c.Name(p, b),
				Attributes:  c.Attributes(p, b),
			})
		}
	}
	return out
}

// Result is the outcome of localisation linearisation.
type Result struct {
	// Entries holds one composite record per cross-product cell, in
	// cross-product order.
	Entries []localisation.Entry

	// Orphans lists keys referenced by the document but missing from the
	// table, once each, in first-encounter order. Orphans are a warning,
	// never fatal.
	Orphans []string
}

// Localisation builds composite localisation entries over the same
// nested iteration order as Traits. A trait whose key is missing from
// the table falls back to the raw key as its text, the same behaviour
// the engine shows for untranslated keys, and is recorded as an orphan.
func Localisation(table localisation.Table, doc *traits.Document, c Combiner) Result {
	res := Result{Entries: make([]localisation.Entry, 0, len(doc.Personalities)*len(doc.Backgrounds))}
	seen := make(map[string]bool)

	lookup := func(key string) string {
		if text, ok := table[key]; ok {
			return text
		}
		if !seen[key] {
			seen[key] = true
			res.Orphans = append(res.Orphans, key)
		}
		return key
	}

	for _, p := range doc.Personalities {
		pText := lookup(p.Name)
		for _, b := range doc.Backgrounds {
			bText := lookup(b.Name)
			res.Entries = append(res.Entries, localisation.Entry{
				Key:  c.Name(p, b),
				Text: c.Text(pText, bText),
			})
		}
	}
	return res
}
