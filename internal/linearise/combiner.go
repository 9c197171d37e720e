// Package linearise computes the cross product of personalities and
// backgrounds into composite traits and composite localisation entries.
package linearise

import "traitlin/internal/traits"

// Combiner decides how one personality and one background merge into a
// single composite trait. It is injected so mods with their own
// combination semantics can swap the rule without touching the engine.
type Combiner interface {
	// Name derives the composite trait identifier for a pair.
	Name(p, b traits.Trait) string

	// Attributes derives the composite attribute set for a pair.
	Attributes(p, b traits.Trait) []traits.Attribute

	// Text derives the composite display string from the pair's own
	// localised strings.
	Text(personalityText, backgroundText string) string
}

// DefaultCombiner joins names with an underscore, unions attributes with
// the background winning name collisions, and joins localised texts with
// Separator.
type DefaultCombiner struct {
	Separator string
}

// NewDefaultCombiner creates a DefaultCombiner. An empty separator means
// a single space.
func NewDefaultCombiner(separator string) *DefaultCombiner {
	if separator == "" {
		separator = " "
	}
	return &DefaultCombiner{Separator: separator}
}

// Name implements Combiner.
func (c *DefaultCombiner) Name(p, b traits.Trait) string {
	return p.Name + "_" + b.Name
}

// Attributes implements Combiner. The personality's attributes come
// first in their original order; the background's follow, overriding a
// personality attribute of the same name in place.
func (c *DefaultCombiner) Attributes(p, b traits.Trait) []traits.Attribute {
	merged := make([]traits.Attribute, len(p.Attributes))
	copy(merged, p.Attributes)
	index := make(map[string]int, len(merged))
	for i, a := range merged {
		index[a.Name] = i
	}
	for _, a := range b.Attributes {
		if i, ok := index[a.Name]; ok {
			merged[i] = a
			continue
		}
		index[a.Name] = len(merged)
		merged = append(merged, a)
	}
	return merged
}

// Text implements Combiner.
func (c *DefaultCombiner) Text(personalityText, backgroundText string) string {
	return personalityText + c.Separator + backgroundText
}
