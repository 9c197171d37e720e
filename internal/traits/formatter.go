package traits

import (
	"strings"

	"traitlin/internal/defs"
)

// Format serialises trait blocks back into the traits-file grammar. The
// output starts with the generation marker, carries every given trait in
// order inside the personality section, and collapses the background
// section to the single no_background placeholder. The result parses
// under the same grammar Parse accepts, marker aside.
func Format(personalities []Trait) string {
	var b strings.Builder
	b.WriteString(defs.GenerationMarker)
	b.WriteString("\n\n")

	b.WriteString("personality = {\n")
	for _, t := range personalities {
		writeTrait(&b, t)
	}
	b.WriteString("}\n\n")

	b.WriteString("background = {\n")
	writeTrait(&b, Trait{Name: defs.NoBackground})
	b.WriteString("}\n")
	return b.String()
}

// writeTrait writes one "name = { attribute... }" block at one level of
// indentation.
func writeTrait(b *strings.Builder, t Trait) {
	b.WriteString("\t")
	b.WriteString(t.Name)
	b.WriteString(" = {\n")
	for _, a := range t.Attributes {
		b.WriteString("\t\t")
		b.WriteString(a.Name)
		b.WriteString(" = ")
		b.WriteString(a.Value)
		b.WriteString("\n")
	}
	b.WriteString("\t}\n")
}
