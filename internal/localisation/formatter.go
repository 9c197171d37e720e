package localisation

import (
	"strings"

	"traitlin/internal/defs"
)

// Format serialises entries as localisation CSV records, one per entry in
// order, with the trailing engine column. The generation marker leads the
// file; it starts with '#', so Parse treats it as a comment.
func Format(entries []Entry) string {
	var b strings.Builder
	b.WriteString(defs.GenerationMarker)
	b.WriteString("\n")
	for _, e := range entries {
		b.WriteString(e.Key)
		b.WriteString(";")
		b.WriteString(e.Text)
		b.WriteString(";x\n")
	}
	return b.String()
}
