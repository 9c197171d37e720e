package traits

import (
	"errors"
	"testing"

	"traitlin/internal/defs"
)

const sampleTraits = `
# leader traits
personality = {
	brave = {
		attack = 1
		morale = 0.10
	}
	cautious = {
		defence = 1
		modifiers = { fire = 2 shock = 1 }
	}
}

background = {
	aristocrat = {
		prestige = 0.50
	}
	commoner = {
		icon = "gfx/commoner.tga"
	}
}
`

func TestParseSample(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleTraits)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := doc.PersonalityKeys(); len(got) != 2 || got[0] != "brave" || got[1] != "cautious" {
		t.Errorf("PersonalityKeys() = %v, want [brave cautious]", got)
	}
	if got := doc.BackgroundKeys(); len(got) != 2 || got[0] != "aristocrat" || got[1] != "commoner" {
		t.Errorf("BackgroundKeys() = %v, want [aristocrat commoner]", got)
	}

	brave := doc.Personalities[0]
	if len(brave.Attributes) != 2 {
		t.Fatalf("brave: got %d attributes, want 2", len(brave.Attributes))
	}
	if brave.Attributes[0] != (Attribute{Name: "attack", Value: "1"}) {
		t.Errorf("brave.Attributes[0] = %+v", brave.Attributes[0])
	}
	if brave.Attributes[1] != (Attribute{Name: "morale", Value: "0.10"}) {
		t.Errorf("brave.Attributes[1] = %+v", brave.Attributes[1])
	}
}

func TestParsePreservesOpaqueValues(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleTraits)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	cautious := doc.Personalities[1]
	if got := cautious.Attributes[1].Value; got != "{ fire = 2 shock = 1 }" {
		t.Errorf("nested block value = %q, want raw source text", got)
	}
	commoner := doc.Backgrounds[1]
	if got := commoner.Attributes[0].Value; got != `"gfx/commoner.tga"` {
		t.Errorf("quoted value = %q, want quotes preserved", got)
	}
}

func TestParseBlockValueIgnoresQuotedBraces(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`
personality = {
	a = {
		modifiers = { icon = "gfx/a}.tga" }
		sprite = { path = "gfx/b#}.tga" }
	}
	b = {}
}
background = { c = {} d = {} }
`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	attrs := doc.Personalities[0].Attributes
	if got := attrs[0].Value; got != `{ icon = "gfx/a}.tga" }` {
		t.Errorf("block value = %q, want braces inside quotes ignored", got)
	}
	if got := attrs[1].Value; got != `{ path = "gfx/b#}.tga" }` {
		t.Errorf("block value = %q, want '#' inside quotes ignored", got)
	}
}

func TestParseSectionOrderIndependent(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`
background = { a = {} b = {} }
personality = { c = {} d = {} }
`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := doc.PersonalityKeys(); got[0] != "c" {
		t.Errorf("PersonalityKeys() = %v", got)
	}
	if got := doc.BackgroundKeys(); got[0] != "a" {
		t.Errorf("BackgroundKeys() = %v", got)
	}
}

func TestParseRejectsGenerationMarker(t *testing.T) {
	t.Parallel()

	text := defs.GenerationMarker + "\npersonality = { a = {} b = {} }\nbackground = { c = {} d = {} }\n"
	_, err := Parse(text)
	if !errors.Is(err, ErrAlreadyLinearised) {
		t.Fatalf("Parse() = %v, want ErrAlreadyLinearised", err)
	}

	// Any content after the marker is irrelevant.
	if _, err := Parse(defs.GenerationMarker); !errors.Is(err, ErrAlreadyLinearised) {
		t.Fatalf("Parse(marker only) = %v, want ErrAlreadyLinearised", err)
	}
}

func TestCheckLinearisable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"two by two", "personality = { a = {} b = {} }\nbackground = { c = {} d = {} }", false},
		{"one personality", "personality = { a = {} }\nbackground = { c = {} d = {} }", true},
		{"one background", "personality = { a = {} b = {} }\nbackground = { c = {} }", true},
		{"empty sections", "personality = { }\nbackground = { }", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			err = doc.CheckLinearisable()
			if tt.wantErr && !errors.Is(err, ErrNothingToLinearise) {
				t.Errorf("CheckLinearisable() = %v, want ErrNothingToLinearise", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckLinearisable() = %v, want nil", err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantLine int
		wantExp  string
	}{
		{"unknown section", "traits = { }", 1, "section name \"personality\" or \"background\""},
		{"missing equals", "personality = {\n\tbrave\n}", 3, "\"=\""},
		{"unclosed section", "personality = {\n\ta = {}\n", 3, "trait name"},
		{"duplicate section", "personality = { a = {} }\npersonality = { b = {} }", 2, "a single personality section"},
		{"duplicate trait", "personality = {\n\ta = {}\n\ta = {}\n}", 3, "a unique trait name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse() = %v, want *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (error: %v)", pe.Line, tt.wantLine, pe)
			}
			if pe.Expected != tt.wantExp {
				t.Errorf("Expected = %q, want %q", pe.Expected, tt.wantExp)
			}
			if pe.Found == "" {
				t.Error("Found should describe the offending token")
			}
		})
	}
}

func TestParseMissingSection(t *testing.T) {
	t.Parallel()

	_, err := Parse("personality = { a = {} b = {} }")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse() = %v, want *ParseError", err)
	}
	if pe.Expected != "a \"background\" section" {
		t.Errorf("Expected = %q", pe.Expected)
	}
	if pe.Found != "end of file" {
		t.Errorf("Found = %q, want end of file", pe.Found)
	}
}
