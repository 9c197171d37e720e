package linearise

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"traitlin/internal/defs"
	"traitlin/internal/localisation"
	"traitlin/internal/traits"
)

func testDoc() *traits.Document {
	return &traits.Document{
		Personalities: []traits.Trait{
			{Name: "p1", Attributes: []traits.Attribute{{Name: "attack", Value: "1"}, {Name: "morale", Value: "0.10"}}},
			{Name: "p2", Attributes: []traits.Attribute{{Name: "defence", Value: "2"}}},
		},
		Backgrounds: []traits.Trait{
			{Name: "b1", Attributes: []traits.Attribute{{Name: "morale", Value: "0.50"}}},
			{Name: "b2"},
		},
	}
}

func TestTraitsCrossProduct(t *testing.T) {
	t.Parallel()

	doc := testDoc()
	out := Traits(doc, NewDefaultCombiner(" "))

	require.Len(t, out, 4)

	var names []string
	seen := map[string]bool{}
	for _, c := range out {
		names = append(names, c.Name)
		pair := c.Personality.Name + "/" + c.Background.Name
		require.False(t, seen[pair], "duplicate pair %s", pair)
		seen[pair] = true
	}
	// Personality-major, background-minor, both in document order.
	require.Equal(t, []string{"p1_b1", "p1_b2", "p2_b1", "p2_b2"}, names)
}

func TestTraitsAttributeCombination(t *testing.T) {
	t.Parallel()

	out := Traits(testDoc(), NewDefaultCombiner(" "))

	// p1 x b1: background overrides morale in place, order otherwise kept.
	require.Equal(t, []traits.Attribute{
		{Name: "attack", Value: "1"},
		{Name: "morale", Value: "0.50"},
	}, out[0].Attributes)

	// p1 x b2: background has nothing to add.
	require.Equal(t, []traits.Attribute{
		{Name: "attack", Value: "1"},
		{Name: "morale", Value: "0.10"},
	}, out[1].Attributes)
}

func TestLocalisationEntries(t *testing.T) {
	t.Parallel()

	tbl := localisation.Table{"p1": "Brave", "p2": "Cautious", "b1": "Aristocrat", "b2": "Commoner"}
	res := Localisation(tbl, testDoc(), NewDefaultCombiner(" "))

	require.Empty(t, res.Orphans)
	require.Equal(t, []localisation.Entry{
		{Key: "p1_b1", Text: "Brave Aristocrat"},
		{Key: "p1_b2", Text: "Brave Commoner"},
		{Key: "p2_b1", Text: "Cautious Aristocrat"},
		{Key: "p2_b2", Text: "Cautious Commoner"},
	}, res.Entries)
}

func TestLocalisationOrphans(t *testing.T) {
	t.Parallel()

	// b1 and p2 are untranslated; each appears in several pairs but must
	// be reported exactly once, in first-encounter order.
	tbl := localisation.Table{"p1": "Brave", "b2": "Commoner"}
	res := Localisation(tbl, testDoc(), NewDefaultCombiner(" "))

	require.Equal(t, []string{"b1", "p2"}, res.Orphans)

	// Entries are still produced, falling back to the raw key.
	require.Len(t, res.Entries, 4)
	require.Equal(t, localisation.Entry{Key: "p1_b1", Text: "Brave b1"}, res.Entries[0])
	require.Equal(t, localisation.Entry{Key: "p2_b2", Text: "p2 Commoner"}, res.Entries[3])
}

func TestLocalisationSeparator(t *testing.T) {
	t.Parallel()

	tbl := localisation.Table{"p1": "A", "p2": "B", "b1": "C", "b2": "D"}
	res := Localisation(tbl, testDoc(), NewDefaultCombiner(", "))
	require.Equal(t, "A, C", res.Entries[0].Text)
}

func TestLineariseFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	composites := Traits(testDoc(), NewDefaultCombiner(" "))
	flat := make([]traits.Trait, len(composites))
	for i, c := range composites {
		flat[i] = c.Trait()
	}

	out := traits.Format(flat)
	doc, err := traits.Parse(strings.TrimPrefix(out, defs.GenerationMarker))
	require.NoError(t, err)

	require.Len(t, doc.Personalities, len(composites))
	for i, c := range composites {
		require.Equal(t, c.Name, doc.Personalities[i].Name)
		require.Equal(t, c.Attributes, doc.Personalities[i].Attributes)
	}
	require.Equal(t, []string{defs.NoBackground}, doc.BackgroundKeys())
}
