package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntent_EmptyInput(t *testing.T) {
	assert.Empty(t, ClassifyIntent(""))
	assert.Empty(t, ClassifyIntent("   \t\n"))
}

func TestClassifyIntent_NoMatches(t *testing.T) {
	matches := ClassifyIntent("bake a chocolate cake for tomorrow")
	assert.Empty(t, matches)
}

func TestClassifyIntent_SortedByRawScoreDescending(t *testing.T) {
	matches := ClassifyIntent("fade in the text when scrolling into view with a parallax hover effect")
	require.NotEmpty(t, matches)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].RawScore, matches[i].RawScore,
			"results must be sorted by raw score descending")
	}
}

func TestClassifyIntent_EveryResultScoresAtLeastOne(t *testing.T) {
	matches := ClassifyIntent("fade in the hero, then draw the svg logo on hover")
	require.NotEmpty(t, matches)

	for _, m := range matches {
		assert.GreaterOrEqual(t, m.RawScore, 1, "category %s", m.Category)
		assert.NotEmpty(t, m.MatchedTerms, "category %s", m.Category)
		assert.Greater(t, m.Confidence, 0.0, "category %s", m.Category)
	}
}

func TestClassifyIntent_TiesPreserveDeclarationOrder(t *testing.T) {
	// "fade" hits entrance_animations only; "hover" hits hover_interactions
	// only. Both score 1, so declaration order must decide.
	matches := ClassifyIntent("fade plus hover")
	require.Len(t, matches, 2)

	assert.Equal(t, "entrance_animations", matches[0].Category)
	assert.Equal(t, "hover_interactions", matches[1].Category)
	assert.Equal(t, matches[0].RawScore, matches[1].RawScore)
}

func TestClassifyIntent_BoosterWeightAndAnnotation(t *testing.T) {
	matches := ClassifyIntent("make it fade in")
	require.NotEmpty(t, matches)

	top := matches[0]
	require.Equal(t, "entrance_animations", top.Category)

	// "fade" keyword (1) + "fade in" booster (2).
	assert.Equal(t, 3, top.RawScore)

	foundBooster := false
	for _, term := range top.MatchedTerms {
		if strings.HasSuffix(term, "(high confidence)") {
			foundBooster = true
		}
	}
	assert.True(t, foundBooster, "booster hits must be annotated: %v", top.MatchedTerms)
}

func TestClassifyIntent_OverlappingSubstringsCountIndependently(t *testing.T) {
	// "scrolling into view" contains the keywords "scroll" and "scrolling"
	// and the booster "scrolling into view": all three count.
	matches := ClassifyIntent("scrolling into view")
	require.NotEmpty(t, matches)

	top := matches[0]
	require.Equal(t, "scroll_based", top.Category)
	assert.Equal(t, 4, top.RawScore) // 1 + 1 + booster 2
}

func TestClassifyIntent_ScrollSceneOutranksEntrance(t *testing.T) {
	matches := ClassifyIntent("fade in cards one by one when scrolling into view")
	require.GreaterOrEqual(t, len(matches), 2)

	byID := make(map[string]int) // category -> rank index
	for i, m := range matches {
		byID[m.Category] = i
	}

	scrollRank, ok := byID["scroll_based"]
	require.True(t, ok, "scroll_based must match")
	entranceRank, ok := byID["entrance_animations"]
	require.True(t, ok, "entrance_animations must match")

	assert.Less(t, scrollRank, entranceRank,
		"booster-weighted scroll_based must rank above entrance_animations")
}

func TestClassifyIntent_TypewriterScenario(t *testing.T) {
	matches := ClassifyIntent("make text appear letter by letter like a typewriter")
	require.NotEmpty(t, matches)

	assert.Equal(t, "text_animations", matches[0].Category)
	assert.Greater(t, matches[0].Confidence, 0.0)

	flags := ExtractFlags("make text appear letter by letter like a typewriter", DefaultFlagDefs())
	assert.True(t, flags["typewriter"])
}

func TestClassifyIntent_ConfidenceNormalization(t *testing.T) {
	cats := []Category{
		{ID: "tiny", Keywords: []string{"alpha"}, Boosters: []string{"alpha beta"}},
	}

	t.Run("partial match", func(t *testing.T) {
		matches := ClassifyAgainst("alpha only", cats)
		require.Len(t, matches, 1)
		assert.Equal(t, 1, matches[0].RawScore)
		assert.InDelta(t, 0.5, matches[0].Confidence, 1e-9)
	})

	t.Run("booster-heavy match can exceed 1.0", func(t *testing.T) {
		matches := ClassifyAgainst("alpha beta", cats)
		require.Len(t, matches, 1)
		assert.Equal(t, 3, matches[0].RawScore)
		assert.InDelta(t, 1.5, matches[0].Confidence, 1e-9)
	})
}

func TestClassifyIntent_CaseInsensitive(t *testing.T) {
	lower := ClassifyIntent("fade in the hero")
	upper := ClassifyIntent("FADE IN THE HERO")
	require.Equal(t, len(lower), len(upper))
	for i := range lower {
		assert.Equal(t, lower[i].Category, upper[i].Category)
		assert.Equal(t, lower[i].RawScore, upper[i].RawScore)
	}
}

func TestCategoryByID(t *testing.T) {
	cat, ok := CategoryByID("scroll_based")
	require.True(t, ok)
	assert.Equal(t, "scroll_based", cat.ID)
	assert.NotEmpty(t, cat.Techniques)
	assert.NotEmpty(t, cat.BestPractices)

	_, ok = CategoryByID("nope")
	assert.False(t, ok)
}

func TestCategoryIDs_DeclarationOrder(t *testing.T) {
	ids := CategoryIDs()
	require.Equal(t, len(AnimationCategories), len(ids))
	assert.Equal(t, "scroll_based", ids[0])
}
