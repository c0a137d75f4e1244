package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionsmith/internal/classify"
)

func TestFormat_SectionOrder(t *testing.T) {
	matches := classify.ClassifyIntent("fade in cards one by one when scrolling into view")
	require.NotEmpty(t, matches)

	flags := classify.ExtractFlags("fade in cards one by one when scrolling into view", classify.DefaultFlagDefs())
	rendered := Render(matches[0].Category, "fade in cards one by one when scrolling into view", flags, "react", ComplexityIntermediate)

	out := Format(matches, rendered, "fade in cards one by one when scrolling into view", Config{
		Context:    "react",
		Complexity: "intermediate",
	})

	// Fixed section order: echo, analysis, configuration, code, footer.
	idxEcho := strings.Index(out, "## Animation Request")
	idxAnalysis := strings.Index(out, "## Analysis")
	idxConfig := strings.Index(out, "## Configuration")
	idxCode := strings.Index(out, "## Generated Code")
	idxFooter := strings.Index(out, "Generated with GSAP 3.x")

	require.NotEqual(t, -1, idxEcho)
	require.NotEqual(t, -1, idxAnalysis)
	require.NotEqual(t, -1, idxConfig)
	require.NotEqual(t, -1, idxCode)
	require.NotEqual(t, -1, idxFooter)

	assert.Less(t, idxEcho, idxAnalysis)
	assert.Less(t, idxAnalysis, idxConfig)
	assert.Less(t, idxConfig, idxCode)
	assert.Less(t, idxCode, idxFooter)
}

func TestFormat_TopMatchSummary(t *testing.T) {
	matches := classify.ClassifyIntent("draw the svg logo paths")
	require.NotEmpty(t, matches)

	out := Format(matches, "body", "draw the svg logo paths", Config{Context: "vanilla", Complexity: "beginner"})

	assert.Contains(t, out, matches[0].Category)
	assert.Contains(t, out, "Matched terms:")
	assert.Contains(t, out, "Recommended techniques:")
	assert.Contains(t, out, "Best practices:")
	assert.Contains(t, out, "Context: vanilla")
	assert.Contains(t, out, "Complexity: beginner")
}

func TestFormat_EmptyClassificationUsesGuidance(t *testing.T) {
	out := Format(nil, "", "please do the thing", Config{Context: "react", Complexity: "intermediate"})

	assert.Contains(t, out, "## Animation Request")
	assert.Contains(t, out, "Tell me more")
	assert.NotContains(t, out, "## Analysis")
	// Footer survives the fallback branch.
	assert.Contains(t, out, "Generated with GSAP 3.x")
}

func TestFormat_SecondaryMatchesListed(t *testing.T) {
	matches := classify.ClassifyIntent("fade in the text when scrolling")
	require.Greater(t, len(matches), 1)

	out := Format(matches, "body", "fade in the text when scrolling", Config{Context: "react", Complexity: "advanced"})
	assert.Contains(t, out, "Also considered:")
}

func TestFormat_ConfidenceRenderedAsScoreNotPercent(t *testing.T) {
	matches := []classify.Match{{
		Category:     "scroll_based",
		RawScore:     9,
		Confidence:   1.25,
		MatchedTerms: []string{"scroll"},
	}}

	out := Format(matches, "body", "echo", Config{Context: "react", Complexity: "intermediate"})
	// Confidence above 1.0 is shown verbatim as a ranking signal.
	assert.Contains(t, out, "1.25")
	assert.NotContains(t, out, "125%")
}
