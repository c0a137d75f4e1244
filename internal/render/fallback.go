package render

import (
	"fmt"
	"strings"

	"motionsmith/internal/classify"
)

// exampleRequests gives one phrasing per category for the clarification
// response. Keys must stay in sync with the animation taxonomy.
var exampleRequests = map[string]string{
	"scroll_based":        "fade in each section when it scrolls into view",
	"entrance_animations": "slide the hero content in when the page loads",
	"text_animations":     "reveal the headline letter by letter",
	"hover_interactions":  "lift and glow the card on hover",
	"svg_animations":      "draw the logo paths like a pen stroke",
	"timeline_sequences":  "choreograph the intro steps one after another",
	"physics_motion":      "drop the badges in with a bouncy feel",
	"page_transitions":    "crossfade between pages on route change",
}

// Clarification renders the fixed needs-more-detail response used when no
// category matched. It enumerates the supported categories with example
// phrasings.
func Clarification() string {
	var b strings.Builder

	b.WriteString("### Tell me more about the animation\n\n")
	b.WriteString("I couldn't match your request to a known animation pattern. ")
	b.WriteString("Describe what should move, when it should happen, and how it should feel.\n\n")
	b.WriteString("Patterns I can generate:\n")

	for _, cat := range classify.AnimationCategories {
		example := exampleRequests[cat.ID]
		fmt.Fprintf(&b, "- **%s** — e.g. %q\n", cat.ID, example)
	}

	return b.String()
}
