package render

import (
	"fmt"
	"strings"

	"motionsmith/internal/classify"
)

// Config carries the active generation settings echoed in the response.
type Config struct {
	Context    string
	Complexity string
}

// footer is the fixed capability/compatibility block appended to every
// generated response.
const footer = `---
Generated with GSAP 3.x APIs. Works in all evergreen browsers.
Output is a starting point: selectors and timing values are placeholders to adapt.
Honor prefers-reduced-motion before shipping any of this.`

// Format wraps classification and rendering output into the final response.
// Fixed section order: request echo, classification summary, configuration,
// rendered body, static footer. Never fails: an empty classification swaps
// the summary for the clarification guidance.
func Format(matches []classify.Match, rendered, echo string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Animation Request\n\n> %s\n\n", strings.TrimSpace(echo))

	if len(matches) == 0 {
		b.WriteString(Clarification())
		b.WriteString("\n\n")
		b.WriteString(footer)
		return b.String()
	}

	top := matches[0]
	b.WriteString("## Analysis\n\n")
	fmt.Fprintf(&b, "Detected pattern: **%s** (confidence %.2f)\n", top.Category, top.Confidence)
	fmt.Fprintf(&b, "Matched terms: %s\n", strings.Join(top.MatchedTerms, ", "))

	if cat, ok := classify.CategoryByID(top.Category); ok {
		b.WriteString("\nRecommended techniques:\n")
		for _, t := range cat.Techniques {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\nBest practices:\n")
		for _, p := range cat.BestPractices {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	if len(matches) > 1 {
		var others []string
		for _, m := range matches[1:] {
			others = append(others, fmt.Sprintf("%s (score %d)", m.Category, m.RawScore))
		}
		fmt.Fprintf(&b, "\nAlso considered: %s\n", strings.Join(others, ", "))
	}

	fmt.Fprintf(&b, "\n## Configuration\n\nContext: %s\nComplexity: %s\n", cfg.Context, cfg.Complexity)

	fmt.Fprintf(&b, "\n## Generated Code\n\n%s\n\n", rendered)
	b.WriteString(footer)

	return b.String()
}
