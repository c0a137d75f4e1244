package classify

import (
	"sort"
	"strings"

	"motionsmith/internal/logging"
)

// Match represents one scored category from a classification pass.
type Match struct {
	// Category is the matched category identifier.
	Category string

	// RawScore is the summed weight of matched terms (keyword=1, booster=2).
	RawScore int

	// Confidence is RawScore normalized by the category's own term count.
	// It is a relative ranking signal, not a calibrated probability, and can
	// exceed 1.0 when matches are booster-heavy. Never display it as one.
	Confidence float64

	// MatchedTerms lists the literal terms found, in category declaration
	// order, with booster hits annotated "(high confidence)".
	MatchedTerms []string
}

// ClassifyAgainst scores text against an arbitrary category set and returns
// all categories with at least one hit, sorted by RawScore descending.
// Ties preserve category declaration order (stable sort). Empty input yields
// an empty result.
func ClassifyAgainst(text string, categories []Category) []Match {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lowered := strings.ToLower(text)

	matches := make([]Match, 0, len(categories))
	for _, cat := range categories {
		raw := 0
		var terms []string

		for _, kw := range cat.Keywords {
			if strings.Contains(lowered, kw) {
				raw++
				terms = append(terms, kw)
			}
		}
		for _, booster := range cat.Boosters {
			if strings.Contains(lowered, booster) {
				raw += 2
				terms = append(terms, booster+" (high confidence)")
			}
		}

		if raw == 0 {
			continue
		}

		total := len(cat.Keywords) + len(cat.Boosters)
		matches = append(matches, Match{
			Category:     cat.ID,
			RawScore:     raw,
			Confidence:   float64(raw) / float64(total),
			MatchedTerms: terms,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].RawScore > matches[j].RawScore
	})

	return matches
}

// ClassifyIntent scores text against the animation taxonomy.
func ClassifyIntent(text string) []Match {
	timer := logging.StartTimer(logging.CategoryClassify, "ClassifyIntent")
	defer timer.Stop()

	matches := ClassifyAgainst(text, AnimationCategories)

	logging.ClassifyDebug("Classified %q: %d categories matched", truncate(text, 80), len(matches))

	top := ""
	if len(matches) > 0 {
		top = matches[0].Category
		logging.ClassifyDebug("Top match: %s (score=%d, confidence=%.2f)",
			matches[0].Category, matches[0].RawScore, matches[0].Confidence)
	}
	logging.AuditRecord(logging.AuditEvent{
		EventType: logging.AuditClassified,
		Success:   true,
		Message:   top,
		Fields:    map[string]interface{}{"matched": len(matches)},
	})

	return matches
}

// truncate shortens s for log output.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
