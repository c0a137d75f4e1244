package assistant

import (
	"fmt"
	"strings"

	"motionsmith/internal/classify"
	"motionsmith/internal/knowledge"
	"motionsmith/internal/optimize"
	"motionsmith/internal/patterns"
	"motionsmith/internal/render"
)

// Defaults for enumerated arguments.
const (
	DefaultContext       = "react"
	DefaultComplexity    = "intermediate"
	DefaultDetailLevel   = "advanced"
	DefaultTarget        = "performance"
	DefaultCategoryLabel = "portfolio"
)

// Contexts are the accepted integration labels.
var Contexts = []string{"react", "vue", "vanilla", "next", "svelte"}

// Complexities are the accepted complexity labels.
var Complexities = []string{"beginner", "intermediate", "advanced"}

func normalizeEnum(value, fallback string, valid []string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range valid {
		if v == candidate {
			return v
		}
	}
	return fallback
}

// opGenerate runs the full pipeline: classify, extract flags, render the top
// category (or the clarification fallback), and format the response.
func (d *Dispatcher) opGenerate(args map[string]string) (string, error) {
	request := args["request"]
	context := normalizeEnum(args["context"], DefaultContext, Contexts)
	complexity := normalizeEnum(args["complexity"], DefaultComplexity, Complexities)

	matches := classify.ClassifyIntent(request)
	flags := classify.ExtractFlags(request, classify.DefaultFlagDefs())

	topCategory := ""
	if len(matches) > 0 {
		topCategory = matches[0].Category
	}

	rendered := render.Render(topCategory, request, flags, context, complexity)

	cfg := render.Config{Context: context, Complexity: complexity}
	return render.Format(matches, rendered, request, cfg), nil
}

// opReference looks up one knowledge-table entry. A miss is not an error: it
// produces a not-found response with the available names and suggestions.
func (d *Dispatcher) opReference(args map[string]string) (string, error) {
	name := strings.TrimSpace(args["element_name"])

	level := knowledge.DetailAdvanced
	if strings.EqualFold(strings.TrimSpace(args["detail_level"]), string(knowledge.DetailBasic)) {
		level = knowledge.DetailBasic
	}

	entry, ok := d.table.Lookup(name)
	if ok {
		return entry.Render(level), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "No reference entry named %q.\n\n", name)

	if suggestions := d.table.Suggestions(name); len(suggestions) > 0 {
		fmt.Fprintf(&b, "Did you mean: %s\n\n", strings.Join(suggestions, ", "))
	}

	fmt.Fprintf(&b, "Available entries: %s\n", strings.Join(d.table.Names(), ", "))
	return b.String(), nil
}

// opDebug classifies the issue against the diagnostic taxonomy, optionally
// scans supplied code for anti-patterns, and appends the fixed checklist.
func (d *Dispatcher) opDebug(args map[string]string) (string, error) {
	issue := args["issue_description"]
	code := args["code"]
	expected := args["expected"]

	matches := classify.ClassifyAgainst(issue, classify.DiagnosticCategories)

	var b strings.Builder
	fmt.Fprintf(&b, "## Debugging: %s\n\n", strings.TrimSpace(issue))

	if expected != "" {
		fmt.Fprintf(&b, "Expected behavior: %s\n\n", strings.TrimSpace(expected))
	}

	if len(matches) == 0 {
		b.WriteString("The description didn't match a known failure mode. Work through the checklist below.\n")
	} else {
		top := matches[0]
		if cat, ok := diagnosticByID(top.Category); ok {
			fmt.Fprintf(&b, "Likely issue: **%s** (matched: %s)\n\nProbable causes:\n",
				top.Category, strings.Join(top.MatchedTerms, ", "))
			for _, cause := range cat.Techniques {
				fmt.Fprintf(&b, "- %s\n", cause)
			}
			b.WriteString("\nSuggested fixes:\n")
			for _, fix := range cat.BestPractices {
				fmt.Fprintf(&b, "- %s\n", fix)
			}
		}
	}

	if code != "" {
		found := classify.ScanAntiPatterns(code)
		if len(found) > 0 {
			b.WriteString("\n## Code scan\n\n")
			for _, ap := range found {
				fmt.Fprintf(&b, "- found `%s`: %s — %s\n", ap.Needle, ap.Problem, ap.Suggestion)
			}
		} else {
			b.WriteString("\n## Code scan\n\nNo known anti-patterns found in the supplied code.\n")
		}
	}

	b.WriteString("\n## Checklist\n\n")
	for _, item := range classify.DebugChecklist {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}

	return b.String(), nil
}

func diagnosticByID(id string) (classify.Category, bool) {
	for _, c := range classify.DiagnosticCategories {
		if c.ID == id {
			return c, true
		}
	}
	return classify.Category{}, false
}

// opOptimize applies the documented substring rewrites and reports them.
func (d *Dispatcher) opOptimize(args map[string]string) (string, error) {
	target := normalizeEnum(args["target"], DefaultTarget, optimize.Targets())
	report := optimize.Rewrite(args["source_code"], target)
	return optimize.FormatReport(report), nil
}

// opPattern serves one named static template, or enumerates the valid names
// for an unknown pattern_type (a LookupMiss, not an error).
func (d *Dispatcher) opPattern(args map[string]string) (string, error) {
	patternType := strings.ToLower(strings.TrimSpace(args["pattern_type"]))
	label := args["category_label"]
	if !patterns.ValidCategoryLabel(label) {
		label = DefaultCategoryLabel
	}

	text, ok := patterns.Build(patternType, label)
	if !ok {
		return fmt.Sprintf("Unknown pattern %q. Valid patterns: %s\n",
			patternType, strings.Join(patterns.Names(), ", ")), nil
	}
	return text, nil
}
