package render

import (
	"strings"

	"motionsmith/internal/classify"
	"motionsmith/internal/logging"
)

// Complexity labels accepted by Render. Unknown labels behave like
// ComplexityIntermediate.
const (
	ComplexityBeginner     = "beginner"
	ComplexityIntermediate = "intermediate"
	ComplexityAdvanced     = "advanced"
)

// requestHeader opens the rendered body, echoing the request and the
// integration setup note. Advanced output omits it.
const requestHeader = "// Request: {{request}}\n// Target: {{context}} — {{integration}}"

// Render assembles the body for a selected category. Flag-gated fragments
// are included when their flag is true; placeholders are interpolated from
// the original request and the target context. Complexity scales the
// commentary: beginner appends the skeleton's walkthrough, advanced drops
// the request header. Deterministic: identical inputs always produce
// identical output. An unknown or empty category yields the clarification
// response instead of an error; clarification is a terminal branch.
func Render(categoryID, originalText string, flags classify.Flags, context, complexity string) string {
	timer := logging.StartTimer(logging.CategoryRender, "Render")
	defer timer.Stop()

	skeleton, ok := SkeletonFor(categoryID)
	if !ok {
		logging.RenderDebug("No skeleton for category %q, rendering clarification", categoryID)
		return Clarification()
	}

	vars := Vars{
		"request":     strings.TrimSpace(originalText),
		"context":     context,
		"integration": IntegrationNote(context),
	}

	parts := make([]string, 0, len(skeleton.Fragments)+3)
	parts = append(parts, "### "+skeleton.Title)

	if complexity != ComplexityAdvanced {
		parts = append(parts, Process(requestHeader, vars))
	}

	included := 0
	for _, frag := range skeleton.Fragments {
		if frag.Flag != "" && !flags[frag.Flag] {
			continue
		}
		parts = append(parts, Process(frag.Content, vars))
		included++
	}

	if complexity == ComplexityBeginner && skeleton.Walkthrough != "" {
		parts = append(parts, skeleton.Walkthrough)
	}

	logging.RenderDebug("Rendered %s: %d/%d fragments", categoryID, included, len(skeleton.Fragments))
	logging.AuditRecord(logging.AuditEvent{
		EventType: logging.AuditRendered,
		Success:   true,
		Message:   categoryID,
		Fields: map[string]interface{}{
			"fragments":  included,
			"context":    context,
			"complexity": complexity,
		},
	})

	return strings.Join(parts, "\n\n")
}
