// Package optimize applies deterministic, best-effort textual rewrites to
// GSAP snippets. The rewrites are plain substring substitutions with no
// syntax or AST awareness; they can touch strings and comments. Each applied
// rule is reported with its rationale so the caller can review the result.
package optimize

import (
	"fmt"
	"strings"

	"motionsmith/internal/logging"
)

// Rule is one documented substring substitution.
type Rule struct {
	Find      string
	Replace   string
	Rationale string
}

// rules is the fixed rewrite set, applied in order.
var rules = []Rule{
	{Find: "left:", Replace: "x:", Rationale: "left triggers layout every frame; x is a compositor-only transform"},
	{Find: "top:", Replace: "y:", Rationale: "top triggers layout every frame; y is a compositor-only transform"},
	{Find: "marginLeft:", Replace: "x:", Rationale: "margins trigger layout; translate instead"},
	{Find: "marginTop:", Replace: "y:", Rationale: "margins trigger layout; translate instead"},
	{Find: "width:", Replace: "scaleX:", Rationale: "width resizes layout; scaleX is transform-only (visual size, not box size)"},
	{Find: "height:", Replace: "scaleY:", Rationale: "height resizes layout; scaleY is transform-only (visual size, not box size)"},
	{Find: "setInterval(", Replace: "gsap.ticker.add(", Rationale: "setInterval is not frame-synced; the GSAP ticker is"},
	{Find: "ease: \"linear\"", Replace: "ease: \"none\"", Rationale: "GSAP 3 spells linear easing as \"none\""},
}

// Applied records one rule that changed the source, with occurrence count.
type Applied struct {
	Rule  Rule
	Count int
}

// Report is the outcome of a rewrite pass.
type Report struct {
	Target   string
	Input    string
	Output   string
	Applied  []Applied
	Guidance []string
}

// targetGuidance holds the static advice appended per optimization target.
var targetGuidance = map[string][]string{
	"performance": {
		"Animate only transforms (x, y, scale, rotation) and opacity on hot paths.",
		"Add will-change: transform to elements animated every frame.",
		"Replace per-element tween loops with one stagger tween.",
		"Keep onUpdate callbacks empty of DOM reads.",
	},
	"filesize": {
		"Import only the plugins you register; tree-shaking drops the rest.",
		"Share one timeline defaults block instead of repeating vars objects.",
		"Prefer CSS for static states; reserve GSAP for actual motion.",
	},
	"smoothness": {
		"Favor .out eases for entrances; they decelerate into place.",
		"Use scrub: 1 (a smoothing duration) instead of scrub: true for softer scroll-links.",
		"Avoid conflicting tweens on one property; set overwrite: 'auto'.",
	},
}

// Targets returns the valid optimization target labels.
func Targets() []string {
	return []string{"performance", "filesize", "smoothness"}
}

// ValidTarget reports whether the label names a known target.
func ValidTarget(target string) bool {
	_, ok := targetGuidance[target]
	return ok
}

// Rewrite runs every rule over source and collects the applied set plus the
// guidance for the requested target. Unknown targets get performance
// guidance. Pure and deterministic.
func Rewrite(source, target string) Report {
	timer := logging.StartTimer(logging.CategoryOptimize, "Rewrite")
	defer timer.Stop()

	guidance, ok := targetGuidance[target]
	if !ok {
		target = "performance"
		guidance = targetGuidance[target]
	}

	out := source
	var applied []Applied
	for _, rule := range rules {
		count := strings.Count(out, rule.Find)
		if count == 0 {
			continue
		}
		out = strings.ReplaceAll(out, rule.Find, rule.Replace)
		applied = append(applied, Applied{Rule: rule, Count: count})
	}

	logging.Get(logging.CategoryOptimize).Debug("Rewrite target=%s rules_applied=%d", target, len(applied))
	if len(applied) > 0 {
		logging.AuditRecord(logging.AuditEvent{
			EventType: logging.AuditRewrite,
			Success:   true,
			Message:   target,
			Fields:    map[string]interface{}{"rules_applied": len(applied)},
		})
	}

	return Report{
		Target:   target,
		Input:    source,
		Output:   out,
		Applied:  applied,
		Guidance: guidance,
	}
}

// FormatReport renders a report as the response text, with before/after per
// applied substitution.
func FormatReport(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Optimization Report (target: %s)\n\n", r.Target)

	if len(r.Applied) == 0 {
		b.WriteString("No textual rewrites applied; the snippet already avoids the known slow patterns.\n")
	} else {
		b.WriteString("Applied rewrites:\n")
		for _, a := range r.Applied {
			fmt.Fprintf(&b, "- `%s` → `%s` (%d×) — %s\n", a.Rule.Find, a.Rule.Replace, a.Count, a.Rule.Rationale)
		}
		fmt.Fprintf(&b, "\n### Rewritten code\n\n```js\n%s\n```\n", strings.TrimRight(r.Output, "\n"))
	}

	fmt.Fprintf(&b, "\n### Guidance: %s\n", r.Target)
	for _, g := range r.Guidance {
		fmt.Fprintf(&b, "- %s\n", g)
	}

	b.WriteString("\nNote: these are textual substitutions, not a code transform. Review the diff; strings and comments are rewritten too.\n")

	return b.String()
}
