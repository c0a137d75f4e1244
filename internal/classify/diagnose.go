package classify

import "strings"

// DiagnosticCategories is the debugging taxonomy. It reuses the same scoring
// machinery as the animation taxonomy: Techniques carry likely causes,
// BestPractices carry suggested fixes.
var DiagnosticCategories = []Category{
	{
		ID:       "not_working",
		Keywords: []string{"not working", "nothing happens", "broken", "no animation", "doesn't animate", "doesn't work"},
		Boosters: []string{"nothing happens at all", "completely broken"},
		Techniques: []string{
			"Selector matches zero elements (check for typos or timing)",
			"GSAP script loaded after the code that uses it",
			"Plugin used without gsap.registerPlugin",
		},
		BestPractices: []string{
			"Log the result of document.querySelectorAll for your selector",
			"Run animation setup after DOMContentLoaded",
			"Check the browser console for plugin registration warnings",
		},
	},
	{
		ID:       "performance_issues",
		Keywords: []string{"slow", "lag", "janky", "stutter", "choppy", "fps", "performance"},
		Boosters: []string{"drops frames", "not smooth"},
		Techniques: []string{
			"Animating layout properties (top/left/width/margin)",
			"Too many individual tweens instead of one stagger",
			"Heavy work inside onUpdate callbacks",
		},
		BestPractices: []string{
			"Animate x/y/scale/opacity only; they stay on the compositor",
			"Add will-change: transform to heavily animated elements",
			"Batch element groups with a single stagger tween",
		},
	},
	{
		ID:       "scroll_trigger_issues",
		Keywords: []string{"scrolltrigger", "scroll trigger", "trigger", "start position", "markers"},
		Boosters: []string{"fires at the wrong time", "triggers too early", "triggers too late"},
		Techniques: []string{
			"start/end positions measured before images or fonts loaded",
			"Trigger element inside a transformed or scrolled container",
			"Multiple ScrollTriggers fighting over the same element",
		},
		BestPractices: []string{
			"Enable markers: true while debugging positions",
			"Call ScrollTrigger.refresh() after dynamic content loads",
			"Set the scroller option when using a custom scroll container",
		},
	},
	{
		ID:       "timing_issues",
		Keywords: []string{"timing", "delay", "overlap", "out of sync", "too fast", "too slow", "order"},
		Boosters: []string{"wrong order", "at the same time"},
		Techniques: []string{
			"Independent tweens instead of a timeline",
			"Absolute position parameters drifting as durations change",
			"Missing or misplaced position parameter",
		},
		BestPractices: []string{
			"Sequence related tweens on one gsap.timeline",
			"Use relative position parameters like '-=0.2'",
			"Preview pacing with timeline.timeScale(2) during development",
		},
	},
	{
		ID:       "flash_of_content",
		Keywords: []string{"flash", "flicker", "fouc", "blink", "visible before"},
		Boosters: []string{"shows before the animation", "visible then disappears"},
		Techniques: []string{
			"Initial state set from JavaScript after first paint",
			"gsap.from leaving elements visible until the tween starts",
		},
		BestPractices: []string{
			"Hide elements in CSS and animate with autoAlpha",
			"Use gsap.set before the reveal tween runs",
			"Prefer visibility: hidden over display: none for measured elements",
		},
	},
}

// AntiPattern is a known problematic construct detected by substring scan.
// A non-empty Unless suppresses the hit when that substring is also present.
type AntiPattern struct {
	Needle     string
	Unless     string
	Problem    string
	Suggestion string
}

// knownAntiPatterns is the fixed scan set for debug_request code snippets.
var knownAntiPatterns = []AntiPattern{
	{
		Needle:     "setInterval",
		Problem:    "setInterval is not frame-synced and fights the GSAP ticker",
		Suggestion: "drive per-frame work with gsap.ticker.add",
	},
	{
		Needle:     ".animate(",
		Problem:    "jQuery-style .animate() bypasses GSAP's transform handling",
		Suggestion: "replace with gsap.to on the same element",
	},
	{
		Needle:     "top:",
		Problem:    "animating top triggers layout on every frame",
		Suggestion: "animate y (translateY) instead",
	},
	{
		Needle:     "left:",
		Problem:    "animating left triggers layout on every frame",
		Suggestion: "animate x (translateX) instead",
	},
	{
		Needle:     "!important",
		Problem:    "!important styles override GSAP's inline styles",
		Suggestion: "remove !important from animated properties",
	},
	{
		Needle:     "ScrollTrigger",
		Unless:     "registerPlugin",
		Problem:    "ScrollTrigger used without a registerPlugin call in the snippet",
		Suggestion: "ensure gsap.registerPlugin(ScrollTrigger) runs before any trigger is created",
	},
}

// ScanAntiPatterns returns the anti-patterns whose needle occurs in code.
// Case-sensitive by design: the needles are API spellings.
func ScanAntiPatterns(code string) []AntiPattern {
	var found []AntiPattern
	for _, ap := range knownAntiPatterns {
		if !strings.Contains(code, ap.Needle) {
			continue
		}
		if ap.Unless != "" && strings.Contains(code, ap.Unless) {
			continue
		}
		found = append(found, ap)
	}
	return found
}

// DebugChecklist is the fixed checklist appended to every debug response.
var DebugChecklist = []string{
	"GSAP core (and any plugins) load before your animation code runs",
	"Plugins are registered with gsap.registerPlugin(...)",
	"Selectors match elements that exist when the code runs",
	"Only transforms and opacity are animated on hot paths",
	"ScrollTrigger.refresh() is called after late layout changes",
	"prefers-reduced-motion users get a non-animated fallback",
}
