// Package classify performs keyword-based intent classification for animation
// requests. It scores free text against a fixed taxonomy of animation
// categories and derives boolean feature flags used by the template renderer.
package classify

// Category is a named cluster of keyword/booster terms representing one
// recognizable animation intent. Boosters are multi-word phrases worth twice
// a base keyword. All category data is defined once at package level and
// never mutated.
type Category struct {
	ID            string
	Keywords      []string
	Boosters      []string
	Techniques    []string
	BestPractices []string
}

// AnimationCategories is the intent taxonomy, in declaration order.
// Declaration order is significant: classification ties are broken by it.
var AnimationCategories = []Category{
	{
		ID:       "scroll_based",
		Keywords: []string{"scroll", "scrolling", "viewport", "parallax", "sticky"},
		Boosters: []string{"when user scrolls", "scrolling into view", "scroll into view", "tied to scroll", "as i scroll"},
		Techniques: []string{
			"ScrollTrigger with start/end positions",
			"scrub for scroll-linked playback",
			"pin to hold elements while scrolling",
			"batch for groups entering the viewport",
		},
		BestPractices: []string{
			"Register ScrollTrigger once with gsap.registerPlugin",
			"Use one trigger per animated section, not per element",
			"Prefer toggleActions over manual play/pause wiring",
			"Call ScrollTrigger.refresh() after layout changes",
		},
	},
	{
		ID:       "entrance_animations",
		Keywords: []string{"fade", "appear", "entrance", "reveal", "enter", "show up"},
		Boosters: []string{"fade in", "slide in", "on page load", "when the page loads"},
		Techniques: []string{
			"gsap.from for animating to natural layout state",
			"stagger for groups of elements",
			"autoAlpha to combine opacity and visibility",
		},
		BestPractices: []string{
			"Set initial state in CSS to avoid a flash of unstyled content",
			"Keep entrance durations under 1s for perceived snappiness",
			"Animate transforms and opacity, never layout properties",
		},
	},
	{
		ID:       "text_animations",
		Keywords: []string{"text", "letter", "word", "typing", "headline", "character"},
		Boosters: []string{"letter by letter", "word by word", "typewriter", "text reveal"},
		Techniques: []string{
			"SplitText (or manual span-splitting) for per-character control",
			"stagger.each for typewriter pacing",
			"yoyo cursor blink with repeat: -1",
		},
		BestPractices: []string{
			"Split text after fonts load to avoid mis-measured glyphs",
			"Revert splits on completion to keep the DOM accessible",
			"Respect prefers-reduced-motion for decorative text effects",
		},
	},
	{
		ID:       "hover_interactions",
		Keywords: []string{"hover", "mouse", "cursor", "button", "interactive"},
		Boosters: []string{"on hover", "mouse over", "when hovering"},
		Techniques: []string{
			"gsap.quickTo for cheap pointer-follow tweens",
			"paused timelines replayed on mouseenter/mouseleave",
			"overwrite: 'auto' to cancel mid-flight reversals",
		},
		BestPractices: []string{
			"Build the hover timeline once, not per event",
			"Reverse the same timeline on leave instead of tweening back",
			"Guard hover effects behind a pointer: fine media query",
		},
	},
	{
		ID:       "svg_animations",
		Keywords: []string{"svg", "path", "icon", "logo", "stroke"},
		Boosters: []string{"draw the path", "line drawing", "svg path"},
		Techniques: []string{
			"DrawSVGPlugin (or strokeDashoffset) for line drawing",
			"MorphSVGPlugin for shape-to-shape morphs",
			"transformOrigin set per SVG element",
		},
		BestPractices: []string{
			"Set vector-effect: non-scaling-stroke on scaled strokes",
			"Animate SVG attributes through GSAP, not CSS transitions",
			"Flatten transforms in the export before animating",
		},
	},
	{
		ID:       "timeline_sequences",
		Keywords: []string{"sequence", "timeline", "chain", "choreograph", "orchestrate"},
		Boosters: []string{"one after another", "in sequence", "step by step"},
		Techniques: []string{
			"gsap.timeline with position parameters",
			"labels for readable sequencing",
			"nested timelines for reusable sub-sequences",
		},
		BestPractices: []string{
			"Use relative position params ('-=0.2') over absolute times",
			"Name labels after content, not durations",
			"Set defaults on the timeline to avoid repeating eases",
		},
	},
	{
		ID:       "physics_motion",
		Keywords: []string{"bounce", "elastic", "spring", "inertia", "gravity", "drag"},
		Boosters: []string{"physics based", "spring physics", "bouncy feel"},
		Techniques: []string{
			"elastic.out and bounce.out eases",
			"InertiaPlugin for momentum after drag",
			"Draggable for pointer-driven motion",
		},
		BestPractices: []string{
			"Tune ease parameters instead of stacking tweens",
			"Clamp inertia end values to keep elements on screen",
			"Keep physics effects short; long springs feel sluggish",
		},
	},
	{
		ID:       "page_transitions",
		Keywords: []string{"transition", "route", "navigate", "page change", "swap"},
		Boosters: []string{"between pages", "page transition", "route change"},
		Techniques: []string{
			"exit/enter timelines coordinated with the router",
			"a persistent overlay element for crossfades",
			"gsap.context for scoped cleanup on unmount",
		},
		BestPractices: []string{
			"Block navigation until the exit animation resolves",
			"Keep transitions under 600ms to avoid perceived lag",
			"Always provide a reduced-motion instant fallback",
		},
	},
}

// CategoryByID returns the animation category with the given identifier.
func CategoryByID(id string) (Category, bool) {
	for _, c := range AnimationCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIDs returns the identifiers of all animation categories in
// declaration order.
func CategoryIDs() []string {
	ids := make([]string, len(AnimationCategories))
	for i, c := range AnimationCategories {
		ids[i] = c.ID
	}
	return ids
}
