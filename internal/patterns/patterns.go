// Package patterns serves fixed, production-ready animation templates by
// name. The templates are static; only a site-category label is interpolated
// into the header comment.
package patterns

import (
	"fmt"
	"sort"
	"strings"

	"motionsmith/internal/render"
)

// Pattern is one named production template.
type Pattern struct {
	Name        string
	Description string
	Code        string
}

// CategoryLabels are the accepted site-category labels for templates.
var CategoryLabels = []string{"portfolio", "ecommerce", "saas", "editorial", "agency"}

// ValidCategoryLabel reports whether the label is a known site category.
func ValidCategoryLabel(label string) bool {
	for _, l := range CategoryLabels {
		if l == label {
			return true
		}
	}
	return false
}

var patterns = map[string]Pattern{
	"hero-entrance": {
		Name:        "hero-entrance",
		Description: "Staggered hero section entrance on page load.",
		Code: `// hero-entrance for a {{label}} site
const tl = gsap.timeline({ defaults: { ease: "power3.out" } });
tl.from(".hero-eyebrow", { y: 20, autoAlpha: 0, duration: 0.5 })
  .from(".hero-title", { y: 40, autoAlpha: 0, duration: 0.8 }, "-=0.2")
  .from(".hero-copy", { y: 30, autoAlpha: 0, duration: 0.6 }, "-=0.4")
  .from(".hero-cta", { scale: 0.9, autoAlpha: 0, duration: 0.4 }, "-=0.2");`,
	},
	"scroll-story": {
		Name:        "scroll-story",
		Description: "Pinned section with scrubbed step-by-step storytelling.",
		Code: `// scroll-story for a {{label}} site
gsap.registerPlugin(ScrollTrigger);
const story = gsap.timeline({
  scrollTrigger: {
    trigger: ".story",
    start: "top top",
    end: "+=300%",
    pin: true,
    scrub: 1,
  },
});
story.from(".story-step-1", { autoAlpha: 0, y: 60 })
  .to(".story-step-1", { autoAlpha: 0, y: -60 })
  .from(".story-step-2", { autoAlpha: 0, y: 60 })
  .to(".story-step-2", { autoAlpha: 0, y: -60 })
  .from(".story-step-3", { autoAlpha: 0, y: 60 });`,
	},
	"page-transition": {
		Name:        "page-transition",
		Description: "Overlay wipe between route changes.",
		Code: `// page-transition for a {{label}} site
function wipeTo(navigate) {
  const tl = gsap.timeline();
  tl.set(".transition-overlay", { transformOrigin: "bottom", scaleY: 0 })
    .to(".transition-overlay", { scaleY: 1, duration: 0.35, ease: "power2.in" })
    .add(() => navigate())
    .set(".transition-overlay", { transformOrigin: "top" })
    .to(".transition-overlay", { scaleY: 0, duration: 0.45, ease: "power2.out" });
  return tl;
}`,
	},
	"loading-sequence": {
		Name:        "loading-sequence",
		Description: "Looping loader that resolves into the page reveal.",
		Code: `// loading-sequence for a {{label}} site
const loader = gsap.to(".loader-dot", {
  y: -10,
  stagger: { each: 0.12, repeat: -1, yoyo: true },
  duration: 0.4,
  ease: "sine.inOut",
});

function onLoaded() {
  loader.kill();
  gsap.timeline()
    .to(".loader", { autoAlpha: 0, duration: 0.3 })
    .from(".page", { y: 20, autoAlpha: 0, duration: 0.6, ease: "power2.out" });
}`,
	},
	"hover-gallery": {
		Name:        "hover-gallery",
		Description: "Gallery cards that lift, tilt, and reveal captions on hover.",
		Code: `// hover-gallery for a {{label}} site
document.querySelectorAll(".gallery-card").forEach((card) => {
  const tl = gsap.timeline({ paused: true })
    .to(card, { y: -8, rotation: 0.5, scale: 1.02, duration: 0.3, ease: "power2.out" })
    .from(card.querySelector(".caption"), { y: 12, autoAlpha: 0, duration: 0.25 }, 0);
  card.addEventListener("mouseenter", () => tl.play());
  card.addEventListener("mouseleave", () => tl.reverse());
});`,
	},
	"text-reveal": {
		Name:        "text-reveal",
		Description: "Scroll-triggered line-by-line text reveal.",
		Code: `// text-reveal for a {{label}} site
gsap.registerPlugin(ScrollTrigger);
document.querySelectorAll(".reveal-text").forEach((block) => {
  const lines = splitToLines(block);
  gsap.from(lines, {
    yPercent: 100,
    autoAlpha: 0,
    stagger: 0.1,
    duration: 0.7,
    ease: "power3.out",
    scrollTrigger: { trigger: block, start: "top 85%" },
  });
});`,
	},
}

// Names returns all pattern names, sorted.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the rendered template for a pattern name, or ok=false when
// the name is unknown (the caller enumerates valid names instead).
func Build(patternType, categoryLabel string) (string, bool) {
	p, ok := patterns[patternType]
	if !ok {
		return "", false
	}

	code := render.Process(p.Code, render.Vars{"label": categoryLabel})

	var b strings.Builder
	fmt.Fprintf(&b, "## Pattern: %s\n\n%s\n\n```js\n%s\n```\n", p.Name, p.Description, code)
	return b.String(), true
}
