package render

// Fragment is one block of a skeleton. Flag-gated fragments are included
// only when the named flag is true; an empty Flag means always included.
type Fragment struct {
	Flag    string
	Content string
}

// Skeleton is the fixed textual scaffold for one category's output.
// Walkthrough is extra commentary appended only at beginner complexity.
type Skeleton struct {
	CategoryID  string
	Title       string
	Fragments   []Fragment
	Walkthrough string
}

// integrationNotes maps a target context to setup guidance interpolated into
// every skeleton via {{integration}}.
var integrationNotes = map[string]string{
	"react":   "Wrap this code in useGSAP(() => { ... }, { scope: containerRef }) so tweens are cleaned up on unmount.",
	"vue":     "Run this code inside onMounted() and clean up with gsap.context().revert() in onUnmounted().",
	"vanilla": "Run this code after DOMContentLoaded so the selectors can resolve.",
	"next":    "Mark the component 'use client' and run this inside useGSAP(); guard any window access for SSR.",
	"svelte":  "Run this code inside onMount() and return a cleanup that reverts the gsap.context().",
}

// IntegrationNote returns the setup note for a context label, falling back
// to the vanilla note for unknown labels.
func IntegrationNote(context string) string {
	if note, ok := integrationNotes[context]; ok {
		return note
	}
	return integrationNotes["vanilla"]
}

// skeletons holds one scaffold per animation category.
var skeletons = map[string]Skeleton{
	"scroll_based": {
		CategoryID: "scroll_based",
		Title:      "Scroll-Based Animation",
		Fragments: []Fragment{
			{Content: "gsap.registerPlugin(ScrollTrigger);"},
			{Content: "gsap.from(\".reveal\", {\n  y: 50,\n  autoAlpha: 0,\n  duration: 0.8,\n  ease: \"power2.out\",\n  scrollTrigger: {\n    trigger: \".reveal\",\n    start: \"top 85%\",\n    toggleActions: \"play none none reverse\",\n  },\n});"},
			{Flag: "stagger", Content: "// Elements enter one by one as their group scrolls into view.\nScrollTrigger.batch(\".reveal-item\", {\n  start: \"top 90%\",\n  onEnter: (batch) => gsap.from(batch, { y: 40, autoAlpha: 0, stagger: 0.1 }),\n});"},
			{Flag: "pin", Content: "// Pin the section while its animation plays out.\nScrollTrigger.create({\n  trigger: \".pinned-section\",\n  start: \"top top\",\n  end: \"+=100%\",\n  pin: true,\n});"},
			{Flag: "scrub", Content: "// Scrub ties progress directly to the scrollbar; use ease \"none\".\ngsap.to(\".progress-driven\", {\n  xPercent: -100,\n  ease: \"none\",\n  scrollTrigger: {\n    trigger: \".progress-driven\",\n    start: \"top bottom\",\n    end: \"bottom top\",\n    scrub: 1,\n  },\n});"},
			{Flag: "parallax", Content: "// Layers move at different speeds for depth.\ngsap.to(\".layer-back\", {\n  yPercent: -20,\n  ease: \"none\",\n  scrollTrigger: { trigger: \".parallax-scene\", scrub: true },\n});\ngsap.to(\".layer-front\", {\n  yPercent: -45,\n  ease: \"none\",\n  scrollTrigger: { trigger: \".parallax-scene\", scrub: true },\n});"},
		},
		Walkthrough: "// How this works: ScrollTrigger watches the trigger element and plays\n// the tween when its top crosses 85% of the viewport height. toggleActions\n// controls what happens on enter/leave/re-enter/re-leave.",
	},
	"entrance_animations": {
		CategoryID: "entrance_animations",
		Title:      "Entrance Animation",
		Fragments: []Fragment{
			{Content: "const tl = gsap.timeline({ defaults: { ease: \"power2.out\", duration: 0.7 } });\ntl.from(\".entrance\", { y: 40, autoAlpha: 0 });"},
			{Flag: "stagger", Content: "// Cascade the children one by one.\ntl.from(\".entrance-item\", { y: 30, autoAlpha: 0, stagger: 0.1 }, \"-=0.3\");"},
			{Flag: "loop", Content: "// Repeat the whole entrance sequence.\ntl.repeat(-1).repeatDelay(1);"},
		},
		Walkthrough: "// How this works: gsap.from animates FROM the given values TO the element's\n// natural state, so the markup stays the source of truth. autoAlpha pairs\n// opacity with visibility to keep hidden elements out of the tab order.",
	},
	"text_animations": {
		CategoryID: "text_animations",
		Title:      "Text Animation",
		Fragments: []Fragment{
			{Content: "// Split the text into per-character spans first (SplitText or manual).\nconst chars = splitToChars(document.querySelector(\".headline\"));"},
			{Flag: "typewriter", Content: "// Typewriter: characters appear instantly, one by one, on a steady clock.\ngsap.from(chars, {\n  autoAlpha: 0,\n  duration: 0.01,\n  stagger: 0.06,\n});\n\n// Blinking cursor.\ngsap.to(\".cursor\", { autoAlpha: 0, repeat: -1, yoyo: true, duration: 0.5, ease: \"steps(1)\" });"},
			{Flag: "stagger", Content: "// Soft cascade across the characters.\ngsap.from(chars, { y: 20, autoAlpha: 0, stagger: { each: 0.03, from: \"start\" } });"},
			{Flag: "scrub", Content: "// Reveal the text as the user scrolls past it.\ngsap.from(chars, {\n  autoAlpha: 0.15,\n  stagger: 0.02,\n  ease: \"none\",\n  scrollTrigger: { trigger: \".headline\", start: \"top 80%\", end: \"top 30%\", scrub: true },\n});"},
		},
		Walkthrough: "// How this works: each character becomes its own tween target, so stagger\n// spaces the per-character start times. Keep per-character durations short\n// or long headlines feel sluggish.",
	},
	"hover_interactions": {
		CategoryID: "hover_interactions",
		Title:      "Hover Interaction",
		Fragments: []Fragment{
			{Content: "// Build the timeline once; replay and reverse it per event.\ndocument.querySelectorAll(\".hover-card\").forEach((card) => {\n  const tl = gsap.timeline({ paused: true })\n    .to(card, { y: -6, scale: 1.03, duration: 0.25, ease: \"power2.out\" })\n    .to(card.querySelector(\".glow\"), { autoAlpha: 1, duration: 0.2 }, 0);\n\n  card.addEventListener(\"mouseenter\", () => tl.play());\n  card.addEventListener(\"mouseleave\", () => tl.reverse());\n});"},
			{Flag: "loop", Content: "// Idle attention loop while not hovered.\ngsap.to(\".hover-card .badge\", { scale: 1.08, repeat: -1, yoyo: true, duration: 0.9, ease: \"sine.inOut\" });"},
		},
		Walkthrough: "// How this works: the timeline is built once, paused, and reused. play()\n// and reverse() pick up from the current progress, so rapid enter/leave\n// never restarts the motion from scratch.",
	},
	"svg_animations": {
		CategoryID: "svg_animations",
		Title:      "SVG Animation",
		Fragments: []Fragment{
			{Content: "// Stroke-draw each path using dash offsets.\ndocument.querySelectorAll(\".logo path\").forEach((path) => {\n  const length = path.getTotalLength();\n  gsap.fromTo(path,\n    { strokeDasharray: length, strokeDashoffset: length },\n    { strokeDashoffset: 0, duration: 1.2, ease: \"power1.inOut\" });\n});"},
			{Flag: "loop", Content: "// Redraw continuously.\ngsap.to(\".logo path\", { strokeDashoffset: 0, repeat: -1, repeatDelay: 0.8 });"},
			{Flag: "scrub", Content: "// Draw the path as the user scrolls.\ngsap.to(\".logo path\", {\n  strokeDashoffset: 0,\n  ease: \"none\",\n  scrollTrigger: { trigger: \".logo\", start: \"top 80%\", end: \"top 30%\", scrub: true },\n});"},
		},
		Walkthrough: "// How this works: strokeDasharray makes the whole path one dash and\n// strokeDashoffset hides it; tweening the offset to 0 draws the line.",
	},
	"timeline_sequences": {
		CategoryID: "timeline_sequences",
		Title:      "Timeline Sequence",
		Fragments: []Fragment{
			{Content: "const tl = gsap.timeline({ defaults: { ease: \"power2.out\" } });\ntl.addLabel(\"intro\")\n  .from(\".step-1\", { y: 30, autoAlpha: 0 })\n  .from(\".step-2\", { y: 30, autoAlpha: 0 }, \"-=0.2\")\n  .addLabel(\"detail\")\n  .from(\".step-3\", { scale: 0.9, autoAlpha: 0 }, \"detail\");"},
			{Flag: "stagger", Content: "// Fan out the items inside each step.\ntl.from(\".step-3 .item\", { y: 20, autoAlpha: 0, stagger: 0.08 }, \"detail+=0.1\");"},
			{Flag: "loop", Content: "tl.repeat(-1).repeatDelay(1.5);"},
		},
		Walkthrough: "// How this works: the timeline positions every tween relative to the\n// previous one. Labels mark sync points and '-=0.2' overlaps a step with\n// the end of the one before it.",
	},
	"physics_motion": {
		CategoryID: "physics_motion",
		Title:      "Physics-Feel Motion",
		Fragments: []Fragment{
			{Content: "// Spring-like settle using an elastic ease.\ngsap.from(\".bubble\", {\n  y: -120,\n  duration: 1.1,\n  ease: \"elastic.out(1, 0.4)\",\n});"},
			{Flag: "loop", Content: "// Perpetual bobbing.\ngsap.to(\".bubble\", { y: \"+=12\", repeat: -1, yoyo: true, duration: 1.4, ease: \"sine.inOut\" });"},
			{Flag: "stagger", Content: "// Drop the group in one by one with a bounce.\ngsap.from(\".bubble\", { y: -160, stagger: 0.12, ease: \"bounce.out\", duration: 0.9 });"},
		},
		Walkthrough: "// How this works: elastic.out(amplitude, period) fakes a spring. Lower the\n// period for a tighter snap; raise the amplitude for more overshoot.",
	},
	"page_transitions": {
		CategoryID: "page_transitions",
		Title:      "Page Transition",
		Fragments: []Fragment{
			{Content: "// Exit the old view, then enter the new one.\nfunction transitionTo(next) {\n  const tl = gsap.timeline();\n  tl.to(\".page\", { autoAlpha: 0, y: -20, duration: 0.3, ease: \"power1.in\" })\n    .add(() => next())\n    .from(\".page\", { autoAlpha: 0, y: 20, duration: 0.4, ease: \"power1.out\" });\n  return tl;\n}"},
			{Flag: "stagger", Content: "// Stagger the incoming sections.\ngsap.from(\".page section\", { y: 24, autoAlpha: 0, stagger: 0.08, delay: 0.3 });"},
		},
		Walkthrough: "// How this works: the exit tween completes, the .add callback swaps the\n// view, then the enter tween plays against the new content.",
	},
}

// SkeletonFor returns the skeleton for a category.
func SkeletonFor(categoryID string) (Skeleton, bool) {
	s, ok := skeletons[categoryID]
	return s, ok
}
