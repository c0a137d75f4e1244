package classify

import (
	"sort"
	"strings"
)

// Flags maps a flag name to whether its trigger was seen in the input.
// Flags gate optional template fragments during rendering.
type Flags map[string]bool

// FlagDefs maps a flag name to its trigger substrings. A flag is true if ANY
// trigger is present in the lowercased input (any-of semantics). Checks are
// independent and order-free; triggers do not consume matched text.
type FlagDefs map[string][]string

// DefaultFlagDefs returns the standard flag set for animation requests.
func DefaultFlagDefs() FlagDefs {
	return FlagDefs{
		"stagger":    {"one by one", "stagger", "sequentially", "each element", "one at a time"},
		"pin":        {"pin", "stick", "fixed while"},
		"typewriter": {"typewriter", "letter by letter", "character by character", "typing"},
		"scrub":      {"scrub", "tied to scroll", "follows scroll", "linked to scroll"},
		"loop":       {"loop", "repeat", "infinite", "forever"},
		"hover":      {"hover", "mouse over"},
		"parallax":   {"parallax", "different speeds", "depth effect"},
	}
}

// ExtractFlags derives boolean feature flags from text. Case-insensitive,
// stateless, and pure: identical inputs always produce identical flags.
func ExtractFlags(text string, defs FlagDefs) Flags {
	lowered := strings.ToLower(text)

	flags := make(Flags, len(defs))
	for name, triggers := range defs {
		hit := false
		for _, trigger := range triggers {
			if strings.Contains(lowered, trigger) {
				hit = true
				break
			}
		}
		flags[name] = hit
	}
	return flags
}

// Active returns the names of all true flags, sorted for deterministic output.
func (f Flags) Active() []string {
	var names []string
	for name, on := range f {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
