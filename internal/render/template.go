// Package render assembles animation code responses. A skeleton per category
// supplies fixed fragments, flags gate the optional ones, and a small
// placeholder engine interpolates the request text and target context.
// Rendering is a pure function of its inputs.
package render

import (
	"sort"
	"strings"
)

// Vars holds placeholder values for template processing.
type Vars map[string]string

// Process applies {{name}} substitutions to content. Unknown placeholders
// are left untouched so broken skeleton data is visible rather than silent.
// Substitution is a single pass over the original content: substituted
// values are never rescanned, so a value containing a placeholder token
// (request text is user-supplied) stays literal.
func Process(content string, vars Vars) string {
	if len(vars) == 0 || !strings.Contains(content, "{{") {
		return content // Fast path: no templates
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, "{{"+name+"}}", vars[name])
	}
	return strings.NewReplacer(pairs...).Replace(content)
}
