// Package knowledge holds the static GSAP reference tables. The tables are
// parsed once from embedded YAML into an immutable Table; lookups return
// (entry, ok) pairs and misses produce ranked suggestions.
package knowledge

import (
	"fmt"
	"strings"
)

// Param is a labeled parameter entry. Fields that are lists of labeled
// entries use []Param; fields that are lists of plain strings use []string.
// The shape is fixed per field at definition time, so rendering never has to
// sniff value shapes at runtime.
type Param struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
}

// Example is a labeled code sample.
type Example struct {
	Label string `yaml:"label"`
	Code  string `yaml:"code"`
}

// Entry describes one known API element.
type Entry struct {
	Name       string    `yaml:"name"`
	Kind       string    `yaml:"kind"` // method, plugin, or concept
	Summary    string    `yaml:"summary"`
	Signature  string    `yaml:"signature"`
	Parameters []Param   `yaml:"parameters"`
	Properties []string  `yaml:"properties"`
	Examples   []Example `yaml:"examples"`
	Tips       []string  `yaml:"tips"`
}

// DetailLevel controls how much of an entry is rendered.
type DetailLevel string

const (
	DetailBasic    DetailLevel = "basic"
	DetailAdvanced DetailLevel = "advanced"
)

// Render formats the entry as a reference block. Basic detail covers summary
// and signature; advanced adds parameters, properties, examples, and tips.
func (e *Entry) Render(level DetailLevel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s (%s)\n\n%s\n", e.Name, e.Kind, e.Summary)
	if e.Signature != "" {
		fmt.Fprintf(&b, "\nSignature: `%s`\n", e.Signature)
	}

	if level != DetailAdvanced {
		return b.String()
	}

	if len(e.Parameters) > 0 {
		b.WriteString("\n### Parameters\n")
		for _, p := range e.Parameters {
			fmt.Fprintf(&b, "- `%s` — %s\n", p.Name, p.Desc)
		}
	}

	if len(e.Properties) > 0 {
		b.WriteString("\n### Common properties\n")
		for _, prop := range e.Properties {
			fmt.Fprintf(&b, "- %s\n", prop)
		}
	}

	if len(e.Examples) > 0 {
		b.WriteString("\n### Examples\n")
		for _, ex := range e.Examples {
			fmt.Fprintf(&b, "\n%s:\n```js\n%s\n```\n", ex.Label, strings.TrimRight(ex.Code, "\n"))
		}
	}

	if len(e.Tips) > 0 {
		b.WriteString("\n### Tips\n")
		for _, tip := range e.Tips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
	}

	return b.String()
}
