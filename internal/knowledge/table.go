package knowledge

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"motionsmith/internal/logging"
)

// Table is an immutable collection of reference entries. Lookups are keyed
// by lowercased name; the original declaration order is preserved for
// enumeration output.
type Table struct {
	entries []Entry
	byName  map[string]*Entry
}

// NewTable builds a table from entries. Later duplicates of a name win,
// matching last-write semantics of the source data.
func NewTable(entries []Entry) *Table {
	t := &Table{
		entries: entries,
		byName:  make(map[string]*Entry, len(entries)),
	}
	for i := range t.entries {
		t.byName[strings.ToLower(t.entries[i].Name)] = &t.entries[i]
	}
	return t
}

// Lookup returns the entry with the given name, case-insensitively.
func (t *Table) Lookup(name string) (*Entry, bool) {
	e, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	if ok {
		logging.KnowledgeDebug("Lookup hit: %s", name)
		logging.AuditRecord(logging.AuditEvent{
			EventType: logging.AuditLookupHit, Success: true, Message: name,
		})
	} else {
		logging.KnowledgeDebug("Lookup miss: %s", name)
		logging.AuditRecord(logging.AuditEvent{
			EventType: logging.AuditLookupMiss, Success: false, Message: name,
		})
	}
	return e, ok
}

// Names returns all entry names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Suggestions returns candidate names for a failed lookup. Bidirectional
// substring containment hits come first (in declaration order), then fuzzy
// matches for anything the containment pass missed.
func (t *Table) Suggestions(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	seen := make(map[string]bool)
	var out []string

	for _, e := range t.entries {
		name := strings.ToLower(e.Name)
		if strings.Contains(name, q) || strings.Contains(q, name) {
			out = append(out, e.Name)
			seen[e.Name] = true
		}
	}

	// Fuzzy pass catches typos the containment check cannot ("gsap.toooo").
	names := t.Names()
	for _, m := range fuzzy.Find(query, names) {
		if !seen[names[m.Index]] {
			out = append(out, names[m.Index])
			seen[names[m.Index]] = true
		}
	}

	return out
}
