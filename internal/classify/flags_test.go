package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFlags_AnyOfSemantics(t *testing.T) {
	defs := FlagDefs{
		"stagger": {"one by one", "stagger"},
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"first trigger", "reveal them one by one please", true},
		{"second trigger", "add a stagger to the cards", true},
		{"no trigger", "fade everything at once", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := ExtractFlags(tt.text, defs)
			assert.Equal(t, tt.want, flags["stagger"])
		})
	}
}

func TestExtractFlags_StaggerNeedsAWholePhrase(t *testing.T) {
	// "each" alone is not a stagger trigger: as a substring it would fire on
	// "reach" and "beach". Only the full phrases count.
	defs := DefaultFlagDefs()

	assert.False(t, ExtractFlags("reach the top of the beach scene", defs)["stagger"])
	assert.False(t, ExtractFlags("animate each?", defs)["stagger"])
	assert.True(t, ExtractFlags("animate each element into place", defs)["stagger"])
	assert.True(t, ExtractFlags("bring them in one at a time", defs)["stagger"])
}

func TestExtractFlags_CaseInsensitive(t *testing.T) {
	flags := ExtractFlags("ONE BY ONE, with a TYPEWRITER feel", DefaultFlagDefs())
	assert.True(t, flags["stagger"])
	assert.True(t, flags["typewriter"])
}

func TestExtractFlags_MonotonicPerTrigger(t *testing.T) {
	// A present trigger sets its flag regardless of surrounding text.
	surroundings := []string{
		"%s",
		"please %s thanks",
		"xxxx%syyyy",
		"completely unrelated words then %s and more words",
	}

	for _, wrap := range surroundings {
		text := fmt.Sprintf(wrap, "one by one")
		flags := ExtractFlags(text, DefaultFlagDefs())
		assert.True(t, flags["stagger"], "text %q", text)
	}
}

func TestExtractFlags_IndependentFlags(t *testing.T) {
	flags := ExtractFlags("pin the section and reveal the text letter by letter tied to scroll", DefaultFlagDefs())

	assert.True(t, flags["pin"])
	assert.True(t, flags["typewriter"])
	assert.True(t, flags["scrub"])
	assert.False(t, flags["loop"])
	assert.False(t, flags["hover"])
}

func TestExtractFlags_AllDefinedFlagsPresent(t *testing.T) {
	defs := DefaultFlagDefs()
	flags := ExtractFlags("nothing relevant here", defs)

	require.Len(t, flags, len(defs))
	for name := range defs {
		_, ok := flags[name]
		assert.True(t, ok, "flag %s must be present even when false", name)
	}
}

func TestFlags_Active(t *testing.T) {
	flags := Flags{"pin": true, "stagger": true, "loop": false}
	assert.Equal(t, []string{"pin", "stagger"}, flags.Active())

	assert.Empty(t, Flags{"loop": false}.Active())
}
