package assistant

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionsmith/internal/logging"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher()
	require.NoError(t, err)
	return d
}

func TestDispatch_UnknownOperation(t *testing.T) {
	d := newTestDispatcher(t)

	result := d.Dispatch("summon_dragon", map[string]string{"request": "x"})

	assert.True(t, result.IsError)
	assert.Contains(t, result.ErrMessage, "unknown operation")
	assert.Contains(t, result.ErrMessage, OpClassifyAndGenerate)
	assert.NotEmpty(t, result.RequestID)
}

func TestDispatch_MissingRequiredArgumentFailsFast(t *testing.T) {
	d := newTestDispatcher(t)

	tests := []struct {
		op    string
		field string
		args  map[string]string
	}{
		{OpClassifyAndGenerate, "request", map[string]string{}},
		{OpClassifyAndGenerate, "request", map[string]string{"request": "   "}},
		{OpLookupReference, "element_name", map[string]string{}},
		{OpDebugRequest, "issue_description", map[string]string{"code": "x"}},
		{OpOptimizeRequest, "source_code", map[string]string{}},
		{OpBuildPattern, "pattern_type", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.op+"/"+tt.field, func(t *testing.T) {
			result := d.Dispatch(tt.op, tt.args)
			require.True(t, result.IsError)
			assert.Contains(t, result.ErrMessage, tt.field)
			assert.Empty(t, result.Text)
		})
	}
}

func TestDispatch_ClassifyAndGenerate(t *testing.T) {
	d := newTestDispatcher(t)

	t.Run("matched request renders code", func(t *testing.T) {
		result := d.Dispatch(OpClassifyAndGenerate, map[string]string{
			"request": "fade in cards one by one when scrolling into view",
		})
		require.False(t, result.IsError)

		assert.Contains(t, result.Text, "scroll_based")
		assert.Contains(t, result.Text, "## Generated Code")
		assert.Contains(t, result.Text, "ScrollTrigger.batch") // stagger flag fragment
		// Defaults applied.
		assert.Contains(t, result.Text, "Context: react")
		assert.Contains(t, result.Text, "Complexity: intermediate")
	})

	t.Run("explicit context survives", func(t *testing.T) {
		result := d.Dispatch(OpClassifyAndGenerate, map[string]string{
			"request": "fade in the hero",
			"context": "svelte",
		})
		require.False(t, result.IsError)
		assert.Contains(t, result.Text, "Context: svelte")
		assert.Contains(t, result.Text, "onMount()")
	})

	t.Run("invalid enum falls back to default", func(t *testing.T) {
		result := d.Dispatch(OpClassifyAndGenerate, map[string]string{
			"request": "fade in the hero",
			"context": "flash",
		})
		require.False(t, result.IsError)
		assert.Contains(t, result.Text, "Context: react")
	})

	t.Run("unmatched request degrades to guidance", func(t *testing.T) {
		result := d.Dispatch(OpClassifyAndGenerate, map[string]string{
			"request": "write me a poem about autumn",
		})
		require.False(t, result.IsError)
		assert.Contains(t, result.Text, "Tell me more")
	})
}

func TestDispatch_LookupReference(t *testing.T) {
	d := newTestDispatcher(t)

	t.Run("hit returns the full listing", func(t *testing.T) {
		result := d.Dispatch(OpLookupReference, map[string]string{"element_name": "gsap.to"})
		require.False(t, result.IsError)

		assert.Contains(t, result.Text, "gsap.to")
		assert.Contains(t, result.Text, "### Parameters")
		assert.Contains(t, result.Text, "### Examples")
	})

	t.Run("basic detail trims the listing", func(t *testing.T) {
		result := d.Dispatch(OpLookupReference, map[string]string{
			"element_name": "gsap.to",
			"detail_level": "basic",
		})
		require.False(t, result.IsError)
		assert.NotContains(t, result.Text, "### Parameters")
	})

	t.Run("miss lists names and suggestions", func(t *testing.T) {
		result := d.Dispatch(OpLookupReference, map[string]string{"element_name": "gsap.toooo"})
		require.False(t, result.IsError, "a lookup miss is not an error")

		assert.Contains(t, result.Text, `No reference entry named "gsap.toooo"`)
		assert.Contains(t, result.Text, "Did you mean:")
		assert.Contains(t, result.Text, "gsap.to")
		assert.Contains(t, result.Text, "Available entries:")
	})
}

func TestDispatch_DebugRequest(t *testing.T) {
	d := newTestDispatcher(t)

	t.Run("diagnoses and appends the checklist", func(t *testing.T) {
		result := d.Dispatch(OpDebugRequest, map[string]string{
			"issue_description": "the animation is janky and drops frames",
		})
		require.False(t, result.IsError)

		assert.Contains(t, result.Text, "performance_issues")
		assert.Contains(t, result.Text, "Probable causes:")
		assert.Contains(t, result.Text, "## Checklist")
	})

	t.Run("scans supplied code", func(t *testing.T) {
		result := d.Dispatch(OpDebugRequest, map[string]string{
			"issue_description": "animation is broken",
			"code":              "setInterval(tick, 16);",
			"expected":          "the box should slide smoothly",
		})
		require.False(t, result.IsError)

		assert.Contains(t, result.Text, "## Code scan")
		assert.Contains(t, result.Text, "setInterval")
		assert.Contains(t, result.Text, "Expected behavior: the box should slide smoothly")
	})

	t.Run("unrecognized issue still returns the checklist", func(t *testing.T) {
		result := d.Dispatch(OpDebugRequest, map[string]string{
			"issue_description": "the coffee machine hums",
		})
		require.False(t, result.IsError)
		assert.Contains(t, result.Text, "## Checklist")
	})
}

func TestDispatch_OptimizeRequest(t *testing.T) {
	d := newTestDispatcher(t)

	result := d.Dispatch(OpOptimizeRequest, map[string]string{
		"source_code": `gsap.to(".box", { left: "100px" });`,
	})
	require.False(t, result.IsError)

	assert.Contains(t, result.Text, "target: performance")
	assert.Contains(t, result.Text, "`left:` → `x:`")
	assert.Contains(t, result.Text, "Rewritten code")
}

func TestDispatch_BuildPattern(t *testing.T) {
	d := newTestDispatcher(t)

	t.Run("known pattern renders", func(t *testing.T) {
		result := d.Dispatch(OpBuildPattern, map[string]string{
			"pattern_type":   "hero-entrance",
			"category_label": "saas",
		})
		require.False(t, result.IsError)
		assert.Contains(t, result.Text, "## Pattern: hero-entrance")
		assert.Contains(t, result.Text, "saas")
	})

	t.Run("unknown pattern enumerates valid names", func(t *testing.T) {
		result := d.Dispatch(OpBuildPattern, map[string]string{
			"pattern_type": "nonexistent-pattern",
		})
		require.False(t, result.IsError, "unknown pattern is a lookup miss, not an error")

		assert.Contains(t, result.Text, `Unknown pattern "nonexistent-pattern"`)
		assert.Contains(t, result.Text, "hero-entrance")
		assert.Contains(t, result.Text, "scroll-story")
		assert.NotContains(t, result.Text, "gsap.timeline", "no template may be rendered")
	})
}

func TestDispatch_ResultsCarryDistinctRequestIDs(t *testing.T) {
	d := newTestDispatcher(t)

	first := d.Dispatch(OpBuildPattern, map[string]string{"pattern_type": "hero-entrance"})
	second := d.Dispatch(OpBuildPattern, map[string]string{"pattern_type": "hero-entrance"})

	require.False(t, first.IsError)
	require.False(t, second.IsError)
	assert.NotEqual(t, first.RequestID, second.RequestID)
	assert.Equal(t, first.Text, second.Text, "identical inputs must render identical output")
}

func TestOperations_Enumerated(t *testing.T) {
	d := newTestDispatcher(t)

	ops := d.Operations()
	assert.Equal(t, []string{
		OpBuildPattern,
		OpClassifyAndGenerate,
		OpDebugRequest,
		OpLookupReference,
		OpOptimizeRequest,
	}, ops)
	assert.True(t, strings.HasPrefix(ops[0], "build_"))
}

// Kept last in the file: it points the logging package at a temp workspace
// and the shared state is not reset for later tests.
func TestDispatch_AuditTrailCoversPipelineStages(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, ".motionsmith")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"),
		[]byte(`{"logging": {"level": "debug", "debug_mode": true}}`), 0644))

	require.NoError(t, logging.Initialize(tempDir))
	require.NoError(t, logging.InitAudit())
	defer logging.CloseAll()

	d := newTestDispatcher(t)
	d.Dispatch(OpClassifyAndGenerate, map[string]string{"request": "fade the cards in on scroll"})
	d.Dispatch(OpLookupReference, map[string]string{"element_name": "gsap.to"})
	d.Dispatch(OpLookupReference, map[string]string{"element_name": "gsap.toooo"})
	d.Dispatch(OpOptimizeRequest, map[string]string{"source_code": `gsap.to(".b", { left: "10px" })`})

	logging.CloseAudit()

	auditFiles, err := filepath.Glob(filepath.Join(configDir, "logs", "*_audit.log"))
	require.NoError(t, err)
	require.Len(t, auditFiles, 1)

	data, err := os.ReadFile(auditFiles[0])
	require.NoError(t, err)
	audit := string(data)

	for _, event := range []string{
		`"event":"classified"`,
		`"event":"rendered"`,
		`"event":"lookup_hit"`,
		`"event":"lookup_miss"`,
		`"event":"rewrite_applied"`,
		`"event":"dispatch_complete"`,
	} {
		assert.Contains(t, audit, event)
	}
}
