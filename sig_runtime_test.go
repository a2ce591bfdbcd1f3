package sigui

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotpatch(t *testing.T) {
	t.Run("no resolver is a no-op", func(t *testing.T) {
		fresh(t)
		runs := 0

		NewEffect(func() { runs++ })

		assert.Equal(t, 0, Hotpatch())
		assert.Equal(t, 1, runs)
	})

	t.Run("unchanged code is a no-op", func(t *testing.T) {
		fresh(t)
		runs := 0

		NewEffect(func() { runs++ })
		SetHotpatchResolver(func(ptr uintptr) uintptr { return ptr })

		assert.Equal(t, 0, Hotpatch())
		assert.Equal(t, 1, runs)
	})

	t.Run("re-runs changed effects", func(t *testing.T) {
		fresh(t)
		patched, untouched := 0, 0

		patchedFn := func() { patched++ }
		NewEffect(patchedFn)
		NewEffect(func() { untouched++ })

		target := fingerprint(patchedFn)
		SetHotpatchResolver(func(ptr uintptr) uintptr {
			if ptr == target {
				return ptr + 1
			}
			return 0
		})

		assert.Equal(t, 1, Hotpatch())
		assert.Equal(t, 2, patched)
		assert.Equal(t, 1, untouched)

		// the new fingerprint is remembered
		SetHotpatchResolver(func(ptr uintptr) uintptr { return ptr })
		assert.Equal(t, 0, Hotpatch())
	})
}

func TestShutdown(t *testing.T) {
	t.Run("disposes everything", func(t *testing.T) {
		cleaned := false

		count := NewSignal(0)
		NewEffect(func() {
			count.Get()
			OnCleanup(func() { cleaned = true })
		})

		Shutdown()

		assert.True(t, cleaned)
		assert.True(t, count.Disposed())

		// a fresh runtime takes over
		next := NewSignal(1)
		assert.Equal(t, 1, next.Get())
		Shutdown()
	})
}

func TestMetrics(t *testing.T) {
	fresh(t)

	reg := prometheus.NewRegistry()
	require.NoError(t, EnableMetrics(reg, "sigui"))
	t.Cleanup(DisableMetrics)

	count := NewSignal(0)
	NewEffect(func() { count.Get() })
	count.Set(1)

	n, err := testutil.GatherAndCount(reg, "sigui_effect_runs_total", "sigui_flushes_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// registering twice fails
	assert.Error(t, EnableMetrics(reg, "sigui"))
}
