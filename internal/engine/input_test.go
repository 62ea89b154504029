package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWaypoints(t *testing.T) {
	t.Parallel()

	t.Run("pairs across lines", func(t *testing.T) {
		got, err := ParseWaypoints(strings.NewReader("5 0\n-3   7\n\t12\n-40\n"))
		require.NoError(t, err)
		assert.Equal(t, []Waypoint{{X: 5, Y: 0}, {X: -3, Y: 7}, {X: 12, Y: -40}}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := ParseWaypoints(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("odd count", func(t *testing.T) {
		_, err := ParseWaypoints(strings.NewReader("1 2 3"))
		assert.ErrorContains(t, err, "odd number")
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseWaypoints(strings.NewReader("1 two"))
		assert.ErrorContains(t, err, "coordinate 2")
	})
}

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	t.Run("overlays defaults", func(t *testing.T) {
		cfg, err := DecodeConfig([]byte(`{"beam_width": 20, "bounds": {"max_v": 10}}`))
		require.NoError(t, err)

		want := DefaultConfig()
		want.BeamWidth = 20
		want.Bounds.MaxV = 10
		assert.Equal(t, want, cfg)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := DecodeConfig([]byte(`{"window": "wide"}`))
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"beam width", func(c *Config) { c.BeamWidth = 0 }},
		{"candidate limit", func(c *Config) { c.CandidateLimit = 0 }},
		{"window", func(c *Config) { c.Window = -1 }},
		{"lookahead depth", func(c *Config) { c.LookaheadDepth = -1 }},
		{"bounds", func(c *Config) { c.Bounds.MinV = 1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("several legs", func(t *testing.T) {
		plan := Plan{
			Legs: []Leg{
				{Steps: 3, EndVX: 2, EndVY: 0},
				{Steps: 5, EndVX: -1, EndVY: -3},
			},
			TotalSteps: 8,
		}
		s := Summarize(plan)
		assert.Equal(t, 2, s.Legs)
		assert.Equal(t, 8, s.TotalSteps)
		assert.InDelta(t, 4.0, s.MeanLegSteps, 1e-9)
		assert.InDelta(t, math.Sqrt2, s.StdDevLegSteps, 1e-9)
		assert.Equal(t, 5, s.LongestLegSteps)
		assert.Equal(t, 4, s.PeakSpeed)
	})

	t.Run("single leg has no spread", func(t *testing.T) {
		s := Summarize(Plan{Legs: []Leg{{Steps: 3}}, TotalSteps: 3})
		assert.InDelta(t, 3.0, s.MeanLegSteps, 1e-9)
		assert.Zero(t, s.StdDevLegSteps)
	})
}
