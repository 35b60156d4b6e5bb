package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesLiteralValues(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "config.txt"))
	require.NoError(t, err)

	entries, err := Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	got := make(map[string]string, len(entries))
	for _, e := range entries {
		got[e.Key] = e.Value
	}

	want := map[string]string{
		"card":             "discrete",
		"resources":        "res/",
		"window":           "true",
		"resolution":       "1280x720",
		"target-fps":       "60",
		"display-controls": "true",
		"display-clock":    "stopwatch",
		"fov":              "90",
		"ui-scale":         "1.0",
		"dimensions":       "5x5x3x3",
		"ghost-move-time":  "1.0",
		"food-count":       "10",
	}
	assert.Equal(t, want, got)
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	in := "# header comment\n\n  \nkey: value  # trailing comment\n\n# more\n"
	entries, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Key: "key", Value: "value"}, entries[0])
}

func TestParseSplitsOnFirstColon(t *testing.T) {
	entries, err := Parse(strings.NewReader("resources: res/maps:v2\n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "res/maps:v2", entries[0].Value)
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("no colon here\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestFromEntriesCoercion(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, c *Config)
	}{
		{"card discrete", "card", "discrete", func(t *testing.T, c *Config) {
			assert.Equal(t, Card{Mode: CardDiscrete}, c.Card)
		}},
		{"card max", "card", "max", func(t *testing.T, c *Config) {
			assert.Equal(t, Card{Mode: CardMax}, c.Card)
		}},
		{"card index", "card", "2", func(t *testing.T, c *Config) {
			assert.Equal(t, Card{Mode: CardIndex, Index: 2}, c.Card)
		}},
		{"window off", "window", "false", func(t *testing.T, c *Config) {
			assert.False(t, c.Window)
		}},
		{"resolution", "resolution", "1920x1080", func(t *testing.T, c *Config) {
			assert.Equal(t, 1920, c.Width)
			assert.Equal(t, 1080, c.Height)
		}},
		{"fps capped", "target-fps", "144", func(t *testing.T, c *Config) {
			assert.Equal(t, 144, c.TargetFPS)
		}},
		{"fps unlimited", "target-fps", "unlimited", func(t *testing.T, c *Config) {
			assert.Equal(t, 0, c.TargetFPS)
		}},
		{"clock none", "display-clock", "none", func(t *testing.T, c *Config) {
			assert.Equal(t, ClockNone, c.DisplayClock)
		}},
		{"ui scale", "ui-scale", "1.65", func(t *testing.T, c *Config) {
			assert.InDelta(t, 1.65, c.UIScale, 1e-9)
		}},
		{"dimensions", "dimensions", "10x10x10x10", func(t *testing.T, c *Config) {
			assert.Equal(t, [4]int{10, 10, 10, 10}, c.Dimensions)
		}},
		{"ghost move time", "ghost-move-time", "0.75", func(t *testing.T, c *Config) {
			assert.InDelta(t, 0.75, c.GhostMoveTime, 1e-9)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromEntries([]Entry{{Key: tt.key, Value: tt.value}})
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestFromEntriesErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "ghosts", "3"},
		{"bad card", "card", "integrated"},
		{"bad window", "window", "maybe"},
		{"bad resolution axes", "resolution", "1280x720x1"},
		{"bad resolution value", "resolution", "widexhigh"},
		{"zero fps", "target-fps", "0"},
		{"bad clock", "display-clock", "countdown"},
		{"dimensions too few axes", "dimensions", "5x5x3"},
		{"dimensions zero axis", "dimensions", "5x0x3x3"},
		{"fov out of range", "fov", "200"},
		{"negative ui scale", "ui-scale", "-1"},
		{"zero ghost move time", "ghost-move-time", "0"},
		{"negative food", "food-count", "-4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEntries([]Entry{{Key: tt.key, Value: tt.value}})
			assert.Error(t, err)
		})
	}
}

func TestFromEntriesFoodMustFitMaze(t *testing.T) {
	// 2x2x1x1 has 4 cells; one stays free for the start, so the default
	// food-count of 10 cannot fit.
	_, err := FromEntries([]Entry{{Key: "dimensions", Value: "2x2x1x1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "food-count")

	c, err := FromEntries([]Entry{
		{Key: "dimensions", Value: "2x2x1x1"},
		{Key: "food-count", Value: "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, c.FoodCount)
}

func TestFromEntriesMissingKeysUseDefaults(t *testing.T) {
	c, err := FromEntries(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestFromEntriesLastValueWins(t *testing.T) {
	c, err := FromEntries([]Entry{
		{Key: "food-count", Value: "10"},
		{Key: "food-count", Value: "25"},
	})
	require.NoError(t, err)
	assert.Equal(t, 25, c.FoodCount)
}

func TestLoadShippedConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "config.txt"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c, "shipped config.txt should match the documented defaults")
}
