package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/highwayrush/internal/monitoring"
	"github.com/golangdaddy/highwayrush/traffic"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultTuning(t *testing.T) {
	cfg := DefaultTuning()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, traffic.DefaultParams(), cfg.Params())
	assert.Equal(t, 30, cfg.GetPoolCapacity())
	assert.Equal(t, 4, cfg.GetLaneCount())
	assert.Equal(t, 3.5, cfg.GetLaneWidth())
	assert.Equal(t, traffic.DefaultSeed, cfg.GetSeed())
}

func TestDefaultsFileMatchesBuiltins(t *testing.T) {
	cfg, err := LoadTuning(filepath.Join("..", "..", DefaultConfigPath))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultTuning(), cfg); diff != "" {
		t.Errorf("defaults file drifted from DefaultTuning (-want +got):\n%s", diff)
	}
}

func TestLoadTuning(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "partial.json", `{
  "seed": "night-run",
  "pool_capacity": 12,
  "lane_count": 3,
  "lane_change_chance": 0.05
}`)
		cfg, err := LoadTuning(path)
		require.NoError(t, err)

		assert.Equal(t, "night-run", cfg.GetSeed())
		assert.Equal(t, 12, cfg.GetPoolCapacity())
		assert.Equal(t, 3, cfg.GetLaneCount())
		assert.Equal(t, 3.5, cfg.GetLaneWidth())

		want := traffic.DefaultParams()
		want.LaneChangeChance = 0.05
		assert.Equal(t, want, cfg.Params())
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		path := writeConfig(t, "tuning.yaml", "seed: x")
		_, err := LoadTuning(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".json")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTuning(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadTuning(writeConfig(t, "bad.json", `{"pool_capacity": `))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})

	t.Run("oversized file", func(t *testing.T) {
		body := `{"seed": "` + strings.Repeat("x", 1024*1024) + `"}`
		_, err := LoadTuning(writeConfig(t, "big.json", body))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero capacity", `{"pool_capacity": 0}`, "pool_capacity"},
		{"no lanes", `{"lane_count": 0}`, "lane_count"},
		{"bad lane width", `{"lane_width": -1}`, "lane_width"},
		{"zero interval", `{"spawn_interval": 0}`, "spawn_interval"},
		{"inverted speeds", `{"min_speed_kmh": 120, "max_speed_kmh": 80}`, "speed range"},
		{"chance above one", `{"lane_change_chance": 1.5}`, "lane_change_chance"},
		{"inverted cooldown", `{"lane_change_cooldown_min": 5, "lane_change_cooldown_max": 1}`, "cooldown"},
		{"slow near miss ratio", `{"near_miss_speed_ratio": 0.9}`, "near_miss_speed_ratio"},
		{"shrink above one", `{"collision_shrink": 1.2}`, "collision_shrink"},
		{"negative despawn", `{"despawn_behind": -5}`, "despawn_behind"},
		{"negative spawn ahead", `{"spawn_ahead": -10}`, "spawn_ahead"},
		{"negative safety window", `{"lane_change_safety": -1}`, "lane_change_safety"},
		{"negative near miss lateral", `{"near_miss_lateral": -2.5}`, "near_miss_lateral"},
		{"negative near miss longitudinal", `{"near_miss_longitudinal": -6}`, "near_miss_longitudinal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTuning(writeConfig(t, "tuning.json", tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadTuningOrDefault(t *testing.T) {
	cfg, err := LoadTuningOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(DefaultTuning(), cfg))

	_, err = LoadTuningOrDefault("nope.txt")
	assert.Error(t, err)
}

func TestTuningBuildsEngine(t *testing.T) {
	original := monitoring.Logf
	monitoring.SetLogger(nil)
	defer func() { monitoring.Logf = original }()

	cfg, err := LoadTuning(writeConfig(t, "small.json", `{"pool_capacity": 5, "lane_count": 2, "lane_width": 4}`))
	require.NoError(t, err)

	r := cfg.Road()
	assert.Equal(t, 2, r.LaneCount())
	assert.InDelta(t, -2, r.LaneToX(0), 1e-9)

	e := cfg.NewEngine(r)
	assert.Equal(t, 5, e.Capacity())
	assert.Equal(t, cfg.Params(), e.Params())
}
