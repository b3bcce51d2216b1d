package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golangdaddy/highwayrush/road"
	"github.com/golangdaddy/highwayrush/traffic"
)

// DefaultConfigPath is the canonical traffic tuning file.
const DefaultConfigPath = "config/traffic.defaults.json"

const (
	defaultPoolCapacity = 30
	defaultLaneCount    = 4
	defaultLaneWidth    = 3.5
)

// Tuning is the JSON tuning file for the traffic engine and the road it runs
// on. Every field is optional; omitted fields fall back to the built-in
// defaults, so partial files are safe.
type Tuning struct {
	Seed         *string  `json:"seed,omitempty"`
	PoolCapacity *int     `json:"pool_capacity,omitempty"`
	LaneCount    *int     `json:"lane_count,omitempty"`
	LaneWidth    *float64 `json:"lane_width,omitempty"`

	// Spawning
	SpawnInterval         *float64 `json:"spawn_interval,omitempty"`
	SpawnAhead            *float64 `json:"spawn_ahead,omitempty"`
	SpawnJitter           *float64 `json:"spawn_jitter,omitempty"`
	SpawnClearanceZ       *float64 `json:"spawn_clearance_z,omitempty"`
	SpawnClearanceX       *float64 `json:"spawn_clearance_x,omitempty"`
	BaseTraffic           *int     `json:"base_traffic,omitempty"`
	DistancePerExtraAgent *float64 `json:"distance_per_extra_agent,omitempty"`
	MinSpeed              *float64 `json:"min_speed_kmh,omitempty"`
	MaxSpeed              *float64 `json:"max_speed_kmh,omitempty"`

	// Lane changes
	LaneChangeChance      *float64 `json:"lane_change_chance,omitempty"`
	LaneChangeCooldownMin *float64 `json:"lane_change_cooldown_min,omitempty"`
	LaneChangeCooldownMax *float64 `json:"lane_change_cooldown_max,omitempty"`
	LaneChangeSafety      *float64 `json:"lane_change_safety,omitempty"`
	LaneEaseRate          *float64 `json:"lane_ease_rate,omitempty"`
	LaneArriveEpsilon     *float64 `json:"lane_arrive_epsilon,omitempty"`

	DespawnBehind *float64 `json:"despawn_behind,omitempty"`

	// Near misses and collisions
	NearMissLateral      *float64 `json:"near_miss_lateral,omitempty"`
	NearMissLongitudinal *float64 `json:"near_miss_longitudinal,omitempty"`
	NearMissSpeedRatio   *float64 `json:"near_miss_speed_ratio,omitempty"`
	CollisionShrink      *float64 `json:"collision_shrink,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrString(v string) *string    { return &v }

// DefaultTuning returns a Tuning with every field set to its default.
func DefaultTuning() *Tuning {
	p := traffic.DefaultParams()
	return &Tuning{
		Seed:         ptrString(traffic.DefaultSeed),
		PoolCapacity: ptrInt(defaultPoolCapacity),
		LaneCount:    ptrInt(defaultLaneCount),
		LaneWidth:    ptrFloat64(defaultLaneWidth),

		SpawnInterval:         ptrFloat64(p.SpawnInterval),
		SpawnAhead:            ptrFloat64(p.SpawnAhead),
		SpawnJitter:           ptrFloat64(p.SpawnJitter),
		SpawnClearanceZ:       ptrFloat64(p.SpawnClearanceZ),
		SpawnClearanceX:       ptrFloat64(p.SpawnClearanceX),
		BaseTraffic:           ptrInt(p.BaseTraffic),
		DistancePerExtraAgent: ptrFloat64(p.DistancePerExtraAgent),
		MinSpeed:              ptrFloat64(p.MinSpeed),
		MaxSpeed:              ptrFloat64(p.MaxSpeed),

		LaneChangeChance:      ptrFloat64(p.LaneChangeChance),
		LaneChangeCooldownMin: ptrFloat64(p.LaneChangeCooldownMin),
		LaneChangeCooldownMax: ptrFloat64(p.LaneChangeCooldownMax),
		LaneChangeSafety:      ptrFloat64(p.LaneChangeSafety),
		LaneEaseRate:          ptrFloat64(p.LaneEaseRate),
		LaneArriveEpsilon:     ptrFloat64(p.LaneArriveEpsilon),

		DespawnBehind: ptrFloat64(p.DespawnBehind),

		NearMissLateral:      ptrFloat64(p.NearMissLateral),
		NearMissLongitudinal: ptrFloat64(p.NearMissLongitudinal),
		NearMissSpeedRatio:   ptrFloat64(p.NearMissSpeedRatio),
		CollisionShrink:      ptrFloat64(p.CollisionShrink),
	}
}

// LoadTuning loads a Tuning from a JSON file. The file must have a .json
// extension and be under 1MB.
func LoadTuning(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Tuning{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadTuningOrDefault loads path, or returns DefaultTuning when path is empty.
func LoadTuningOrDefault(path string) (*Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	return LoadTuning(path)
}

// Validate checks that the configured values describe a usable simulation.
func (c *Tuning) Validate() error {
	if c.GetPoolCapacity() < 1 {
		return fmt.Errorf("pool_capacity must be positive, got %d", c.GetPoolCapacity())
	}
	if c.GetLaneCount() < 1 {
		return fmt.Errorf("lane_count must be positive, got %d", c.GetLaneCount())
	}
	if c.GetLaneWidth() <= 0 {
		return fmt.Errorf("lane_width must be positive, got %f", c.GetLaneWidth())
	}

	p := c.Params()
	if p.SpawnInterval <= 0 {
		return fmt.Errorf("spawn_interval must be positive, got %f", p.SpawnInterval)
	}
	if p.SpawnAhead < 0 {
		return fmt.Errorf("spawn_ahead must be non-negative, got %f", p.SpawnAhead)
	}
	if p.SpawnJitter < 0 || p.SpawnClearanceZ < 0 || p.SpawnClearanceX < 0 {
		return fmt.Errorf("spawn jitter and clearances must be non-negative")
	}
	if p.BaseTraffic < 0 {
		return fmt.Errorf("base_traffic must be non-negative, got %d", p.BaseTraffic)
	}
	if p.DistancePerExtraAgent < 0 {
		return fmt.Errorf("distance_per_extra_agent must be non-negative, got %f", p.DistancePerExtraAgent)
	}
	if p.MinSpeed <= 0 || p.MaxSpeed < p.MinSpeed {
		return fmt.Errorf("speed range must satisfy 0 < min <= max, got [%f, %f]", p.MinSpeed, p.MaxSpeed)
	}
	if p.LaneChangeChance < 0 || p.LaneChangeChance > 1 {
		return fmt.Errorf("lane_change_chance must be between 0 and 1, got %f", p.LaneChangeChance)
	}
	if p.LaneChangeCooldownMin < 0 || p.LaneChangeCooldownMax < p.LaneChangeCooldownMin {
		return fmt.Errorf("lane change cooldown must satisfy 0 <= min <= max, got [%f, %f]",
			p.LaneChangeCooldownMin, p.LaneChangeCooldownMax)
	}
	if p.LaneChangeSafety < 0 {
		return fmt.Errorf("lane_change_safety must be non-negative, got %f", p.LaneChangeSafety)
	}
	if p.LaneEaseRate <= 0 || p.LaneArriveEpsilon <= 0 {
		return fmt.Errorf("lane_ease_rate and lane_arrive_epsilon must be positive")
	}
	if p.DespawnBehind <= 0 {
		return fmt.Errorf("despawn_behind must be positive, got %f", p.DespawnBehind)
	}
	if p.NearMissLateral < 0 || p.NearMissLongitudinal < 0 {
		return fmt.Errorf("near_miss_lateral and near_miss_longitudinal must be non-negative, got %f and %f",
			p.NearMissLateral, p.NearMissLongitudinal)
	}
	if p.NearMissSpeedRatio < 1 {
		return fmt.Errorf("near_miss_speed_ratio must be at least 1, got %f", p.NearMissSpeedRatio)
	}
	if p.CollisionShrink <= 0 || p.CollisionShrink > 1 {
		return fmt.Errorf("collision_shrink must be in (0, 1], got %f", p.CollisionShrink)
	}
	return nil
}

// GetSeed returns the seed or the default.
func (c *Tuning) GetSeed() string {
	if c.Seed == nil || *c.Seed == "" {
		return traffic.DefaultSeed
	}
	return *c.Seed
}

// GetPoolCapacity returns the pool_capacity value or the default.
func (c *Tuning) GetPoolCapacity() int {
	if c.PoolCapacity == nil {
		return defaultPoolCapacity
	}
	return *c.PoolCapacity
}

// GetLaneCount returns the lane_count value or the default.
func (c *Tuning) GetLaneCount() int {
	if c.LaneCount == nil {
		return defaultLaneCount
	}
	return *c.LaneCount
}

// GetLaneWidth returns the lane_width value or the default.
func (c *Tuning) GetLaneWidth() float64 {
	if c.LaneWidth == nil {
		return defaultLaneWidth
	}
	return *c.LaneWidth
}

// Params returns the engine tuning with every set field applied over
// traffic.DefaultParams.
func (c *Tuning) Params() traffic.Params {
	p := traffic.DefaultParams()
	setFloat(&p.SpawnInterval, c.SpawnInterval)
	setFloat(&p.SpawnAhead, c.SpawnAhead)
	setFloat(&p.SpawnJitter, c.SpawnJitter)
	setFloat(&p.SpawnClearanceZ, c.SpawnClearanceZ)
	setFloat(&p.SpawnClearanceX, c.SpawnClearanceX)
	if c.BaseTraffic != nil {
		p.BaseTraffic = *c.BaseTraffic
	}
	setFloat(&p.DistancePerExtraAgent, c.DistancePerExtraAgent)
	setFloat(&p.MinSpeed, c.MinSpeed)
	setFloat(&p.MaxSpeed, c.MaxSpeed)
	setFloat(&p.LaneChangeChance, c.LaneChangeChance)
	setFloat(&p.LaneChangeCooldownMin, c.LaneChangeCooldownMin)
	setFloat(&p.LaneChangeCooldownMax, c.LaneChangeCooldownMax)
	setFloat(&p.LaneChangeSafety, c.LaneChangeSafety)
	setFloat(&p.LaneEaseRate, c.LaneEaseRate)
	setFloat(&p.LaneArriveEpsilon, c.LaneArriveEpsilon)
	setFloat(&p.DespawnBehind, c.DespawnBehind)
	setFloat(&p.NearMissLateral, c.NearMissLateral)
	setFloat(&p.NearMissLongitudinal, c.NearMissLongitudinal)
	setFloat(&p.NearMissSpeedRatio, c.NearMissSpeedRatio)
	setFloat(&p.CollisionShrink, c.CollisionShrink)
	return p
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Road builds the carriageway described by the tuning.
func (c *Tuning) Road() *road.Road {
	return road.NewRoad(c.GetLaneCount(), c.GetLaneWidth())
}

// NewEngine builds a traffic engine on lanes, seeded from the tuning seed.
func (c *Tuning) NewEngine(lanes traffic.Lanes) *traffic.Engine {
	rng := traffic.NewDeterministicRNG(c.GetSeed(), "traffic")
	return traffic.NewEngine(c.GetPoolCapacity(), lanes, c.Params(), rng)
}
