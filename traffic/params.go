package traffic

import "math"

// Params tunes the traffic simulation. Distances are metres, speeds km/h and
// times seconds.
type Params struct {
	// Spawning
	SpawnInterval   float64 // Simulated seconds between spawn attempts
	SpawnAhead      float64 // Minimum distance ahead of the player for new agents
	SpawnJitter     float64 // Extra random distance added to SpawnAhead
	SpawnClearanceZ float64 // Longitudinal clearance required around a spawn point
	SpawnClearanceX float64 // Lateral clearance required around a spawn point

	// Difficulty ramp: BaseTraffic agents at the start plus one more every
	// DistancePerExtraAgent metres, capped at pool capacity.
	BaseTraffic           int
	DistancePerExtraAgent float64

	MinSpeed float64
	MaxSpeed float64

	// Lane changes
	LaneChangeChance      float64 // Per-tick probability once the cooldown has expired
	LaneChangeCooldownMin float64
	LaneChangeCooldownMax float64
	LaneChangeSafety      float64 // Longitudinal window that must be clear in the destination lane
	LaneEaseRate          float64 // Exponential approach rate toward the lane centre
	LaneArriveEpsilon     float64

	DespawnBehind float64

	// Near misses: a close, fast pass
	NearMissLateral      float64
	NearMissLongitudinal float64
	NearMissSpeedRatio   float64

	CollisionShrink float64 // Applied to summed half extents
}

// DefaultParams returns the production tuning.
func DefaultParams() Params {
	return Params{
		SpawnInterval:   0.3,
		SpawnAhead:      250,
		SpawnJitter:     100,
		SpawnClearanceZ: 30,
		SpawnClearanceX: 2.5,

		BaseTraffic:           6,
		DistancePerExtraAgent: 400,

		MinSpeed: 60,
		MaxSpeed: 110,

		LaneChangeChance:      0.01,
		LaneChangeCooldownMin: 3,
		LaneChangeCooldownMax: 7,
		LaneChangeSafety:      20,
		LaneEaseRate:          3,
		LaneArriveEpsilon:     0.05,

		DespawnBehind: 50,

		NearMissLateral:      2.5,
		NearMissLongitudinal: 6,
		NearMissSpeedRatio:   1.2,

		CollisionShrink: 0.85,
	}
}

// TargetCount returns how many agents should be active after distance metres
// of driving. It never decreases as distance grows and never exceeds capacity.
func (p Params) TargetCount(distance float64, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	target := float64(p.BaseTraffic)
	if distance > 0 && p.DistancePerExtraAgent > 0 {
		target += math.Floor(distance / p.DistancePerExtraAgent)
	}
	switch {
	case target >= float64(capacity):
		return capacity
	case target < 0:
		return 0
	}
	return int(target)
}
