package traffic

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/highwayrush/internal/monitoring"
)

// kmhToMS converts km/h to metres per second.
const kmhToMS = 1 / 3.6

// Lanes supplies the lane geometry the engine places agents on.
type Lanes interface {
	LaneCount() int
	LaneToX(lane int) float64
}

// Stats counts engine events since construction or the last Reset.
type Stats struct {
	Spawned            int
	SpawnRejected      int // Spawn points too close to existing traffic
	Despawned          int
	LaneChanges        int
	LaneChangesBlocked int // Rolls that found the destination lane occupied
	NearMisses         int
}

// AgentSpec places a specific agent, for scripted traffic.
type AgentSpec struct {
	Lane      int
	Z         float64
	Speed     float64
	Archetype Archetype
}

// Engine owns a fixed pool of traffic agents and advances them relative to
// the player. It is driven from a single tick loop and is not safe for
// concurrent use.
type Engine struct {
	params Params
	lanes  Lanes
	rng    *rand.Rand

	agents     []Agent
	spawnTimer float64
	stats      Stats

	// OnNearMiss is invoked once each time a near miss is newly credited.
	OnNearMiss func()
	// OnLaneChange is invoked when an agent commits to a new target lane.
	OnLaneChange func(slot, from, to int)
}

// NewEngine pre-allocates capacity inactive agents. A nil rng is replaced by
// one seeded from DefaultSeed.
func NewEngine(capacity int, lanes Lanes, params Params, rng *rand.Rand) *Engine {
	if capacity < 0 {
		capacity = 0
	}
	if rng == nil {
		rng = NewDeterministicRNG(DefaultSeed, "traffic")
	}
	monitoring.Logf("traffic: engine ready, %d slots across %d lanes", capacity, lanes.LaneCount())
	return &Engine{
		params: params,
		lanes:  lanes,
		rng:    rng,
		agents: make([]Agent, capacity),
	}
}

// Params returns the tuning in use.
func (e *Engine) Params() Params {
	return e.params
}

// Capacity returns the fixed pool size.
func (e *Engine) Capacity() int {
	return len(e.agents)
}

// Agent returns a copy of the agent in slot.
func (e *Engine) Agent(slot int) Agent {
	return e.agents[slot]
}

// ForEachActive calls fn with a copy of every active agent in slot order.
func (e *Engine) ForEachActive(fn func(slot int, a Agent)) {
	for i := range e.agents {
		if e.agents[i].Active {
			fn(i, e.agents[i])
		}
	}
}

// ActiveCount returns the number of active agents.
func (e *Engine) ActiveCount() int {
	n := 0
	for i := range e.agents {
		if e.agents[i].Active {
			n++
		}
	}
	return n
}

// Stats returns the event counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// TargetCount returns the difficulty target for the given distance.
func (e *Engine) TargetCount(distance float64) int {
	return e.params.TargetCount(distance, len(e.agents))
}

// Reset deactivates every agent and clears the spawn timer and counters.
func (e *Engine) Reset() {
	for i := range e.agents {
		e.agents[i].Active = false
	}
	e.spawnTimer = 0
	e.stats = Stats{}
	monitoring.Logf("traffic: reset %d slots", len(e.agents))
}

// Spawn tries to activate one agent ahead of the player. It reports false
// when the population already meets the difficulty target, the pool is full,
// or the chosen spawn point is too close to existing traffic.
func (e *Engine) Spawn(playerZ, distance float64) bool {
	if e.ActiveCount() >= e.TargetCount(distance) {
		return false
	}
	slot := e.freeSlot()
	if slot < 0 || e.lanes.LaneCount() < 1 {
		return false
	}

	lane := e.rng.Intn(e.lanes.LaneCount())
	z := playerZ + e.params.SpawnAhead + e.rng.Float64()*e.params.SpawnJitter
	if !e.spawnClear(lane, z) {
		e.stats.SpawnRejected++
		return false
	}

	speed := randomRange(e.rng, e.params.MinSpeed, e.params.MaxSpeed)
	e.activate(slot, lane, z, speed, pickArchetype(e.rng.Float64()))
	return true
}

// SpawnAt activates an agent at a fixed lane and position. Speed is clamped to
// the configured range. It returns the slot used, or false when the pool is
// full, the lane does not exist, or the point is too close to other traffic.
func (e *Engine) SpawnAt(spec AgentSpec) (int, bool) {
	if spec.Lane < 0 || spec.Lane >= e.lanes.LaneCount() {
		return -1, false
	}
	slot := e.freeSlot()
	if slot < 0 {
		return -1, false
	}
	if !e.spawnClear(spec.Lane, spec.Z) {
		e.stats.SpawnRejected++
		return -1, false
	}
	arch := spec.Archetype
	if !arch.Valid() {
		arch = ArchetypeMid
	}
	speed := math.Min(math.Max(spec.Speed, e.params.MinSpeed), e.params.MaxSpeed)
	e.activate(slot, spec.Lane, spec.Z, speed, arch)
	return slot, true
}

// Update advances the simulation by dt seconds. Agents are processed in three
// passes so decisions never see a half-updated tick: all positions are
// integrated first, then lane changes are rolled against the integrated state,
// then lateral easing, despawning and near misses are resolved.
func (e *Engine) Update(dt, playerX, playerZ, playerSpeed, distance float64) {
	if dt <= 0 {
		return
	}

	e.spawnTimer += dt
	if e.spawnTimer >= e.params.SpawnInterval {
		e.spawnTimer = 0
		e.Spawn(playerZ, distance)
	}

	for i := range e.agents {
		a := &e.agents[i]
		if a.Active {
			a.Z += a.Speed * kmhToMS * dt
		}
	}

	for i := range e.agents {
		if e.agents[i].Active {
			e.rollLaneChange(i, dt)
		}
	}

	for i := range e.agents {
		a := &e.agents[i]
		if !a.Active {
			continue
		}

		targetX := e.lanes.LaneToX(a.TargetLane)
		a.X += (targetX - a.X) * math.Min(dt*e.params.LaneEaseRate, 1)
		if math.Abs(targetX-a.X) < e.params.LaneArriveEpsilon {
			a.Lane = a.TargetLane
		}

		if a.Z < playerZ-e.params.DespawnBehind {
			a.Active = false
			e.stats.Despawned++
			continue
		}

		if !a.NearMissConsumed && e.isNearMiss(a, playerX, playerZ, playerSpeed) {
			a.NearMissConsumed = true
			e.stats.NearMisses++
			if e.OnNearMiss != nil {
				e.OnNearMiss()
			}
		}
	}
}

// CheckCollision reports whether the player's box overlaps any active agent.
// Both boxes are shrunk by CollisionShrink so glancing contact is forgiven.
func (e *Engine) CheckCollision(playerX, playerZ, playerHalfWidth, playerHalfLength float64) bool {
	shrink := e.params.CollisionShrink
	for i := range e.agents {
		a := &e.agents[i]
		if !a.Active {
			continue
		}
		if math.Abs(a.X-playerX) >= (a.HalfWidth+playerHalfWidth)*shrink {
			continue
		}
		if math.Abs(a.Z-playerZ) >= (a.HalfLength+playerHalfLength)*shrink {
			continue
		}
		return true
	}
	return false
}

func (e *Engine) freeSlot() int {
	for i := range e.agents {
		if !e.agents[i].Active {
			return i
		}
	}
	return -1
}

// spawnClear reports whether a new agent can be placed in lane at z. Agents
// holding the lane, including those committed to move into it, block the
// whole clearance window; agents easing past nearby are caught by the
// lateral test.
func (e *Engine) spawnClear(lane int, z float64) bool {
	x := e.lanes.LaneToX(lane)
	for i := range e.agents {
		a := &e.agents[i]
		if !a.Active || math.Abs(a.Z-z) >= e.params.SpawnClearanceZ {
			continue
		}
		if a.occupies(lane) || math.Abs(a.X-x) < e.params.SpawnClearanceX {
			return false
		}
	}
	return true
}

func (e *Engine) activate(slot, lane int, z, speed float64, arch Archetype) {
	halfWidth, halfLength := arch.Extents()
	e.agents[slot] = Agent{
		Active:             true,
		X:                  e.lanes.LaneToX(lane),
		Z:                  z,
		Lane:               lane,
		TargetLane:         lane,
		Speed:              speed,
		LaneChangeCooldown: randomRange(e.rng, e.params.LaneChangeCooldownMin, e.params.LaneChangeCooldownMax),
		Archetype:          arch,
		HalfWidth:          halfWidth,
		HalfLength:         halfLength,
	}
	e.stats.Spawned++
}

func (e *Engine) rollLaneChange(slot int, dt float64) {
	a := &e.agents[slot]
	if a.LaneChangeCooldown > 0 {
		a.LaneChangeCooldown -= dt
		if a.LaneChangeCooldown > 0 {
			return
		}
		a.LaneChangeCooldown = 0
	}
	if a.ChangingLane() || e.rng.Float64() >= e.params.LaneChangeChance {
		return
	}

	dest := a.Lane - 1
	if e.rng.Intn(2) == 1 {
		dest = a.Lane + 1
	}
	if dest < 0 || dest >= e.lanes.LaneCount() {
		return
	}
	if !e.laneClear(slot, dest, a.Z) {
		e.stats.LaneChangesBlocked++
		return
	}

	from := a.Lane
	a.TargetLane = dest
	a.LaneChangeCooldown = randomRange(e.rng, e.params.LaneChangeCooldownMin, e.params.LaneChangeCooldownMax)
	e.stats.LaneChanges++
	if e.OnLaneChange != nil {
		e.OnLaneChange(slot, from, dest)
	}
}

// laneClear reports whether no other active agent holds lane within the
// safety window around z. Agents already moving into the lane count as
// holding it, so claims made earlier in the same tick are respected.
func (e *Engine) laneClear(self, lane int, z float64) bool {
	for i := range e.agents {
		if i == self {
			continue
		}
		other := &e.agents[i]
		if !other.Active || !other.occupies(lane) {
			continue
		}
		if math.Abs(other.Z-z) < e.params.LaneChangeSafety {
			return false
		}
	}
	return true
}

func (e *Engine) isNearMiss(a *Agent, playerX, playerZ, playerSpeed float64) bool {
	if math.Abs(a.X-playerX) >= e.params.NearMissLateral {
		return false
	}
	if math.Abs(a.Z-playerZ) >= e.params.NearMissLongitudinal {
		return false
	}
	return playerSpeed > a.Speed*e.params.NearMissSpeedRatio
}
