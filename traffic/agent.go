package traffic

// Archetype is the visual class of a traffic vehicle. It fixes the collision
// half extents; renderers map it to their own sprites and colours.
type Archetype int

const (
	ArchetypeCompact Archetype = iota
	ArchetypeMid
	ArchetypeLarge
)

type archetypeSpec struct {
	name       string
	halfWidth  float64
	halfLength float64
	weight     float64 // Relative spawn frequency
}

var archetypes = [...]archetypeSpec{
	ArchetypeCompact: {name: "compact", halfWidth: 0.85, halfLength: 1.8, weight: 0.35},
	ArchetypeMid:     {name: "mid", halfWidth: 0.95, halfLength: 2.0, weight: 0.45},
	ArchetypeLarge:   {name: "large", halfWidth: 1.15, halfLength: 3.0, weight: 0.20},
}

// Valid reports whether a is a known archetype.
func (a Archetype) Valid() bool {
	return a >= 0 && int(a) < len(archetypes)
}

func (a Archetype) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return archetypes[a].name
}

// Extents returns the collision half width and half length in metres.
func (a Archetype) Extents() (halfWidth, halfLength float64) {
	if !a.Valid() {
		a = ArchetypeMid
	}
	return archetypes[a].halfWidth, archetypes[a].halfLength
}

// pickArchetype maps a uniform sample in [0, 1) onto the weighted archetypes.
func pickArchetype(u float64) Archetype {
	total := 0.0
	for _, spec := range archetypes {
		total += spec.weight
	}
	acc := 0.0
	for i, spec := range archetypes {
		acc += spec.weight / total
		if u < acc {
			return Archetype(i)
		}
	}
	return Archetype(len(archetypes) - 1)
}

// Agent is one pooled traffic vehicle. Slots are reused; an inactive agent
// keeps its last values but takes no part in simulation or queries.
type Agent struct {
	Active     bool
	X          float64 // Lateral position, eases toward the target lane centre
	Z          float64 // Longitudinal position
	Lane       int     // Lane currently occupied
	TargetLane int     // Lane being eased toward; equals Lane when settled
	Speed      float64 // km/h, fixed for the lifetime of one activation

	LaneChangeCooldown float64 // Seconds before another lane-change roll
	NearMissConsumed   bool    // A near miss was already credited for this activation

	Archetype  Archetype
	HalfWidth  float64
	HalfLength float64
}

// ChangingLane reports whether the agent is between lanes.
func (a Agent) ChangingLane() bool {
	return a.Lane != a.TargetLane
}

// occupies reports whether the agent holds lane, either settled in it or
// moving into or out of it.
func (a Agent) occupies(lane int) bool {
	return a.Lane == lane || a.TargetLane == lane
}
