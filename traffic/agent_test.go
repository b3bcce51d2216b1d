package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArchetypeExtents(t *testing.T) {
	hw, hl := ArchetypeMid.Extents()
	assert.Equal(t, 0.95, hw)
	assert.Equal(t, 2.0, hl)

	cw, cl := ArchetypeCompact.Extents()
	lw, ll := ArchetypeLarge.Extents()
	assert.Less(t, cw, lw)
	assert.Less(t, cl, ll)

	uw, ul := Archetype(42).Extents()
	assert.Equal(t, hw, uw, "unknown archetypes fall back to mid")
	assert.Equal(t, hl, ul)
	assert.Equal(t, "unknown", Archetype(-1).String())
	assert.Equal(t, "large", ArchetypeLarge.String())
}

func TestPickArchetype(t *testing.T) {
	assert.Equal(t, ArchetypeCompact, pickArchetype(0))
	assert.Equal(t, ArchetypeMid, pickArchetype(0.5))
	assert.Equal(t, ArchetypeLarge, pickArchetype(0.99))
	assert.Equal(t, ArchetypeLarge, pickArchetype(1))

	rng := NewDeterministicRNG("archetypes", "test")
	seen := map[Archetype]int{}
	for i := 0; i < 1000; i++ {
		seen[pickArchetype(rng.Float64())]++
	}
	assert.Len(t, seen, 3)
	assert.Greater(t, seen[ArchetypeMid], seen[ArchetypeLarge])
}

func TestDeterministicSeedValue(t *testing.T) {
	assert.Equal(t, DeterministicSeedValue("a", "traffic"), DeterministicSeedValue("a", "traffic"))
	assert.NotEqual(t, DeterministicSeedValue("a", "traffic"), DeterministicSeedValue("a", "player"))
	assert.NotEqual(t, DeterministicSeedValue("a", "traffic"), DeterministicSeedValue("b", "traffic"))

	r1 := NewDeterministicRNG("seed", "traffic")
	r2 := NewDeterministicRNG("seed", "traffic")
	for i := 0; i < 10; i++ {
		assert.Equal(t, r1.Int63(), r2.Int63())
	}
}

func TestRandomRange(t *testing.T) {
	rng := NewDeterministicRNG("range", "test")
	for i := 0; i < 100; i++ {
		v := randomRange(rng, 60, 110)
		assert.GreaterOrEqual(t, v, 60.0)
		assert.Less(t, v, 110.0)
	}
	assert.Equal(t, 5.0, randomRange(rng, 5, 5))
	assert.Equal(t, 5.0, randomRange(rng, 5, 1))
}
