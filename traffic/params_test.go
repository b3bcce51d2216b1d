package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetCount(t *testing.T) {
	p := DefaultParams()

	t.Run("starts at base traffic", func(t *testing.T) {
		assert.Equal(t, p.BaseTraffic, p.TargetCount(0, 30))
		assert.Equal(t, p.BaseTraffic, p.TargetCount(-100, 30))
	})

	t.Run("adds one agent per step", func(t *testing.T) {
		assert.Equal(t, p.BaseTraffic+1, p.TargetCount(p.DistancePerExtraAgent, 30))
		assert.Equal(t, p.BaseTraffic+2, p.TargetCount(2.5*p.DistancePerExtraAgent, 30))
	})

	t.Run("is non-decreasing and capped", func(t *testing.T) {
		const capacity = 30
		prev := 0
		for d := 0.0; d < 50000; d += 37 {
			got := p.TargetCount(d, capacity)
			assert.GreaterOrEqual(t, got, prev, "distance %.0f", d)
			assert.LessOrEqual(t, got, capacity, "distance %.0f", d)
			prev = got
		}
		assert.Equal(t, capacity, prev)
		assert.Equal(t, capacity, p.TargetCount(1e300, capacity))
	})

	t.Run("zero capacity", func(t *testing.T) {
		assert.Equal(t, 0, p.TargetCount(1000, 0))
	})

	t.Run("no ramp without a step distance", func(t *testing.T) {
		flat := p
		flat.DistancePerExtraAgent = 0
		assert.Equal(t, flat.BaseTraffic, flat.TargetCount(1e6, 30))
	})
}
