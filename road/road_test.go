package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaneToX(t *testing.T) {
	r := NewRoad(4, 3.5)

	assert.InDelta(t, -5.25, r.LaneToX(0), 1e-9)
	assert.InDelta(t, -1.75, r.LaneToX(1), 1e-9)
	assert.InDelta(t, 1.75, r.LaneToX(2), 1e-9)
	assert.InDelta(t, 5.25, r.LaneToX(3), 1e-9)
	assert.InDelta(t, 14.0, r.Width(), 1e-9)

	t.Run("odd lane count centres the middle lane", func(t *testing.T) {
		r := NewRoad(3, 4)
		assert.InDelta(t, 0, r.LaneToX(1), 1e-9)
		assert.InDelta(t, -4, r.LaneToX(0), 1e-9)
	})
}

func TestClampLane(t *testing.T) {
	r := NewRoad(4, 3.5)
	assert.Equal(t, 0, r.ClampLane(-1))
	assert.Equal(t, 2, r.ClampLane(2))
	assert.Equal(t, 3, r.ClampLane(4))
}

func TestNewRoadMinimumLanes(t *testing.T) {
	r := NewRoad(0, 3.5)
	assert.Equal(t, 1, r.LaneCount())
	assert.Equal(t, 0, r.ClampLane(5))
	assert.Equal(t, 0, r.ClampLane(-2))
}

func TestViewToScreen(t *testing.T) {
	v := View{CameraX: 1, CameraZ: 100, PixelsPerMeter: 10, AnchorX: 320, AnchorY: 400}
	x, y := v.ToScreen(1, 100)
	assert.Equal(t, 320.0, x)
	assert.Equal(t, 400.0, y)

	x, y = v.ToScreen(3, 110)
	assert.Equal(t, 340.0, x)
	assert.Equal(t, 300.0, y, "points ahead are drawn higher up the screen")
}
