package road

// Road is a straight multi-lane carriageway centred on world X = 0.
// Lane 0 is the leftmost lane. Distances are in metres.
type Road struct {
	NumLanes  int     // Number of lanes
	LaneWidth float64 // Width of each lane in metres
}

// NewRoad creates a road with the given lane count and lane width.
// A lane count below one is raised to one.
func NewRoad(numLanes int, laneWidth float64) *Road {
	if numLanes < 1 {
		numLanes = 1
	}
	return &Road{
		NumLanes:  numLanes,
		LaneWidth: laneWidth,
	}
}

// LaneCount returns the number of lanes.
func (r *Road) LaneCount() int {
	return r.NumLanes
}

// Width returns the full carriageway width.
func (r *Road) Width() float64 {
	return float64(r.NumLanes) * r.LaneWidth
}

// LaneToX returns the world X coordinate of the centre of the given lane.
// It is a pure function of the lane index and the road geometry; indices
// outside the road are extrapolated rather than clamped.
func (r *Road) LaneToX(lane int) float64 {
	return (float64(lane) - float64(r.NumLanes-1)/2) * r.LaneWidth
}

// ClampLane limits a lane index to the lanes that exist.
func (r *Road) ClampLane(lane int) int {
	if lane < 0 {
		return 0
	}
	if lane >= r.NumLanes {
		return r.NumLanes - 1
	}
	return lane
}

// View maps world coordinates onto the screen. The camera point is drawn at
// (AnchorX, AnchorY); world Z increases up the screen.
type View struct {
	CameraX        float64
	CameraZ        float64
	PixelsPerMeter float64
	AnchorX        float64
	AnchorY        float64
}

// ToScreen converts a world position to screen pixels.
func (v View) ToScreen(x, z float64) (float64, float64) {
	return v.AnchorX + (x-v.CameraX)*v.PixelsPerMeter, v.AnchorY - (z-v.CameraZ)*v.PixelsPerMeter
}
