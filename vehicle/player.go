package vehicle

import "math"

// Lanes is the lane geometry the player steers across.
type Lanes interface {
	LaneCount() int
	LaneToX(lane int) float64
	ClampLane(lane int) int
}

// Controls is one tick of driver input. Left and Right are edge triggered:
// each true value moves one lane.
type Controls struct {
	Throttle bool
	Brake    bool
	Left     bool
	Right    bool
}

// Handling tunes the player car. Speeds are km/h, rates km/h per second and
// lateral speed metres per second.
type Handling struct {
	MinSpeed     float64
	CruiseSpeed  float64
	MaxSpeed     float64
	Acceleration float64
	Braking      float64
	Coast        float64 // Rate of return to cruise speed with no input
	LateralSpeed float64
	HalfWidth    float64
	HalfLength   float64
	StartLane    int
}

// DefaultHandling returns the standard player car.
func DefaultHandling() Handling {
	return Handling{
		MinSpeed:     80,
		CruiseSpeed:  130,
		MaxSpeed:     220,
		Acceleration: 40,
		Braking:      90,
		Coast:        15,
		LateralSpeed: 9,
		HalfWidth:    0.9,
		HalfLength:   2.1,
		StartLane:    1,
	}
}

// Player is the player's car in world space.
type Player struct {
	X, Z       float64
	Speed      float64 // km/h
	Lane       int     // Lane the car is steering toward
	Distance   float64 // Metres driven since Reset
	Tilt       float64 // -1 steering left, 1 steering right, 0 straight
	HalfWidth  float64
	HalfLength float64

	handling Handling
}

// NewPlayer places a new car at the start of the road.
func NewPlayer(handling Handling, lanes Lanes) *Player {
	p := &Player{handling: handling}
	p.Reset(lanes)
	return p
}

// Reset returns the car to its start lane at Z = 0 and cruise speed.
func (p *Player) Reset(lanes Lanes) {
	lane := lanes.ClampLane(p.handling.StartLane)
	*p = Player{
		X:          lanes.LaneToX(lane),
		Speed:      p.handling.CruiseSpeed,
		Lane:       lane,
		HalfWidth:  p.handling.HalfWidth,
		HalfLength: p.handling.HalfLength,
		handling:   p.handling,
	}
}

// Handling returns the car's tuning.
func (p *Player) Handling() Handling {
	return p.handling
}

// Update applies one tick of input and advances the car by dt seconds.
func (p *Player) Update(dt float64, in Controls, lanes Lanes) {
	if dt <= 0 {
		return
	}
	h := p.handling

	switch {
	case in.Throttle && !in.Brake:
		p.Speed += h.Acceleration * dt
	case in.Brake:
		p.Speed -= h.Braking * dt
	case p.Speed > h.CruiseSpeed:
		p.Speed = math.Max(h.CruiseSpeed, p.Speed-h.Coast*dt)
	case p.Speed < h.CruiseSpeed:
		p.Speed = math.Min(h.CruiseSpeed, p.Speed+h.Coast*dt)
	}
	p.Speed = math.Min(math.Max(p.Speed, h.MinSpeed), h.MaxSpeed)

	if in.Left && !in.Right {
		p.Lane = lanes.ClampLane(p.Lane - 1)
	}
	if in.Right && !in.Left {
		p.Lane = lanes.ClampLane(p.Lane + 1)
	}

	// Slide toward the lane centre at a fixed rate and snap on arrival.
	targetX := lanes.LaneToX(p.Lane)
	step := h.LateralSpeed * dt
	diff := targetX - p.X
	switch {
	case diff > step:
		p.X += step
		p.Tilt = 1
	case diff < -step:
		p.X -= step
		p.Tilt = -1
	default:
		p.X = targetX
		p.Tilt = 0
	}

	moved := p.Speed / 3.6 * dt
	p.Z += moved
	p.Distance += moved
}
