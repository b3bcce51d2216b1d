package soak

import (
	"github.com/golangdaddy/highwayrush/traffic"
	"github.com/golangdaddy/highwayrush/vehicle"
)

// Autopilot drives the player car through traffic without input. It holds a
// target speed and dodges into an adjacent lane when its own lane is blocked
// ahead, braking when neither neighbour is free.
type Autopilot struct {
	TargetSpeed float64 // km/h
	LookAhead   float64 // Metres ahead checked for blocking traffic
	LookBehind  float64 // Metres behind checked before moving into a lane
}

// DefaultAutopilot returns an autopilot tuned for the default handling.
func DefaultAutopilot() Autopilot {
	return Autopilot{
		TargetSpeed: 150,
		LookAhead:   40,
		LookBehind:  10,
	}
}

// Controls returns this tick's input for p.
func (ap Autopilot) Controls(p *vehicle.Player, e *traffic.Engine, lanes traffic.Lanes) vehicle.Controls {
	var in vehicle.Controls
	switch {
	case p.Speed < ap.TargetSpeed:
		in.Throttle = true
	case p.Speed > ap.TargetSpeed+5:
		in.Brake = true
	}

	if !ap.blocked(p, e, p.Lane, 0, ap.LookAhead) {
		return in
	}
	// Mid-manoeuvre: keep going and slow down.
	if p.Tilt != 0 {
		in.Throttle, in.Brake = false, true
		return in
	}
	for _, dir := range []int{-1, 1} {
		lane := p.Lane + dir
		if lane < 0 || lane >= lanes.LaneCount() {
			continue
		}
		if !ap.blocked(p, e, lane, -ap.LookBehind, ap.LookAhead) {
			in.Left, in.Right = dir < 0, dir > 0
			return in
		}
	}
	in.Throttle, in.Brake = false, true
	return in
}

// blocked reports whether any agent holds or is moving into lane between
// from and to metres relative to the player.
func (ap Autopilot) blocked(p *vehicle.Player, e *traffic.Engine, lane int, from, to float64) bool {
	hit := false
	e.ForEachActive(func(_ int, a traffic.Agent) {
		if hit || (a.Lane != lane && a.TargetLane != lane) {
			return
		}
		dz := a.Z - p.Z
		margin := a.HalfLength + p.HalfLength
		if dz > from-margin && dz < to+margin {
			hit = true
		}
	})
	return hit
}
