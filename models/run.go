package models

import "math"

// Scoring tunes how a run earns points.
type Scoring struct {
	PointsPerMeter float64 // Base points for each metre driven
	NearMissPoints int     // Points per near miss before the combo multiplier
	ComboWindow    float64 // Seconds a combo survives without another near miss
	MaxCombo       int     // Combo multiplier cap
}

// DefaultScoring returns the standard scoring rules.
func DefaultScoring() Scoring {
	return Scoring{
		PointsPerMeter: 0.1,
		NearMissPoints: 100,
		ComboWindow:    3,
		MaxCombo:       8,
	}
}

// Run holds the statistics for one drive, from start until the crash.
type Run struct {
	Distance   float64 // Metres driven
	Elapsed    float64 // Seconds driven
	Score      int     // Points earned
	NearMisses int     // Near misses credited
	Combo      int     // Current multiplier, 0 when no combo is live
	BestCombo  int     // Highest multiplier reached
	TopSpeed   float64 // Highest speed in km/h
	Crashed    bool    // The run has ended

	scoring    Scoring
	comboTimer float64
	points     float64 // Distance points not yet added to Score
}

// NewRun starts an empty run.
func NewRun(scoring Scoring) *Run {
	return &Run{scoring: scoring}
}

// Reset clears the run for a restart.
func (r *Run) Reset() {
	*r = Run{scoring: r.scoring}
}

// RecordNearMiss raises the combo and awards near-miss points at the new
// multiplier. Ignored once the run has crashed.
func (r *Run) RecordNearMiss() {
	if r.Crashed {
		return
	}
	r.NearMisses++
	if r.Combo < r.scoring.MaxCombo {
		r.Combo++
	}
	if r.Combo > r.BestCombo {
		r.BestCombo = r.Combo
	}
	r.comboTimer = r.scoring.ComboWindow
	r.Score += r.scoring.NearMissPoints * r.Combo
}

// Tick advances the run by dt seconds during which meters were driven at
// speed km/h.
func (r *Run) Tick(dt, meters, speed float64) {
	if r.Crashed || dt <= 0 {
		return
	}
	r.Elapsed += dt
	r.Distance += meters
	r.TopSpeed = math.Max(r.TopSpeed, speed)

	r.points += meters * r.scoring.PointsPerMeter
	whole := math.Floor(r.points)
	r.Score += int(whole)
	r.points -= whole

	if r.Combo > 0 {
		r.comboTimer -= dt
		if r.comboTimer <= 0 {
			r.Combo = 0
			r.comboTimer = 0
		}
	}
}

// ComboRemaining returns the fraction of the combo window still left, for
// HUD timers.
func (r *Run) ComboRemaining() float64 {
	if r.Combo == 0 || r.scoring.ComboWindow <= 0 {
		return 0
	}
	return r.comboTimer / r.scoring.ComboWindow
}

// Crash ends the run.
func (r *Run) Crash() {
	r.Crashed = true
	r.Combo = 0
	r.comboTimer = 0
}
