package models

// Career tracks records across runs in one session.
type Career struct {
	Runs            int     // Runs completed
	BestScore       int     // Highest single-run score
	BestDistance    float64 // Longest run in metres
	BestCombo       int     // Highest combo multiplier
	TopSpeedReached float64 // Highest speed achieved in km/h
	TotalDistance   float64 // Metres driven across all runs
	NearMisses      int     // Near misses across all runs
	Crashes         int     // Number of crashes
}

// Record folds a finished run into the career. It reports whether the run
// set a new best score.
func (c *Career) Record(r *Run) bool {
	c.Runs++
	c.TotalDistance += r.Distance
	c.NearMisses += r.NearMisses
	if r.Crashed {
		c.Crashes++
	}
	if r.Distance > c.BestDistance {
		c.BestDistance = r.Distance
	}
	if r.BestCombo > c.BestCombo {
		c.BestCombo = r.BestCombo
	}
	if r.TopSpeed > c.TopSpeedReached {
		c.TopSpeedReached = r.TopSpeed
	}
	if r.Score > c.BestScore {
		c.BestScore = r.Score
		return true
	}
	return false
}
