package soak

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/golangdaddy/highwayrush/internal/config"
	"github.com/golangdaddy/highwayrush/internal/monitoring"
	"github.com/golangdaddy/highwayrush/models"
	"github.com/golangdaddy/highwayrush/traffic"
	"github.com/golangdaddy/highwayrush/vehicle"
)

// Options controls a soak run.
type Options struct {
	Duration       float64 // Simulated seconds
	Dt             float64 // Fixed tick in seconds
	SampleInterval float64 // Seconds between population samples
	Autopilot      Autopilot
}

// DefaultOptions runs five simulated minutes at 60 ticks per second.
func DefaultOptions() Options {
	return Options{
		Duration:       300,
		Dt:             1.0 / 60,
		SampleInterval: 1,
		Autopilot:      DefaultAutopilot(),
	}
}

func (o Options) validate() error {
	if o.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", o.Duration)
	}
	if o.Dt <= 0 || o.Dt > o.Duration {
		return fmt.Errorf("dt must be in (0, duration], got %f", o.Dt)
	}
	if o.SampleInterval < o.Dt {
		return fmt.Errorf("sample interval must be at least one tick, got %f", o.SampleInterval)
	}
	return nil
}

// Sample is one population reading.
type Sample struct {
	Time     float64
	Distance float64
	Active   int
	Target   int
}

// Report summarises a soak run.
type Report struct {
	RunID    string
	Seed     string
	Capacity int
	Lanes    int

	Duration   float64
	Distance   float64
	Score      int
	Crashes    int // Rising edges of the collision test
	NearMisses int
	PeakActive int

	// Samples where the population exceeded the pool or the difficulty target.
	PoolViolations int

	MeanActive float64
	StdActive  float64
	// Near misses per simulated minute, one value per sample window.
	MeanNearMissRate float64
	StdNearMissRate  float64

	Stats   traffic.Stats
	Samples []Sample
}

// Run drives a fresh engine built from tuning for opts.Duration simulated
// seconds behind the autopilot.
func Run(tuning *config.Tuning, opts Options) (*Report, error) {
	if tuning == nil {
		return nil, errors.New("soak: nil tuning")
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("soak: %w", err)
	}

	lanes := tuning.Road()
	engine := tuning.NewEngine(lanes)
	player := vehicle.NewPlayer(vehicle.DefaultHandling(), lanes)
	run := models.NewRun(models.DefaultScoring())

	report := &Report{
		RunID:    uuid.NewString(),
		Seed:     tuning.GetSeed(),
		Capacity: engine.Capacity(),
		Lanes:    lanes.LaneCount(),
	}
	engine.OnNearMiss = func() {
		report.NearMisses++
		run.RecordNearMiss()
	}

	steps := int(math.Round(opts.Duration / opts.Dt))
	every := int(math.Max(1, math.Round(opts.SampleInterval/opts.Dt)))
	monitoring.Logf("soak: run %s seed %q, %d ticks", report.RunID, report.Seed, steps)

	colliding := false
	lastNearMisses := 0
	var rates []float64
	for i := 1; i <= steps; i++ {
		before := player.Distance
		player.Update(opts.Dt, opts.Autopilot.Controls(player, engine, lanes), lanes)
		run.Tick(opts.Dt, player.Distance-before, player.Speed)

		engine.Update(opts.Dt, player.X, player.Z, player.Speed, player.Distance)

		hit := engine.CheckCollision(player.X, player.Z, player.HalfWidth, player.HalfLength)
		if hit && !colliding {
			report.Crashes++
		}
		colliding = hit

		active := engine.ActiveCount()
		if active > report.PeakActive {
			report.PeakActive = active
		}

		if i%every == 0 {
			s := Sample{
				Time:     float64(i) * opts.Dt,
				Distance: player.Distance,
				Active:   active,
				Target:   engine.TargetCount(player.Distance),
			}
			if s.Active > report.Capacity || s.Active > s.Target {
				report.PoolViolations++
			}
			report.Samples = append(report.Samples, s)

			window := float64(every) * opts.Dt
			rates = append(rates, float64(report.NearMisses-lastNearMisses)/window*60)
			lastNearMisses = report.NearMisses
		}
	}

	report.Duration = float64(steps) * opts.Dt
	report.Distance = player.Distance
	report.Score = run.Score
	report.Stats = engine.Stats()

	active := make([]float64, len(report.Samples))
	for i, s := range report.Samples {
		active[i] = float64(s.Active)
	}
	if len(active) > 0 {
		report.MeanActive, report.StdActive = stat.MeanStdDev(active, nil)
		report.MeanNearMissRate, report.StdNearMissRate = stat.MeanStdDev(rates, nil)
	}
	monitoring.Logf("soak: run %s done, %d crashes, %d near misses over %.0fm",
		report.RunID, report.Crashes, report.NearMisses, report.Distance)
	return report, nil
}
