// Command trafficsim runs the traffic engine headless behind an autopilot
// and reports population, near-miss and crash statistics.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/golangdaddy/highwayrush/internal/config"
	"github.com/golangdaddy/highwayrush/internal/monitoring"
	"github.com/golangdaddy/highwayrush/internal/soak"
)

func main() {
	var configPath string
	var seed string
	var plotPath string
	var quiet bool

	opts := soak.DefaultOptions()

	flag.StringVar(&configPath, "config", "", "path to traffic tuning JSON (defaults to built-in tuning)")
	flag.StringVar(&seed, "seed", "", "override the tuning seed")
	flag.Float64Var(&opts.Duration, "duration", opts.Duration, "simulated seconds")
	flag.Float64Var(&opts.Dt, "dt", opts.Dt, "fixed tick in seconds")
	flag.Float64Var(&opts.SampleInterval, "sample", opts.SampleInterval, "seconds between population samples")
	flag.Float64Var(&opts.Autopilot.TargetSpeed, "speed", opts.Autopilot.TargetSpeed, "autopilot target speed in km/h")
	flag.StringVar(&plotPath, "plot", "", "write a population PNG to this path")
	flag.BoolVar(&quiet, "quiet", false, "suppress engine logging")
	flag.Parse()

	tuning, err := config.LoadTuningOrDefault(configPath)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	if seed != "" {
		tuning.Seed = &seed
	}
	if quiet {
		monitoring.SetLogger(nil)
	}

	report, err := soak.Run(tuning, opts)
	if err != nil {
		log.Fatalf("soak run failed: %v", err)
	}
	if err := report.Write(os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}

	if plotPath != "" {
		if err := report.WritePlot(plotPath); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("wrote %s", plotPath)
	}
	if report.PoolViolations > 0 {
		os.Exit(1)
	}
}
