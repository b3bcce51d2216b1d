package soak

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Write prints a human readable summary of the report.
func (r *Report) Write(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("run        %s", r.RunID),
		fmt.Sprintf("seed       %q", r.Seed),
		fmt.Sprintf("pool       %d slots, %d lanes", r.Capacity, r.Lanes),
		fmt.Sprintf("simulated  %.1fs, %.0fm", r.Duration, r.Distance),
		fmt.Sprintf("score      %d", r.Score),
		fmt.Sprintf("crashes    %d", r.Crashes),
		fmt.Sprintf("near miss  %d (%.2f ± %.2f per minute)", r.NearMisses, r.MeanNearMissRate, r.StdNearMissRate),
		fmt.Sprintf("active     peak %d, mean %.2f ± %.2f", r.PeakActive, r.MeanActive, r.StdActive),
		fmt.Sprintf("spawns     %d ok, %d rejected, %d despawned", r.Stats.Spawned, r.Stats.SpawnRejected, r.Stats.Despawned),
		fmt.Sprintf("lane moves %d ok, %d blocked", r.Stats.LaneChanges, r.Stats.LaneChangesBlocked),
		fmt.Sprintf("violations %d", r.PoolViolations),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// WritePlot saves a PNG of active and target population against distance.
func (r *Report) WritePlot(path string) error {
	if ext := filepath.Ext(path); ext != ".png" {
		return fmt.Errorf("plot file must have .png extension, got %q", ext)
	}
	if len(r.Samples) == 0 {
		return fmt.Errorf("no samples to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Traffic population - seed %q", r.Seed)
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Agents"

	activePts := make(plotter.XYs, 0, len(r.Samples))
	targetPts := make(plotter.XYs, 0, len(r.Samples))
	for _, s := range r.Samples {
		activePts = append(activePts, plotter.XY{X: s.Distance, Y: float64(s.Active)})
		targetPts = append(targetPts, plotter.XY{X: s.Distance, Y: float64(s.Target)})
	}

	activeLine, err := plotter.NewLine(activePts)
	if err != nil {
		return fmt.Errorf("failed to build active line: %w", err)
	}
	activeLine.Color = color.RGBA{R: 30, G: 120, B: 220, A: 255}
	activeLine.Width = vg.Points(1)

	targetLine, err := plotter.NewLine(targetPts)
	if err != nil {
		return fmt.Errorf("failed to build target line: %w", err)
	}
	targetLine.Color = color.RGBA{R: 220, G: 60, B: 40, A: 255}
	targetLine.Width = vg.Points(1)
	targetLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(activeLine, targetLine)
	p.Legend.Add("active", activeLine)
	p.Legend.Add("target", targetLine)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = 10
	p.Legend.YOffs = -10

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
