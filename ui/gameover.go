package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highwayrush/gfx"
	"github.com/golangdaddy/highwayrush/models"
)

// GameOverScreen is drawn over the frozen drive view after a crash.
type GameOverScreen struct {
	run       *models.Run
	newBest   bool
	onRestart func()
}

// NewGameOverScreen shows the result of run.
func NewGameOverScreen(run *models.Run, newBest bool, onRestart func()) *GameOverScreen {
	return &GameOverScreen{run: run, newBest: newBest, onRestart: onRestart}
}

// Update waits for the restart key.
func (gs *GameOverScreen) Update() error {
	if startPressed() && gs.onRestart != nil {
		gs.onRestart()
	}
	return nil
}

// Draw renders the result panel.
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	gfx.FillRect(screen, 0, 0, width, height, color.RGBA{0, 0, 0, 160})

	cx := width / 2
	y := height / 4
	gfx.DrawTextCentered(screen, "CRASHED", cx, y, 5, color.RGBA{255, 80, 60, 255})
	if gs.newBest {
		gfx.DrawTextCentered(screen, "NEW BEST!", cx, y+70, 2, color.RGBA{255, 200, 50, 255})
	}

	lines := []string{
		fmt.Sprintf("SCORE       %d", gs.run.Score),
		fmt.Sprintf("DISTANCE    %.2f km", gs.run.Distance/1000),
		fmt.Sprintf("NEAR MISSES %d", gs.run.NearMisses),
		fmt.Sprintf("BEST COMBO  x%d", gs.run.BestCombo),
		fmt.Sprintf("TOP SPEED   %.0f km/h", gs.run.TopSpeed),
	}
	for i, line := range lines {
		gfx.DrawTextCentered(screen, line, cx, y+110+float64(i)*28, 1.5, color.RGBA{220, 220, 230, 255})
	}
	gfx.DrawTextCentered(screen, "Press ENTER or SPACE to drive again", cx, height-60, 1.5, color.RGBA{150, 200, 255, 255})
}
