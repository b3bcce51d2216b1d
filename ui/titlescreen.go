package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/highwayrush/gfx"
	"github.com/golangdaddy/highwayrush/models"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	career         *models.Career
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(career *models.Career, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		career:         career,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if startPressed() && ts.onStartPressed != nil {
		ts.onStartPressed()
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := width / 2
	centerY := height / 3

	// Pulsing title, 1.0 to 1.1 scale.
	titleScale := 6.0 * (1.0 + 0.1*math.Sin(elapsed*2.0))
	brightness := math.Min(1.0, 1.0+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	gfx.DrawTextCentered(screen, "HIGHWAY RUSH", centerX, centerY-8, titleScale, titleColor)
	gfx.DrawTextCentered(screen, "Weave through traffic. Don't touch.", centerX, centerY+80, 1.5, color.RGBA{180, 180, 200, 255})

	if ts.career != nil && ts.career.Runs > 0 {
		best := fmt.Sprintf("BEST %d   %.1f km", ts.career.BestScore, ts.career.BestDistance/1000)
		gfx.DrawTextCentered(screen, best, centerX, centerY+120, 1.5, color.RGBA{255, 200, 50, 255})
	}

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		gfx.DrawTextCentered(screen, "Press ENTER or SPACE to Start", centerX, height-100, 1.5, color.RGBA{150, 200, 255, 255})
	}

	lineColor := color.RGBA{50, 60, 80, 100}
	gfx.FillRect(screen, 0, height/6, width, 2, lineColor)
	gfx.FillRect(screen, 0, height*5/6, width, 2, lineColor)
}

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
