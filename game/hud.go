package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highwayrush/background"
	"github.com/golangdaddy/highwayrush/gfx"
)

// drawHUD draws the speedometer, score, combo and near miss banner.
func (dv *DriveView) drawHUD(screen *ebiten.Image, theme background.Theme) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	pal := theme.Palette()

	dv.drawSpeedometer(screen, 12, 12, pal.Sky)

	score := fmt.Sprintf("%d", dv.run.Score)
	gfx.DrawText(screen, "SCORE", width-12-gfx.TextWidth("SCORE", 1.5), 16, 1.5, color.RGBA{200, 200, 200, 255})
	gfx.DrawText(screen, score, width-12-gfx.TextWidth(score, 2.5), 40, 2.5, color.RGBA{255, 255, 255, 255})

	if dv.run.Combo > 0 {
		combo := fmt.Sprintf("x%d", dv.run.Combo)
		gfx.DrawText(screen, combo, width-12-gfx.TextWidth(combo, 2), 80, 2, color.RGBA{255, 200, 50, 255})
		barW := 80.0
		gfx.FillRect(screen, width-12-barW, 112, barW, 4, color.RGBA{60, 60, 60, 255})
		gfx.FillRect(screen, width-12-barW, 112, barW*dv.run.ComboRemaining(), 4, color.RGBA{255, 200, 50, 255})
	}

	if dv.nearMiss.Visible() {
		gfx.DrawTextCentered(screen, "NEAR MISS!", width/2, height/3, 3, dv.nearMiss.Tint(color.RGBA{255, 120, 40, 255}))
	}

	info := fmt.Sprintf("%.1f km  %s", dv.player.Distance/1000, theme)
	gfx.DrawText(screen, info, 12, height-28, 1.5, color.RGBA{220, 220, 220, 255})
}

// drawSpeedometer draws the speed readout and gauge in km/h.
func (dv *DriveView) drawSpeedometer(screen *ebiten.Image, x, y float64, panel color.RGBA) {
	width, height := 150.0, 96.0
	speed := dv.player.Speed
	maxSpeed := dv.player.Handling().MaxSpeed

	gfx.FillRect(screen, x, y, width, height, panel)
	gfx.StrokeRect(screen, x, y, width, height, 2, color.RGBA{100, 100, 120, 255})

	// Green for normal, yellow for fast, red for flat out.
	fraction := math.Min(speed/maxSpeed, 1)
	var speedColor color.RGBA
	switch {
	case fraction < 0.6:
		speedColor = color.RGBA{100, 255, 100, 255}
	case fraction < 0.85:
		speedColor = color.RGBA{255, 255, 100, 255}
	default:
		speedColor = color.RGBA{255, 100, 100, 255}
	}
	gfx.DrawTextCentered(screen, fmt.Sprintf("%.0f", speed), x+width/2, y+12, 3, speedColor)
	gfx.DrawTextCentered(screen, "KM/H", x+width/2, y+52, 1.5, color.RGBA{200, 200, 200, 255})

	gx, gy, gw, gh := x+10, y+height-20, width-20, 10.0
	gfx.FillRect(screen, gx, gy, gw, gh, color.RGBA{40, 40, 40, 255})
	gfx.FillRect(screen, gx, gy, gw*fraction, gh, speedColor)
	gfx.StrokeRect(screen, gx, gy, gw, gh, 1, color.RGBA{150, 150, 150, 255})
}
