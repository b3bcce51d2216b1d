package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highwayrush/background"
	"github.com/golangdaddy/highwayrush/gfx"
	"github.com/golangdaddy/highwayrush/road"
)

const (
	dashLength = 3.0 // metres
	dashGap    = 6.0
	edgeWidth  = 3.0 // pixels
	lineWidth  = 2.0
)

// drawRoad draws the carriageway. Dashes are anchored to world z so they
// scroll past at the player's speed.
func drawRoad(screen *ebiten.Image, r *road.Road, view road.View, pal background.Palette) {
	height := float64(screen.Bounds().Dy())
	half := r.Width() / 2

	left, _ := view.ToScreen(-half, view.CameraZ)
	right, _ := view.ToScreen(half, view.CameraZ)
	gfx.FillRect(screen, left, 0, right-left, height, pal.Surface)

	// Visible world z range, bottom of the screen to the top.
	zLow := view.CameraZ - (height-view.AnchorY)/view.PixelsPerMeter
	zHigh := view.CameraZ + view.AnchorY/view.PixelsPerMeter
	period := dashLength + dashGap

	for lane := 1; lane < r.LaneCount(); lane++ {
		x, _ := view.ToScreen(-half+float64(lane)*r.LaneWidth, view.CameraZ)
		for z := math.Floor(zLow/period) * period; z < zHigh; z += period {
			_, yTop := view.ToScreen(0, z+dashLength)
			_, yBottom := view.ToScreen(0, z)
			gfx.FillRect(screen, x-lineWidth/2, yTop, lineWidth, yBottom-yTop, pal.Divider)
		}
	}

	gfx.FillRect(screen, left-edgeWidth/2, 0, edgeWidth, height, pal.Edge)
	gfx.FillRect(screen, right-edgeWidth/2, 0, edgeWidth, height, pal.Edge)
}
