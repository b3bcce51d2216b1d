package car

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highwayrush/road"
	"github.com/golangdaddy/highwayrush/traffic"
)

// PlayerColor is the player's car.
var PlayerColor = color.RGBA{100, 150, 255, 255}

var (
	compactColors = []color.RGBA{{220, 70, 60, 255}, {240, 180, 40, 255}, {90, 200, 120, 255}}
	midColors     = []color.RGBA{{200, 200, 210, 255}, {60, 60, 70, 255}, {150, 90, 200, 255}, {230, 120, 40, 255}}
	largeColors   = []color.RGBA{{240, 240, 230, 255}, {70, 110, 60, 255}}
)

type spriteKey struct {
	w, h int
	c    color.RGBA
}

var sprites = map[spriteKey]*ebiten.Image{}

// AgentColor picks a stable body colour for a traffic slot.
func AgentColor(arch traffic.Archetype, slot int) color.RGBA {
	var palette []color.RGBA
	switch arch {
	case traffic.ArchetypeCompact:
		palette = compactColors
	case traffic.ArchetypeLarge:
		palette = largeColors
	default:
		palette = midColors
	}
	return palette[slot%len(palette)]
}

// RenderAgent draws one traffic agent through view.
func RenderAgent(screen *ebiten.Image, view road.View, slot int, a traffic.Agent) {
	x, y := view.ToScreen(a.X, a.Z)
	// Lean into the lane change while the agent is moving across.
	var angle float64
	if a.ChangingLane() {
		angle = 4 * math.Copysign(1, float64(a.TargetLane-a.Lane))
	}
	RenderCar(screen, x, y,
		2*a.HalfWidth*view.PixelsPerMeter, 2*a.HalfLength*view.PixelsPerMeter,
		angle, AgentColor(a.Archetype, slot))
}

// RenderCar renders a top-down car centred on x, y. Width and height are in
// pixels and angle is in degrees, positive leaning right.
func RenderCar(screen *ebiten.Image, x, y, width, height, angle float64, carColor color.RGBA) {
	carImg := sprite(int(math.Round(width)), int(math.Round(height)), carColor)
	if carImg == nil {
		return
	}
	w, h := carImg.Bounds().Dx(), carImg.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(angle * math.Pi / 180)
	op.GeoM.Translate(x, y)
	screen.DrawImage(carImg, op)
}

// sprite builds the car image once per size and colour.
func sprite(w, h int, body color.RGBA) *ebiten.Image {
	if w < 4 || h < 4 {
		return nil
	}
	key := spriteKey{w, h, body}
	if img, ok := sprites[key]; ok {
		return img
	}

	carWidth, carHeight := float64(w), float64(h)
	carImg := ebiten.NewImage(w, h)
	carImg.Fill(body)

	// Outline
	outline := color.RGBA{20, 20, 20, 255}
	fill(carImg, 0, 0, carWidth, 2, outline)
	fill(carImg, 0, carHeight-2, carWidth, 2, outline)
	fill(carImg, 0, 0, 2, carHeight, outline)
	fill(carImg, carWidth-2, 0, 2, carHeight, outline)

	// Windshield at the front (top of the sprite), rear window behind.
	glass := color.RGBA{150, 200, 255, 200}
	fill(carImg, carWidth*0.2, carHeight*0.18, carWidth*0.6, carHeight*0.16, glass)
	fill(carImg, carWidth*0.25, carHeight*0.78, carWidth*0.5, carHeight*0.08, glass)

	// Wheels
	wheel := color.RGBA{30, 30, 30, 255}
	wheelW, wheelH := math.Max(2, carWidth*0.2), math.Max(2, carHeight*0.16)
	fill(carImg, -1, carHeight*0.1, wheelW, wheelH, wheel)
	fill(carImg, carWidth-wheelW+1, carHeight*0.1, wheelW, wheelH, wheel)
	fill(carImg, -1, carHeight*0.9-wheelH, wheelW, wheelH, wheel)
	fill(carImg, carWidth-wheelW+1, carHeight*0.9-wheelH, wheelW, wheelH, wheel)

	sprites[key] = carImg
	return carImg
}

func fill(img *ebiten.Image, x, y, w, h float64, c color.Color) {
	iw, ih := int(math.Round(w)), int(math.Round(h))
	if iw <= 0 || ih <= 0 {
		return
	}
	part := ebiten.NewImage(iw, ih)
	part.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	img.DrawImage(part, op)
}
