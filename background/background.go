package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highwayrush/traffic"
)

// Theme is the scenery along the road. It never affects the simulation.
type Theme int

const (
	ThemeCountryside Theme = iota
	ThemeDesert
	ThemeNight
	themeCount
)

// ThemeLength is how many metres each theme lasts before the next one.
const ThemeLength = 2000.0

// ThemeAt returns the theme for a distance driven. Themes rotate in order.
func ThemeAt(distance float64) Theme {
	if distance < 0 {
		distance = 0
	}
	return Theme(int(distance/ThemeLength) % int(themeCount))
}

func (t Theme) String() string {
	switch t {
	case ThemeCountryside:
		return "countryside"
	case ThemeDesert:
		return "desert"
	case ThemeNight:
		return "night"
	default:
		return "unknown"
	}
}

// Palette is the road colouring for a theme.
type Palette struct {
	Surface color.RGBA
	Divider color.RGBA
	Edge    color.RGBA
	Sky     color.RGBA // HUD panel tint
}

// Palette returns the road colours for t.
func (t Theme) Palette() Palette {
	switch t {
	case ThemeDesert:
		return Palette{
			Surface: color.RGBA{90, 80, 70, 255},
			Divider: color.RGBA{255, 255, 255, 255},
			Edge:    color.RGBA{240, 220, 180, 255},
			Sky:     color.RGBA{60, 40, 20, 200},
		}
	case ThemeNight:
		return Palette{
			Surface: color.RGBA{30, 30, 38, 255},
			Divider: color.RGBA{200, 200, 120, 255},
			Edge:    color.RGBA{160, 160, 170, 255},
			Sky:     color.RGBA{10, 10, 25, 220},
		}
	default:
		return Palette{
			Surface: color.RGBA{60, 60, 60, 255},
			Divider: color.RGBA{255, 255, 0, 255},
			Edge:    color.RGBA{255, 255, 255, 255},
			Sky:     color.RGBA{20, 20, 30, 200},
		}
	}
}

// Generator creates verge textures that tile vertically.
type Generator struct {
	Width  int
	Height int
	Seed   string

	cache map[Theme]*ebiten.Image
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int, seed string) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
		Seed:   seed,
		cache:  map[Theme]*ebiten.Image{},
	}
}

// Tile returns the verge texture for t, generating it on first use.
func (g *Generator) Tile(t Theme) *ebiten.Image {
	if img, ok := g.cache[t]; ok {
		return img
	}
	rng := traffic.NewDeterministicRNG(g.Seed, "verge-"+t.String())
	var img *ebiten.Image
	switch t {
	case ThemeDesert:
		img = g.generateDesert(rng)
	case ThemeNight:
		img = g.generateNight(rng)
	default:
		img = g.generateCountryside(rng)
	}
	g.cache[t] = img
	return img
}

// Draw fills screen with the verge for t, scrolled so that scenery moves with
// the world. offset is the world scroll in pixels.
func (g *Generator) Draw(screen *ebiten.Image, t Theme, offset float64) {
	tile := g.Tile(t)
	h := float64(g.Height)
	shift := math.Mod(offset, h)
	if shift < 0 {
		shift += h
	}
	for y := shift - h; y < float64(screen.Bounds().Dy()); y += h {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(tile, op)
	}
}

func (g *Generator) generateCountryside(rng *rand.Rand) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)

	// Base grass layer (dark rich green)
	img.Fill(color.RGBA{30, 100, 30, 255})
	g.speckle(img, rng, func() color.RGBA {
		return color.RGBA{30, uint8(80 + rng.Intn(60)), 30, 255}
	})

	for y := 0; y < g.Height; y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)
		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			drawX := x + rng.Intn(10) - 5
			drawY := y + rng.Intn(10) - 5
			if rng.Float64() < 0.3 {
				g.drawTree(img, drawX, drawY, rng)
			} else {
				g.drawBush(img, drawX, drawY, rng, color.RGBA{
					uint8(40 + rng.Intn(40)),
					uint8(100 + rng.Intn(50)),
					uint8(40 + rng.Intn(40)),
					255,
				})
			}
		}
	}
	return img
}

func (g *Generator) generateDesert(rng *rand.Rand) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	img.Fill(color.RGBA{210, 180, 120, 255})
	g.speckle(img, rng, func() color.RGBA {
		shade := uint8(150 + rng.Intn(60))
		return color.RGBA{shade + 30, shade, 100, 255}
	})

	for i := 0; i < g.Width*g.Height/4000; i++ {
		x, y := rng.Intn(g.Width), rng.Intn(g.Height)
		if rng.Float64() < 0.4 {
			g.drawCactus(img, x, y, rng)
		} else {
			grey := uint8(110 + rng.Intn(50))
			g.drawBush(img, x, y, rng, color.RGBA{grey, grey - 10, grey - 20, 255})
		}
	}
	return img
}

func (g *Generator) generateNight(rng *rand.Rand) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	img.Fill(color.RGBA{8, 20, 12, 255})
	g.speckle(img, rng, func() color.RGBA {
		return color.RGBA{10, uint8(20 + rng.Intn(25)), 15, 255}
	})

	// Street lights along both verges.
	lamp := color.RGBA{255, 220, 140, 255}
	glow := color.RGBA{80, 70, 40, 255}
	for y := 20; y < g.Height; y += 120 {
		for _, x := range []int{g.Width/2 - 150, g.Width/2 + 150} {
			g.drawBush(img, x, y, rng, glow)
			g.set(img, x, y, lamp)
			g.set(img, x+1, y, lamp)
			g.set(img, x, y+1, lamp)
			g.set(img, x+1, y+1, lamp)
		}
	}
	return img
}

func (g *Generator) speckle(img *ebiten.Image, rng *rand.Rand, shade func() color.RGBA) {
	for i := 0; i < g.Width*g.Height/10; i++ {
		g.set(img, rng.Intn(g.Width), rng.Intn(g.Height), shade())
	}
}

// drawTree draws a simple pine/forest tree
func (g *Generator) drawTree(img *ebiten.Image, x, y int, rng *rand.Rand) {
	height := 40 + rng.Intn(30)
	width := 20 + rng.Intn(15)

	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.Intn(4)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, trunkColor)
		}
	}

	leavesColor := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		layerY := y - (height / 3) - (l * height / 4)
		layerW := width - (l * 5)
		if layerW < 5 {
			layerW = 5
		}
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, layerY-ly, leavesColor)
			}
		}
	}
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *ebiten.Image, x, y int, rng *rand.Rand, c color.RGBA) {
	radius := 5 + rng.Intn(10)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

func (g *Generator) drawCactus(img *ebiten.Image, x, y int, rng *rand.Rand) {
	green := color.RGBA{60, uint8(120 + rng.Intn(40)), 60, 255}
	height := 20 + rng.Intn(20)
	for ty := 0; ty < height; ty++ {
		for tx := -2; tx <= 2; tx++ {
			g.set(img, x+tx, y-ty, green)
		}
	}
	arm := height / 2
	for i := 0; i < 6; i++ {
		g.set(img, x-3-i, y-arm, green)
		g.set(img, x+3+i, y-arm-4, green)
	}
	for i := 0; i < 8; i++ {
		g.set(img, x-8, y-arm-i, green)
		g.set(img, x+8, y-arm-4-i, green)
	}
}

func (g *Generator) set(img *ebiten.Image, x, y int, c color.Color) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.Set(x, y, c)
	}
}
