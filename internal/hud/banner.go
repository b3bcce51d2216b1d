package hud

import (
	"image/color"
	"math"
)

// Banner is a message that shows at full strength for the first third of its
// duration, then fades out.
type Banner struct {
	Duration  float64 // Seconds the banner stays up
	remaining float64
}

// NewBanner returns a hidden banner that lasts duration seconds when shown.
func NewBanner(duration float64) *Banner {
	return &Banner{Duration: duration}
}

// Show restarts the banner.
func (b *Banner) Show() {
	b.remaining = b.Duration
}

// Hide clears the banner immediately.
func (b *Banner) Hide() {
	b.remaining = 0
}

// Tick counts the banner down by dt seconds.
func (b *Banner) Tick(dt float64) {
	b.remaining = math.Max(0, b.remaining-dt)
}

// Visible reports whether any of the banner is still drawn.
func (b *Banner) Visible() bool {
	return b.remaining > 0
}

// Alpha returns the banner opacity in [0, 1].
func (b *Banner) Alpha() float64 {
	if b.Duration <= 0 {
		return 0
	}
	return math.Min(1, b.remaining/b.Duration*1.5)
}

// Tint applies the banner opacity to an opaque colour. The result is
// non-premultiplied so the colour channels stay as given.
func (b *Banner) Tint(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(255 * b.Alpha()))}
}
