// Package gfx holds the rectangle and text helpers shared by the screens.
package gfx

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	pixel *ebiten.Image
	face  text.Face
)

// FillRect draws a solid rectangle in screen pixels.
func FillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(pixel, op)
}

// StrokeRect draws a rectangle outline of the given thickness.
func StrokeRect(dst *ebiten.Image, x, y, w, h, thickness float64, clr color.Color) {
	FillRect(dst, x, y, w, thickness, clr)
	FillRect(dst, x, y+h-thickness, w, thickness, clr)
	FillRect(dst, x, y, thickness, h, clr)
	FillRect(dst, x+w-thickness, y, thickness, h, clr)
}

// Face returns the bitmap font face used for all text.
func Face() text.Face {
	if face == nil {
		face = text.NewGoXFace(bitmapfont.Face)
	}
	return face
}

// TextWidth returns the width of s drawn at scale.
func TextWidth(s string, scale float64) float64 {
	return text.Advance(s, Face()) * scale
}

// DrawText draws s with its top-left corner at x, y.
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, Face(), op)
}

// DrawTextCentered draws s horizontally centred on cx.
func DrawTextCentered(dst *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	DrawText(dst, s, cx-TextWidth(s, scale)/2, y, scale, clr)
}
