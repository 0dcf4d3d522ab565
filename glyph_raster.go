package onyxfont

import "math"

import "github.com/devbrain/onyx-font/raster"

// RasterMode selects between hard-edged and antialiased rendering for
// glyph flavors that draw lines at render time (stroke fonts). Bitmap
// glyphs are inherently 1-bit and ignore it; outline glyphs are always
// antialiased by the scan converter.
type RasterMode uint8

const (
	// Aliased draws hard-edged lines (Bresenham).
	Aliased RasterMode = iota

	// Antialiased draws coverage-weighted lines (Wu).
	Antialiased
)

// RasterizeBitmapGlyph writes the inked pixels of the given bitmap
// glyph onto the target with full coverage, with the glyph's top-left
// corner at (x, y). Pixels falling outside the target are silently
// clipped by the target itself.
func RasterizeBitmapGlyph(target raster.Target, glyph BitmapGlyph, x, y int) {
	width, height := glyph.Width(), glyph.Height()
	for gy := 0; gy < height; gy++ {
		for gx := 0; gx < width; gx++ {
			if glyph.Pixel(gx, gy) {
				target.PutPixel(x + gx, y + gy, 255)
			}
		}
	}
}

// RasterizeStrokeGlyph replays the command list of the given stroke
// glyph onto the target, scaling each delta by the given factor. The
// pen starts down at (x, y); [StrokeMoveTo] repositions it and puts it
// down again, [StrokeLineTo] draws while it's down and [StrokeEnd]
// lifts it in place.
func RasterizeStrokeGlyph(target raster.Target, glyph *StrokeGlyph, x, y int, scale float64, mode RasterMode) {
	if glyph == nil { return }
	penX, penY := float64(x), float64(y)
	penDown := true
	for _, command := range glyph.Commands {
		switch command.Op {
		case StrokeMoveTo:
			penX += float64(command.DX)*scale
			penY += float64(command.DY)*scale
			penDown = true
		case StrokeLineTo:
			nextX := penX + float64(command.DX)*scale
			nextY := penY + float64(command.DY)*scale
			if penDown {
				if mode == Antialiased {
					raster.LineAA(target, penX, penY, nextX, nextY)
				} else {
					x0, y0 := int(math.Round(penX)), int(math.Round(penY))
					x1, y1 := int(math.Round(nextX)), int(math.Round(nextY))
					raster.Line(target, x0, y0, x1, y1)
				}
			}
			penX, penY = nextX, nextY
		case StrokeEnd:
			penDown = false
		}
	}
}
