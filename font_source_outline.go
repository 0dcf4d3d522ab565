package onyxfont

import "math"
import "image"
import "image/draw"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/vector"

import "github.com/devbrain/onyx-font/raster"

// outlineScaler bundles an sfnt font with the scratch state needed to
// scale and scan-convert its outlines. The sfnt buffer and the vector
// rasterizer are reused across calls, which is what makes the whole
// struct unsafe for concurrent use.
type outlineScaler struct {
	font *sfnt.Font
	buffer sfnt.Buffer
	rasterizer vector.Rasterizer
}

func newOutlineScaler(sfntFont *sfnt.Font) *outlineScaler {
	return &outlineScaler{ font: sfntFont }
}

// toPpem converts a size in pixels to the 26.6 fixed point value the
// sfnt API expects.
func toPpem(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size*64))
}

func fromFixed(value fixed.Int26_6) float64 {
	return float64(value)/64.0
}

// GlyphIndex returns the glyph index of the given code point, which is
// zero when the font does not cover it.
func (self *outlineScaler) GlyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return 0 }
	return index
}

// resolveIndex falls back to the '?' glyph for code points the font
// does not cover. The second result is false when not even the
// fallback exists.
func (self *outlineScaler) resolveIndex(codePoint rune) (sfnt.GlyphIndex, bool) {
	index := self.GlyphIndex(codePoint)
	if index == 0 { index = self.GlyphIndex('?') }
	return index, index != 0
}

func (self *outlineScaler) ScaledMetrics(size float64) ScaledMetrics {
	metrics, err := self.font.Metrics(&self.buffer, toPpem(size), font.HintingNone)
	if err != nil { return ScaledMetrics{} }
	ascent := fromFixed(metrics.Ascent)
	descent := fromFixed(metrics.Descent)
	lineGap := fromFixed(metrics.Height) - ascent - descent
	if lineGap < 0 { lineGap = 0 }
	return ScaledMetrics{
		Ascent: ascent,
		Descent: descent,
		LineGap: lineGap,
		LineHeight: ascent + descent + lineGap,
	}
}

func (self *outlineScaler) GlyphMetrics(codePoint rune, size float64) GlyphMetrics {
	index, ok := self.resolveIndex(codePoint)
	if !ok { return GlyphMetrics{} }

	ppem := toPpem(size)
	bounds, advance, err := self.font.GlyphBounds(&self.buffer, index, ppem, font.HintingNone)
	if err != nil { return GlyphMetrics{} }

	// bounds grow downwards, so Min.Y is negative above the baseline
	return GlyphMetrics{
		AdvanceX: fromFixed(advance),
		BearingX: fromFixed(bounds.Min.X),
		BearingY: fromFixed(-bounds.Min.Y),
		Width: fromFixed(bounds.Max.X - bounds.Min.X),
		Height: fromFixed(bounds.Max.Y - bounds.Min.Y),
	}
}

func (self *outlineScaler) Kern(prev, curr rune, size float64) float64 {
	prevIndex := self.GlyphIndex(prev)
	currIndex := self.GlyphIndex(curr)
	if prevIndex == 0 || currIndex == 0 { return 0 }
	kern, err := self.font.Kern(&self.buffer, prevIndex, currIndex, toPpem(size), font.HintingNone)
	if err != nil { return 0 } // sfnt.ErrNotFound for fonts without kern info
	return fromFixed(kern)
}

// Rasterize scan-converts the glyph outline and writes the resulting
// coverage onto the target, with (x, y) at the glyph origin on the
// baseline.
func (self *outlineScaler) Rasterize(target raster.Target, codePoint rune, size float64, x, y int) {
	index, ok := self.resolveIndex(codePoint)
	if !ok { return }

	segments, err := self.font.LoadGlyph(&self.buffer, index, toPpem(size), nil)
	if err != nil || len(segments) == 0 { return }

	bounds := segments.Bounds()
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	width := bounds.Max.X.Ceil() - minX
	height := bounds.Max.Y.Ceil() - minY
	if width <= 0 || height <= 0 { return }

	// the vector rasterizer only works in the positive quadrant, so
	// segments are shifted by the glyph's own bounds here and the mask
	// is shifted back when blitting
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src
	offsetX, offsetY := float32(-minX), float32(-minY)
	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			self.rasterizer.MoveTo(
				float32(segment.Args[0].X)/64 + offsetX,
				float32(segment.Args[0].Y)/64 + offsetY,
			)
		case sfnt.SegmentOpLineTo:
			self.rasterizer.LineTo(
				float32(segment.Args[0].X)/64 + offsetX,
				float32(segment.Args[0].Y)/64 + offsetY,
			)
		case sfnt.SegmentOpQuadTo:
			self.rasterizer.QuadTo(
				float32(segment.Args[0].X)/64 + offsetX,
				float32(segment.Args[0].Y)/64 + offsetY,
				float32(segment.Args[1].X)/64 + offsetX,
				float32(segment.Args[1].Y)/64 + offsetY,
			)
		case sfnt.SegmentOpCubeTo:
			self.rasterizer.CubeTo(
				float32(segment.Args[0].X)/64 + offsetX,
				float32(segment.Args[0].Y)/64 + offsetY,
				float32(segment.Args[1].X)/64 + offsetX,
				float32(segment.Args[1].Y)/64 + offsetY,
				float32(segment.Args[2].X)/64 + offsetX,
				float32(segment.Args[2].Y)/64 + offsetY,
			)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for row := 0; row < height; row++ {
		span := mask.Pix[row*mask.Stride : row*mask.Stride + width]
		raster.PutSpanOn(target, x + minX, y + minY + row, span)
	}
}
