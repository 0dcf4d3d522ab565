package onyxfont

import "math"

import "github.com/devbrain/onyx-font/raster"

// A TextRasterizer measures and renders text strings directly onto a
// [raster.Target]. It decodes UTF-8, positions glyphs along the
// baseline and applies kerning; for cached rendering or higher level
// features such as alignment and wrapping, see [GlyphCache] and
// [TextRenderer] instead.
//
// TextRasterizers are not safe for concurrent use.
type TextRasterizer struct {
	source *FontSource
	size float64
	mode RasterMode
}

// NewTextRasterizer creates a text rasterizer for the given font
// source. The initial rendering size is 12 pixels.
func NewTextRasterizer(source *FontSource) *TextRasterizer {
	if source == nil { panic("nil FontSource") }
	return &TextRasterizer{ source: source, size: 12, mode: Antialiased }
}

// SetSize sets the rendering size in pixels. Bitmap fonts ignore the
// size and always render at their native pixel height.
func (self *TextRasterizer) SetSize(pixels float64) { self.size = pixels }

// Size returns the current rendering size in pixels.
func (self *TextRasterizer) Size() float64 { return self.size }

// SetRasterMode sets the raster mode used for stroke fonts.
func (self *TextRasterizer) SetRasterMode(mode RasterMode) { self.mode = mode }

// Source returns the underlying font source.
func (self *TextRasterizer) Source() *FontSource { return self.source }

// Metrics returns the font-wide vertical metrics at the current size.
// For bitmap fonts the native size takes precedence over the one set
// with [TextRasterizer.SetSize].
func (self *TextRasterizer) Metrics() ScaledMetrics {
	if self.source.Kind() == SourceBitmap {
		native := self.source.NativeSize()
		if native > 0 { return self.source.ScaledMetrics(native) }
	}
	return self.source.ScaledMetrics(self.size)
}

// LineHeight returns the baseline-to-baseline distance at the current
// size, which is ascent + descent + line gap.
func (self *TextRasterizer) LineHeight() float64 {
	return self.Metrics().LineHeight
}

// MeasureGlyph returns the metrics of a single glyph at the current
// size.
func (self *TextRasterizer) MeasureGlyph(codePoint rune) GlyphMetrics {
	return self.source.GlyphMetrics(codePoint, self.size)
}

// Kern returns the kerning adjustment between two consecutive code
// points at the current size.
func (self *TextRasterizer) Kern(prev, curr rune) float64 {
	return self.source.Kern(prev, curr, self.size)
}

// MeasureText returns the extents of the given text when rendered as a
// single line, kerning included. Newlines receive no special treatment
// here; use [TextRasterizer.MeasureWrapped] for multi-line text.
func (self *TextRasterizer) MeasureText(text string) TextExtents {
	var extents TextExtents
	if text == "" { return extents }

	metrics := self.Metrics()
	extents.Ascent = metrics.Ascent
	extents.Descent = metrics.Descent
	extents.Height = metrics.LineHeight

	penX := 0.0
	prev := rune(0)
	iterator := Codepoints(text)
	for {
		codePoint, ok := iterator.Next()
		if !ok { break }
		if prev != 0 { penX += self.source.Kern(prev, codePoint, self.size) }
		penX += self.source.GlyphMetrics(codePoint, self.size).AdvanceX
		prev = codePoint
	}

	extents.Width = penX
	return extents
}

// MeasureWrapped returns the extents of the given text if it were
// wrapped at the given maximum width. Wrapping happens at any
// character, and '\n' always forces a line break. A maxWidth of zero
// or less disables wrapping.
func (self *TextRasterizer) MeasureWrapped(text string, maxWidth float64) TextExtents {
	var extents TextExtents
	if text == "" { return extents }

	metrics := self.Metrics()
	extents.Ascent = metrics.Ascent
	extents.Descent = metrics.Descent

	lineWidth := 0.0
	maxLineWidth := 0.0
	lineCount := 1
	prev := rune(0)

	iterator := Codepoints(text)
	for {
		codePoint, ok := iterator.Next()
		if !ok { break }

		if codePoint == '\n' {
			if lineWidth > maxLineWidth { maxLineWidth = lineWidth }
			lineWidth = 0
			lineCount += 1
			prev = 0
			continue
		}

		kern := 0.0
		if prev != 0 { kern = self.source.Kern(prev, codePoint, self.size) }
		advance := self.source.GlyphMetrics(codePoint, self.size).AdvanceX

		if maxWidth > 0 && lineWidth + kern + advance > maxWidth && lineWidth > 0 {
			if lineWidth > maxLineWidth { maxLineWidth = lineWidth }
			lineWidth = advance // current glyph starts the new line
			lineCount += 1
			prev = 0
		} else {
			lineWidth += kern + advance
			prev = codePoint
		}
	}
	if lineWidth > maxLineWidth { maxLineWidth = lineWidth }

	extents.Width = maxLineWidth
	extents.Height = metrics.LineHeight*float64(lineCount)
	return extents
}

// RasterizeGlyph renders a single glyph onto the target, with (x, y)
// on the baseline at the glyph origin.
func (self *TextRasterizer) RasterizeGlyph(target raster.Target, codePoint rune, x, y int) {
	self.source.RasterizeGlyph(target, codePoint, self.size, x, y, self.mode)
}

// RasterizeText renders the given text onto the target, starting at x
// with the baseline at y, and returns the total advance in pixels.
func (self *TextRasterizer) RasterizeText(target raster.Target, text string, x, y int) float64 {
	return self.RasterizeTextFunc(target, text, x, y, nil)
}

// RasterizeTextFunc renders the given text like
// [TextRasterizer.RasterizeText], additionally invoking fn for each
// glyph with its code point, rendered position and metrics. A nil fn
// is allowed.
func (self *TextRasterizer) RasterizeTextFunc(target raster.Target, text string, x, y int, fn func(codePoint rune, x, y int, metrics GlyphMetrics)) float64 {
	if text == "" { return 0 }

	penX := float64(x)
	prev := rune(0)

	iterator := Codepoints(text)
	for {
		codePoint, ok := iterator.Next()
		if !ok { break }

		if prev != 0 { penX += self.source.Kern(prev, codePoint, self.size) }
		metrics := self.source.GlyphMetrics(codePoint, self.size)

		glyphX := int(math.Round(penX))
		self.source.RasterizeGlyph(target, codePoint, self.size, glyphX, y, self.mode)
		if fn != nil { fn(codePoint, glyphX, y, metrics) }

		penX += metrics.AdvanceX
		prev = codePoint
	}

	return penX - float64(x)
}
