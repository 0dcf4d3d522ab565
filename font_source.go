package onyxfont

import "golang.org/x/image/font/sfnt"

import "github.com/devbrain/onyx-font/raster"

// SourceKind identifies the flavor of font behind a [FontSource].
type SourceKind uint8

const (
	// SourceBitmap denotes a fixed-size 1-bit pixel font.
	SourceBitmap SourceKind = iota

	// SourceStroke denotes a polyline vector font.
	SourceStroke

	// SourceOutline denotes a TrueType or OpenType outline font.
	SourceOutline
)

// A FontSource wraps one font of any supported flavor behind a uniform
// metrics and rasterization interface. Build one with [FromBitmap],
// [FromStroke] or [FromOutline] and hand it to a [TextRasterizer] or
// a [GlyphCache].
//
// The zero value is not valid. FontSource values are not safe for
// concurrent use, as the outline flavor keeps internal scratch buffers.
type FontSource struct {
	kind SourceKind
	bitmap BitmapFont
	stroke StrokeFont
	outline *outlineScaler
}

// FromBitmap wraps a bitmap font. The font must not be nil.
func FromBitmap(font BitmapFont) *FontSource {
	if font == nil { panic("nil BitmapFont") }
	return &FontSource{ kind: SourceBitmap, bitmap: font }
}

// FromStroke wraps a stroke font. The font must not be nil.
func FromStroke(font StrokeFont) *FontSource {
	if font == nil { panic("nil StrokeFont") }
	return &FontSource{ kind: SourceStroke, stroke: font }
}

// FromOutline wraps an outline font. The font must not be nil.
func FromOutline(font *sfnt.Font) *FontSource {
	if font == nil { panic("nil sfnt.Font") }
	return &FontSource{ kind: SourceOutline, outline: newOutlineScaler(font) }
}

// Kind returns the flavor of the wrapped font.
func (self *FontSource) Kind() SourceKind { return self.kind }

// HasGlyph returns whether the wrapped font defines a glyph for the
// given code point. Bitmap and stroke fonts only cover single-byte
// code points, so anything above 255 reports false for them.
func (self *FontSource) HasGlyph(codePoint rune) bool {
	switch self.kind {
	case SourceBitmap:
		if codePoint < 0 || codePoint > 255 { return false }
		char := byte(codePoint)
		return char >= self.bitmap.FirstChar() && char <= self.bitmap.LastChar()
	case SourceStroke:
		if codePoint < 0 || codePoint > 255 { return false }
		return self.stroke.HasGlyph(byte(codePoint))
	default:
		return self.outline.GlyphIndex(codePoint) != 0
	}
}

// DefaultChar returns the code point substituted for glyphs the font
// doesn't cover. Outline fonts have no notion of a default character,
// so '?' is used for them.
func (self *FontSource) DefaultChar() rune {
	switch self.kind {
	case SourceBitmap: return rune(self.bitmap.DefaultChar())
	case SourceStroke: return rune(self.stroke.DefaultChar())
	default: return '?'
	}
}

// NativeSize returns the design size of the wrapped font in pixels, or
// zero for freely scalable fonts. Only bitmap fonts have a native size;
// rendering them at any other size still produces native-size glyphs.
func (self *FontSource) NativeSize() float64 {
	if self.kind == SourceBitmap {
		return float64(self.bitmap.Metrics().PixelHeight)
	}
	return 0
}

// ScaledMetrics returns the font-wide vertical metrics at the given
// size. Bitmap fonts ignore the size and always report their native
// pixel metrics.
func (self *FontSource) ScaledMetrics(size float64) ScaledMetrics {
	switch self.kind {
	case SourceBitmap:
		metrics := self.bitmap.Metrics()
		return ScaledMetrics{
			Ascent: float64(metrics.Ascent),
			Descent: float64(metrics.PixelHeight - metrics.Ascent),
			LineGap: float64(metrics.ExternalLeading),
			LineHeight: float64(metrics.PixelHeight + metrics.ExternalLeading),
		}
	case SourceStroke:
		metrics := self.stroke.Metrics()
		scale := size/float64(metrics.PixelHeight)
		return ScaledMetrics{
			Ascent: float64(metrics.Ascent)*scale,
			Descent: float64(-metrics.Descent)*scale, // descent is negative in the font
			LineGap: 0,
			LineHeight: size,
		}
	default:
		return self.outline.ScaledMetrics(size)
	}
}

// GlyphMetrics returns the horizontal metrics of the glyph for the
// given code point at the given size. Code points the font doesn't
// cover fall back to the default character; if even that one is
// missing, the zero value is returned.
func (self *FontSource) GlyphMetrics(codePoint rune, size float64) GlyphMetrics {
	switch self.kind {
	case SourceBitmap: return self.bitmapGlyphMetrics(codePoint)
	case SourceStroke: return self.strokeGlyphMetrics(codePoint, size)
	default: return self.outline.GlyphMetrics(codePoint, size)
	}
}

// Kern returns the kerning adjustment between two consecutive code
// points at the given size, in pixels. It is typically negative and
// only ever non-zero for outline fonts.
func (self *FontSource) Kern(prev, curr rune, size float64) float64 {
	if self.kind != SourceOutline { return 0 }
	return self.outline.Kern(prev, curr, size)
}

// RasterizeGlyph draws the glyph for the given code point onto the
// target, with (x, y) on the baseline at the glyph origin. The raster
// mode only affects stroke fonts.
func (self *FontSource) RasterizeGlyph(target raster.Target, codePoint rune, size float64, x, y int, mode RasterMode) {
	switch self.kind {
	case SourceBitmap: self.rasterizeBitmap(target, codePoint, x, y)
	case SourceStroke: self.rasterizeStroke(target, codePoint, size, x, y, mode)
	default: self.outline.Rasterize(target, codePoint, size, x, y)
	}
}

// --- bitmap flavor ---

// resolveBitmapChar maps a code point to an in-range character code,
// going through the default character when necessary. The second
// result is false when no usable character exists.
func (self *FontSource) resolveBitmapChar(codePoint rune) (byte, bool) {
	if codePoint < 0 || codePoint > 255 { return 0, false }
	char := byte(codePoint)
	if char < self.bitmap.FirstChar() || char > self.bitmap.LastChar() {
		char = self.bitmap.DefaultChar()
		if char < self.bitmap.FirstChar() || char > self.bitmap.LastChar() {
			return 0, false
		}
	}
	return char, true
}

func (self *FontSource) bitmapGlyphMetrics(codePoint rune) GlyphMetrics {
	char, ok := self.resolveBitmapChar(codePoint)
	if !ok { return GlyphMetrics{} }

	spacing := self.bitmap.Spacing(char)
	glyph := self.bitmap.Glyph(char)

	var metrics GlyphMetrics
	metrics.Width = float64(glyph.Width())
	metrics.Height = float64(glyph.Height())
	if spacing.HasLeft { metrics.BearingX = float64(spacing.Left) }
	metrics.BearingY = float64(self.bitmap.Metrics().Ascent)

	advance := 0
	if spacing.HasLeft { advance += spacing.Left }
	if spacing.HasBlack {
		advance += spacing.Black
	} else {
		advance += glyph.Width()
	}
	if spacing.HasRight { advance += spacing.Right }
	metrics.AdvanceX = float64(advance)
	return metrics
}

func (self *FontSource) rasterizeBitmap(target raster.Target, codePoint rune, x, y int) {
	char, ok := self.resolveBitmapChar(codePoint)
	if !ok { return }

	spacing := self.bitmap.Spacing(char)
	glyphX := x
	if spacing.HasLeft { glyphX += spacing.Left }
	glyphY := y - self.bitmap.Metrics().Ascent
	RasterizeBitmapGlyph(target, self.bitmap.Glyph(char), glyphX, glyphY)
}

// --- stroke flavor ---

// resolveStrokeGlyph returns the glyph for the given code point, going
// through the default character when necessary.
func (self *FontSource) resolveStrokeGlyph(codePoint rune) *StrokeGlyph {
	if codePoint < 0 || codePoint > 255 { return nil }
	glyph := self.stroke.Glyph(byte(codePoint))
	if glyph == nil { glyph = self.stroke.Glyph(self.stroke.DefaultChar()) }
	return glyph
}

func (self *FontSource) strokeGlyphMetrics(codePoint rune, size float64) GlyphMetrics {
	glyph := self.resolveStrokeGlyph(codePoint)
	if glyph == nil { return GlyphMetrics{} }

	scale := size/float64(self.stroke.Metrics().PixelHeight)

	// walk the commands to find the bounding box of all pen positions,
	// with the origin itself always included
	minX, minY, maxX, maxY := 0, 0, 0, 0
	penX, penY := 0, 0
	for _, command := range glyph.Commands {
		if command.Op == StrokeEnd { continue }
		penX += int(command.DX)
		penY += int(command.DY)
		if penX < minX { minX = penX }
		if penY < minY { minY = penY }
		if penX > maxX { maxX = penX }
		if penY > maxY { maxY = penY }
	}

	return GlyphMetrics{
		AdvanceX: float64(glyph.Width)*scale,
		BearingX: 0,
		BearingY: float64(-minY)*scale,
		Width: float64(maxX - minX + 1)*scale,
		Height: float64(maxY - minY + 1)*scale,
	}
}

func (self *FontSource) rasterizeStroke(target raster.Target, codePoint rune, size float64, x, y int, mode RasterMode) {
	glyph := self.resolveStrokeGlyph(codePoint)
	if glyph == nil { return }
	scale := size/float64(self.stroke.Metrics().PixelHeight)
	RasterizeStrokeGlyph(target, glyph, x, y, scale, mode)
}
