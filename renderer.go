package onyxfont

// BlitFunc draws one glyph during [TextRenderer] operations. It
// receives the atlas page holding the glyph, the source rectangle
// within it and the destination position of the glyph's top-left
// corner. Implementations typically copy the rectangle into a frame
// buffer or issue a textured quad.
type BlitFunc func(page *AtlasPage, src GlyphRect, x, y float64)

// A TextRenderer draws text through a [GlyphCache], adding layout on
// top of it: alignment, word wrapping and top-edge positioning. All
// drawing goes through a [BlitFunc], which keeps the renderer agnostic
// of the final surface.
//
// The renderer borrows the cache, which must outlive it. Like the
// cache itself, TextRenderers are not safe for concurrent use.
type TextRenderer struct {
	cache *GlyphCache
}

// NewTextRenderer creates a renderer on top of the given cache.
func NewTextRenderer(cache *GlyphCache) *TextRenderer {
	if cache == nil { panic("nil GlyphCache") }
	return &TextRenderer{ cache: cache }
}

// Cache returns the underlying glyph cache.
func (self *TextRenderer) Cache() *GlyphCache { return self.cache }

// Draw renders the text with (x, y) at its top-left corner and returns
// the drawn width. The y coordinate is the top of the text, not the
// baseline; see [TextRenderer.DrawBaseline] for baseline positioning.
func (self *TextRenderer) Draw(text string, x, y float64, blit BlitFunc) float64 {
	if text == "" { return 0 }
	return self.DrawBaseline(text, x, y + self.cache.Metrics().Ascent, blit)
}

// DrawBaseline renders the text with (x, y) at the baseline origin of
// the first glyph and returns the drawn width.
func (self *TextRenderer) DrawBaseline(text string, x, y float64, blit BlitFunc) float64 {
	if text == "" { return 0 }

	penX := x
	prev := rune(0)

	iterator := Codepoints(text)
	for {
		codePoint, ok := iterator.Next()
		if !ok { break }

		if prev != 0 { penX += self.cache.Rasterizer().Kern(prev, codePoint) }
		glyph := self.cache.Get(codePoint)

		if glyph.Rect.W > 0 && glyph.Rect.H > 0 {
			dstX := penX + glyph.BearingX
			dstY := y - glyph.BearingY
			blit(self.cache.Atlas(glyph.AtlasIndex), glyph.Rect, dstX, dstY)
		}

		penX += glyph.AdvanceX
		prev = codePoint
	}

	return penX - x
}

// DrawAligned renders the text aligned within a band of the given
// width starting at x, with y at the top of the text.
func (self *TextRenderer) DrawAligned(text string, x, y, width float64, align Align, blit BlitFunc) {
	if text == "" { return }

	offsetX := 0.0
	switch align {
	case AlignCenter: offsetX = (width - self.cache.Measure(text).Width)/2
	case AlignRight: offsetX = width - self.cache.Measure(text).Width
	}
	self.Draw(text, x + offsetX, y, blit)
}

// DrawWrapped renders the text word-wrapped inside the given box and
// returns the number of lines drawn. Lines are broken at spaces when
// possible and at any character otherwise; lines that would extend
// below the box are not drawn at all.
func (self *TextRenderer) DrawWrapped(text string, box TextBox, align Align, blit BlitFunc) int {
	if text == "" { return 0 }

	lines := self.wrapLines(text, box.W)
	lineHeight := self.cache.LineHeight()
	currentY := box.Y
	linesDrawn := 0

	for _, line := range lines {
		if currentY + lineHeight > box.Y + box.H { break }
		self.DrawAligned(line, box.X, currentY, box.W, align, blit)
		currentY += lineHeight
		linesDrawn += 1
	}
	return linesDrawn
}

// Measure returns the single-line extents of the given text.
func (self *TextRenderer) Measure(text string) TextExtents {
	return self.cache.Measure(text)
}

// MeasureWrapped returns the extents of the given text if it were
// wrapped at the given maximum width.
func (self *TextRenderer) MeasureWrapped(text string, maxWidth float64) TextExtents {
	return self.cache.Rasterizer().MeasureWrapped(text, maxWidth)
}

// LineHeight returns the baseline-to-baseline distance.
func (self *TextRenderer) LineHeight() float64 {
	return self.cache.LineHeight()
}

// Metrics returns the font-wide vertical metrics.
func (self *TextRenderer) Metrics() ScaledMetrics {
	return self.cache.Metrics()
}

// wrapLines splits the text into lines no wider than maxWidth,
// preferring to break at spaces. The returned lines share the input's
// backing memory, never include the newline characters and have
// trailing spaces trimmed at break points.
func (self *TextRenderer) wrapLines(text string, maxWidth float64) []string {
	var lines []string
	if text == "" || maxWidth <= 0 { return lines }

	lineStart := 0
	wordStart := 0
	index := 0
	lineWidth := 0.0
	wordWidth := 0.0

	flush := func(end int) {
		for end > lineStart && text[end - 1] == ' ' { end -= 1 }
		if end > lineStart { lines = append(lines, text[lineStart : end]) }
	}

	for index < len(text) {
		codePoint, size := DecodeOne(text[index:])
		if size == 0 { break }

		if codePoint == '\n' {
			flush(index)
			index += size
			lineStart = index
			wordStart = index
			lineWidth = 0
			wordWidth = 0
			continue
		}

		advance := self.cache.Rasterizer().MeasureGlyph(codePoint).AdvanceX

		if lineWidth + advance > maxWidth && lineWidth > 0 {
			if wordStart > lineStart && wordStart <= index {
				// break at the last word boundary; the partial word
				// already measured carries over to the new line
				flush(wordStart)
				lineStart = wordStart
				lineWidth = wordWidth
			} else {
				// single word wider than the box, hard cut
				flush(index)
				lineStart = index
				wordStart = index
				lineWidth = 0
				wordWidth = 0
			}
		}

		lineWidth += advance
		wordWidth += advance
		index += size

		if codePoint == ' ' {
			wordStart = index
			wordWidth = 0
		}
	}

	if index > lineStart { lines = append(lines, text[lineStart : index]) }
	return lines
}
