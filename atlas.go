package onyxfont

import "image"

// An AtlasPage is a single square grayscale texture holding packed
// glyphs for a [GlyphCache]. Pages are append-only: glyphs are written
// once when cached and never moved or evicted afterwards, so the
// rectangles handed out through [CachedGlyph] stay valid for the life
// of the cache.
type AtlasPage struct {
	width int
	height int
	pixels []uint8
}

func newAtlasPage(width, height int) *AtlasPage {
	return &AtlasPage{
		width: width,
		height: height,
		pixels: make([]uint8, width*height),
	}
}

// Width returns the page width in pixels.
func (self *AtlasPage) Width() int { return self.width }

// Height returns the page height in pixels.
func (self *AtlasPage) Height() int { return self.height }

// Alpha returns the coverage value at the given position, or zero for
// positions outside the page.
func (self *AtlasPage) Alpha(x, y int) uint8 {
	if x < 0 || y < 0 || x >= self.width || y >= self.height { return 0 }
	return self.pixels[y*self.width + x]
}

// Pixels returns the raw page contents as a row-major alpha buffer of
// Width()*Height() bytes. The slice aliases the page's own storage;
// treat it as read-only.
func (self *AtlasPage) Pixels() []uint8 { return self.pixels }

// Image returns an [*image.Alpha] view of the page, sharing the page's
// own storage.
func (self *AtlasPage) Image() *image.Alpha {
	return &image.Alpha{
		Pix: self.pixels,
		Stride: self.width,
		Rect: image.Rect(0, 0, self.width, self.height),
	}
}

// writeAlpha copies a w x h block of alpha values into the page with
// its top-left corner at (x, y). Rows and columns falling outside the
// page are clipped away.
func (self *AtlasPage) writeAlpha(x, y, w, h int, src []uint8, srcStride int) {
	if w <= 0 || h <= 0 { return }
	for row := 0; row < h; row++ {
		dstY := y + row
		if dstY < 0 || dstY >= self.height { continue }

		copyStart, copyEnd := 0, w
		if x < 0 { copyStart = -x }
		if x + w > self.width { copyEnd = self.width - x }
		if copyStart >= copyEnd { continue }

		dstOffset := dstY*self.width + x + copyStart
		srcOffset := row*srcStride + copyStart
		copy(self.pixels[dstOffset : dstOffset + copyEnd - copyStart], src[srcOffset : srcOffset + copyEnd - copyStart])
	}
}
