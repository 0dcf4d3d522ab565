package onyxfont

import "math"
import "strconv"

import "github.com/devbrain/onyx-font/raster"

// CachedGlyph holds everything needed to draw a glyph straight from an
// atlas page: the page index, the source rectangle within the page,
// and the bearings and advance for positioning. The pointer returned
// by [GlyphCache.Get] stays valid and stable for the life of the
// cache.
type CachedGlyph struct {
	AtlasIndex int // index of the page containing this glyph
	Rect GlyphRect // position and size within the page
	BearingX float64 // pen to left edge of the glyph
	BearingY float64 // baseline to top of the glyph
	AdvanceX float64 // horizontal advance to the next glyph
}

// CacheConfig controls atlas allocation and pre-caching behavior of a
// [GlyphCache].
type CacheConfig struct {
	// AtlasSize is the width and height of each atlas page. Larger
	// pages mean fewer texture switches but more memory. Common
	// values are 256, 512, 1024 and 2048.
	AtlasSize int

	// Padding is the number of blank pixels kept between glyphs,
	// preventing bleeding under bilinear filtering. One pixel is
	// usually enough.
	Padding int

	// PreCacheASCII makes the cache rasterize the printable ASCII
	// range (32 to 126) upfront, avoiding cache misses for the
	// common case.
	PreCacheASCII bool
}

// DefaultCacheConfig returns the configuration used when none is
// given: 512x512 pages, one pixel of padding and ASCII pre-caching.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{ AtlasSize: 512, Padding: 1, PreCacheASCII: true }
}

// A GlyphCache rasterizes glyphs at a fixed size into one or more
// atlas pages and hands out [CachedGlyph] entries for drawing them.
// Glyphs are rasterized on first access; pages are append-only, so a
// new page is added whenever the current one fills up and nothing is
// ever evicted.
//
// GlyphCaches are not safe for concurrent use, as [GlyphCache.Get]
// may rasterize and mutate packing state.
type GlyphCache struct {
	rasterizer *TextRasterizer
	config CacheConfig
	atlases []*AtlasPage
	glyphs map[rune]*CachedGlyph

	// packing state for the current page
	packX int
	packY int
	rowHeight int
}

// NewGlyphCache creates a glyph cache for the given font source at the
// given pixel size. Pass [DefaultCacheConfig] unless you need custom
// atlas parameters; an AtlasSize or Padding of an invalid value
// panics.
func NewGlyphCache(source *FontSource, size float64, config CacheConfig) *GlyphCache {
	if config.AtlasSize <= 0 { panic("invalid CacheConfig.AtlasSize") }
	if config.Padding < 0 { panic("invalid CacheConfig.Padding") }

	rasterizer := NewTextRasterizer(source)
	rasterizer.SetSize(size)
	cache := &GlyphCache{
		rasterizer: rasterizer,
		config: config,
		glyphs: make(map[rune]*CachedGlyph),
	}
	cache.addAtlas()
	if config.PreCacheASCII { cache.CacheRange(32, 126) }
	return cache
}

// Get returns the cached entry for the given code point, rasterizing
// it into an atlas page first if necessary.
func (self *GlyphCache) Get(codePoint rune) *CachedGlyph {
	glyph, found := self.glyphs[codePoint]
	if found { return glyph }
	return self.cacheGlyph(codePoint)
}

// IsCached returns whether the given code point is already present in
// the cache.
func (self *GlyphCache) IsCached(codePoint rune) bool {
	_, found := self.glyphs[codePoint]
	return found
}

// CacheRange rasterizes every code point in [first, last] that isn't
// cached yet.
func (self *GlyphCache) CacheRange(first, last rune) {
	for codePoint := first; codePoint <= last; codePoint++ {
		if !self.IsCached(codePoint) { self.cacheGlyph(codePoint) }
	}
}

// CacheString rasterizes every code point of the given text that isn't
// cached yet.
func (self *GlyphCache) CacheString(text string) {
	iterator := Codepoints(text)
	for {
		codePoint, ok := iterator.Next()
		if !ok { break }
		if !self.IsCached(codePoint) { self.cacheGlyph(codePoint) }
	}
}

// AtlasCount returns the number of atlas pages allocated so far. It is
// always at least one.
func (self *GlyphCache) AtlasCount() int { return len(self.atlases) }

// Atlas returns the atlas page at the given index. It panics if the
// index is out of range.
func (self *GlyphCache) Atlas(index int) *AtlasPage {
	if index < 0 || index >= len(self.atlases) {
		panic("atlas index " + strconv.Itoa(index) + " out of range")
	}
	return self.atlases[index]
}

// Rasterizer returns the underlying text rasterizer, which is handy
// for measurement without touching the cache.
func (self *GlyphCache) Rasterizer() *TextRasterizer { return self.rasterizer }

// Measure returns the single-line extents of the given text at the
// cache's size.
func (self *GlyphCache) Measure(text string) TextExtents {
	return self.rasterizer.MeasureText(text)
}

// Metrics returns the font-wide vertical metrics at the cache's size.
func (self *GlyphCache) Metrics() ScaledMetrics {
	return self.rasterizer.Metrics()
}

// LineHeight returns the baseline-to-baseline distance at the cache's
// size.
func (self *GlyphCache) LineHeight() float64 {
	return self.rasterizer.LineHeight()
}

func (self *GlyphCache) addAtlas() {
	self.atlases = append(self.atlases, newAtlasPage(self.config.AtlasSize, self.config.AtlasSize))
	self.packX = self.config.Padding
	self.packY = self.config.Padding
	self.rowHeight = 0
}

func (self *GlyphCache) cacheGlyph(codePoint rune) *CachedGlyph {
	metrics := self.rasterizer.MeasureGlyph(codePoint)

	glyphWidth := int(math.Ceil(metrics.Width))
	glyphHeight := int(math.Ceil(metrics.Height))

	// glyphs larger than a page are clipped so a padded glyph always
	// fits on a fresh page and rects stay within page bounds
	maxGlyphSize := self.config.AtlasSize - 2*self.config.Padding
	if glyphWidth > maxGlyphSize { glyphWidth = maxGlyphSize }
	if glyphHeight > maxGlyphSize { glyphHeight = maxGlyphSize }

	// glyphs without pixels, like the space, still carry an advance
	if glyphWidth <= 0 || glyphHeight <= 0 {
		glyph := &CachedGlyph{
			BearingX: metrics.BearingX,
			BearingY: metrics.BearingY,
			AdvanceX: metrics.AdvanceX,
		}
		self.glyphs[codePoint] = glyph
		return glyph
	}

	paddedWidth := glyphWidth + self.config.Padding
	paddedHeight := glyphHeight + self.config.Padding

	// shelf packing: left to right within a row, then a new row, then
	// a new page
	if self.packX + paddedWidth > self.config.AtlasSize {
		self.packX = self.config.Padding
		self.packY += self.rowHeight + self.config.Padding
		self.rowHeight = 0
	}
	if self.packY + paddedHeight > self.config.AtlasSize {
		self.addAtlas()
	}

	atlasIndex := len(self.atlases) - 1
	glyphX, glyphY := self.packX, self.packY

	// rasterize into a scratch buffer with the ink box at the buffer
	// origin; the pen position must back out the horizontal bearing,
	// which is reapplied when drawing from the atlas
	scratch := raster.NewGray(glyphWidth, glyphHeight)
	originX := -int(math.Floor(metrics.BearingX))
	baselineY := int(math.Ceil(metrics.BearingY))
	self.rasterizer.RasterizeGlyph(scratch, codePoint, originX, baselineY)

	self.atlases[atlasIndex].writeAlpha(glyphX, glyphY, glyphWidth, glyphHeight, scratch.Pixels(), scratch.Stride())

	self.packX += paddedWidth
	if paddedHeight > self.rowHeight { self.rowHeight = paddedHeight }

	glyph := &CachedGlyph{
		AtlasIndex: atlasIndex,
		Rect: GlyphRect{ X: glyphX, Y: glyphY, W: glyphWidth, H: glyphHeight },
		BearingX: metrics.BearingX,
		BearingY: metrics.BearingY,
		AdvanceX: metrics.AdvanceX,
	}
	self.glyphs[codePoint] = glyph
	return glyph
}
