// onyxfont is a font-format-agnostic text rasterization package. It can
// take glyphs encoded as fixed-size pixel bitmaps, as relative-coordinate
// stroke programs or as bezier outlines and rasterize single glyphs or
// full UTF-8 strings, with caching into packed texture atlases and
// high-level layout (alignment and word wrapping).
//
// While the pipeline has a few layers, common usage only touches the top
// two. First, you wrap a font asset with one of the [FontSource] factory
// functions and build a cache at the size you want to render at:
//
//	source := onyxfont.FromOutline(sfntFont)
//	cache  := onyxfont.NewGlyphCache(source, 24, onyxfont.DefaultCacheConfig())
//
// Then you create a [TextRenderer] and draw through a blit callback that
// copies glyph rectangles from the atlas pages to your own surface:
//
//	renderer := onyxfont.NewTextRenderer(cache)
//	renderer.Draw("Hello world!", x, y, blit)
//
// The lower layers ([TextRasterizer], the glyph rasterization functions
// and the [raster] subpackage targets) remain available for direct,
// uncached rasterization into pixel buffers.
//
// The package performs pure computation: it never touches files, GPUs or
// goroutines. Types that mutate state on access, like [GlyphCache], are
// not safe for concurrent use without external synchronization.
//
// [raster]: https://pkg.go.dev/github.com/devbrain/onyx-font/raster
package onyxfont
