// The raster subpackage defines the [Target] interface used as the pixel
// sink for all glyph rasterization in onyx-font, along with a handful of
// ready-made implementations (grayscale buffers, RGBA alpha blending,
// user callbacks and a measurement-only null sink) and the low-level
// line rasterization routines used for stroke-based glyphs.
//
// Targets clip silently: writes outside the target bounds are dropped
// without error, so rasterization code never needs to clip beforehand.
package raster
