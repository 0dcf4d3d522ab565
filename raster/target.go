package raster

// Target is the interface for any surface that can receive rasterized
// glyph pixels. Implementations must silently drop out-of-bounds writes.
//
// Alpha values are 8-bit coverage: 0 means no ink, 255 full ink. What a
// target *does* with the coverage (overwrite, max-blend, color blend,
// forward to a callback...) is entirely up to the implementation.
type Target interface {
	// Writes a single pixel. Out-of-bounds coordinates must be ignored.
	PutPixel(x, y int, alpha uint8)

	// Returns the target width, in pixels.
	Width() int

	// Returns the target height, in pixels.
	Height() int
}

// SpanTarget is an optional extension of [Target] for surfaces that can
// receive a horizontal run of coverage values more efficiently than
// through repeated PutPixel calls.
type SpanTarget interface {
	Target

	// Writes a horizontal run of pixels starting at (x, y). Spans may
	// be partially or fully out of bounds.
	PutSpan(x, y int, alphas []uint8)
}

// PutSpanOn writes a horizontal run of coverage values to the given
// target, using [SpanTarget.PutSpan] when available and falling back
// to per-pixel writes otherwise. In the fallback path, zero alphas are
// skipped before reaching the target.
func PutSpanOn(target Target, x, y int, alphas []uint8) {
	if spanTarget, ok := target.(SpanTarget); ok {
		spanTarget.PutSpan(x, y, alphas)
		return
	}
	for i, alpha := range alphas {
		if alpha > 0 { target.PutPixel(x + i, y, alpha) }
	}
}
