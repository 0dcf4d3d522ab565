package onyxfont

// This file contains the small value types shared across the text
// rasterization pipeline: rectangles, metrics and alignment options.

// A GlyphRect is an axis-aligned rectangle used to locate glyphs
// within atlas pages and on destination surfaces.
type GlyphRect struct {
	X int // left edge
	Y int // top edge
	W int // width in pixels
	H int // height in pixels
}

// Empty returns whether the rectangle has no area. Empty rectangles
// are legal for glyphs without any ink, like spaces.
func (self GlyphRect) Empty() bool { return self.W <= 0 || self.H <= 0 }

// GlyphMetrics describe the layout properties of a single glyph at a
// specific pixel size:
//
//	              BearingX
//	              |<->|
//	              +---+--- <- BearingY (baseline to top)
//	              |   |  |
//	              | A |  | Height
//	              |   |  |
//	baseline -----|---|--+--
//	              |<->|
//	              Width
//
//	|<------ AdvanceX ------>|
type GlyphMetrics struct {
	AdvanceX float64 // horizontal pen travel after drawing the glyph
	BearingX float64 // pen position to left edge of the ink box
	BearingY float64 // baseline to top of the ink box (positive up)
	Width    float64 // ink box width
	Height   float64 // ink box height
}

// ScaledMetrics describe the font-wide vertical metrics at a specific
// pixel size. LineHeight is always at least Ascent + Descent.
type ScaledMetrics struct {
	Ascent     float64 // baseline to top of the tallest glyph (positive)
	Descent    float64 // baseline to bottom of the deepest descender (positive)
	LineGap    float64 // recommended extra spacing between lines
	LineHeight float64 // Ascent + Descent + LineGap
}

// TextExtents describe the dimensions of a measured block of text.
type TextExtents struct {
	Width   float64 // total horizontal pen travel
	Height  float64 // total height of the block
	Ascent  float64 // baseline to top
	Descent float64 // baseline to bottom
}

// A TextBox is the caller-supplied layout region for wrapped text.
// See [TextRenderer.DrawWrapped]().
type TextBox struct {
	X float64 // left edge
	Y float64 // top edge
	W float64 // width used for wrapping and alignment
	H float64 // height used for clipping whole lines
}

// Align controls the horizontal positioning of text within a given
// width. See [TextRenderer.DrawAligned]().
type Align uint8

const (
	AlignLeft   Align = 0
	AlignCenter Align = 1
	AlignRight  Align = 2
)

// Returns "Left", "Center" or "Right".
func (self Align) String() string {
	switch self {
	case AlignLeft:   return "Left"
	case AlignCenter: return "Center"
	case AlignRight:  return "Right"
	default:
		return "InvalidAlign"
	}
}
