package onyxfont

// This file defines the asset interfaces for the two non-outline font
// flavors. Outline fonts don't need an interface of their own because
// they come in as [*sfnt.Font] values directly (see [FromOutline]).
//
// [*sfnt.Font]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Font

// A BitmapFont exposes a fixed-size, single-byte-encoded pixel font.
// Glyphs are 1-bit and positioned through ABC-style spacing: an optional
// pre-advance (left), the inked width (black) and a post-advance (right).
//
// Implementations must be safe for concurrent read access, as the
// package never mutates them.
type BitmapFont interface {
	// FirstChar returns the lowest character code covered by the font.
	FirstChar() byte

	// LastChar returns the highest character code covered by the font.
	LastChar() byte

	// DefaultChar returns the character to substitute for codes outside
	// the [FirstChar, LastChar] range.
	DefaultChar() byte

	// Metrics returns the font-wide vertical metrics, in pixels.
	Metrics() BitmapMetrics

	// Spacing returns the horizontal spacing for the given character.
	// The character must be within the [FirstChar, LastChar] range.
	Spacing(char byte) GlyphSpacing

	// Glyph returns the pixel data for the given character. The
	// character must be within the [FirstChar, LastChar] range.
	Glyph(char byte) BitmapGlyph
}

// BitmapMetrics holds the font-wide vertical metrics of a [BitmapFont],
// in pixels. PixelHeight covers ascent plus descent; InternalLeading is
// already included in it, while ExternalLeading is extra line spacing
// added between consecutive lines.
type BitmapMetrics struct {
	Ascent int
	PixelHeight int
	InternalLeading int
	ExternalLeading int
}

// GlyphSpacing holds the ABC-style horizontal spacing of a bitmap glyph.
// Each part is optional; a missing part contributes zero and its Has*
// flag is false. The glyph advance is Left + Black + Right.
type GlyphSpacing struct {
	Left int
	Black int
	Right int
	HasLeft bool
	HasBlack bool
	HasRight bool
}

// Advance returns the total horizontal advance of the glyph, which is
// the sum of the spacing parts that are present.
func (self GlyphSpacing) Advance() int {
	advance := 0
	if self.HasLeft { advance += self.Left }
	if self.HasBlack { advance += self.Black }
	if self.HasRight { advance += self.Right }
	return advance
}

// A BitmapGlyph exposes the 1-bit pixel data of a single bitmap glyph.
type BitmapGlyph interface {
	// Width returns the glyph width in pixels.
	Width() int

	// Height returns the glyph height in pixels.
	Height() int

	// Pixel returns whether the pixel at the given position is inked.
	// Coordinates outside the glyph must report false.
	Pixel(x, y int) bool
}

// A StrokeFont exposes a vector font whose glyphs are polylines encoded
// as small relative-move commands. Stroke fonts scale freely, unlike
// bitmap fonts, because the commands are replayed at render time.
//
// Implementations must be safe for concurrent read access.
type StrokeFont interface {
	// HasGlyph returns whether the font defines a glyph for the
	// given character code.
	HasGlyph(char byte) bool

	// DefaultChar returns the character to substitute for codes the
	// font doesn't define.
	DefaultChar() byte

	// Metrics returns the font-wide vertical metrics, in unscaled
	// design units.
	Metrics() StrokeMetrics

	// Glyph returns the command list for the given character, or nil
	// if the font doesn't define it.
	Glyph(char byte) *StrokeGlyph
}

// StrokeMetrics holds the font-wide vertical metrics of a [StrokeFont],
// in unscaled design units. Descent is negative, extending below the
// baseline; PixelHeight is the design height that a rendering size
// maps onto (scale = size/PixelHeight).
type StrokeMetrics struct {
	Ascent int
	Descent int
	PixelHeight int
}

// StrokeGlyph is the command list of a single stroke glyph. Width is
// the unscaled horizontal advance.
type StrokeGlyph struct {
	Width int
	Commands []StrokeCommand
}

// StrokeOp identifies the operation of a [StrokeCommand].
type StrokeOp uint8

const (
	// StrokeMoveTo repositions the pen by the command delta and puts
	// it down, so the next line command draws.
	StrokeMoveTo StrokeOp = iota

	// StrokeLineTo moves the pen by the command delta, drawing a line
	// along the way if the pen is down.
	StrokeLineTo

	// StrokeEnd lifts the pen without moving it.
	StrokeEnd
)

// StrokeCommand is a single drawing command of a [StrokeGlyph]. The
// deltas are relative to the current pen position, in unscaled design
// units.
type StrokeCommand struct {
	Op StrokeOp
	DX int8
	DY int8
}
