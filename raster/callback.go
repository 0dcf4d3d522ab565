package raster

var _ Target = (*Callback)(nil)
var _ SpanTarget = (*Null)(nil)

// Callback is a [Target] that forwards every visible pixel to a
// user-supplied function. Out-of-bounds and zero-alpha pixels are
// filtered out before the function is invoked, so the receiver only
// ever sees ink that would actually land on the surface.
type Callback struct {
	width int
	height int
	fn func(x, y int, alpha uint8)
}

// NewCallback creates a Callback target with the given virtual bounds.
func NewCallback(width, height int, fn func(x, y int, alpha uint8)) *Callback {
	if fn == nil { panic("nil Callback function") }
	return &Callback{ width: width, height: height, fn: fn }
}

// Implements [Target].
func (self *Callback) PutPixel(x, y int, alpha uint8) {
	if x < 0 || x >= self.width || y < 0 || y >= self.height || alpha == 0 { return }
	self.fn(x, y, alpha)
}

// Implements [Target].
func (self *Callback) Width() int { return self.width }

// Implements [Target].
func (self *Callback) Height() int { return self.height }

// Null is a [Target] that accepts and discards everything. It exists
// for measurement paths that need to satisfy the write contract without
// producing pixels.
type Null struct {
	width int
	height int
}

// NewNull creates a Null target with the given virtual bounds.
func NewNull(width, height int) *Null {
	return &Null{ width: width, height: height }
}

// Implements [Target] as a no-op.
func (self *Null) PutPixel(x, y int, alpha uint8) {}

// Implements [SpanTarget] as a no-op.
func (self *Null) PutSpan(x, y int, alphas []uint8) {}

// Implements [Target].
func (self *Null) Width() int { return self.width }

// Implements [Target].
func (self *Null) Height() int { return self.height }
