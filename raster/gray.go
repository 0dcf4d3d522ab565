package raster

import "image"

var _ SpanTarget = (*Gray)(nil)
var _ Target = (*GrayMax)(nil)

// Gray is the simplest [Target]: an 8-bit grayscale surface where each
// write overwrites the previous value. It can either own its buffer
// (see [NewGray]) or borrow one from the caller (see [WrapGray]).
type Gray struct {
	pixels []uint8
	width int
	height int
	stride int
}

// NewGray creates a Gray target with a newly allocated, zeroed buffer.
func NewGray(width, height int) *Gray {
	if width < 0 || height < 0 { panic("negative Gray target size") }
	return &Gray{
		pixels: make([]uint8, width*height),
		width: width,
		height: height,
		stride: width,
	}
}

// WrapGray creates a Gray target borrowing the given buffer, which must
// hold at least stride*height bytes and remain valid for the lifetime
// of the target. A stride of zero defaults to the width.
func WrapGray(pixels []uint8, width, height, stride int) *Gray {
	if stride <= 0 { stride = width }
	return &Gray{ pixels: pixels, width: width, height: height, stride: stride }
}

// Implements [Target].
func (self *Gray) PutPixel(x, y int, alpha uint8) {
	if x < 0 || x >= self.width || y < 0 || y >= self.height { return }
	self.pixels[y*self.stride + x] = alpha
}

// Implements [SpanTarget] with a row copy.
func (self *Gray) PutSpan(x, y int, alphas []uint8) {
	if y < 0 || y >= self.height { return }
	x0, x1 := x, x + len(alphas)
	if x0 < 0 { x0 = 0 }
	if x1 > self.width { x1 = self.width }
	if x0 >= x1 { return }
	copy(self.pixels[y*self.stride + x0 : y*self.stride + x1], alphas[x0 - x:])
}

// Implements [Target].
func (self *Gray) Width() int { return self.width }

// Implements [Target].
func (self *Gray) Height() int { return self.height }

// Pixel returns the coverage value at (x, y), or 0 if out of bounds.
func (self *Gray) Pixel(x, y int) uint8 {
	if x < 0 || x >= self.width || y < 0 || y >= self.height { return 0 }
	return self.pixels[y*self.stride + x]
}

// Pixels exposes the underlying buffer. For owned targets the buffer is
// tightly packed (stride == width).
func (self *Gray) Pixels() []uint8 { return self.pixels }

// Stride returns the buffer stride in bytes.
func (self *Gray) Stride() int { return self.stride }

// Clear resets every pixel of the target to zero.
func (self *Gray) Clear() {
	for y := 0; y < self.height; y++ {
		row := self.pixels[y*self.stride : y*self.stride + self.width]
		for i := range row { row[i] = 0 }
	}
}

// Image returns an [*image.Alpha] view sharing the target's buffer.
func (self *Gray) Image() *image.Alpha {
	return &image.Alpha{
		Pix: self.pixels,
		Stride: self.stride,
		Rect: image.Rect(0, 0, self.width, self.height),
	}
}

// GrayMax is a grayscale [Target] that keeps the maximum coverage value
// at each pixel instead of overwriting. This prevents self-overlapping
// shapes, like the line segments of stroke glyphs, from leaving seams
// where a later low-coverage write would undo an earlier opaque one.
type GrayMax struct {
	pixels []uint8
	width int
	height int
	stride int
}

// WrapGrayMax creates a GrayMax target borrowing the given buffer.
// A stride of zero defaults to the width.
func WrapGrayMax(pixels []uint8, width, height, stride int) *GrayMax {
	if stride <= 0 { stride = width }
	return &GrayMax{ pixels: pixels, width: width, height: height, stride: stride }
}

// Implements [Target] with dst = max(dst, alpha).
func (self *GrayMax) PutPixel(x, y int, alpha uint8) {
	if x < 0 || x >= self.width || y < 0 || y >= self.height { return }
	dst := &self.pixels[y*self.stride + x]
	if alpha > *dst { *dst = alpha }
}

// Implements [Target].
func (self *GrayMax) Width() int { return self.width }

// Implements [Target].
func (self *GrayMax) Height() int { return self.height }
