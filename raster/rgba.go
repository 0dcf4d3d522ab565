package raster

var _ Target = (*RGBA)(nil)

// RGBA is a [Target] that composes glyph coverage onto a 32-bit pixel
// buffer using the Porter-Duff "over" operation, producing properly
// antialiased text over any background.
//
// Pixels are packed as 0xAARRGGBB. The text color is plain RGB
// (0xRRGGBB); coverage supplies the alpha.
type RGBA struct {
	pixels []uint32
	width int
	height int
	colorR uint32
	colorG uint32
	colorB uint32
}

// WrapRGBA creates an RGBA target borrowing the given pixel buffer,
// which must hold at least width*height values.
func WrapRGBA(pixels []uint32, width, height int, color uint32) *RGBA {
	target := &RGBA{ pixels: pixels, width: width, height: height }
	target.SetColor(color)
	return target
}

// SetColor changes the text color (0xRRGGBB) for subsequent writes.
func (self *RGBA) SetColor(color uint32) {
	self.colorR = (color >> 16) & 0xFF
	self.colorG = (color >> 8) & 0xFF
	self.colorB = color & 0xFF
}

// Implements [Target]. Zero alpha is a no-op and full alpha is a direct
// store; everything in between blends with (a*src + (255-a)*dst + 127)/255
// rounding per channel.
func (self *RGBA) PutPixel(x, y int, alpha uint8) {
	if x < 0 || x >= self.width || y < 0 || y >= self.height || alpha == 0 { return }
	dst := &self.pixels[y*self.width + x]

	if alpha == 255 {
		*dst = 255 << 24 | self.colorR << 16 | self.colorG << 8 | self.colorB
		return
	}

	dstA := (*dst >> 24) & 0xFF
	dstR := (*dst >> 16) & 0xFF
	dstG := (*dst >> 8) & 0xFF
	dstB := *dst & 0xFF

	src, inv := uint32(alpha), uint32(255 - alpha)
	outA := src + (dstA*inv + 127)/255
	outR := (self.colorR*src + dstR*inv + 127)/255
	outG := (self.colorG*src + dstG*inv + 127)/255
	outB := (self.colorB*src + dstB*inv + 127)/255
	*dst = outA << 24 | outR << 16 | outG << 8 | outB
}

// Implements [Target].
func (self *RGBA) Width() int { return self.width }

// Implements [Target].
func (self *RGBA) Height() int { return self.height }

// Pixel returns the packed 0xAARRGGBB value at (x, y), or 0 if out of
// bounds.
func (self *RGBA) Pixel(x, y int) uint32 {
	if x < 0 || x >= self.width || y < 0 || y >= self.height { return 0 }
	return self.pixels[y*self.width + x]
}
