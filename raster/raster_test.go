package raster

import "testing"

func TestGrayPutPixel(t *testing.T) {
	target := NewGray(4, 4)
	target.PutPixel(1, 2, 200)
	expected, got := uint8(200), target.Pixel(1, 2)
	if got != expected { t.Fatalf("expected %d, got %d", expected, got) }

	// overwrite semantics, including lowering coverage
	target.PutPixel(1, 2, 10)
	expected, got = 10, target.Pixel(1, 2)
	if got != expected { t.Fatalf("expected %d, got %d", expected, got) }

	// out of bounds writes must be dropped without panicking
	target.PutPixel(-1, 0, 255)
	target.PutPixel(0, -1, 255)
	target.PutPixel(4, 0, 255)
	target.PutPixel(0, 4, 255)
	for i, value := range target.Pixels() {
		if value != 0 && i != 2*4 + 1 {
			t.Fatalf("expected zero at index %d, got %d", i, value)
		}
	}
}

func TestGraySpan(t *testing.T) {
	target := NewGray(4, 2)
	target.PutSpan(1, 0, []uint8{10, 20, 30, 40}) // clipped at the right edge
	for x, expected := range []uint8{0, 10, 20, 30} {
		got := target.Pixel(x, 0)
		if got != expected { t.Fatalf("x=%d: expected %d, got %d", x, expected, got) }
	}

	target.PutSpan(-1, 1, []uint8{50, 60}) // clipped at the left edge
	expected, got := uint8(60), target.Pixel(0, 1)
	if got != expected { t.Fatalf("expected %d, got %d", expected, got) }
}

func TestGrayWrapStride(t *testing.T) {
	pixels := make([]uint8, 8*2)
	target := WrapGray(pixels, 4, 2, 8) // wider backing buffer
	target.PutPixel(3, 1, 99)
	expected, got := uint8(99), pixels[8 + 3]
	if got != expected { t.Fatalf("expected %d, got %d", expected, got) }
}

func TestGrayMax(t *testing.T) {
	pixels := make([]uint8, 4)
	target := WrapGrayMax(pixels, 2, 2, 2)
	target.PutPixel(0, 0, 100)
	target.PutPixel(0, 0, 50) // lower value must not win
	expected, got := uint8(100), pixels[0]
	if got != expected { t.Fatalf("expected %d, got %d", expected, got) }
	target.PutPixel(0, 0, 180)
	expected, got = 180, pixels[0]
	if got != expected { t.Fatalf("expected %d, got %d", expected, got) }
}

func TestRGBABlend(t *testing.T) {
	pixels := make([]uint32, 4)
	target := WrapRGBA(pixels, 2, 2, 0xFF0000) // red text

	// zero alpha is a no-op
	target.PutPixel(0, 0, 0)
	if pixels[0] != 0 { t.Fatalf("expected 0, got %#x", pixels[0]) }

	// full alpha is a direct store
	target.PutPixel(0, 0, 255)
	expected, got := uint32(0xFFFF0000), pixels[0]
	if got != expected { t.Fatalf("expected %#x, got %#x", expected, got) }

	// half alpha over a transparent pixel
	target.PutPixel(1, 0, 128)
	expected, got = 0x80800000, pixels[1]
	if got != expected { t.Fatalf("expected %#x, got %#x", expected, got) }

	// half alpha of black over opaque white
	target.SetColor(0x000000)
	pixels[2] = 0xFFFFFFFF
	target.PutPixel(0, 1, 128)
	expected, got = 0xFF7F7F7F, pixels[2]
	if got != expected { t.Fatalf("expected %#x, got %#x", expected, got) }
}

func TestCallback(t *testing.T) {
	var calls int
	var lastX, lastY int
	var lastAlpha uint8
	target := NewCallback(4, 4, func(x, y int, alpha uint8) {
		calls += 1
		lastX, lastY, lastAlpha = x, y, alpha
	})

	target.PutPixel(2, 3, 77)
	if calls != 1 { t.Fatalf("expected 1 call, got %d", calls) }
	if lastX != 2 || lastY != 3 || lastAlpha != 77 {
		t.Fatalf("expected (2, 3, 77), got (%d, %d, %d)", lastX, lastY, lastAlpha)
	}

	// out-of-bounds and zero-alpha writes must be filtered out
	target.PutPixel(-1, 0, 255)
	target.PutPixel(4, 0, 255)
	target.PutPixel(0, 0, 0)
	if calls != 1 { t.Fatalf("expected 1 call, got %d", calls) }
}

func TestNull(t *testing.T) {
	target := NewNull(8, 8)
	target.PutPixel(1, 1, 255) // must not panic nor do anything
	target.PutSpan(0, 0, []uint8{1, 2, 3})
	if target.Width() != 8 || target.Height() != 8 {
		t.Fatalf("expected 8x8, got %dx%d", target.Width(), target.Height())
	}
}

func TestPutSpanOnFallback(t *testing.T) {
	// Callback doesn't implement SpanTarget, so PutSpanOn must fall
	// back to per-pixel writes, skipping zero alphas
	var writes []int
	target := NewCallback(8, 1, func(x, y int, alpha uint8) {
		writes = append(writes, x)
	})
	PutSpanOn(target, 1, 0, []uint8{10, 0, 30})
	if len(writes) != 2 || writes[0] != 1 || writes[1] != 3 {
		t.Fatalf("expected writes at x=1 and x=3, got %v", writes)
	}
}

func TestLine(t *testing.T) {
	target := NewGray(5, 5)
	Line(target, 0, 0, 4, 0)
	for x := 0; x < 5; x++ {
		if target.Pixel(x, 0) != 255 {
			t.Fatalf("expected 255 at (%d, 0), got %d", x, target.Pixel(x, 0))
		}
	}

	target.Clear()
	Line(target, 0, 0, 4, 4)
	for i := 0; i < 5; i++ {
		if target.Pixel(i, i) != 255 {
			t.Fatalf("expected 255 at (%d, %d), got %d", i, i, target.Pixel(i, i))
		}
	}

	// single point
	target.Clear()
	Line(target, 2, 2, 2, 2)
	if target.Pixel(2, 2) != 255 {
		t.Fatalf("expected 255 at (2, 2), got %d", target.Pixel(2, 2))
	}
}

func TestLineAA(t *testing.T) {
	target := NewGray(6, 4)
	LineAA(target, 0, 1, 4, 1)

	// interior pixels of an axis-aligned line get full coverage
	for x := 1; x <= 3; x++ {
		if target.Pixel(x, 1) != 255 {
			t.Fatalf("expected 255 at (%d, 1), got %d", x, target.Pixel(x, 1))
		}
	}
	// endpoints get half coverage
	if target.Pixel(0, 1) != 128 {
		t.Fatalf("expected 128 at (0, 1), got %d", target.Pixel(0, 1))
	}
	if target.Pixel(4, 1) != 128 {
		t.Fatalf("expected 128 at (4, 1), got %d", target.Pixel(4, 1))
	}
	// nothing bleeds into the row below for an exactly horizontal line
	for x := 0; x < 6; x++ {
		if target.Pixel(x, 2) != 0 {
			t.Fatalf("expected 0 at (%d, 2), got %d", x, target.Pixel(x, 2))
		}
	}
}
