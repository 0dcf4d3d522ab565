package onyxfont

import "testing"

import "github.com/devbrain/onyx-font/raster"

func TestRasterizeBitmapGlyph(t *testing.T) {
	target := raster.NewGray(8, 8)
	glyph := testBitmapGlyph{ width: 3, height: 5 }
	RasterizeBitmapGlyph(target, glyph, 2, 1)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inked := x >= 2 && x < 5 && y >= 1 && y < 6
			expected := uint8(0)
			if inked { expected = 255 }
			got := target.Pixel(x, y)
			if got != expected {
				t.Fatalf("pixel (%d, %d): expected %d, got %d", x, y, expected, got)
			}
		}
	}
}

func TestRasterizeBitmapGlyphClipped(t *testing.T) {
	// partially off-target glyphs must not panic
	target := raster.NewGray(4, 4)
	glyph := testBitmapGlyph{ width: 3, height: 5 }
	RasterizeBitmapGlyph(target, glyph, -1, 2)
	if target.Pixel(0, 2) != 255 {
		t.Fatalf("expected 255 at (0, 2), got %d", target.Pixel(0, 2))
	}
	if target.Pixel(2, 2) != 0 {
		t.Fatalf("expected 0 at (2, 2), got %d", target.Pixel(2, 2))
	}
}

func TestRasterizeStrokeGlyphAliased(t *testing.T) {
	target := raster.NewGray(8, 8)
	glyph := (testStrokeFont{}).Glyph('L')
	RasterizeStrokeGlyph(target, glyph, 1, 5, 1.0, Aliased)

	// vertical bar from (1, 5) up to (1, 1)
	for y := 1; y <= 5; y++ {
		if target.Pixel(1, y) != 255 {
			t.Fatalf("expected 255 at (1, %d), got %d", y, target.Pixel(1, y))
		}
	}
	// foot from (1, 5) to (5, 5)
	for x := 1; x <= 5; x++ {
		if target.Pixel(x, 5) != 255 {
			t.Fatalf("expected 255 at (%d, 5), got %d", x, target.Pixel(x, 5))
		}
	}
	// the MoveTo between the two segments must not draw anything else
	if target.Pixel(3, 3) != 0 {
		t.Fatalf("expected 0 at (3, 3), got %d", target.Pixel(3, 3))
	}
}

func TestRasterizeStrokeGlyphPenControl(t *testing.T) {
	// a lone StrokeEnd lifts the pen, so a following LineTo moves
	// without drawing
	target := raster.NewGray(8, 8)
	glyph := &StrokeGlyph{
		Width: 6,
		Commands: []StrokeCommand{
			{ Op: StrokeEnd },
			{ Op: StrokeLineTo, DX: 4, DY: 0 },
		},
	}
	RasterizeStrokeGlyph(target, glyph, 1, 4, 1.0, Aliased)
	for _, value := range target.Pixels() {
		if value != 0 { t.Fatalf("expected empty target, got %d", value) }
	}

	// a MoveTo after the End puts the pen down again
	glyph.Commands = append(glyph.Commands,
		StrokeCommand{ Op: StrokeMoveTo, DX: -4, DY: 0 },
		StrokeCommand{ Op: StrokeLineTo, DX: 2, DY: 0 },
	)
	RasterizeStrokeGlyph(target, glyph, 1, 4, 1.0, Aliased)
	for x := 1; x <= 3; x++ {
		if target.Pixel(x, 4) != 255 {
			t.Fatalf("expected 255 at (%d, 4), got %d", x, target.Pixel(x, 4))
		}
	}
}

func TestRasterizeStrokeGlyphAntialiased(t *testing.T) {
	// an antialiased diagonal must put some ink down without panicking
	target := raster.NewGray(8, 8)
	glyph := (testStrokeFont{}).Glyph('?')
	RasterizeStrokeGlyph(target, glyph, 2, 6, 1.0, Antialiased)

	total := 0
	for _, value := range target.Pixels() { total += int(value) }
	if total == 0 { t.Fatalf("expected some coverage, got an empty target") }
}

func TestRasterizeStrokeGlyphNil(t *testing.T) {
	target := raster.NewGray(4, 4)
	RasterizeStrokeGlyph(target, nil, 0, 0, 1.0, Aliased) // must be a no-op
	for _, value := range target.Pixels() {
		if value != 0 { t.Fatalf("expected empty target, got %d", value) }
	}
}
