package onyxfont

import "testing"

import "github.com/devbrain/onyx-font/raster"

func TestFontSourceBitmap(t *testing.T) {
	source := FromBitmap(newTestBitmapFont())
	if source.Kind() != SourceBitmap {
		t.Fatalf("expected SourceBitmap, got %d", source.Kind())
	}
	if !source.HasGlyph('A') || !source.HasGlyph('C') {
		t.Fatalf("expected coverage of 'A' and 'C'")
	}
	if source.HasGlyph('Z') || source.HasGlyph('日') {
		t.Fatalf("expected no coverage outside the font range")
	}
	if source.DefaultChar() != 'B' {
		t.Fatalf("expected default char 'B', got '%s'", string(source.DefaultChar()))
	}
	if source.NativeSize() != 6 {
		t.Fatalf("expected native size 6, got %f", source.NativeSize())
	}

	// bitmap metrics ignore the requested size
	for _, size := range []float64{6, 12, 99} {
		metrics := source.ScaledMetrics(size)
		if metrics.Ascent != 5 || metrics.Descent != 1 {
			t.Fatalf("size %f: expected ascent 5 and descent 1, got %f and %f", size, metrics.Ascent, metrics.Descent)
		}
		if metrics.LineGap != 1 || metrics.LineHeight != 7 {
			t.Fatalf("size %f: expected line gap 1 and line height 7, got %f and %f", size, metrics.LineGap, metrics.LineHeight)
		}
	}

	if source.Kern('A', 'B', 6) != 0 {
		t.Fatalf("expected zero kerning for bitmap fonts")
	}
}

func TestFontSourceBitmapGlyphMetrics(t *testing.T) {
	source := FromBitmap(newTestBitmapFont())
	metrics := source.GlyphMetrics('A', 6)
	if metrics.Width != 3 || metrics.Height != 5 {
		t.Fatalf("expected 3x5 ink box, got %fx%f", metrics.Width, metrics.Height)
	}
	if metrics.BearingX != 1 || metrics.BearingY != 5 {
		t.Fatalf("expected bearings (1, 5), got (%f, %f)", metrics.BearingX, metrics.BearingY)
	}
	if metrics.AdvanceX != 5 {
		t.Fatalf("expected advance 5, got %f", metrics.AdvanceX)
	}

	// out-of-range characters take the default character's metrics
	fallback := source.GlyphMetrics('z', 6)
	if fallback != metrics {
		t.Fatalf("expected default char metrics for 'z', got %v", fallback)
	}

	// a broken default character yields empty metrics instead of
	// panicking
	font := newTestBitmapFont()
	font.fallback = 'Z'
	source = FromBitmap(font)
	empty := source.GlyphMetrics('z', 6)
	if empty != (GlyphMetrics{}) {
		t.Fatalf("expected empty metrics, got %v", empty)
	}
}

func TestFontSourceBitmapRasterize(t *testing.T) {
	source := FromBitmap(newTestBitmapFont())
	target := raster.NewGray(10, 10)
	source.RasterizeGlyph(target, 'A', 6, 2, 6, Aliased)

	// left bearing 1 shifts the ink to x=3; ascent 5 puts the top
	// at y=1
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inked := x >= 3 && x < 6 && y >= 1 && y < 6
			expected := uint8(0)
			if inked { expected = 255 }
			got := target.Pixel(x, y)
			if got != expected {
				t.Fatalf("pixel (%d, %d): expected %d, got %d", x, y, expected, got)
			}
		}
	}
}

func TestFontSourceStroke(t *testing.T) {
	source := FromStroke(testStrokeFont{})
	if source.Kind() != SourceStroke {
		t.Fatalf("expected SourceStroke, got %d", source.Kind())
	}
	if !source.HasGlyph('L') || source.HasGlyph('x') || source.HasGlyph('日') {
		t.Fatalf("unexpected glyph coverage")
	}
	if source.NativeSize() != 0 {
		t.Fatalf("expected no native size for stroke fonts, got %f", source.NativeSize())
	}

	// metrics scale linearly with size
	metrics := source.ScaledMetrics(16)
	if metrics.Ascent != 12 || metrics.Descent != 4 {
		t.Fatalf("expected ascent 12 and descent 4, got %f and %f", metrics.Ascent, metrics.Descent)
	}
	if metrics.LineGap != 0 || metrics.LineHeight != 16 {
		t.Fatalf("expected line gap 0 and line height 16, got %f and %f", metrics.LineGap, metrics.LineHeight)
	}
}

func TestFontSourceStrokeGlyphMetrics(t *testing.T) {
	source := FromStroke(testStrokeFont{})

	// at the native design size the scale is exactly 1
	metrics := source.GlyphMetrics('L', 8)
	if metrics.AdvanceX != 6 || metrics.BearingX != 0 {
		t.Fatalf("expected advance 6 and bearing x 0, got %f and %f", metrics.AdvanceX, metrics.BearingX)
	}
	if metrics.BearingY != 4 {
		t.Fatalf("expected bearing y 4, got %f", metrics.BearingY)
	}
	if metrics.Width != 5 || metrics.Height != 5 {
		t.Fatalf("expected 5x5 bounds, got %fx%f", metrics.Width, metrics.Height)
	}

	// missing characters fall back to the default glyph
	fallback := source.GlyphMetrics('z', 8)
	if fallback.AdvanceX != 4 || fallback.BearingY != 2 {
		t.Fatalf("expected default glyph metrics, got %v", fallback)
	}
	if fallback.Width != 3 || fallback.Height != 3 {
		t.Fatalf("expected 3x3 bounds, got %fx%f", fallback.Width, fallback.Height)
	}

	// doubled size doubles everything
	doubled := source.GlyphMetrics('L', 16)
	if doubled.AdvanceX != 12 || doubled.Width != 10 {
		t.Fatalf("expected doubled metrics, got %v", doubled)
	}
}

func TestFontSourceOutline(t *testing.T) {
	source := FromOutline(testOutlineSfnt)
	if source.Kind() != SourceOutline {
		t.Fatalf("expected SourceOutline, got %d", source.Kind())
	}
	if !source.HasGlyph('A') || !source.HasGlyph('ñ') {
		t.Fatalf("expected coverage of 'A' and 'ñ'")
	}
	if source.DefaultChar() != '?' {
		t.Fatalf("expected default char '?', got '%s'", string(source.DefaultChar()))
	}
	if source.NativeSize() != 0 {
		t.Fatalf("expected no native size for outline fonts, got %f", source.NativeSize())
	}

	metrics := source.ScaledMetrics(16)
	if metrics.Ascent <= 0 || metrics.Descent <= 0 {
		t.Fatalf("expected positive ascent and descent, got %f and %f", metrics.Ascent, metrics.Descent)
	}
	if metrics.LineHeight < metrics.Ascent + metrics.Descent {
		t.Fatalf("expected line height of at least %f, got %f", metrics.Ascent + metrics.Descent, metrics.LineHeight)
	}

	glyph := source.GlyphMetrics('A', 16)
	if glyph.AdvanceX <= 0 || glyph.Width <= 0 || glyph.Height <= 0 {
		t.Fatalf("expected positive 'A' metrics, got %v", glyph)
	}
	if glyph.BearingY <= 0 {
		t.Fatalf("expected 'A' to sit above the baseline, got bearing y %f", glyph.BearingY)
	}
}

func TestFontSourceOutlineRasterize(t *testing.T) {
	source := FromOutline(testOutlineSfnt)
	target := raster.NewGray(32, 32)
	source.RasterizeGlyph(target, 'A', 24, 4, 26, Antialiased)

	total := 0
	aboveBaseline := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			value := int(target.Pixel(x, y))
			total += value
			if y < 26 { aboveBaseline += value }
		}
	}
	if total == 0 { t.Fatalf("expected some coverage, got an empty target") }
	if aboveBaseline < total/2 {
		t.Fatalf("expected most ink above the baseline, got %d of %d", aboveBaseline, total)
	}
}

func TestFontSourceNilPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"bitmap": func() { FromBitmap(nil) },
		"stroke": func() { FromStroke(nil) },
		"outline": func() { FromOutline(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil { t.Fatalf("%s: expected panic on nil font", name) }
			}()
			fn()
		}()
	}
}
