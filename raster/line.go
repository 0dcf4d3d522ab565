package raster

import "math"

// Integer and antialiased line rasterization. These back the rendering
// of stroke-based glyphs, where every shape is a polyline; they are
// exported because they are handy on their own for debug overlays.

// Line rasterizes the segment from (x0, y0) to (x1, y1) with Bresenham's
// algorithm, writing full coverage (alpha 255) on every touched pixel.
func Line(target Target, x0, y0, x1, y1 int) {
	dx := x1 - x0
	if dx < 0 { dx = -dx }
	dy := y1 - y0
	if dy < 0 { dy = -dy }
	stepX, stepY := 1, 1
	if x0 > x1 { stepX = -1 }
	if y0 > y1 { stepY = -1 }

	err := dx - dy
	for {
		target.PutPixel(x0, y0, 255)
		if x0 == x1 && y0 == y1 { return }
		err2 := err << 1
		if err2 > -dy {
			err -= dy
			x0 += stepX
		}
		if err2 < dx {
			err += dx
			y0 += stepY
		}
	}
}

// LineAA rasterizes the segment from (x0, y0) to (x1, y1) with Wu's
// algorithm. Each touched pixel receives round(clamp(coverage, 0, 1)*255);
// pixels with zero resulting coverage are skipped entirely.
func LineAA(target Target, x0, y0, x1, y1 float64) {
	steep := math.Abs(y1 - y0) > math.Abs(x1 - x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	gradient := 1.0
	if dx != 0 { gradient = (y1 - y0)/dx }

	// first endpoint
	xend := math.Round(x0)
	yend := y0 + gradient*(xend - x0)
	xgap := 1 - fracPart(x0 + 0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))
	plotAA(target, steep, xpxl1, ypxl1, (1 - fracPart(yend))*xgap)
	plotAA(target, steep, xpxl1, ypxl1 + 1, fracPart(yend)*xgap)
	intery := yend + gradient

	// second endpoint
	xend = math.Round(x1)
	yend = y1 + gradient*(xend - x1)
	xgap = fracPart(x1 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))
	plotAA(target, steep, xpxl2, ypxl2, (1 - fracPart(yend))*xgap)
	plotAA(target, steep, xpxl2, ypxl2 + 1, fracPart(yend)*xgap)

	// main loop
	for x := xpxl1 + 1; x < xpxl2; x++ {
		plotAA(target, steep, x, int(math.Floor(intery)), 1 - fracPart(intery))
		plotAA(target, steep, x, int(math.Floor(intery)) + 1, fracPart(intery))
		intery += gradient
	}
}

func fracPart(value float64) float64 { return value - math.Floor(value) }

func plotAA(target Target, steep bool, x, y int, coverage float64) {
	if coverage <= 0 { return }
	if coverage > 1 { coverage = 1 }
	alpha := uint8(math.Round(coverage*255))
	if alpha == 0 { return }
	if steep {
		target.PutPixel(y, x, alpha)
	} else {
		target.PutPixel(x, y, alpha)
	}
}
