package render

import (
	"slices"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// DrawLine draws a straight segment from p0 to p1 with Bresenham's integer
// algorithm and returns the number of pixels written. Both endpoints are
// drawn, so chained segments share their joint pixel. Pixels falling
// outside fb are skipped.
func DrawLine(fb *Framebuffer, p0, p1 math3d.Vec2i, c Color) int {
	steep := false
	if abs(p0.X-p1.X) < abs(p0.Y-p1.Y) {
		p0, p1 = p0.Transpose(), p1.Transpose()
		steep = true
	}
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	derr2 := 2 * abs(dy)
	err2 := 0
	ystep := 1
	if dy < 0 {
		ystep = -1
	}

	n := 0
	y := p0.Y
	for x := p0.X; x <= p1.X; x++ {
		px, py := x, y
		if steep {
			px, py = y, x
		}
		if fb.SetPixel(px, py, c) {
			n++
		}

		err2 += derr2
		if err2 > dx {
			y += ystep
			err2 -= 2 * dx
		}
	}
	return n
}

// sortedByY returns t's vertices ordered top to bottom (ascending Y).
func sortedByY(t ScreenTriangle) ScreenTriangle {
	s := t
	slices.SortStableFunc(s[:], func(a, b math3d.Vec2i) int {
		return a.Y - b.Y
	})
	return s
}

// DrawTriangleOutline draws the three edges of t. Vertices are sorted top to
// bottom first so an edge is always walked in the same direction no matter
// how the face listed them. Returns the number of pixels written, counting
// each shared vertex once per edge.
func DrawTriangleOutline(fb *Framebuffer, t ScreenTriangle, c Color) int {
	s := sortedByY(t)
	return DrawLine(fb, s[0], s[1], c) +
		DrawLine(fb, s[1], s[2], c) +
		DrawLine(fb, s[0], s[2], c)
}

// FillTriangleSweep fills t with horizontal spans, walking scanlines from
// the top vertex to the bottom one. It is the line-sweep counterpart of
// FillTriangle and returns the number of pixels written.
func FillTriangleSweep(fb *Framebuffer, t ScreenTriangle, c Color) int {
	s := sortedByY(t)
	t0, t1, t2 := s[0], s[1], s[2]
	if t0.Y == t2.Y {
		return 0
	}

	n := 0
	total := t2.Y - t0.Y
	for i := 0; i <= total; i++ {
		secondHalf := i > t1.Y-t0.Y || t1.Y == t0.Y
		segment := t1.Y - t0.Y
		if secondHalf {
			segment = t2.Y - t1.Y
		}

		alpha := float64(i) / float64(total)
		var beta float64
		if secondHalf {
			beta = float64(i-(t1.Y-t0.Y)) / float64(segment)
		} else {
			beta = float64(i) / float64(segment)
		}

		ax := float64(t0.X) + float64(t2.X-t0.X)*alpha
		var bx float64
		if secondHalf {
			bx = float64(t1.X) + float64(t2.X-t1.X)*beta
		} else {
			bx = float64(t0.X) + float64(t1.X-t0.X)*beta
		}

		x0, x1 := int(ax), int(bx)
		if x0 > x1 {
			x0, x1 = x1, x0
		}

		y := t0.Y + i
		if y < 0 || y >= fb.Height {
			continue
		}
		x0, x1 = max(x0, 0), min(x1, fb.Width-1)
		for x := x0; x <= x1; x++ {
			fb.PutPixel(x, y, c)
			n++
		}
	}
	return n
}
