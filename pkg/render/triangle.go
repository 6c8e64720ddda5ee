package render

import (
	"github.com/taigrr/flatshade/pkg/math3d"
)

// ScreenTriangle is a triangle in pixel coordinates. The fill routine
// assumes no ordering among the vertices.
type ScreenTriangle [3]math3d.Vec2i

// degenerate fails the containment test for every point.
var degenerate = math3d.V3(-1, 1, 1)

// BoundingBox returns the triangle's unclamped bounding box.
func (t ScreenTriangle) BoundingBox() BoundingBox {
	return NewBoundingBox(t[0], t[1], t[2])
}

// Barycentric returns the barycentric weights of p with respect to t.
// Triangles with zero signed area at integer precision return a sentinel
// with a negative weight, so nothing is ever contained in them.
func (t ScreenTriangle) Barycentric(p math3d.Vec2i) math3d.Vec3 {
	a, b, c := t[0], t[1], t[2]
	x := math3d.Vec3i{X: c.X - a.X, Y: b.X - a.X, Z: a.X - p.X}
	y := math3d.Vec3i{X: c.Y - a.Y, Y: b.Y - a.Y, Z: a.Y - p.Y}
	u := x.Cross(y)
	if abs(u.Z) < 1 {
		return degenerate
	}
	uz := float64(u.Z)
	return math3d.V3(
		1-float64(u.X+u.Y)/uz,
		float64(u.Y)/uz,
		float64(u.X)/uz,
	)
}

// Contains reports whether p lies inside t or on its boundary.
func (t ScreenTriangle) Contains(p math3d.Vec2i) bool {
	bc := t.Barycentric(p)
	return bc.X >= 0 && bc.Y >= 0 && bc.Z >= 0
}

// Degenerate reports whether the triangle has zero area at integer precision.
func (t ScreenTriangle) Degenerate() bool {
	e1 := t[2].Sub(t[0])
	e2 := t[1].Sub(t[0])
	return e1.X*e2.Y-e2.X*e1.Y == 0
}

// FillTriangle paints every pixel of fb covered by t and returns the number
// of pixels written. Edge pixels belong to every triangle sharing the edge.
func FillTriangle(fb *Framebuffer, t ScreenTriangle, c Color) int {
	return fillTriangleIn(fb, t, c, math3d.V2i(0, 0), math3d.V2i(fb.Width-1, fb.Height-1))
}

// fillTriangleIn is FillTriangle restricted to the [lo, hi] rectangle, which
// must lie inside the framebuffer.
func fillTriangleIn(fb *Framebuffer, t ScreenTriangle, c Color, lo, hi math3d.Vec2i) int {
	box := t.BoundingBox()
	box.Clamp(lo, hi)

	n := 0
	for p := range box.Points() {
		if t.Contains(p) {
			fb.PutPixel(p.X, p.Y, c)
			n++
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
