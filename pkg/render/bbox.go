package render

import (
	"iter"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// BoundingBox is an axis-aligned integer box with inclusive corners.
type BoundingBox struct {
	Min, Max math3d.Vec2i
}

// NewBoundingBox returns the smallest box containing a, b and c.
func NewBoundingBox(a, b, c math3d.Vec2i) BoundingBox {
	return BoundingBox{
		Min: a.Min(b).Min(c),
		Max: a.Max(b).Max(c),
	}
}

// Clamp restricts the box in place to [lo, hi] inclusive. A box lying fully
// outside that range ends up inverted, which Empty reports.
func (b *BoundingBox) Clamp(lo, hi math3d.Vec2i) *BoundingBox {
	b.Min = b.Min.Max(lo)
	b.Max = b.Max.Min(hi)
	return b
}

// Empty reports whether the box contains no points.
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Area returns the number of integer points in the box.
func (b BoundingBox) Area() int {
	if b.Empty() {
		return 0
	}
	return (b.Max.X - b.Min.X + 1) * (b.Max.Y - b.Min.Y + 1)
}

// Points yields every integer point of the box row by row, x varying
// fastest. The sequence is bound to the box value at the time of the call
// and can be ranged over any number of times.
func (b BoundingBox) Points() iter.Seq[math3d.Vec2i] {
	return func(yield func(math3d.Vec2i) bool) {
		for y := b.Min.Y; y <= b.Max.Y; y++ {
			for x := b.Min.X; x <= b.Max.X; x++ {
				if !yield(math3d.V2i(x, y)) {
					return
				}
			}
		}
	}
}
