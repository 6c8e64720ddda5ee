package render

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/taigrr/flatshade/pkg/math3d"
)

func TestBarycentric(t *testing.T) {
	tri := ScreenTriangle{math3d.V2i(0, 0), math3d.V2i(10, 0), math3d.V2i(0, 10)}

	tests := []struct {
		name     string
		p        math3d.Vec2i
		expected math3d.Vec3
	}{
		{"vertex 0", math3d.V2i(0, 0), math3d.V3(1, 0, 0)},
		{"vertex 1", math3d.V2i(10, 0), math3d.V3(0, 1, 0)},
		{"vertex 2", math3d.V2i(0, 10), math3d.V3(0, 0, 1)},
		{"edge midpoint", math3d.V2i(5, 0), math3d.V3(0.5, 0.5, 0)},
		{"interior", math3d.V2i(2, 3), math3d.V3(0.5, 0.2, 0.3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bc := tri.Barycentric(tc.p)
			if math.Abs(bc.X-tc.expected.X) > 1e-9 ||
				math.Abs(bc.Y-tc.expected.Y) > 1e-9 ||
				math.Abs(bc.Z-tc.expected.Z) > 1e-9 {
				t.Errorf("Barycentric(%v) = %v, want %v", tc.p, bc, tc.expected)
			}
			if !tri.Contains(tc.p) {
				t.Errorf("Contains(%v) = false", tc.p)
			}
		})
	}

	t.Run("outside triangle", func(t *testing.T) {
		for _, p := range []math3d.Vec2i{{X: -1, Y: 0}, {X: 6, Y: 6}, {X: 0, Y: 11}} {
			if tri.Contains(p) {
				t.Errorf("Contains(%v) = true, want false", p)
			}
		}
	})
}

func TestBarycentricOwnVertices(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	pt := func() math3d.Vec2i { return math3d.V2i(rng.IntN(400)-100, rng.IntN(400)-100) }

	checked := 0
	for checked < 500 {
		tri := ScreenTriangle{pt(), pt(), pt()}
		if tri.Degenerate() {
			continue
		}
		checked++
		for i, v := range tri {
			if !tri.Contains(v) {
				t.Fatalf("triangle %v does not contain its vertex %d %v (bc %v)", tri, i, v, tri.Barycentric(v))
			}
		}
	}
}

func TestFillCollinearPaintsNothing(t *testing.T) {
	tests := []struct {
		name string
		tri  ScreenTriangle
	}{
		{"diagonal", ScreenTriangle{math3d.V2i(0, 0), math3d.V2i(5, 5), math3d.V2i(10, 10)}},
		{"horizontal", ScreenTriangle{math3d.V2i(3, 20), math3d.V2i(40, 20), math3d.V2i(17, 20)}},
		{"vertical", ScreenTriangle{math3d.V2i(8, 1), math3d.V2i(8, 30), math3d.V2i(8, 12)}},
		{"point", ScreenTriangle{math3d.V2i(7, 7), math3d.V2i(7, 7), math3d.V2i(7, 7)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.tri.Degenerate() {
				t.Fatalf("%v should be degenerate", tc.tri)
			}
			fb := NewFramebuffer(50, 50)
			if n := FillTriangle(fb, tc.tri, ColorRed); n != 0 {
				t.Errorf("FillTriangle painted %d pixels, want 0", n)
			}
			if n := countColor(fb, ColorRed); n != 0 {
				t.Errorf("%d red pixels, want 0", n)
			}
		})
	}
}

func TestFillTriangleRedOnBlack(t *testing.T) {
	fb := NewFramebuffer(200, 200)
	tri := ScreenTriangle{math3d.V2i(10, 70), math3d.V2i(50, 160), math3d.V2i(70, 80)}

	n := FillTriangle(fb, tri, ColorRed)
	if n == 0 {
		t.Fatal("nothing painted")
	}
	if got := fb.GetPixel(50, 100); got != ColorRed {
		t.Errorf("pixel (50,100) = %v, want red", got)
	}
	if got := fb.GetPixel(0, 0); got != ColorBlack {
		t.Errorf("pixel (0,0) = %v, want black", got)
	}
	if got := countColor(fb, ColorRed); got != n {
		t.Errorf("red pixels = %d, FillTriangle reported %d", got, n)
	}
}

func TestFillTriangleVertexOrderIrrelevant(t *testing.T) {
	a, b, c := math3d.V2i(10, 70), math3d.V2i(50, 160), math3d.V2i(70, 80)
	ref := NewFramebuffer(200, 200)
	FillTriangle(ref, ScreenTriangle{a, b, c}, ColorRed)

	for _, tri := range []ScreenTriangle{{a, c, b}, {b, a, c}, {c, b, a}} {
		fb := NewFramebuffer(200, 200)
		FillTriangle(fb, tri, ColorRed)
		for y := 0; y < 200; y++ {
			for x := 0; x < 200; x++ {
				if fb.GetPixel(x, y) != ref.GetPixel(x, y) {
					t.Fatalf("order %v differs at (%d,%d)", tri, x, y)
				}
			}
		}
	}
}

func TestFillTriangleClipsToBuffer(t *testing.T) {
	fb := NewFramebuffer(40, 30)
	tri := ScreenTriangle{math3d.V2i(-100, -100), math3d.V2i(300, -100), math3d.V2i(-100, 300)}

	if n := FillTriangle(fb, tri, ColorBlue); n != 40*30 {
		t.Errorf("painted %d pixels, want the whole %d-pixel buffer", n, 40*30)
	}

	off := ScreenTriangle{math3d.V2i(100, 100), math3d.V2i(120, 100), math3d.V2i(110, 130)}
	fb2 := NewFramebuffer(40, 30)
	if n := FillTriangle(fb2, off, ColorBlue); n != 0 {
		t.Errorf("off-screen triangle painted %d pixels", n)
	}
}

func TestFillTriangleSweepAgreesWithBarycentric(t *testing.T) {
	tri := ScreenTriangle{math3d.V2i(10, 70), math3d.V2i(50, 160), math3d.V2i(70, 80)}

	bary := NewFramebuffer(200, 200)
	nb := FillTriangle(bary, tri, ColorRed)
	sweep := NewFramebuffer(200, 200)
	ns := FillTriangleSweep(sweep, tri, ColorRed)

	if sweep.GetPixel(50, 100) != ColorRed {
		t.Error("sweep fill missed interior pixel (50,100)")
	}

	// The two differ only along the edges.
	perimeter := 0
	for i := range 3 {
		d := tri[(i+1)%3].Sub(tri[i])
		perimeter += max(abs(d.X), abs(d.Y)) + 1
	}
	if diff := abs(nb - ns); diff > perimeter {
		t.Errorf("barycentric %d vs sweep %d pixels: diff %d exceeds perimeter %d", nb, ns, diff, perimeter)
	}

	box := tri.BoundingBox()
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if sweep.GetPixel(x, y) == ColorRed &&
				(x < box.Min.X || x > box.Max.X || y < box.Min.Y || y > box.Max.Y) {
				t.Fatalf("sweep painted (%d,%d) outside the bounding box", x, y)
			}
		}
	}
}

func BenchmarkFillTriangle(b *testing.B) {
	fb := NewFramebuffer(600, 600)
	tri := ScreenTriangle{math3d.V2i(30, 210), math3d.V2i(150, 480), math3d.V2i(210, 240)}

	for b.Loop() {
		FillTriangle(fb, tri, ColorRed)
	}
}

func BenchmarkFillTriangleSweep(b *testing.B) {
	fb := NewFramebuffer(600, 600)
	tri := ScreenTriangle{math3d.V2i(30, 210), math3d.V2i(150, 480), math3d.V2i(210, 240)}

	for b.Loop() {
		FillTriangleSweep(fb, tri, ColorRed)
	}
}
