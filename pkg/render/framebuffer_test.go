package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewFramebufferIsBlack(t *testing.T) {
	fb := NewFramebuffer(7, 5)
	if len(fb.Pix) != 3*7*5 {
		t.Fatalf("len(Pix) = %d, want %d", len(fb.Pix), 3*7*5)
	}
	if n := countColor(fb, ColorBlack); n != 35 {
		t.Errorf("%d black pixels, want 35", n)
	}
}

func TestFramebufferClear(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 3}, {17, 9}, {64, 64}} {
		fb := NewFramebuffer(size[0], size[1])
		c := RGB(10, 20, 30)
		fb.Clear(c)
		if n := countColor(fb, c); n != size[0]*size[1] {
			t.Errorf("%dx%d: %d pixels cleared, want %d", size[0], size[1], n, size[0]*size[1])
		}
	}

	// Zero-sized buffers are a no-op.
	NewFramebuffer(0, 0).Clear(ColorWhite)
}

func TestFramebufferPixelAccess(t *testing.T) {
	fb := NewFramebuffer(10, 10)

	if !fb.SetPixel(3, 4, ColorRed) {
		t.Error("SetPixel(3,4) = false")
	}
	if got := fb.GetPixel(3, 4); got != ColorRed {
		t.Errorf("GetPixel(3,4) = %v, want red", got)
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if fb.SetPixel(p[0], p[1], ColorWhite) {
			t.Errorf("SetPixel(%d,%d) out of bounds = true", p[0], p[1])
		}
		if got := fb.GetPixel(p[0], p[1]); got != ColorBlack {
			t.Errorf("GetPixel(%d,%d) = %v, want black", p[0], p[1], got)
		}
	}
	if n := countColor(fb, ColorWhite); n != 0 {
		t.Errorf("out-of-bounds writes changed %d pixels", n)
	}
}

func TestFlipVertical(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetPixel(1, 0, ColorRed)
	fb.SetPixel(2, 1, ColorGreen)
	fb.SetPixel(3, 2, ColorBlue)
	orig := bytes.Clone(fb.Pix)

	fb.FlipVertical()
	if fb.GetPixel(1, 2) != ColorRed || fb.GetPixel(1, 0) != ColorBlack {
		t.Error("row 0 did not move to row 2")
	}
	if fb.GetPixel(2, 1) != ColorGreen {
		t.Error("middle row of an odd-height buffer moved")
	}
	if fb.GetPixel(3, 0) != ColorBlue {
		t.Error("row 2 did not move to row 0")
	}

	fb.FlipVertical()
	if !bytes.Equal(fb.Pix, orig) {
		t.Error("flipping twice did not restore the buffer")
	}
}

func TestFramebufferClone(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	fb.SetPixel(2, 2, ColorWhite)

	clone := fb.Clone()
	clone.SetPixel(0, 0, ColorRed)

	if fb.GetPixel(0, 0) != ColorBlack {
		t.Error("writing the clone changed the original")
	}
	if clone.GetPixel(2, 2) != ColorWhite {
		t.Error("clone lost a pixel")
	}
}

func TestFramebufferDrawImage(t *testing.T) {
	var img draw.Image = NewFramebuffer(8, 6)

	if got := img.Bounds(); got.Dx() != 8 || got.Dy() != 6 {
		t.Errorf("Bounds = %v", got)
	}
	img.Set(1, 1, color.Gray{Y: 128})
	img.Set(100, 100, ColorWhite)

	r, g, b, a := img.At(1, 1).RGBA()
	if r>>8 != 128 || g>>8 != 128 || b>>8 != 128 || a>>8 != 255 {
		t.Errorf("At(1,1) = %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}

	draw.Draw(img, img.Bounds(), image.NewUniform(ColorGreen), image.Point{}, draw.Src)
	if n := countColor(img.(*Framebuffer), ColorGreen); n != 48 {
		t.Errorf("draw.Draw filled %d pixels, want 48", n)
	}
}

func TestToImage(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetPixel(2, 1, RGB(1, 2, 3))

	img := fb.ToImage()
	if img.Bounds() != fb.Bounds() {
		t.Fatalf("bounds %v, want %v", img.Bounds(), fb.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != RGB(1, 2, 3) {
		t.Errorf("RGBAAt(2,1) = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != ColorBlack {
		t.Errorf("RGBAAt(0,0) = %v, want opaque black", got)
	}
}
