package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ScaleInto draws src scaled into the dr rectangle of dst with
// nearest-neighbor sampling, which keeps flat-shaded edges hard.
func ScaleInto(dst *Framebuffer, dr image.Rectangle, src *Framebuffer) {
	xdraw.NearestNeighbor.Scale(dst, dr, src, src.Bounds(), xdraw.Src, nil)
}

// FitSquare returns the largest square rectangle centered in bounds.
func FitSquare(bounds image.Rectangle) image.Rectangle {
	side := min(bounds.Dx(), bounds.Dy())
	x0 := bounds.Min.X + (bounds.Dx()-side)/2
	y0 := bounds.Min.Y + (bounds.Dy()-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}
