// Package render provides software rasterization for flatshade.
package render

import (
	"image"
	"image/color"
)

// Framebuffer is a fixed-size RGB8 pixel grid, row-major with three bytes
// per pixel. It implements draw.Image so the image/x/image encoders and
// scalers can read from and write into it directly.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint8 // R, G, B per pixel; stride is 3*Width
}

// NewFramebuffer creates a framebuffer with every pixel black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// Stride returns the number of bytes per row.
func (fb *Framebuffer) Stride() int {
	return 3 * fb.Width
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	if len(fb.Pix) == 0 {
		return
	}
	fb.Pix[0], fb.Pix[1], fb.Pix[2] = c.R, c.G, c.B
	// copy-doubling
	for i := 3; i < len(fb.Pix); i *= 2 {
		copy(fb.Pix[i:], fb.Pix[:i])
	}
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// PutPixel writes c at (x, y). No bounds check is done: callers clamp first.
func (fb *Framebuffer) PutPixel(x, y int, c Color) {
	i := y*fb.Stride() + 3*x
	fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = c.R, c.G, c.B
}

// SetPixel writes c at (x, y) if it is in bounds and reports whether it did.
func (fb *Framebuffer) SetPixel(x, y int, c Color) bool {
	if !fb.InBounds(x, y) {
		return false
	}
	fb.PutPixel(x, y, c)
	return true
}

// GetPixel returns the color at (x, y).
// Returns opaque black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if !fb.InBounds(x, y) {
		return ColorBlack
	}
	i := y*fb.Stride() + 3*x
	return RGB(fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2])
}

// FlipVertical reverses the row order in place: row i swaps with row
// Height-1-i. Applying it twice restores the original buffer.
func (fb *Framebuffer) FlipVertical() {
	stride := fb.Stride()
	tmp := make([]uint8, stride)
	for top, bot := 0, fb.Height-1; top < bot; top, bot = top+1, bot-1 {
		rowTop := fb.Pix[top*stride : (top+1)*stride]
		rowBot := fb.Pix[bot*stride : (bot+1)*stride]
		copy(tmp, rowTop)
		copy(rowTop, rowBot)
		copy(rowBot, tmp)
	}
}

// Clone returns a deep copy of the framebuffer.
func (fb *Framebuffer) Clone() *Framebuffer {
	clone := &Framebuffer{
		Width:  fb.Width,
		Height: fb.Height,
		Pix:    make([]uint8, len(fb.Pix)),
	}
	copy(clone.Pix, fb.Pix)
	return clone
}

// ColorModel implements image.Image.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// At implements image.Image.
func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.GetPixel(x, y)
}

// Set implements draw.Image. Out-of-range writes are ignored.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	fb.SetPixel(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for y := 0; y < fb.Height; y++ {
		src := fb.Pix[y*fb.Stride() : (y+1)*fb.Stride()]
		dst := img.Pix[y*img.Stride : y*img.Stride+4*fb.Width]
		for x := 0; x < fb.Width; x++ {
			dst[4*x] = src[3*x]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+2]
			dst[4*x+3] = 255
		}
	}
	return img
}
