package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw renders the framebuffer onto terminal cells. Each terminal row shows
// two framebuffer rows using ▀ with fg=top color and bg=bottom color, so the
// framebuffer height should be 2x the area height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: fb.GetPixel(x, topY),
					Bg: fb.GetPixel(x, botY),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// Color is an alias for color.RGBA for convenience. Only R, G and B are
// stored in a Framebuffer; alpha is always 255 when read back.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Gray creates a gray color with all three channels set to v.
func Gray(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 255}
}
