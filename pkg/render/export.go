package render

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrImageWrite is returned (wrapped) when the framebuffer cannot be
// encoded or written.
var ErrImageWrite = errors.New("image write failed")

// ImageFormat selects the encoder used by Encode and Save.
type ImageFormat int

const (
	FormatPNG  ImageFormat = iota // PNG (image/png)
	FormatBMP                     // 24-bit BMP (x/image/bmp)
	FormatTIFF                    // Deflate-compressed TIFF (x/image/tiff)
)

func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("ImageFormat(%d)", int(f))
	}
}

// FormatFromPath picks the image format from the file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: unsupported format: %q (use .png, .bmp or .tiff)", ErrImageWrite, ext)
	}
}

// Encode writes the framebuffer to w in the given format.
func (fb *Framebuffer) Encode(w io.Writer, format ImageFormat) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, fb)
	case FormatBMP:
		err = bmp.Encode(w, fb.ToImage())
	case FormatTIFF:
		err = tiff.Encode(w, fb.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return fmt.Errorf("%w: encode %v: %w", ErrImageWrite, format, err)
	}
	return nil
}

// Save writes the framebuffer to path, choosing the format from the
// extension. A partially written file is removed on failure.
func (fb *Framebuffer) Save(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close: %w", ErrImageWrite, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return fb.Encode(f, format)
}
