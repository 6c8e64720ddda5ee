// flatshade - software flat-shading rasterizer
// Renders models/african_head.obj into african_head.png (600x600).
//
// There are no flags: paths and size are fixed. Exit status is 0 on
// success and 1 if the mesh cannot be loaded or the image cannot be written.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/taigrr/flatshade/pkg/render"
)

const (
	meshPath   = "models/african_head.obj"
	outputPath = "african_head.png"
	width      = 600
	height     = 600
)

func main() {
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	stats, err := render.RenderFile(meshPath, outputPath, width, height)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d, %d of %d faces drawn)\n", outputPath, width, height, stats.Drawn, stats.Faces)
	return nil
}
