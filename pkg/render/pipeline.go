package render

import (
	"fmt"

	"github.com/taigrr/flatshade/pkg/models"
)

// RenderFile runs the whole batch: load the mesh at meshPath, flat-shade
// it into a width x height black framebuffer, flip it, and save it to
// outPath. Load failures wrap models.ErrMeshLoad and write failures wrap
// ErrImageWrite; nothing is written when loading or rendering fails. With
// WithStrictIndices the whole mesh is validated before any face is drawn.
func RenderFile(meshPath, outPath string, width, height int, opts ...Option) (Stats, error) {
	mesh, err := models.Load(meshPath)
	if err != nil {
		return Stats{}, err
	}

	fb := NewFramebuffer(width, height)
	r := NewRenderer(fb, opts...)
	if r.strict {
		if err := mesh.Validate(); err != nil {
			return Stats{}, fmt.Errorf("%w: %s: %w", ErrBadFace, mesh.Name, err)
		}
	}

	stats, err := r.Render(mesh)
	if err != nil {
		return stats, fmt.Errorf("render %s: %w", mesh.Name, err)
	}
	r.Finalize()

	Logger().Info("rendered mesh",
		"mesh", mesh.Name, "vertices", mesh.VertexCount(),
		"faces", stats.Faces, "drawn", stats.Drawn, "culled", stats.Culled,
		"skipped", stats.Skipped, "pixels", stats.Pixels)

	if err := fb.Save(outPath); err != nil {
		return stats, err
	}
	return stats, nil
}
