package render

import (
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// bandRows is the height of one work unit for the banded fill.
const bandRows = 32

// fillBanded fills faces with up to r.workers goroutines. The framebuffer
// is cut into horizontal bands and every band walks all faces in order,
// painting only its own rows. Bands never share a pixel, so each pixel sees
// the same sequence of writes as the sequential fill.
func (r *Renderer) fillBanded(faces []shadedFace) int {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}

	bands := (h + bandRows - 1) / bandRows
	counts := make([]int, bands)

	var g errgroup.Group
	g.SetLimit(r.workers)
	for b := range bands {
		lo := math3d.V2i(0, b*bandRows)
		hi := math3d.V2i(w-1, min((b+1)*bandRows, h)-1)
		g.Go(func() error {
			for _, f := range faces {
				counts[b] += fillTriangleIn(r.fb, f.tri, f.color, lo, hi)
			}
			return nil
		})
	}
	// Workers cannot fail; Wait only joins them.
	_ = g.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	Logger().Debug("banded fill", "bands", bands, "workers", r.workers, "faces", len(faces))
	return total
}
