package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// DefaultLightDir is the fixed light direction of the flat-shading pass.
var DefaultLightDir = math3d.Forward()

// ErrBadFace is returned in strict mode when a face references a vertex
// that does not exist.
var ErrBadFace = errors.New("face index out of range")

// MeshSource is the read-only view of a mesh the renderer needs.
// models.Mesh implements it; the interface keeps render free of loader
// concerns.
type MeshSource interface {
	VertexCount() int
	TriangleCount() int
	GetFace(i int) [3]int
	GetVertex(i int) math3d.Vec3
}

// Stats counts what a render pass did.
type Stats struct {
	Faces   int // faces visited
	Drawn   int // faces filled
	Culled  int // faces facing away from the light (or degenerate)
	Skipped int // faces with out-of-range indices
	Pixels  int // pixel writes, overdraw included
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Faces += o.Faces
	s.Drawn += o.Drawn
	s.Culled += o.Culled
	s.Skipped += o.Skipped
	s.Pixels += o.Pixels
}

// Renderer runs the flat-shading pipeline into a framebuffer it owns for
// the duration of the pass. Faces are painted in mesh order with no depth
// test, so later faces overwrite earlier ones.
type Renderer struct {
	fb       *Framebuffer
	lightDir math3d.Vec3
	workers  int
	strict   bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLight sets the light direction. It is normalized.
func WithLight(dir math3d.Vec3) Option {
	return func(r *Renderer) {
		r.lightDir = dir.Normalize()
	}
}

// WithWorkers fills faces on n goroutines, each owning a band of rows.
// Output is identical to the sequential pass. n <= 1 disables it.
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		r.workers = n
	}
}

// WithStrictIndices makes an out-of-range face index abort the pass with
// ErrBadFace instead of skipping the face.
func WithStrictIndices() Option {
	return func(r *Renderer) {
		r.strict = true
	}
}

// NewRenderer creates a renderer drawing into fb.
func NewRenderer(fb *Framebuffer, opts ...Option) *Renderer {
	r := &Renderer{
		fb:       fb,
		lightDir: DefaultLightDir,
		workers:  1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Framebuffer returns the target framebuffer.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Width returns the framebuffer width.
func (r *Renderer) Width() int {
	return r.fb.Width
}

// Height returns the framebuffer height.
func (r *Renderer) Height() int {
	return r.fb.Height
}

// maxCoord bounds projected pixel coordinates so the integer cross
// products in Barycentric cannot overflow.
const maxCoord = 1 << 24

// Project maps a model-space position from the [-1,1] cube to pixel
// coordinates with a fixed orthographic rescale. Z is dropped and the
// result is truncated toward zero, then clamped to ±maxCoord.
func (r *Renderer) Project(v math3d.Vec3) math3d.Vec2i {
	w, h := float64(r.Width()), float64(r.Height())
	return math3d.V2i(
		clampCoord((v.X+1)*w/2-1),
		clampCoord((v.Y+1)*h/2-1),
	)
}

func clampCoord(f float64) int {
	return int(math.Max(-maxCoord, math.Min(maxCoord, f)))
}

// FaceNormal returns normalize((c-a) × (b-a)). The operand order decides
// which winding faces the light: counter-clockwise faces seen from +Z get a
// normal pointing along -Z.
func FaceNormal(a, b, c math3d.Vec3) math3d.Vec3 {
	return c.Sub(a).Cross(b.Sub(a)).Normalize()
}

// Intensity returns the diffuse term n · light.
func (r *Renderer) Intensity(n math3d.Vec3) float64 {
	return n.Dot(r.lightDir)
}

// Shade converts an intensity to a gray color, rounding and clamping the
// channel value to [0, 255].
func Shade(intensity float64) Color {
	v := math.Round(intensity * 255)
	v = math.Max(0, math.Min(255, v))
	return Gray(uint8(v))
}

// shadedFace is a face that survived culling, ready to fill.
type shadedFace struct {
	tri   ScreenTriangle
	color Color
}

// faceVertices fetches the three positions of face i. ok is false when an
// index is out of range.
func faceVertices(mesh MeshSource, i int) (v [3]math3d.Vec3, ok bool) {
	face := mesh.GetFace(i)
	n := mesh.VertexCount()
	for k, idx := range face {
		if idx < 0 || idx >= n {
			return v, false
		}
		v[k] = mesh.GetVertex(idx)
	}
	return v, true
}

// badFace handles an out-of-range face: an error in strict mode, otherwise
// a logged skip.
func (r *Renderer) badFace(mesh MeshSource, i int, stats *Stats) error {
	if r.strict {
		return fmt.Errorf("%w: face %d %v with %d vertices", ErrBadFace, i, mesh.GetFace(i), mesh.VertexCount())
	}
	stats.Skipped++
	Logger().Warn("skipping face with out-of-range index",
		"face", i, "indices", mesh.GetFace(i), "vertices", mesh.VertexCount())
	return nil
}

// shadeFaces runs projection, lighting and culling for faces [start, end).
func (r *Renderer) shadeFaces(mesh MeshSource, start, end int) ([]shadedFace, Stats, error) {
	var stats Stats
	faces := make([]shadedFace, 0, end-start)

	for i := start; i < end; i++ {
		stats.Faces++

		v, ok := faceVertices(mesh, i)
		if !ok {
			if err := r.badFace(mesh, i, &stats); err != nil {
				return nil, stats, err
			}
			continue
		}

		normal := FaceNormal(v[0], v[1], v[2])
		intensity := r.Intensity(normal)
		// Written as a negated comparison so NaN is culled too.
		if !(intensity > 0) {
			stats.Culled++
			continue
		}

		tri := ScreenTriangle{r.Project(v[0]), r.Project(v[1]), r.Project(v[2])}
		if tri.Degenerate() {
			stats.Culled++
			continue
		}

		faces = append(faces, shadedFace{
			tri:   tri,
			color: Shade(intensity),
		})
	}
	return faces, stats, nil
}

// Render draws every face of mesh.
func (r *Renderer) Render(mesh MeshSource) (Stats, error) {
	return r.RenderFaces(mesh, 0, mesh.TriangleCount())
}

// RenderFaces draws faces [start, end) of mesh on top of whatever the
// framebuffer already holds. Because there is no depth test, drawing a mesh
// in consecutive ranges gives the same image as one Render call.
func (r *Renderer) RenderFaces(mesh MeshSource, start, end int) (Stats, error) {
	start = max(start, 0)
	end = min(end, mesh.TriangleCount())
	if start >= end {
		return Stats{}, nil
	}

	faces, stats, err := r.shadeFaces(mesh, start, end)
	if err != nil {
		return stats, err
	}

	if r.workers > 1 {
		stats.Pixels = r.fillBanded(faces)
	} else {
		for _, f := range faces {
			stats.Pixels += FillTriangle(r.fb, f.tri, f.color)
		}
	}
	stats.Drawn = len(faces)

	Logger().Debug("render pass",
		"faces", stats.Faces, "drawn", stats.Drawn, "culled", stats.Culled,
		"skipped", stats.Skipped, "pixels", stats.Pixels)
	return stats, nil
}

// Finalize flips the framebuffer so model-space +Y points up in the image.
func (r *Renderer) Finalize() {
	r.fb.FlipVertical()
}
