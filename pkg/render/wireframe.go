package render

// RenderWireframe draws the outline of every face of mesh with the same
// projection as Render. No lighting or culling is applied. Stats.Pixels
// counts line pixels written, shared vertices included once per edge.
func (r *Renderer) RenderWireframe(mesh MeshSource, c Color) (Stats, error) {
	var stats Stats
	for i := 0; i < mesh.TriangleCount(); i++ {
		stats.Faces++

		v, ok := faceVertices(mesh, i)
		if !ok {
			if err := r.badFace(mesh, i, &stats); err != nil {
				return stats, err
			}
			continue
		}

		t := ScreenTriangle{r.Project(v[0]), r.Project(v[1]), r.Project(v[2])}
		stats.Pixels += DrawTriangleOutline(r.fb, t, c)
		stats.Drawn++
	}
	return stats, nil
}
