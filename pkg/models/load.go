package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load loads a mesh, choosing the format from the file extension.
func Load(path string) (*Mesh, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		return LoadOBJ(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, fmt.Errorf("%w: unsupported format: %s (use .obj or .glb)", ErrMeshLoad, ext)
	}
}
