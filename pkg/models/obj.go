package models

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// LoadOBJ loads the first object of a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open obj: %w", ErrMeshLoad, err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMeshLoad, path, err)
	}
	return mesh, nil
}

// ParseOBJ reads OBJ geometry from r. Only vertex positions ("v") and faces
// ("f") are used; texture and normal references inside face tokens are
// accepted and ignored. Polygons with more than three vertices are fan
// triangulated. Face collection stops at the second object ("o") statement.
//
// Face indices are converted to 0-based but are not range checked.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	objects := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "o":
			objects++
			if objects > 1 && len(mesh.Faces) > 0 {
				return finishOBJ(mesh)
			}
		case "v":
			p, err := parseOBJVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Positions = append(mesh.Positions, p)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNo, len(fields)-1)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := parseOBJIndex(tok, len(mesh.Positions))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx = append(idx, i)
			}
			// Fan triangulation keeps the polygon's winding.
			for k := 1; k+1 < len(idx); k++ {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{idx[0], idx[k], idx[k+1]}})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	return finishOBJ(mesh)
}

func finishOBJ(mesh *Mesh) (*Mesh, error) {
	if len(mesh.Positions) == 0 {
		return nil, fmt.Errorf("no vertex positions")
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("no faces")
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// parseOBJVertex parses "x y z [w]".
func parseOBJVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range 3 {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("parse vertex coordinate %q: %w", fields[i], err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate %q is not finite", fields[i])
		}
		c[i] = v
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

// parseOBJIndex parses the position part of "i", "i/t", "i//n" or "i/t/n".
// Negative indices count back from the most recent vertex.
func parseOBJIndex(tok string, seen int) (int, error) {
	pos, _, _ := strings.Cut(tok, "/")
	i, err := strconv.Atoi(pos)
	if err != nil {
		return 0, fmt.Errorf("parse face index %q: %w", tok, err)
	}
	switch {
	case i > 0:
		return i - 1, nil
	case i < 0:
		return seen + i, nil
	default:
		return 0, fmt.Errorf("face index 0 is invalid")
	}
}
