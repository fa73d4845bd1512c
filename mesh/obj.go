package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// DecodeOBJ reads a Wavefront OBJ stream and returns the mesh it describes.
// Only "v" and "f" records are interpreted; normals, texture coordinates,
// groups and materials are skipped. Face records may carry "v/vt/vn" tuples,
// of which only the vertex index is kept. Indices are converted from OBJ's
// 1-based convention (negative indices count back from the current vertex
// list, as the format allows).
func DecodeOBJ(r io.Reader) (*TriMesh, error) {
	var (
		vertices []mgl64.Vec3
		faces    [][]int
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: vertex needs 3 coordinates", lineNo)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				coords[i] = v
			}
			vertices = append(vertices, mgl64.Vec3{coords[0], coords[1], coords[2]})

		case "f":
			if len(fields) < 3 {
				return nil, fmt.Errorf("obj line %d: face needs at least 2 indices", lineNo)
			}
			face := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				// "v", "v/vt", "v//vn" or "v/vt/vn": the vertex index leads
				idxText, _, _ := strings.Cut(field, "/")
				idx, err := strconv.Atoi(idxText)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				if idx < 0 {
					idx = len(vertices) + idx
				} else {
					idx--
				}
				face = append(face, idx)
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	return New(vertices, faces)
}
