// Package mesh provides the polygonal mesh representation consumed by the
// support-graph builder: an indexed list of vertices plus faces referencing
// them. Meshes are plain data; nothing here mutates a mesh after creation.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// TriMesh is an indexed polygonal mesh. Faces may have any arity >= 2;
// despite the name, quads and higher polygons are accepted since the
// adjacency builder only cares about vertex co-occurrence within a face.
type TriMesh struct {
	Vertices []mgl64.Vec3
	Faces    [][]int
}

// New validates the vertex/face lists and returns the mesh.
// Every face must reference at least 2 vertices, all in range.
func New(vertices []mgl64.Vec3, faces [][]int) (*TriMesh, error) {
	for fi, face := range faces {
		if len(face) < 2 {
			return nil, fmt.Errorf("face %d has %d vertices (minimum 2)", fi, len(face))
		}
		for _, vi := range face {
			if vi < 0 || vi >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d (mesh has %d vertices)", fi, vi, len(vertices))
			}
		}
	}

	return &TriMesh{Vertices: vertices, Faces: faces}, nil
}

func (m *TriMesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *TriMesh) Vertex(i int) mgl64.Vec3 {
	return m.Vertices[i]
}

func (m *TriMesh) FaceCount() int {
	return len(m.Faces)
}

func (m *TriMesh) Face(i int) []int {
	return m.Faces[i]
}
