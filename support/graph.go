// Package support accelerates the support-point query at the heart of
// GJK-style algorithms: given a direction, find the mesh vertex maximizing
// the dot product with it.
//
// Instead of scanning every vertex per query, a neighbor graph is built once
// from the mesh topology and each query hill-climbs along it from the
// previous answer. Successive queries with slowly-changing directions
// (the common case inside a GJK loop) then touch only a handful of vertices.
//
// Pure face adjacency can trap the climb on locally-flat neighborhoods, so
// construction augments each vertex with two long-range neighbors: the mesh
// vertices most extreme along the normal of the best-fit plane through its
// topological neighborhood. These shortcuts reduce (but do not eliminate)
// the chance of stopping at a non-global maximum.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance
//     Between Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments"
//     (2003), ch. 4.3.4 (support mappings for polytopes)
package support

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is the read-only vertex/face source a graph is built from.
// Indices are 0-based. Faces must reference at least 2 vertices each;
// duplicate indices within a face are tolerated and form no edge.
type Mesh interface {
	VertexCount() int
	Vertex(i int) mgl64.Vec3
	FaceCount() int
	Face(i int) []int
}

// Graph is the per-vertex adjacency structure the walker climbs.
// It holds the source mesh by reference and is immutable once built, so a
// single instance can serve any number of concurrent Support queries.
type Graph struct {
	mesh Mesh
	// One sorted index set per vertex. Sorted iteration makes the
	// first-improvement walk deterministic.
	neighbors []*treeset.Set
}

// Build constructs the neighbor graph for a mesh. Construction scans the
// whole vertex list once per vertex (plus one SVD each) and is intentionally
// unoptimized: build once per mesh and reuse the graph across queries.
//
// Returns an error if any vertex has fewer than 2 topological neighbors
// (isolated vertex or vertex touched only by a single edge); such meshes
// leave nothing to fit a plane through.
func Build(m Mesh) (*Graph, error) {
	neighbors := topology(m)

	// Augmentation pass: fit a plane through each vertex's topological
	// neighborhood and link the vertex to the two mesh vertices most
	// extreme along the plane normal. Extremes are added only to the
	// vertex being processed, so every fit sees the pre-augmentation
	// neighborhood whatever the processing order.
	for i, set := range neighbors {
		if set.Size() < 2 {
			return nil, fmt.Errorf("vertex %d has %d neighbors, need at least 2 to fit a plane (degenerate mesh)", i, set.Size())
		}

		cloud := make([]mgl64.Vec3, 0, set.Size())
		it := set.Iterator()
		for it.Next() {
			cloud = append(cloud, m.Vertex(it.Value().(int)))
		}

		normal, _ := fitPlane(cloud)
		lo, hi := extremes(m, normal)
		set.Add(lo, hi)
	}

	return &Graph{mesh: m, neighbors: neighbors}, nil
}

// topology derives the face adjacency: every pair of distinct vertices
// sharing a face becomes a symmetric edge.
func topology(m Mesh) []*treeset.Set {
	neighbors := make([]*treeset.Set, m.VertexCount())
	for i := range neighbors {
		neighbors[i] = treeset.NewWithIntComparator()
	}

	for fi := 0; fi < m.FaceCount(); fi++ {
		face := m.Face(fi)
		for i := 0; i < len(face); i++ {
			for j := i + 1; j < len(face); j++ {
				a, b := face[i], face[j]
				if a == b {
					continue
				}
				neighbors[a].Add(b)
				neighbors[b].Add(a)
			}
		}
	}

	return neighbors
}

// extremes returns the vertices with the globally minimal and maximal
// projection onto dir. Ties keep the lowest index, scanning stored order.
func extremes(m Mesh, dir mgl64.Vec3) (lo, hi int) {
	loScore := dir.Dot(m.Vertex(0))
	hiScore := loScore
	for i := 1; i < m.VertexCount(); i++ {
		score := dir.Dot(m.Vertex(i))
		if score < loScore {
			lo, loScore = i, score
		}
		if score > hiScore {
			hi, hiScore = i, score
		}
	}
	return lo, hi
}

// Mesh returns the mesh the graph was built from.
func (g *Graph) Mesh() Mesh {
	return g.mesh
}

// Neighbors returns vertex i's neighbor indices in ascending order.
// The returned slice is a copy.
func (g *Graph) Neighbors(i int) []int {
	set := g.neighbors[i]
	out := make([]int, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}
	return out
}
