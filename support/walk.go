package support

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// TaggedPoint pairs a vertex position with the index it came from.
// Feeding one query's result as the next query's start gives temporal
// coherence: when the direction barely changes between GJK iterations,
// the walk usually terminates after inspecting a single neighborhood.
type TaggedPoint struct {
	Point mgl64.Vec3
	Index int
}

// Support returns a vertex (approximately) maximizing the dot product with
// direction, by greedy first-improvement hill-climbing over the neighbor
// graph from start.
//
// Neighbors are scanned in ascending index order; the first candidate whose
// score strictly beats the current best (or ties it with a strictly larger
// index) is taken immediately and the scan restarts there. The walk stops
// when a full scan yields no such candidate, so the result is a graph-local
// maximum under the (score, index) order: no neighbor scores higher, and no
// equal-scoring neighbor has a larger index.
//
// The index tie-break keeps the walk moving across score plateaus without
// ever revisiting a vertex: each accepted move strictly increases
// (score, index) lexicographically, so termination is guaranteed.
//
// The result is local, not necessarily global: graph augmentation makes
// misses rare, not impossible. Panics if start.Index is out of range.
// Safe for concurrent use: the graph is never written after Build.
func (g *Graph) Support(direction mgl64.Vec3, start TaggedPoint) TaggedPoint {
	if start.Index < 0 || start.Index >= g.mesh.VertexCount() {
		panic(fmt.Sprintf("support: start index %d out of range [0, %d)", start.Index, g.mesh.VertexCount()))
	}

	best := start.Index
	bestScore := direction.Dot(g.mesh.Vertex(best))

	for {
		moved := false
		it := g.neighbors[best].Iterator()
		for it.Next() {
			candidate := it.Value().(int)
			score := direction.Dot(g.mesh.Vertex(candidate))
			if score > bestScore || (score == bestScore && candidate > best) {
				best, bestScore = candidate, score
				moved = true
				break
			}
		}
		if !moved {
			return TaggedPoint{Point: g.mesh.Vertex(best), Index: best}
		}
	}
}
