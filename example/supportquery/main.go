package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/meshwalk"
	"github.com/akmonengine/meshwalk/gjk"
	"github.com/akmonengine/meshwalk/mesh"
	"github.com/akmonengine/meshwalk/support"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	// Build the graph once; every query below reuses it.
	m := mesh.Cuboid(mgl64.Vec3{1, 2, 3})
	graph, err := support.Build(m)
	if err != nil {
		fmt.Printf("graph build failed: %v\n", err)
		return
	}

	// Warm-started query sequence: the direction sweeps slowly, so each
	// query starts from the previous answer and walks at most a few edges.
	current := support.TaggedPoint{Point: m.Vertex(0), Index: 0}
	for i := 0; i <= 8; i++ {
		angle := float64(i) * math.Pi / 8
		direction := mgl64.Vec3{math.Cos(angle), math.Sin(angle), 0.25}
		current = graph.Support(direction, current)
		fmt.Printf("direction %5.2f,%5.2f,%5.2f -> vertex %d at %v\n",
			direction.X(), direction.Y(), direction.Z(), current.Index, current.Point)
	}

	// Independent queries fan out over goroutines against the same graph.
	directions := []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {-1, -1, -1}}
	results := meshwalk.QueryAll(graph, directions, support.TaggedPoint{Point: m.Vertex(0)}, 4)
	for i, r := range results {
		fmt.Printf("batch %v -> vertex %d\n", directions[i], r.Index)
	}

	// The usual consumer: a GJK intersection test driven by the
	// graph-backed support functions.
	a, err := meshwalk.NewShape(mesh.Cuboid(mgl64.Vec3{1, 1, 1}), meshwalk.IdentityTransform())
	if err != nil {
		fmt.Printf("shape build failed: %v\n", err)
		return
	}
	for _, x := range []float64{1.5, 3.0} {
		b, err := meshwalk.NewShape(mesh.Cuboid(mgl64.Vec3{1, 1, 1}),
			meshwalk.NewTransform(mgl64.Vec3{x, 0, 0}, mgl64.QuatIdent()))
		if err != nil {
			fmt.Printf("shape build failed: %v\n", err)
			return
		}
		fmt.Printf("cuboids at distance %.1f intersect: %v\n", x, gjk.Intersects(a, b))
	}
}
