package meshwalk

import (
	"sync"

	"github.com/akmonengine/meshwalk/support"
	"github.com/go-gl/mathgl/mgl64"
)

// QueryAll resolves one support query per direction against a shared graph,
// chunked across workersCount goroutines. Every query walks from the same
// start; results land at the index of their direction.
//
// The graph is read-only after Build, so the workers need no locking.
func QueryAll(graph *support.Graph, directions []mgl64.Vec3, start support.TaggedPoint, workersCount int) []support.TaggedPoint {
	results := make([]support.TaggedPoint, len(directions))

	task(workersCount, directions, func(i int, direction mgl64.Vec3) {
		results[i] = graph.Support(direction, start)
	})

	return results
}

func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	workersCount = max(1, workersCount)

	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		end := min(start+chunkSize, dataSize)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(start, end)
	}
	wg.Wait()
}
