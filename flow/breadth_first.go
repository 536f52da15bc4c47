package flow

import "github.com/katalvlaran/flowcut/network"

// breadthFirstPath finds a fewest-edges augmenting path from source to sink
// by exploring the residual graph in layers. Returning shortest paths bounds
// the number of stages of the whole construction by O(V·E), independent of
// capacity magnitudes (Edmonds–Karp).
//
// Each node is visited at most once per call.
//
// Complexity: O(V + E) time, O(V) memory.
func breadthFirstPath(net *network.Network, source, sink string) ([]string, bool) {
	// parent[v] = predecessor of v on the shortest path
	parent := make(map[string]string)
	visited := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range net.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u

			if v == sink {
				return rebuildPath(parent, source, sink), true
			}
			queue = append(queue, v)
		}
	}

	return nil, false
}
