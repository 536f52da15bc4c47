package flow

import "github.com/katalvlaran/flowcut/network"

// depthFirstPath finds any augmenting path from source to sink using an
// iterative depth-first search with an explicit stack, so stack growth is
// heap-allocated rather than call-stack-proportional on deep graphs.
//
// Each node is visited at most once per call; edges are explored in the
// network's sorted neighbor order, the last-pushed neighbor first.
//
// Complexity: O(V + E) time, O(V) memory.
func depthFirstPath(net *network.Network, source, sink string) ([]string, bool) {
	// parent[v] = preceding node on the discovered path
	parent := make(map[string]string)
	// visited marks nodes already discovered during this search
	visited := map[string]bool{source: true}

	stack := []string{source}
	for len(stack) > 0 {
		// pop last entry (LIFO)
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, v := range net.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u

			if v == sink {
				return rebuildPath(parent, source, sink), true
			}
			stack = append(stack, v)
		}
	}

	return nil, false
}
