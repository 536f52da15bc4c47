package flow

import "github.com/katalvlaran/flowcut/network"

// pathFinder is the single capability both strategies implement: produce one
// augmenting path of strictly positive residual capacity from source to sink,
// visiting no node twice, or report that none exists.
type pathFinder func(net *network.Network, source, sink string) (path []string, found bool)

// finderFor maps a Strategy to its pathFinder.
func finderFor(s Strategy) pathFinder {
	if s == DepthFirst {
		return depthFirstPath
	}
	return breadthFirstPath
}

// rebuildPath walks the parent links from sink back to source and reverses
// the result into source→…→sink order.
func rebuildPath(parent map[string]string, source, sink string) []string {
	path := []string{sink}
	for cur := sink; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse in place to get source → sink
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// bottleneck returns the minimum residual capacity along path.
// Precondition: path was produced by a pathFinder on the same network state,
// so every edge has strictly positive residual capacity.
func bottleneck(net *network.Network, path []string) int64 {
	min := net.Residual(path[0], path[1])
	for i := 1; i < len(path)-1; i++ {
		if r := net.Residual(path[i], path[i+1]); r < min {
			min = r
		}
	}

	return min
}
