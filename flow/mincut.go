package flow

import "github.com/katalvlaran/flowcut/network"

// MinCut classifies nodes of the final residual network as source-reachable
// or not and returns the original edges whose tail is reachable and whose
// head is not. Their combined original capacity equals the flow total.
//
// MinCut must be called after Construct has finished on this engine; it
// returns ErrNotConstructed if Construct never ran. Calling it while another
// goroutine runs Construct is caller misuse with an undefined result.
//
// Complexity: O(V + E).
func (e *Engine) MinCut(source string) ([]network.Edge, error) {
	if !e.done {
		return nil, ErrNotConstructed
	}
	if !e.net.HasNode(source) {
		return nil, ErrSourceNotFound
	}

	// Reachability pass over strictly positive residual edges. Order is
	// irrelevant; a plain queue walk suffices.
	reachable := map[string]bool{source: true}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range e.net.Neighbors(u) {
			if !reachable[v] {
				reachable[v] = true
				queue = append(queue, v)
			}
		}
	}

	var cut []network.Edge
	for _, ed := range e.net.Edges() {
		if reachable[ed.From] && !reachable[ed.To] {
			cut = append(cut, ed)
		}
	}

	return cut, nil
}

// CutCapacity sums the original capacities of the given cut edges.
func CutCapacity(cut []network.Edge) int64 {
	var total int64
	for _, ed := range cut {
		total += ed.Cap
	}

	return total
}
