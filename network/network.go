package network

import (
	"fmt"
	"sort"
)

// Network is a mutable residual-capacity table over a fixed node set.
//
// residual holds the current residual capacity for every ordered pair ever
// touched by AddEdge or Augment; original holds only the capacities the caller
// added, and is what Edges, Capacity and min-cut accounting report.
type Network struct {
	nodes    map[string]struct{}
	residual map[pair]int64
	original map[pair]int64

	// adj[u] holds every node v whose ordered pair (u, v) exists in the
	// residual table. Both directions are indexed on AddEdge, so any pair a
	// later Augment can touch is already present.
	adj map[string]map[string]struct{}
}

// New builds an empty Network over the given node set.
// Duplicate IDs are allowed and collapse to one node.
// Complexity: O(len(ids)).
func New(ids ...string) *Network {
	n := &Network{
		nodes:    make(map[string]struct{}, len(ids)),
		residual: make(map[pair]int64, 2*len(ids)),
		original: make(map[pair]int64, 2*len(ids)),
		adj:      make(map[string]map[string]struct{}, len(ids)),
	}
	for _, id := range ids {
		n.nodes[id] = struct{}{}
	}

	return n
}

// HasNode reports whether id belongs to the declared node set.
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodes[id]
	return ok
}

// Nodes returns the declared node set in sorted order.
// Complexity: O(V log V).
func (n *Network) Nodes() []string {
	out := make([]string, 0, len(n.nodes))
	for id := range n.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// AddEdge increases the forward residual capacity of (u, v) by capacity and
// ensures a zero reverse entry (v, u) exists. Capacities accumulate across
// repeated calls for the same pair.
//
// Errors:
//   - ErrNegativeCapacity if capacity < 0 (zero is accepted and inert).
//   - ErrUnknownNode if u or v is outside the declared node set.
//   - ErrSelfLoop if u == v.
//
// Complexity: O(1).
func (n *Network) AddEdge(u, v string, capacity int64) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d on edge %q→%q", ErrNegativeCapacity, capacity, u, v)
	}
	if !n.HasNode(u) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, u)
	}
	if !n.HasNode(v) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, v)
	}
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfLoop, u)
	}

	fwd := pair{from: u, to: v}
	n.original[fwd] += capacity
	n.residual[fwd] += capacity
	// Reverse entry carries cancellation capacity only; create it at zero.
	if _, ok := n.residual[fwd.reverse()]; !ok {
		n.residual[fwd.reverse()] = 0
	}
	n.index(u, v)
	n.index(v, u)

	return nil
}

// index records v as an adjacency target of u.
func (n *Network) index(u, v string) {
	targets, ok := n.adj[u]
	if !ok {
		targets = make(map[string]struct{})
		n.adj[u] = targets
	}
	targets[v] = struct{}{}
}

// Residual returns the current residual capacity of (u, v).
// Pairs never touched by AddEdge or Augment report 0.
func (n *Network) Residual(u, v string) int64 {
	return n.residual[pair{from: u, to: v}]
}

// Capacity returns the accumulated original capacity of (u, v):
// the sum of all AddEdge calls for that ordered pair, unaffected by Augment.
func (n *Network) Capacity(u, v string) int64 {
	return n.original[pair{from: u, to: v}]
}

// Edges returns every original edge with positive capacity, sorted by
// (From, To). Reverse bookkeeping entries are never included.
// Complexity: O(E log E).
func (n *Network) Edges() []Edge {
	out := make([]Edge, 0, len(n.original))
	for p, c := range n.original {
		if c > 0 {
			out = append(out, Edge{From: p.from, To: p.to, Cap: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Neighbors returns the nodes reachable from u over a single edge of strictly
// positive residual capacity, in sorted order. Sorting keeps path-search
// strategies deterministic for a given network state.
// Complexity: O(deg(u) log deg(u)).
func (n *Network) Neighbors(u string) []string {
	var out []string
	for v := range n.adj[u] {
		if n.residual[pair{from: u, to: v}] > 0 {
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

// Augment pushes amount units of flow along path: every forward edge on the
// path loses amount residual capacity and every reverse edge gains it.
//
// The caller must ensure amount does not exceed the minimum residual capacity
// along the path; the flow engine guarantees this by computing the bottleneck
// itself. A violating call corrupts nothing: the whole path is validated
// before any mutation, and ErrAugmentExceedsResidual is returned.
//
// Complexity: O(len(path)).
func (n *Network) Augment(path []string, amount int64) error {
	if len(path) < 2 {
		return ErrEmptyPath
	}
	if amount <= 0 {
		return fmt.Errorf("%w: non-positive amount %d", ErrAugmentExceedsResidual, amount)
	}

	// Validate the full path before touching the table.
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		if !n.HasNode(u) {
			return fmt.Errorf("%w: %q", ErrUnknownNode, u)
		}
		if !n.HasNode(v) {
			return fmt.Errorf("%w: %q", ErrUnknownNode, v)
		}
		if r := n.Residual(u, v); r < amount {
			return fmt.Errorf("%w: %d > residual %d on %q→%q", ErrAugmentExceedsResidual, amount, r, u, v)
		}
	}

	// Apply: forward −amount, reverse +amount.
	for i := 0; i < len(path)-1; i++ {
		fwd := pair{from: path[i], to: path[i+1]}
		n.residual[fwd] -= amount
		n.residual[fwd.reverse()] += amount
	}

	return nil
}

// Conserved reports whether the conservation invariant holds for every
// ordered pair:
//
//	Capacity(u,v) + Capacity(v,u) == Residual(u,v) + Residual(v,u)
//
// It always holds after any sequence of AddEdge and successful Augment calls;
// a false result means the table was corrupted through some other means.
// Complexity: O(E).
func (n *Network) Conserved() bool {
	for p := range n.residual {
		lhs := n.original[p] + n.original[p.reverse()]
		rhs := n.residual[p] + n.residual[p.reverse()]
		if lhs != rhs {
			return false
		}
	}

	return true
}

// Clone returns a deep copy sharing no state with the receiver.
// Diagnostic readers must use a Clone while a flow construction is running.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	cp := &Network{
		nodes:    make(map[string]struct{}, len(n.nodes)),
		residual: make(map[pair]int64, len(n.residual)),
		original: make(map[pair]int64, len(n.original)),
		adj:      make(map[string]map[string]struct{}, len(n.adj)),
	}
	for id := range n.nodes {
		cp.nodes[id] = struct{}{}
	}
	for p, c := range n.residual {
		cp.residual[p] = c
	}
	for p, c := range n.original {
		cp.original[p] = c
	}
	for u, targets := range n.adj {
		inner := make(map[string]struct{}, len(targets))
		for v := range targets {
			inner[v] = struct{}{}
		}
		cp.adj[u] = inner
	}

	return cp
}
