// Package network models a capacitated directed network as a single
// residual-capacity table keyed by ordered node pairs.
//
// A Network is built once over a finite node set and then mutated through
// AddEdge and Augment. Every caller-added edge u→v implicitly materializes a
// reverse entry v→u with capacity 0; the reverse entry exists solely to carry
// cancellable (residual) capacity and is never reported as an original edge.
//
// The central invariant, preserved by every Augment call:
//
//	Capacity(u,v) + Capacity(v,u) == Residual(u,v) + Residual(v,u)
//
// for every ordered pair: flow pushed along u→v is exactly mirrored as added
// residual capacity on v→u. Conserved() verifies it across the whole table.
//
// A Network is not safe for concurrent use. During a flow construction it is
// exclusively owned by one flow.Engine; diagnostic readers must work on a
// Clone().
//
// Errors:
//
//	ErrUnknownNode             - an endpoint is outside the declared node set.
//	ErrNegativeCapacity        - AddEdge received a negative capacity.
//	ErrSelfLoop                - AddEdge received identical endpoints.
//	ErrAugmentExceedsResidual  - Augment would drive a residual negative.
package network
