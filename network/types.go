package network

import "errors"

// Sentinel errors for network construction and mutation.
var (
	// ErrUnknownNode indicates an operation referenced a node outside the
	// declared node set.
	ErrUnknownNode = errors.New("network: unknown node")

	// ErrNegativeCapacity indicates AddEdge was called with a negative capacity.
	ErrNegativeCapacity = errors.New("network: negative capacity")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = errors.New("network: self-loop not allowed")

	// ErrEmptyPath indicates Augment was called with a path of fewer than two nodes.
	ErrEmptyPath = errors.New("network: augmenting path needs at least two nodes")

	// ErrAugmentExceedsResidual indicates Augment was called with an amount
	// larger than the residual capacity of some edge on the path. This is a
	// programming-contract breach on the caller's side: the flow engine computes
	// the bottleneck itself, so the condition is unreachable through it.
	ErrAugmentExceedsResidual = errors.New("network: augmentation exceeds residual capacity")
)

// Edge is an original (caller-added) directed edge with its accumulated capacity.
type Edge struct {
	// From is the tail node ID.
	From string

	// To is the head node ID.
	To string

	// Cap is the total original capacity, summed over repeated AddEdge calls.
	Cap int64
}

// pair is an ordered node pair, the key of the residual table.
type pair struct {
	from, to string
}

// reverse returns the opposite ordered pair.
func (p pair) reverse() pair {
	return pair{from: p.to, to: p.from}
}
