package flow

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for engine construction and queries.
var (
	// ErrNetworkNil is returned by New when the network pointer is nil.
	ErrNetworkNil = errors.New("flow: network is nil")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")

	// ErrSourceNotFound is returned when the source node is outside the node set.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound is returned when the sink node is outside the node set.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrSourceIsSink is returned when Construct is called with source == sink.
	ErrSourceIsSink = errors.New("flow: source and sink must differ")

	// ErrDisconnected is returned by Construct under WithRequireFlow when the
	// total flow is zero. Without that option a zero total is a valid result.
	ErrDisconnected = errors.New("flow: source and sink are disconnected")

	// ErrNotConstructed is returned by MinCut when Construct has never run.
	ErrNotConstructed = errors.New("flow: min-cut requested before construction")
)

// Strategy selects the augmenting-path search used by the Engine.
type Strategy int

const (
	// BreadthFirst returns a fewest-edges augmenting path per stage,
	// bounding the stage count by O(V·E) regardless of capacity magnitudes.
	BreadthFirst Strategy = iota

	// DepthFirst returns the first path found by an iterative depth-first
	// search. Stage count may grow with the capacity scale on pathological
	// networks.
	DepthFirst
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option configures an Engine via functional arguments.
// An invalid Option is recorded internally and surfaced as ErrOptionViolation
// when New is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a flow construction.
type Options struct {
	// Ctx allows cancellation and deadlines, checked once per stage.
	Ctx context.Context

	// Strategy selects the augmenting-path search (default BreadthFirst).
	Strategy Strategy

	// RequireFlow makes a zero total an ErrDisconnected instead of a valid result.
	RequireFlow bool

	// StopWhen, if non-nil, is checked once per stage before path search;
	// returning true ends the construction with the total as of the last
	// completed stage.
	StopWhen func(total int64, stages int) bool

	// OnAugment is called after each completed stage with the chosen path
	// and the bottleneck amount pushed along it.
	OnAugment func(path []string, amount int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with production-safe defaults:
//   - context.Background()
//   - BreadthFirst strategy
//   - no stopping predicate, no hooks, zero flow allowed.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: BreadthFirst,
	}
}

// WithContext sets a custom context for per-stage cancellation checks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the augmenting-path search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != BreadthFirst && s != DepthFirst {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithRequireFlow makes Construct fail with ErrDisconnected when the total
// flow is zero, for callers that treat a disconnected pair as an error.
func WithRequireFlow() Option {
	return func(o *Options) { o.RequireFlow = true }
}

// WithStopWhen installs a stopping predicate checked once per stage.
func WithStopWhen(fn func(total int64, stages int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.StopWhen = fn
		}
	}
}

// WithOnAugment registers a callback to run after each completed stage.
func WithOnAugment(fn func(path []string, amount int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}
