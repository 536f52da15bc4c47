package flow

import "github.com/katalvlaran/flowcut/network"

// Engine orchestrates repeated path-finding and augmentation on one Network.
//
// The engine exclusively owns its network for the duration of each Construct
// call; no concurrent reads or writes of the network are permitted while a
// construction is in progress (diagnostic readers must use network.Clone).
// After Construct returns, the accumulated total is immutable until the
// network is mutated again through AddEdge.
type Engine struct {
	net    *network.Network
	opts   Options
	find   pathFinder
	total  int64
	stages int
	done   bool
}

// New binds an Engine to net with the given options.
//
// Errors: ErrNetworkNil if net is nil, ErrOptionViolation if an invalid
// Option was supplied.
func New(net *network.Network, opts ...Option) (*Engine, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{net: net, opts: o, find: finderFor(o.Strategy)}, nil
}

// Construct computes the maximum flow from source to sink.
//
// It loops one stage at a time: find an augmenting path with the configured
// strategy, compute its bottleneck, apply the augmentation, accumulate the
// total. The loop terminates the first time no path of positive residual
// capacity connects source to sink; by the max-flow/min-cut theorem the
// source-reachable nodes then form a cut whose capacity equals the total,
// so no larger flow is possible.
//
// The running total is returned. Calling Construct again on an already
// saturated network finds no path immediately, adds 0, and leaves the
// network unchanged.
//
// Errors: ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
// ErrDisconnected (only under WithRequireFlow), or a context error if the
// configured context is canceled between stages. On a context error the
// total as of the last completed stage is returned alongside it.
//
// Complexity: O(V·E²) with BreadthFirst; O(E·F) with DepthFirst, F the
// total flow value.
func (e *Engine) Construct(source, sink string) (int64, error) {
	if !e.net.HasNode(source) {
		return 0, ErrSourceNotFound
	}
	if !e.net.HasNode(sink) {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, ErrSourceIsSink
	}

	for {
		// per-stage cancellation check
		if err := e.opts.Ctx.Err(); err != nil {
			return e.total, err
		}
		// optional stopping predicate, once per stage
		if e.opts.StopWhen != nil && e.opts.StopWhen(e.total, e.stages) {
			break
		}

		path, found := e.find(e.net, source, sink)
		if !found {
			break
		}

		delta := bottleneck(e.net, path)
		if err := e.net.Augment(path, delta); err != nil {
			// unreachable: delta is the bottleneck of a just-found path
			return e.total, err
		}
		e.total += delta
		e.stages++

		if e.opts.OnAugment != nil {
			e.opts.OnAugment(path, delta)
		}
	}

	e.done = true
	if e.opts.RequireFlow && e.total == 0 {
		return 0, ErrDisconnected
	}

	return e.total, nil
}

// Total returns the flow accumulated across all completed stages.
func (e *Engine) Total() int64 { return e.total }

// Stages returns the number of completed find-path/push-flow stages.
func (e *Engine) Stages() int { return e.stages }
