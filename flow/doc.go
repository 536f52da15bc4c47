// Package flow computes maximum flow and minimum cut on a network.Network
// via repeated augmenting paths.
//
// An Engine owns one *network.Network for the duration of a Construct call
// and loops a single stage (find one augmenting path, push its bottleneck)
// until no path of positive residual capacity connects source to sink. By the
// max-flow/min-cut theorem that is exactly the point where the accumulated
// total equals the capacity of a cut (the one MinCut extracts), so no larger
// flow exists.
//
// Two interchangeable path-search strategies are offered:
//
//   - BreadthFirst (default): layered search returning a fewest-edges path.
//     Bounds the stage count by O(V·E) independent of capacity magnitudes;
//     prefer it whenever capacities may be large or adversarial.
//
//   - DepthFirst: iterative depth-first search with an explicit stack.
//     Simple and often fast in practice, but pathological networks can force
//     a stage count proportional to the capacity scale.
//
// Both strategies visit each node at most once per call (O(V + E) per stage)
// and always agree on the final flow value; only stage counts and chosen
// paths may differ.
//
// # Options
//
// Functional options configure the engine:
//
//	eng, err := flow.New(net,
//	    flow.WithStrategy(flow.DepthFirst),
//	    flow.WithContext(ctx),
//	    flow.WithStopWhen(func(total int64, stages int) bool { return total >= cap }),
//	    flow.WithOnAugment(func(path []string, amount int64) { ... }),
//	    flow.WithRequireFlow(),
//	)
//
// The stopping predicate is checked once per stage and, when it fires,
// Construct returns the total as of the last completed stage. The context is
// likewise checked once per stage.
//
// # Errors
//
//	ErrNetworkNil      - nil network passed to New.
//	ErrOptionViolation - an invalid Option was supplied.
//	ErrSourceNotFound  - Construct/MinCut source is outside the node set.
//	ErrSinkNotFound    - Construct sink is outside the node set.
//	ErrSourceIsSink    - Construct called with source == sink.
//	ErrDisconnected    - zero total flow under WithRequireFlow.
//	ErrNotConstructed  - MinCut called before any Construct.
//	context.Canceled / context.DeadlineExceeded - per-stage cancellation.
package flow
