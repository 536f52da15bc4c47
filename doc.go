// Package flowcut computes maximum flows, minimum cuts and maximum
// bipartite matchings on capacitated directed networks.
//
// Everything is organized under three library packages and a CLI:
//
//	network/  — residual-capacity table over a fixed node set
//	flow/     — augmenting-path engine (breadth-first or depth-first) + min cut
//	matching/ — maximum bipartite matching by reduction to max flow
//	cmd/flowcut — TOML-driven CLI with Graphviz DOT export
//
// Quick example:
//
//	n := network.New("s", "a", "t")
//	_ = n.AddEdge("s", "a", 4)
//	_ = n.AddEdge("a", "t", 2)
//
//	eng, _ := flow.New(n)
//	total, _ := eng.Construct("s", "t") // 2
//	cut, _ := eng.MinCut("s")           // [a→t]
package flowcut
