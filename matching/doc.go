// Package matching computes maximum bipartite matchings by reduction to
// maximum flow.
//
// Given two disjoint node groups and an undirected compatibility relation
// between them, MaximumMatching builds a derived unit-capacity network (one
// synthetic source feeding every first-group node, one synthetic sink drained
// by every second-group node, every compatible pair directed first→second)
// and delegates to the flow engine. The resulting flow value equals the
// maximum matching size, and the compatibility edges left with zero residual
// capacity (fully used) form a maximum matching.
//
// The reduction is sound because every first-group node has exactly one
// incoming unit edge from the source: at most one unit of flow can traverse
// it, so no two augmenting paths share a first-group node and every unit of
// flow selects one disjoint pair.
//
// The derived network is request-scoped: each call builds a fresh one and
// discards it after the matching is read.
//
// Errors:
//
//	ErrGroupsOverlap     - a node appears in both groups.
//	ErrPairOutsideGroups - a compatibility pair references an undeclared node
//	                       or two nodes of the same group.
package matching
