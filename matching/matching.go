package matching

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/flowcut/flow"
	"github.com/katalvlaran/flowcut/network"
)

// Sentinel errors for matching instance validation.
var (
	// ErrGroupsOverlap indicates a node was declared in both groups.
	ErrGroupsOverlap = errors.New("matching: groups are not disjoint")

	// ErrPairOutsideGroups indicates a compatibility pair references a node
	// outside the declared groups, or connects two nodes of the same group.
	ErrPairOutsideGroups = errors.New("matching: pair outside the declared groups")
)

// Pair is one compatibility (or matched) pair: A from the first group,
// B from the second.
type Pair struct {
	A string
	B string
}

// MaximumMatching returns a maximum matching between groupA and groupB under
// the given compatibility relation, sorted by (A, B). Its length is the
// maximum matching size. Every node appears in at most one returned pair and
// every returned pair is drawn from the supplied relation.
//
// An empty relation (or an empty group) yields an empty matching, not an error.
//
// Complexity: O(V·E) for the unit-capacity flow construction.
func MaximumMatching(groupA, groupB []string, pairs []Pair) ([]Pair, error) {
	inA := make(map[string]struct{}, len(groupA))
	for _, a := range groupA {
		inA[a] = struct{}{}
	}
	inB := make(map[string]struct{}, len(groupB))
	for _, b := range groupB {
		if _, ok := inA[b]; ok {
			return nil, fmt.Errorf("%w: %q", ErrGroupsOverlap, b)
		}
		inB[b] = struct{}{}
	}

	// Validate and deduplicate the relation. Deduplication keeps every cross
	// edge at capacity exactly 1, so "fully used" below means residual 0.
	seen := make(map[Pair]struct{}, len(pairs))
	cross := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := inA[p.A]; !ok {
			return nil, fmt.Errorf("%w: %q is not in the first group", ErrPairOutsideGroups, p.A)
		}
		if _, ok := inB[p.B]; !ok {
			return nil, fmt.Errorf("%w: %q is not in the second group", ErrPairOutsideGroups, p.B)
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		cross = append(cross, p)
	}

	// Derived network: synthetic source and sink plus all group nodes.
	taken := make(map[string]struct{}, len(inA)+len(inB))
	for a := range inA {
		taken[a] = struct{}{}
	}
	for b := range inB {
		taken[b] = struct{}{}
	}
	source := freshID("source", taken)
	taken[source] = struct{}{}
	sink := freshID("sink", taken)

	ids := make([]string, 0, len(taken)+1)
	for id := range taken {
		ids = append(ids, id)
	}
	ids = append(ids, sink)
	net := network.New(ids...)

	for a := range inA {
		if err := net.AddEdge(source, a, 1); err != nil {
			return nil, err
		}
	}
	for b := range inB {
		if err := net.AddEdge(b, sink, 1); err != nil {
			return nil, err
		}
	}
	for _, p := range cross {
		if err := net.AddEdge(p.A, p.B, 1); err != nil {
			return nil, err
		}
	}

	eng, err := flow.New(net)
	if err != nil {
		return nil, err
	}
	total, err := eng.Construct(source, sink)
	if err != nil {
		return nil, err
	}

	// A cross edge carrying one unit of flow is exactly one with residual 0.
	matched := make([]Pair, 0, total)
	for _, p := range cross {
		if net.Residual(p.A, p.B) == 0 {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].A != matched[j].A {
			return matched[i].A < matched[j].A
		}
		return matched[i].B < matched[j].B
	})

	return matched, nil
}

// freshID returns base, extended with primes until it avoids every taken ID,
// so synthetic endpoints can never collide with caller-supplied nodes.
func freshID(base string, taken map[string]struct{}) string {
	id := base
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id += "'"
	}
}
