package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/flowcut/matching"
	"github.com/katalvlaran/flowcut/network"
)

// networkFile is the TOML layout of a capacitated network:
//
//	nodes = ["s", "a", "t"]
//
//	[[edges]]
//	from = "s"
//	to = "a"
//	capacity = 4
type networkFile struct {
	Nodes []string    `toml:"nodes"`
	Edges []edgeEntry `toml:"edges"`
}

type edgeEntry struct {
	From     string `toml:"from"`
	To       string `toml:"to"`
	Capacity int64  `toml:"capacity"`
}

// matchingFile is the TOML layout of a bipartite matching instance:
//
//	group_a = ["1", "2"]
//	group_b = ["5", "6"]
//
//	[[pairs]]
//	a = "1"
//	b = "6"
type matchingFile struct {
	GroupA []string    `toml:"group_a"`
	GroupB []string    `toml:"group_b"`
	Pairs  []pairEntry `toml:"pairs"`
}

type pairEntry struct {
	A string `toml:"a"`
	B string `toml:"b"`
}

// loadNetwork reads and validates a TOML network file.
func loadNetwork(path string) (*network.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var nf networkFile
	if err = toml.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	net := network.New(nf.Nodes...)
	for _, e := range nf.Edges {
		if err = net.AddEdge(e.From, e.To, e.Capacity); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return net, nil
}

// loadMatching reads a TOML matching instance.
func loadMatching(path string) (groupA, groupB []string, pairs []matching.Pair, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	var mf matchingFile
	if err = toml.Unmarshal(data, &mf); err != nil {
		return nil, nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	pairs = make([]matching.Pair, 0, len(mf.Pairs))
	for _, p := range mf.Pairs {
		pairs = append(pairs, matching.Pair{A: p.A, B: p.B})
	}

	return mf.GroupA, mf.GroupB, pairs, nil
}
