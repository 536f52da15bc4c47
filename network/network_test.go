package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowcut/network"
)

// NetworkSuite exercises the residual-capacity table under construction,
// mutation and augmentation.
type NetworkSuite struct {
	suite.Suite
}

// TestAddEdgeAccumulates verifies that repeated AddEdge calls for the same
// ordered pair sum their capacities (3 + 4 → 7) before any augmentation.
func (s *NetworkSuite) TestAddEdgeAccumulates() {
	n := network.New("u", "v")
	require.NoError(s.T(), n.AddEdge("u", "v", 3))
	require.NoError(s.T(), n.AddEdge("u", "v", 4))

	require.Equal(s.T(), int64(7), n.Residual("u", "v"))
	require.Equal(s.T(), int64(7), n.Capacity("u", "v"))
	// reverse entry exists but carries no capacity yet
	require.Equal(s.T(), int64(0), n.Residual("v", "u"))
	require.Equal(s.T(), int64(0), n.Capacity("v", "u"))
}

// TestAddEdgeErrors covers the negative-capacity, unknown-node and self-loop cases.
func (s *NetworkSuite) TestAddEdgeErrors() {
	n := network.New("a", "b")

	require.ErrorIs(s.T(), n.AddEdge("a", "b", -1), network.ErrNegativeCapacity)
	require.ErrorIs(s.T(), n.AddEdge("a", "z", 1), network.ErrUnknownNode)
	require.ErrorIs(s.T(), n.AddEdge("z", "b", 1), network.ErrUnknownNode)
	require.ErrorIs(s.T(), n.AddEdge("a", "a", 1), network.ErrSelfLoop)

	// failed calls must not leave partial entries behind
	require.Equal(s.T(), int64(0), n.Residual("a", "b"))
	require.Empty(s.T(), n.Edges())
}

// TestZeroCapacityEdge verifies that a zero capacity is accepted, inert,
// and never reported as an original edge.
func (s *NetworkSuite) TestZeroCapacityEdge() {
	n := network.New("a", "b")
	require.NoError(s.T(), n.AddEdge("a", "b", 0))

	require.Equal(s.T(), int64(0), n.Residual("a", "b"))
	require.Empty(s.T(), n.Edges())
	require.Empty(s.T(), n.Neighbors("a"))
}

// TestAugmentMirrorsReverse verifies that flow pushed along a path is exactly
// mirrored on the reverse entries and that conservation holds afterwards.
func (s *NetworkSuite) TestAugmentMirrorsReverse() {
	n := network.New("s", "m", "t")
	require.NoError(s.T(), n.AddEdge("s", "m", 5))
	require.NoError(s.T(), n.AddEdge("m", "t", 3))

	require.NoError(s.T(), n.Augment([]string{"s", "m", "t"}, 3))

	require.Equal(s.T(), int64(2), n.Residual("s", "m"))
	require.Equal(s.T(), int64(3), n.Residual("m", "s"))
	require.Equal(s.T(), int64(0), n.Residual("m", "t"))
	require.Equal(s.T(), int64(3), n.Residual("t", "m"))
	require.True(s.T(), n.Conserved())
}

// TestAugmentCancellation pushes flow forward and then back over the reverse
// entry, restoring the original residuals.
func (s *NetworkSuite) TestAugmentCancellation() {
	n := network.New("a", "b")
	require.NoError(s.T(), n.AddEdge("a", "b", 4))

	require.NoError(s.T(), n.Augment([]string{"a", "b"}, 4))
	require.Equal(s.T(), int64(0), n.Residual("a", "b"))

	// cancel two units over the reverse entry
	require.NoError(s.T(), n.Augment([]string{"b", "a"}, 2))
	require.Equal(s.T(), int64(2), n.Residual("a", "b"))
	require.Equal(s.T(), int64(2), n.Residual("b", "a"))
	require.True(s.T(), n.Conserved())
}

// TestAugmentValidation verifies that a violating Augment call mutates nothing.
func (s *NetworkSuite) TestAugmentValidation() {
	n := network.New("s", "m", "t")
	require.NoError(s.T(), n.AddEdge("s", "m", 5))
	require.NoError(s.T(), n.AddEdge("m", "t", 3))

	// exceeds the m→t residual; the s→m entry must stay untouched
	err := n.Augment([]string{"s", "m", "t"}, 4)
	require.ErrorIs(s.T(), err, network.ErrAugmentExceedsResidual)
	require.Equal(s.T(), int64(5), n.Residual("s", "m"))
	require.Equal(s.T(), int64(3), n.Residual("m", "t"))

	require.ErrorIs(s.T(), n.Augment([]string{"s"}, 1), network.ErrEmptyPath)
	require.ErrorIs(s.T(), n.Augment([]string{"s", "m"}, 0), network.ErrAugmentExceedsResidual)

	var unknown error = n.Augment([]string{"s", "x"}, 1)
	require.True(s.T(), errors.Is(unknown, network.ErrUnknownNode))
}

// TestEdgesAndNeighbors verifies sorted original-edge listing and
// positive-residual neighbor iteration.
func (s *NetworkSuite) TestEdgesAndNeighbors() {
	n := network.New("s", "a", "b", "t")
	require.NoError(s.T(), n.AddEdge("s", "b", 2))
	require.NoError(s.T(), n.AddEdge("s", "a", 1))
	require.NoError(s.T(), n.AddEdge("a", "t", 1))

	require.Equal(s.T(), []network.Edge{
		{From: "a", To: "t", Cap: 1},
		{From: "s", To: "a", Cap: 1},
		{From: "s", To: "b", Cap: 2},
	}, n.Edges())
	require.Equal(s.T(), []string{"a", "b"}, n.Neighbors("s"))

	// saturate s→a; it must vanish from Neighbors but not from Edges
	require.NoError(s.T(), n.Augment([]string{"s", "a", "t"}, 1))
	require.Equal(s.T(), []string{"b"}, n.Neighbors("s"))
	require.Len(s.T(), n.Edges(), 3)
}

// TestClone verifies the copy shares no state with the receiver.
func (s *NetworkSuite) TestClone() {
	n := network.New("a", "b")
	require.NoError(s.T(), n.AddEdge("a", "b", 3))

	cp := n.Clone()
	require.NoError(s.T(), n.Augment([]string{"a", "b"}, 3))

	require.Equal(s.T(), int64(0), n.Residual("a", "b"))
	require.Equal(s.T(), int64(3), cp.Residual("a", "b"))
	require.True(s.T(), cp.Conserved())
}

// TestNodes verifies duplicate IDs collapse and ordering is stable.
func (s *NetworkSuite) TestNodes() {
	n := network.New("c", "a", "b", "a")
	require.Equal(s.T(), []string{"a", "b", "c"}, n.Nodes())
	require.True(s.T(), n.HasNode("b"))
	require.False(s.T(), n.HasNode("z"))
}

// Entry point for running the suite
func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}
