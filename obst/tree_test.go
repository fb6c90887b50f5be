package obst_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/optbst/fraction"
	"github.com/katalvlaran/optbst/obst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownTree builds the [4,2,6,3] tree:
//
//	    30
//	   /  \
//	  10   40
//	    \
//	     20
func knownTree(t *testing.T) *obst.Tree {
	t.Helper()
	res, err := obst.BuildTree(ints(10, 20, 30, 40), ints(4, 2, 6, 3), obst.WithWorkers(1))
	require.NoError(t, err)
	return res.Tree()
}

func TestTree_Traversals(t *testing.T) {
	tree := knownTree(t)

	assert.Equal(t, ints(30, 10, 20, 40), tree.PreOrder())
	assert.Equal(t, ints(10, 20, 30, 40), tree.InOrder())
	assert.Equal(t, ints(30, 10, 40, 20), tree.Keys(obst.LevelOrder))
	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, 4, tree.Len())
}

// TestTree_ArenaIsPreOrder verifies the arena layout and child links.
func TestTree_ArenaIsPreOrder(t *testing.T) {
	tree := knownTree(t)
	require.Equal(t, 0, tree.Root())

	want := []obst.Node{
		{Key: fraction.FromInt(30), Index: 2, Left: 1, Right: 3},
		{Key: fraction.FromInt(10), Index: 0, Left: obst.None, Right: 2},
		{Key: fraction.FromInt(20), Index: 1, Left: obst.None, Right: obst.None},
		{Key: fraction.FromInt(40), Index: 3, Left: obst.None, Right: obst.None},
	}
	for i, w := range want {
		got, ok := tree.Node(i)
		require.True(t, ok)
		assert.Equal(t, w, got, "node %d", i)
	}

	_, ok := tree.Node(4)
	assert.False(t, ok)
	_, ok = tree.Node(-1)
	assert.False(t, ok)
}

// TestTree_ChildrenOwnedOnce verifies no node is referenced by two parents.
func TestTree_ChildrenOwnedOnce(t *testing.T) {
	res, err := obst.BuildTree(ascendingKeys(25), randomWeights(25, 9), obst.WithWorkers(4))
	require.NoError(t, err)
	tree := res.Tree()

	seen := make(map[int]bool)
	for i := 0; i < tree.Len(); i++ {
		n, _ := tree.Node(i)
		for _, c := range []int{n.Left, n.Right} {
			if c == obst.None {
				continue
			}
			assert.False(t, seen[c], "node %d has two parents", c)
			assert.NotEqual(t, tree.Root(), c)
			seen[c] = true
		}
	}
	assert.Len(t, seen, tree.Len()-1)
}

func TestTree_WalkDepths(t *testing.T) {
	tree := knownTree(t)
	depths := map[int64]int{}
	err := tree.Walk(obst.InOrder, func(n obst.Node, depth int) error {
		depths[n.Key.Num()] = depth
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{30: 1, 10: 2, 40: 2, 20: 3}, depths)
}

func TestTree_WalkStops(t *testing.T) {
	tree := knownTree(t)
	stop := errors.New("stop")
	for _, order := range []obst.Order{obst.LevelOrder, obst.PreOrder, obst.InOrder} {
		visited := 0
		err := tree.Walk(order, func(obst.Node, int) error {
			visited++
			if visited == 2 {
				return stop
			}
			return nil
		})
		assert.ErrorIs(t, err, stop, order.String())
		assert.Equal(t, 2, visited, order.String())
	}

	err := tree.Walk(obst.Order(42), func(obst.Node, int) error { return nil })
	assert.ErrorIs(t, err, obst.ErrUnknownOrder)
}

func TestTree_Search(t *testing.T) {
	tree := knownTree(t)

	idx, depth, ok := tree.Search(fraction.FromInt(20))
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 3, depth)

	idx, depth, ok = tree.Search(fraction.FromInt(30))
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 1, depth)

	_, _, ok = tree.Search(fraction.FromInt(25))
	assert.False(t, ok)
}

func TestTree_EmptyOperations(t *testing.T) {
	res, err := obst.BuildTree(nil, nil)
	require.NoError(t, err)
	tree := res.Tree()

	assert.Empty(t, tree.PreOrder())
	assert.Equal(t, 0, tree.Height())
	_, _, ok := tree.Search(fraction.One)
	assert.False(t, ok)

	cost, err := tree.WeightedCost(nil)
	require.NoError(t, err)
	assert.Equal(t, fraction.Zero, cost)
}

func TestTree_WeightedCost(t *testing.T) {
	tree := knownTree(t)
	got, err := tree.WeightedCost(ints(4, 2, 6, 3))
	require.NoError(t, err)
	assert.Equal(t, fraction.FromInt(26), got)

	_, err = tree.WeightedCost(ints(1, 2))
	assert.ErrorIs(t, err, obst.ErrInputLengthMismatch)
}

func TestParseOrder(t *testing.T) {
	cases := map[string]obst.Order{
		"level": obst.LevelOrder, "BFS": obst.LevelOrder,
		"pre": obst.PreOrder, "Pre-Order": obst.PreOrder,
		"in": obst.InOrder, " inorder ": obst.InOrder,
	}
	for in, want := range cases {
		got, err := obst.ParseOrder(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := obst.ParseOrder("post")
	assert.ErrorIs(t, err, obst.ErrUnknownOrder)
	assert.Equal(t, "Order(9)", obst.Order(9).String())
}
