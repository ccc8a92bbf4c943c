package rbtree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/stretchr/testify/require"
)

const seed = 42

// walkthroughSequence is the classic six-key walkthrough tree.
var walkthroughSequence = []sortable.Int{41, 38, 31, 12, 19, 8} //nolint:gochecknoglobals

// coverageSequence drives the delete fix-up through its harder cases.
var coverageSequence = []sortable.Int{ //nolint:gochecknoglobals
	834, 807, 512, 882, 127, 675, 75, 216, 822, 249, 114, 689,
	625, 974, 221, 92, 374, 123, 838, 930, 654, 806, 234, 381,
}

func buildRoot(t *testing.T, keys ...sortable.Int) *Node[sortable.Int] {
	t.Helper()

	var (
		root *Node[sortable.Int]
		err  error
	)

	for _, k := range keys {
		root, err = Insert(root, k)
		require.NoError(t, err)
	}

	return root
}

func collect(root *Node[sortable.Int]) []sortable.Int {
	var keys []sortable.Int

	for k := range All(root) {
		keys = append(keys, k)
	}

	return keys
}

func requireHealthy(t *testing.T, root *Node[sortable.Int]) {
	t.Helper()

	require.True(t, Validate(root), "Validate failed:\n%s", Sprint(root))
	require.NoError(t, Check(root))
}

func requireHeightBound(t *testing.T, root *Node[sortable.Int], n int) {
	t.Helper()

	bound := 2 * math.Log2(float64(n+1))
	require.LessOrEqual(t, float64(Height(root)), bound, "height exceeds 2*log2(n+1) for n=%d", n)
}

func shuffled(r *rand.Rand, n int) []sortable.Int {
	keys := make([]sortable.Int, n)
	for i := range keys {
		keys[i] = sortable.Int(i)
	}

	r.Shuffle(n, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}
