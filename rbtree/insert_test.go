package rbtree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	t.Parallel()

	t.Run("first key becomes a black root", func(t *testing.T) {
		t.Parallel()

		root, err := Insert[sortable.Int](nil, 7)
		require.NoError(t, err)
		require.NotNil(t, root)

		assert.Equal(t, sortable.Int(7), root.Key())
		assert.Equal(t, Black, root.Color())
		assert.Nil(t, root.Parent())
		assert.True(t, root.left.nilLeaf)
		assert.Same(t, root, root.left.parent)
	})

	t.Run("second key is a red child", func(t *testing.T) {
		t.Parallel()

		root := buildRoot(t, 7, 3)

		require.NotNil(t, root.Left())
		assert.Equal(t, Red, root.Left().Color())
		assert.Nil(t, root.Right())
	})

	t.Run("straight line is fixed by a single rotation", func(t *testing.T) {
		t.Parallel()

		root := buildRoot(t, 41, 38, 31)

		assert.Equal(t, sortable.Int(38), root.Key())
		assert.Equal(t, Red, root.Left().Color())
		assert.Equal(t, Red, root.Right().Color())
		requireHealthy(t, root)
	})

	t.Run("zig-zag is fixed by a double rotation", func(t *testing.T) {
		t.Parallel()

		root := buildRoot(t, 41, 31, 38)

		assert.Equal(t, sortable.Int(38), root.Key())
		assert.Equal(t, sortable.Int(31), root.Left().Key())
		assert.Equal(t, sortable.Int(41), root.Right().Key())
		requireHealthy(t, root)
	})

	t.Run("red uncle recolors without touching the black root", func(t *testing.T) {
		t.Parallel()

		root := buildRoot(t, 41, 38, 31, 12)

		assert.Equal(t, sortable.Int(38), root.Key())
		assert.Equal(t, Black, root.Color())
		assert.Equal(t, Black, root.Left().Color())
		assert.Equal(t, Black, root.Right().Color())
		assert.Equal(t, Red, root.Left().Left().Color())
		requireHealthy(t, root)
	})

	t.Run("duplicate is rejected without mutation", func(t *testing.T) {
		t.Parallel()

		root := buildRoot(t, walkthroughSequence...)
		before := Sprint(root)

		got, err := Insert(root, 19)
		require.ErrorIs(t, err, ErrDuplicateKey)
		assert.Contains(t, err.Error(), "19")
		assert.Same(t, root, got)
		assert.Equal(t, before, Sprint(got))
		assert.Equal(t, []sortable.Int{8, 12, 19, 31, 38, 41}, collect(got))
	})

	t.Run("root duplicate is rejected", func(t *testing.T) {
		t.Parallel()

		root := buildRoot(t, 1)

		_, err := Insert(root, 1)
		require.ErrorIs(t, err, ErrDuplicateKey)
	})
}

func TestInsertSequences(t *testing.T) {
	t.Parallel()

	const size = 2_000

	r := rand.New(rand.NewSource(seed)) //nolint:gosec
	random := shuffled(r, size)
	ascending := slices.Sorted(slices.Values(random))
	descending := slices.Clone(ascending)
	slices.Reverse(descending)

	tests := []struct {
		name  string
		input []sortable.Int
	}{
		{"Empty", nil},
		{"Single", []sortable.Int{1}},
		{"Ascending", ascending},
		{"Descending", descending},
		{"Random", random},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var root *Node[sortable.Int]

			for i, key := range tt.input {
				var err error

				root, err = Insert(root, key)
				require.NoError(t, err)
				require.True(t, Validate(root), "invalid after inserting %v (step %d)", key, i)
			}

			require.NoError(t, Check(root))
			assert.Equal(t, slices.Sorted(slices.Values(tt.input)), collect(root))
			assert.Equal(t, len(tt.input), Len(root))
			requireHeightBound(t, root, len(tt.input))
		})
	}
}
