package rbtree

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tree := New[sortable.Int]()
	require.NotNil(t, tree)

	assert.Zero(t, tree.Len())
	assert.Nil(t, tree.Root())
	assert.Nil(t, tree.Keys())
	assert.True(t, tree.Validate())
	assert.NoError(t, tree.Check())
	assert.Zero(t, tree.Height())
	assert.Zero(t, tree.BlackHeight())
	assert.Empty(t, tree.String())

	_, ok := tree.Min()
	assert.False(t, ok)

	_, ok = tree.Max()
	assert.False(t, ok)
}

func TestTree_InsertDelete(t *testing.T) {
	t.Parallel()

	t.Run("tracks size and membership", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		require.NoError(t, tree.InsertAll(walkthroughSequence...))

		assert.Equal(t, 6, tree.Len())
		assert.True(t, tree.Contains(19))
		assert.False(t, tree.Contains(20))
		assert.Equal(t, []sortable.Int{8, 12, 19, 31, 38, 41}, tree.Keys())

		assert.True(t, tree.Delete(12))
		assert.False(t, tree.Delete(12))
		assert.Equal(t, 5, tree.Len())
		assert.Equal(t, []sortable.Int{8, 19, 31, 38, 41}, tree.Keys())
		assert.True(t, tree.Validate())
	})

	t.Run("duplicate does not change the size", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		require.NoError(t, tree.Insert(1))

		err := tree.Insert(1)
		require.ErrorIs(t, err, ErrDuplicateKey)
		assert.Equal(t, 1, tree.Len())
	})

	t.Run("InsertAll stops at the first duplicate", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()

		err := tree.InsertAll(1, 2, 1, 3)
		require.ErrorIs(t, err, ErrDuplicateKey)
		assert.Equal(t, []sortable.Int{1, 2}, tree.Keys())
	})

	t.Run("min and max", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		require.NoError(t, tree.InsertAll(coverageSequence...))

		low, ok := tree.Min()
		require.True(t, ok)
		assert.Equal(t, sortable.Int(75), low)

		high, ok := tree.Max()
		require.True(t, ok)
		assert.Equal(t, sortable.Int(974), high)
	})

	t.Run("clear keeps stats", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		require.NoError(t, tree.InsertAll(1, 2, 3))

		tree.Clear()
		assert.Zero(t, tree.Len())
		assert.Nil(t, tree.Root())
		assert.Equal(t, int64(3), tree.Stats().Snapshot().Inserts)

		require.NoError(t, tree.Insert(2))
		assert.Equal(t, []sortable.Int{2}, tree.Keys())
	})
}

func TestTree_Seq(t *testing.T) {
	t.Parallel()

	tree := New[sortable.Int]()
	require.NoError(t, tree.InsertAll(5, 2, 8, 1, 9, 3, 7, 4, 6))

	var got []sortable.Int

	for key := range tree.Seq() {
		if key > 5 {
			break
		}

		got = append(got, key)
	}

	assert.Equal(t, []sortable.Int{1, 2, 3, 4, 5}, got)
}

func TestTree_StringKeys(t *testing.T) {
	t.Parallel()

	tree := New[sortable.String]()
	require.NoError(t, tree.InsertAll("pear", "apple", "fig", "kiwi"))

	assert.Equal(t, []sortable.String{"apple", "fig", "kiwi", "pear"}, tree.Keys())
	assert.True(t, tree.Validate())
}

func TestTree_Stats(t *testing.T) {
	t.Parallel()

	t.Run("walkthrough counts", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		require.NoError(t, tree.InsertAll(walkthroughSequence...))
		require.Error(t, tree.Insert(8))
		tree.Delete(12)

		snap := tree.Stats().Snapshot()
		assert.Equal(t, int64(6), snap.Inserts)
		assert.Equal(t, int64(1), snap.DuplicateKeys)
		assert.Equal(t, int64(1), snap.Deletes)
		assert.Equal(t, int64(1), snap.InsertStraightLine)
		assert.Equal(t, int64(1), snap.InsertZigZag)
		assert.Equal(t, int64(2), snap.InsertRecolors)
		assert.Equal(t, int64(3), snap.Rotations)
		assert.Equal(t, [6]int64{}, snap.DeleteCases)
	})

	t.Run("shared stats across trees", func(t *testing.T) {
		t.Parallel()

		var stats Stats

		first := New[sortable.Int](WithStats(&stats))
		second := New[sortable.Int](WithStats(&stats))

		require.NoError(t, first.InsertAll(1, 2))
		require.NoError(t, second.InsertAll(1, 2, 3))

		assert.Equal(t, int64(5), stats.Snapshot().Inserts)
		assert.Same(t, &stats, first.Stats())

		stats.Reset()
		assert.Equal(t, StatsSnapshot{}, stats.Snapshot())
	})

	t.Run("nil stats snapshot is empty", func(t *testing.T) {
		t.Parallel()

		var stats *Stats

		assert.Equal(t, StatsSnapshot{}, stats.Snapshot())
	})

	t.Run("random workload reaches every fix-up case", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		r := rand.New(rand.NewSource(seed)) //nolint:gosec

		for range 20_000 {
			key := sortable.Int(r.Intn(256))
			if r.Intn(2) == 0 {
				_ = tree.Insert(key)
			} else {
				tree.Delete(key)
			}
		}

		require.True(t, tree.Validate())

		// Draining ends with a lone black root, which always takes case 1.
		for _, key := range tree.Keys() {
			require.True(t, tree.Delete(key))
		}

		assert.Zero(t, tree.Len())

		snap := tree.Stats().Snapshot()
		for i, hits := range snap.DeleteCases {
			assert.Positive(t, hits, "delete case %d never ran", i+1)
		}

		assert.Positive(t, snap.InsertStraightLine)
		assert.Positive(t, snap.InsertZigZag)
		assert.Positive(t, snap.InsertRecolors)
	})
}

func TestTree_Logger(t *testing.T) {
	t.Parallel()

	t.Run("debug trace names shapes and cases", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		tree := New[sortable.Int](WithLogger(logger))

		require.NoError(t, tree.InsertAll(walkthroughSequence...))
		require.True(t, tree.Delete(38))

		out := buf.String()
		assert.Contains(t, out, `msg="rbtree rotate"`)
		assert.Contains(t, out, "shape=straight")
		assert.Contains(t, out, "shape=zigzag")
		assert.Contains(t, out, "shape=recolor")
		assert.Contains(t, out, "case=2")
		assert.Contains(t, out, "case=4")
	})

	t.Run("info level logger stays silent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
		tree := New[sortable.Int](WithLogger(logger))

		require.NoError(t, tree.InsertAll(coverageSequence...))
		assert.Empty(t, buf.String())
	})

	t.Run("test logger", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int](WithLogger(slogt.New(t)))
		require.NoError(t, tree.InsertAll(coverageSequence...))

		tree.Delete(127)
		tree.Delete(221)

		assert.NoError(t, tree.Check())
	})
}
