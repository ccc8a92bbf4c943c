package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, cfg Config) (*Session, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	cfg.Out = &buf

	return NewSession(t.Context(), cfg), &buf
}

func TestSession_Insert(t *testing.T) {
	t.Parallel()

	t.Run("duplicates are skipped", func(t *testing.T) {
		t.Parallel()

		s, _ := newSession(t, Config{})

		require.NoError(t, s.Insert(41, 38, 41, 31))
		assert.Equal(t, []sortable.Int{31, 38, 41}, s.Tree().Keys())
		assert.Equal(t, int64(1), s.Tree().Stats().Snapshot().DuplicateKeys)
	})

	t.Run("strict mode stops at a duplicate", func(t *testing.T) {
		t.Parallel()

		s, _ := newSession(t, Config{Strict: true})

		err := s.Insert(41, 38, 41, 31)
		require.ErrorIs(t, err, rbtree.ErrDuplicateKey)
		assert.Equal(t, "duplicate key: 41", err.Error())
		assert.Equal(t, []sortable.Int{38, 41}, s.Tree().Keys())
	})
}

func TestSession_Delete(t *testing.T) {
	t.Parallel()

	t.Run("absent keys are skipped", func(t *testing.T) {
		t.Parallel()

		s, _ := newSession(t, Config{})
		require.NoError(t, s.Insert(1, 2, 3))

		require.NoError(t, s.Delete(2, 7, 3))
		assert.Equal(t, []sortable.Int{1}, s.Tree().Keys())
	})

	t.Run("strict mode reports the miss", func(t *testing.T) {
		t.Parallel()

		s, _ := newSession(t, Config{Strict: true})
		require.NoError(t, s.Insert(1, 2, 3))

		err := s.Delete(2, 7, 3)
		require.ErrorIs(t, err, rbtree.ErrKeyNotFound)
		assert.Equal(t, "key not found: 7", err.Error())
		assert.Equal(t, []sortable.Int{1, 3}, s.Tree().Keys())
	})
}

func TestSession_Print(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		s, out := newSession(t, Config{})
		require.NoError(t, s.Print())
		assert.Equal(t, "(empty)\n", out.String())
	})

	t.Run("walkthrough tree", func(t *testing.T) {
		t.Parallel()

		s, out := newSession(t, Config{})
		require.NoError(t, s.Insert(41, 38, 31, 12, 19, 8))
		require.NoError(t, s.Print())

		want := "" +
			"     41 B\n" +
			"38 B\n" +
			"          31 B\n" +
			"     19 R\n" +
			"          12 B\n" +
			"               8 R\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("colored tags", func(t *testing.T) {
		t.Parallel()

		s, out := newSession(t, Config{Color: true})
		require.NoError(t, s.Insert(2, 1))
		require.NoError(t, s.Print())

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "2 \x1b["), lines[0])
		assert.Contains(t, lines[0], "B\x1b[0m")
		assert.Contains(t, lines[1], "R\x1b[0m")
	})
}

func TestSession_Validate(t *testing.T) {
	t.Parallel()

	s, out := newSession(t, Config{})
	require.NoError(t, s.Insert(41, 38, 31, 12, 19, 8))
	require.NoError(t, s.Validate())
	assert.Equal(t, "valid: 6 keys, height 4, black-height 2\n", out.String())
}

func TestSession_SharedStats(t *testing.T) {
	t.Parallel()

	var stats rbtree.Stats

	s, _ := newSession(t, Config{Stats: &stats, Trace: true})
	require.NoError(t, s.Insert(3, 2, 1))
	require.NoError(t, s.Delete(2))

	snap := stats.Snapshot()
	assert.Equal(t, int64(3), snap.Inserts)
	assert.Equal(t, int64(1), snap.Deletes)
	assert.Equal(t, int64(1), snap.InsertStraightLine)
	assert.Same(t, &stats, s.Tree().Stats())
}
