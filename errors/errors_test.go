package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBase = errors.New("base") //nolint:gochecknoglobals

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
		assert.NoError(t, c.GetError())
	})

	t.Run("returns the single error unchanged", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errBase)

		assert.Same(t, errBase, c.GetError()) //nolint:testifylint
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		other := errors.New("other") //nolint:err113

		c.Add(errBase)
		c.Add(nil)
		c.Add(other)

		require.Equal(t, 2, c.Len())
		err := c.GetError()
		require.Error(t, err)
		assert.ErrorIs(t, err, errBase)
		assert.ErrorIs(t, err, other)
	})
}

func TestCollection_Addf(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Addf(errBase, "node %d has %s", 7, "trouble")

	err := c.GetError()
	require.ErrorIs(t, err, errBase)
	assert.Equal(t, "base: node 7 has trouble", err.Error())
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(errBase)
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}
