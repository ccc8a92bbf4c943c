package should_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/should"
	"github.com/stretchr/testify/assert"
)

var errCloseFailed = errors.New("close failed")

type mockCloser struct {
	err    error
	closed bool
}

func (m *mockCloser) Close() error {
	m.closed = true

	return m.err
}

func TestClose(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	logger.ConfigureLoggingWithOptions(logger.Options{Subsystem: "should", Output: &buf})

	ok := &mockCloser{}
	should.Close(ok, "closing ok")
	assert.True(t, ok.closed)
	assert.Empty(t, buf.String())

	failing := &mockCloser{err: errCloseFailed}
	should.Close(failing, "closing script")
	assert.True(t, failing.closed)
	assert.Contains(t, buf.String(), `msg="closing script"`)
	assert.Contains(t, buf.String(), `error="close failed"`)
}
