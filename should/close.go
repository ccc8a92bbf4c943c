// Package should holds cleanup helpers for defer statements: failures are
// logged instead of returned.
package should

import (
	"io"

	"github.com/amp-labs/amp-rbtree/logger"
)

// Close closes closer and logs msg with the error if that fails.
//
//	defer should.Close(f, "closing script")
func Close(closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get().Error(msg, "error", err)
	}
}
