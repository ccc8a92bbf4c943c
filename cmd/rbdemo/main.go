// Command rbdemo exercises the red-black tree: it replays the walkthrough,
// runs YAML scripts, offers an interactive prompt and reports rebalancing
// statistics.
package main

import (
	"os"

	"github.com/amp-labs/amp-rbtree/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Error("rbdemo failed", "error", err)
		os.Exit(1)
	}
}
