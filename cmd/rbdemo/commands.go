package main

import (
	"fmt"
	"os"

	"github.com/amp-labs/amp-rbtree/cli"
	"github.com/amp-labs/amp-rbtree/demo"
	"github.com/amp-labs/amp-rbtree/should"
	"github.com/spf13/cobra"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the built-in walkthrough, printing the tree after each step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.session(cmd, nil).Run(demo.Walkthrough())
		},
	}
}

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run SCRIPT.yaml",
		Short: "Apply a YAML script of insert, delete, print and validate steps",
		Example: `  # script.yaml
  ops:
    - insert: [41, 38, 31, 12, 19, 8]
    - delete: [12]
    - print: true
    - validate: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}

			defer should.Close(f, "closing script")

			script, err := demo.LoadScript(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			return a.session(cmd, nil).Run(script)
		},
	}
}

func (a *app) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Edit a tree interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.session(cmd, nil).REPL(cli.Prompter{})
		},
	}
}
