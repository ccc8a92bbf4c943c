package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/metrics"
	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func (a *app) newStatsCmd() *cobra.Command {
	var (
		asMetrics bool
		random    int
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "stats [KEY...]",
		Short: "Build a tree and report its shape and rebalancing counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]int, 0, len(args))

			for _, arg := range args {
				key, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("key %q: %w", arg, err)
				}

				keys = append(keys, key)
			}

			// Keep stderr clean of skipped duplicates when emitting metrics.
			if asMetrics {
				cmd.SetContext(logger.WithMuted(cmd.Context(), true))
			}

			var stats rbtree.Stats

			s := a.session(cmd, &stats)
			if err := s.Insert(keys...); err != nil {
				return err
			}

			tree := s.Tree()
			if err := workload(tree, random, seed); err != nil {
				return err
			}

			if asMetrics {
				reg, err := metrics.Registry(map[string]metrics.Source{"rbdemo": tree})
				if err != nil {
					return err
				}

				return metrics.WriteText(cmd.OutOrStdout(), reg)
			}

			renderStats(cmd.OutOrStdout(), tree, a.v.GetBool("color"))

			return nil
		},
	}

	cmd.Flags().BoolVar(&asMetrics, "metrics", false, "print the Prometheus text format instead of a table")
	cmd.Flags().IntVar(&random, "random", 0, "then apply N random inserts and deletes")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for --random")

	return cmd
}

// workload applies n random operations, two inserts for every delete, over
// keys in [0, 2n].
func workload(tree *rbtree.Tree[sortable.Int], n int, seed uint64) error {
	rng := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec

	for range n {
		key := sortable.Int(rng.IntN(2*n + 1))

		if rng.IntN(3) == 0 { //nolint:mnd
			tree.Delete(key)

			continue
		}

		if err := tree.Insert(key); err != nil && !errors.Is(err, rbtree.ErrDuplicateKey) {
			return err
		}
	}

	return tree.Check()
}

func renderStats(w io.Writer, tree *rbtree.Tree[sortable.Int], color bool) {
	snap := tree.Stats().Snapshot()

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("rbtree")
	tw.AppendHeader(table.Row{"measure", "value"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	if color {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendRows([]table.Row{
		{"size", tree.Len()},
		{"height", tree.Height()},
		{"black-height", tree.BlackHeight()},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"inserts", snap.Inserts},
		{"deletes", snap.Deletes},
		{"duplicate keys", snap.DuplicateKeys},
		{"rotations", snap.Rotations},
		{"insert recolors", snap.InsertRecolors},
		{"insert straight line", snap.InsertStraightLine},
		{"insert zig-zag", snap.InsertZigZag},
	})
	tw.AppendSeparator()

	for i, n := range snap.DeleteCases {
		tw.AppendRow(table.Row{fmt.Sprintf("delete case %d", i+1), n})
	}

	tw.Render()
}
