package main

import (
	"strings"

	"github.com/amp-labs/amp-rbtree/cli"
	"github.com/amp-labs/amp-rbtree/demo"
	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "RBDEMO"

// app carries the settings shared by every subcommand. Flags win over
// RBDEMO_* environment variables, which win over defaults.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "rbdemo",
		Short: "Red-black tree demo driver",

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "minimum log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "log as JSON instead of text")
	flags.Bool("color", false, "color the R and B node tags")
	flags.Bool("strict", false, "fail on duplicate inserts and deletes of absent keys")
	flags.Bool("trace", false, "log every rotation and fix-up case (needs --log-level debug)")
	flags.Bool("no-banner", false, "print step titles without boxes")

	a.bind(flags)

	root.AddCommand(
		a.newDemoCmd(),
		a.newRunCmd(),
		a.newReplCmd(),
		a.newStatsCmd(),
	)

	return root
}

func (a *app) bind(flags *pflag.FlagSet) {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	// BindPFlags only fails on a nil flag set.
	_ = a.v.BindPFlags(flags)
}

func (a *app) configure(cmd *cobra.Command) error {
	level, err := logger.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}

	logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem:   "rbdemo",
		JSON:        a.v.GetBool("log-json"),
		MinLevel:    level,
		LegacyLevel: level,
		Output:      cmd.ErrOrStderr(),
	})

	cli.SetPlain(a.v.GetBool("no-banner"))

	return nil
}

func (a *app) session(cmd *cobra.Command, stats *rbtree.Stats) *demo.Session {
	return demo.NewSession(cmd.Context(), demo.Config{
		Out:    cmd.OutOrStdout(),
		Color:  a.v.GetBool("color"),
		Strict: a.v.GetBool("strict"),
		Trace:  a.v.GetBool("trace"),
		Stats:  stats,
	})
}
