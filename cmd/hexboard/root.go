package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "hexboard"

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configFile string
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   appName,
		Short: "Hexagonal board layouts and placement rules",
		Long: `hexboard works with the 19-tile hexagonal board: it prints shuffled
layouts, verifies the built-in adjacency tables and replays scripted
settlement, road, city and dice actions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configFile, cmd.Root().PersistentFlags().Lookup("log-level"))
			if err != nil {
				return err
			}
			a.log = newLogger(cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./hexboard.yaml if present)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info)")

	root.AddCommand(newLayoutCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newPlayCmd(a))

	return root
}
