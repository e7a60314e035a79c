package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexboard/topology"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the built-in adjacency tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := topology.Canonical().Validate(); err != nil {
				a.log.Error("adjacency tables are inconsistent", zap.Error(err))
				return fmt.Errorf("check failed:\n%w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d tiles, %d vertices, %d edges\n",
				topology.TileCount, topology.VertexCount, topology.EdgeCount)
			return nil
		},
	}
}
