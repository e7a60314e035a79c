package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/topology"
)

// cellWidth is the printed width of one tile, "lumber 10" plus a gap.
const cellWidth = 11

func newLayoutCmd(a *app) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print a shuffled tile layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []board.Option{board.WithLogger(a.log)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, board.WithSeed(seed))
			}
			b := board.New(opts...)
			printLayout(cmd.OutOrStdout(), b)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed (default: random)")

	return cmd
}

// printLayout writes the seed line and one centered line per tile row.
func printLayout(w io.Writer, b *board.Board) {
	fmt.Fprintf(w, "seed %d\n", b.Seed())

	tiles := b.Tiles()
	widest := 0
	for _, n := range topology.RowSizes {
		widest = max(widest, n)
	}
	for row, n := range topology.RowSizes {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", (widest-n)*cellWidth/2))
		for col := 0; col < n; col++ {
			id, _ := topology.TileAt(row, col)
			fmt.Fprintf(&sb, "%-*s", cellWidth, tileLabel(tiles[id]))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

func tileLabel(t board.Tile) string {
	if t.Resource == board.Desert {
		return "desert --"
	}
	return fmt.Sprintf("%s %d", t.Resource, t.Number)
}
