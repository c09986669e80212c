package tracks

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/golangdaddy/circuit/pkg/track"
)

func NewTracksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "lists the tracks and their checkpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.OutOrStdout())
		},
	}
}

func list(w io.Writer) error {
	for _, sel := range track.All {
		t, err := track.Load(sel)
		if err != nil {
			return err
		}
		minV, maxV := t.Bounds()
		fmt.Fprintf(w, "%s: %d checkpoints, %d scenery items, bounds %s - %s\n",
			sel, len(t.Checkpoints), len(t.Scenery), minV, maxV)
		for i, cp := range t.Checkpoints {
			fmt.Fprintf(w, "  %d %s\n", i+1, cp)
		}
	}
	return nil
}
