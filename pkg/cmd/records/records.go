package records

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/models"
)

var ErrNoRecordsFile = errors.New("no records file configured")

func NewRecordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "shows the best scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd.OutOrStdout(), config.RecordsFile)
		},
	}
}

func show(w io.Writer, path string) error {
	if path == "" {
		return ErrNoRecordsFile
	}
	r, err := models.LoadFromFile(path)
	if err != nil {
		return err
	}
	entries := r.Sorted()
	if len(entries) == 0 {
		fmt.Fprintln(w, "no records yet")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-8s level %d  score %4d  %6.1fs  %s\n",
			e.Track, e.Level, e.Score, e.Elapsed, e.SetAt.Format("2006-01-02"))
	}
	return nil
}
