package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/logcheck/logcheck/internal/adapters/outbound/history"
	"github.com/logcheck/logcheck/internal/adapters/outbound/tui"
)

func newHistoryCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past validation runs for a folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			entries, err := history.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Folder containing the activity logs")

	return cmd
}
