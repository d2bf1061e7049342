package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logcheck/logcheck/internal/adapters/outbound/tui"
)

func newActivitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activities",
		Short: "List the activity codes accepted in log rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderActivities())
			return nil
		},
	}
}
