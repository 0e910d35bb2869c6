package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/tickerx/easing"
)

func newEasingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "easings",
		Short: "List named easing curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range easing.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
