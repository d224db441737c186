package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, info := range coreService.Days() {
				marker := ""
				if info.Animated {
					marker = "  [animated]"
				}
				fmt.Fprintf(out, "Day %2d  %s%s\n", info.Day, info.Title, marker)
			}
			return nil
		},
	}
}
