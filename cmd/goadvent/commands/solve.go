package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func solveCmd() *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "solve <day> <part>",
		Short: "Solve one part of a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, part, err := parseDayAndPart(args[0], args[1])
			if err != nil {
				return err
			}
			input, err := readInput(cmd, inputPath, day)
			if err != nil {
				return err
			}
			solution, err := coreService.Solve(cmd.Context(), day, part, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Solution part %v: %d\n", part, solution.Answer)
			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "took %v (cached: %v)\n", solution.Duration, solution.Cached)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file, - for stdin (default <inputDir>/dayDD.txt)")
	return cmd
}
