package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func animateCmd() *cobra.Command {
	var inputPath, outputPath string
	cmd := &cobra.Command{
		Use:   "animate <day> <part>",
		Short: "Render a day's animation to a GIF, or its last frame to a PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, part, err := parseDayAndPart(args[0], args[1])
			if err != nil {
				return err
			}
			render := coreService.Animate
			switch ext := strings.ToLower(filepath.Ext(outputPath)); ext {
			case ".gif":
			case ".png":
				render = coreService.Snapshot
			default:
				return fmt.Errorf("unsupported output format %q (use .gif or .png)", ext)
			}

			input, err := readInput(cmd, inputPath, day)
			if err != nil {
				return err
			}
			data, err := render(cmd.Context(), day, part, input)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(data), outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file, - for stdin (default <inputDir>/dayDD.txt)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (.gif or .png)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
