package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jo-hoe/goadvent/internal/core"
	"github.com/jo-hoe/goadvent/internal/puzzle"
)

const defaultConfigPath = "config.yaml"

var (
	configPath  string
	verbose     bool
	coreService *core.CoreService
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "goadvent",
		Short:        "Solve and animate daily puzzles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), verbose)

			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			coreService, err = core.NewCoreService(cmd.Context(), config)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if coreService == nil {
				return nil
			}
			err := coreService.Close()
			coreService = nil
			return err
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml if present)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(daysCmd(), solveCmd(), animateCmd())
	root.SetContext(context.Background())
	return root
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads path, or ./config.yaml when path is empty and the file
// exists, and falls back to the defaults otherwise.
func loadConfig(path string) (*core.ServiceConfig, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); errors.Is(err, os.ErrNotExist) {
			slog.Debug("no config file found, using defaults")
			return core.DefaultConfig(), nil
		}
		path = defaultConfigPath
	}
	return core.LoadConfig(path)
}

func parseDayAndPart(dayArg, partArg string) (int, puzzle.Part, error) {
	day, err := strconv.Atoi(dayArg)
	if err != nil {
		return 0, 0, fmt.Errorf("day must be a number, got %q", dayArg)
	}
	part, err := puzzle.ParsePart(partArg)
	if err != nil {
		return 0, 0, err
	}
	return day, part, nil
}

// readInput returns the contents of path, stdin for "-", or the stored input of day.
func readInput(cmd *cobra.Command, path string, day int) (string, error) {
	switch path {
	case "":
		return coreService.ReadInput(day)
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input %s: %w", path, err)
		}
		return string(data), nil
	}
}
