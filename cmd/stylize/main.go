package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	stylize "github.com/riverfjs/stylize-go"
)

var (
	configPath   string
	assetBaseURL string
	verbosity    int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stylize",
		Short:         "Render bracket markup into an HTML fragment",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbosity)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&assetBaseURL, "asset-base-url", "", "override the asset base URL")
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v, -vv)")

	for _, mode := range []stylize.Mode{stylize.ModeBasic, stylize.ModeMessagePreview, stylize.ModeTextEntry} {
		root.AddCommand(newModeCmd(mode))
	}
	return root
}

func newModeCmd(mode stylize.Mode) *cobra.Command {
	short := map[stylize.Mode]string{
		stylize.ModeBasic:          "Basic styles, colors, ruby and images",
		stylize.ModeMessagePreview: "Chat message rendering (basic + dice)",
		stylize.ModeTextEntry:      "Profile/diary rendering (basic + rule, big images, message blocks)",
	}[mode]

	return &cobra.Command{
		Use:   mode.String() + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			cfg, err := stylize.LoadConfig(configPath)
			if err != nil {
				return err
			}
			opts := []stylize.Option{stylize.WithConfig(cfg)}
			if assetBaseURL != "" {
				opts = append(opts, stylize.WithAssetBaseURL(assetBaseURL))
			}

			out, err := stylize.New(opts...).Process(mode, input)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(b), nil
}

func setupLogger(verbosity int) {
	level := zerolog.WarnLevel
	switch {
	case verbosity == 1:
		level = zerolog.InfoLevel
	case verbosity >= 2:
		level = zerolog.DebugLevel
	}
	stylize.SetLogger(zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Str("component", "stylize").Logger())
}
