package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/cellview"
	"github.com/aretw0/cellview/internal/config"
	"github.com/aretw0/cellview/internal/logging"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "cellview",
	Short:         "cellview renders notebook cell outputs",
	Long:          `cellview turns tagged cell output payloads (tables, charts, HTML, JSON) into HTML fragments.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a cellview.yaml config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// setup loads the configuration and builds the logger every command shares.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, fmt.Errorf("log.level: %w", err)
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return cfg, logging.New(level), nil
}

// newEngine builds a cellview.Engine from cfg.
func newEngine(cfg config.Config, logger *slog.Logger, hooks domain.Hooks) *cellview.Engine {
	opts := []cellview.Option{
		cellview.WithLogger(logger),
		cellview.WithHooks(hooks),
		cellview.WithEscapePolicy(cfg.EscapePolicy()),
		cellview.WithHTMLSanitizer(cfg.Render.SanitizeHTML),
		cellview.WithHighlightStyle(cfg.Render.Highlight),
	}
	if cfg.Decode.MaxPayloadBytes > 0 {
		opts = append(opts, cellview.WithMaxPayloadSize(cfg.Decode.MaxPayloadBytes))
	}
	return cellview.New(opts...)
}
