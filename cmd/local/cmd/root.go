package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fnbridge/fnbridge/internal/app"
	"github.com/fnbridge/fnbridge/internal/bridge"
	"github.com/fnbridge/fnbridge/internal/codec"
	"github.com/fnbridge/fnbridge/internal/config"
	"github.com/fnbridge/fnbridge/internal/constants"
	"github.com/fnbridge/fnbridge/internal/events"
	"github.com/fnbridge/fnbridge/internal/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   constants.ProjectName,
	Short: "Local harness for the fnbridge event pipeline",
	Long: fmt.Sprintf(`%s - run AWS trigger event documents through the
normalize/handle/encode pipeline locally`, constants.ProjectName),
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// pipeline assembles the shared dependencies for the subcommands.
type pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	codec   *codec.Codec
	bridge  *bridge.Bridge
	handler app.Handler
}

func newPipeline() (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.SlogLevel()
	if debug {
		level = slog.LevelDebug
	}
	slogger := logger.Initialize(cfg.Environment, level)

	c := codec.New()
	b := bridge.New(c, events.DefaultRegistry(c), slogger, bridge.Compat{
		StripBodyQuotes: cfg.GatewayCompat.StripBodyQuotes,
	})

	return &pipeline{
		cfg:     cfg,
		logger:  slogger,
		codec:   c,
		bridge:  b,
		handler: app.NewEcho(c, slogger),
	}, nil
}
