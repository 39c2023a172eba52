package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Carmen-Shannon/oxy-solar/config"
	"github.com/Carmen-Shannon/oxy-solar/engine"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	profile  bool
	watch    bool
)

// rootCmd opens the viewer when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solar",
	Short: "Solar - interactive 3D solar system viewer",
	Long: `Solar renders a textured Earth with its cloud layer inside a starfield.

Press g to switch between mouse follow and keyboard fly, c to recenter the
camera, and + or - to change the animation speed.

Examples:
  solar                         # open the viewer with solar.toml if present
  solar --config scene.toml     # use a specific config file
  solar --log-level debug       # verbose logging
  solar --watch                 # reload edited textures while running
  solar keys                    # list the camera controls`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		e, err := engine.NewEngine(cfg, engine.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("start viewer: %w", err)
		}
		logger.Info("viewer started", "bodies", cfg.Content.Bodies, "profile", cfg.Log.Profile)
		e.Run()
		logger.Info("viewer stopped")
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&profile, "profile", false, "log frame statistics once per second")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload textures when their files change")

	rootCmd.AddCommand(keysCmd, configCmd)
}

// loadConfig reads the config file and environment, then applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("profile") {
		cfg.Log.Profile = profile
	}
	if cmd.Flags().Changed("watch") {
		cfg.Textures.Watch = watch
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
