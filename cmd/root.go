// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/deviantintegral/flameconnect-sub000/internal/config"
)

var (
	// Global flags
	cfgFile      string
	fireFlag     string
	logLevelFlag string

	// Populated by the root PersistentPreRunE for every command
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "flameconnect",
	Short: "FlameConnect fireplace control",
	Long: `flameconnect - a CLI for reading and controlling FlameConnect fireplaces
through the cloud relay.

Provides commands for listing fires, inspecting decoded parameters, writing
settings (mode, temperature, flame and log effects, timer, sound) and an
interactive TUI control panel.

Credentials come from FLAMECONNECT_CLOUD_EMAIL and FLAMECONNECT_PASSWORD; the
password is prompted interactively if not set. A --password flag is
intentionally not provided to avoid leaking credentials in shell history.`,
	Version:      "1.0.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if fireFlag != "" {
			cfg.FireID = fireFlag
		}
		if logLevelFlag != "" {
			if err := cfg.LogLevel.Set(logLevelFlag); err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
		}

		level := cfg.LogLevel
		if cfg.HTTPLog && level > zapcore.DebugLevel {
			// http_log exposes the relay request logging, which sits at debug
			level = zapcore.DebugLevel
		}
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zapCfg.Build()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&fireFlag, "fire", "f", "", "Fire id (defaults to FLAMECONNECT_FIRE_ID)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
