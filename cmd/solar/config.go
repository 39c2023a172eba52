package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after the config file, .env and SOLAR_* environment
variables have been applied. The output is a valid config file.

Examples:
  solar config > solar.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		enc := toml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return nil
	},
}
