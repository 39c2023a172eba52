package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Carmen-Shannon/oxy-solar/config"
	"github.com/Carmen-Shannon/oxy-solar/engine"
	"github.com/Carmen-Shannon/oxy-solar/engine/camera"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the camera and animation controls",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		printKeys(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func printKeys(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "\n  Keyboard fly")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 32))
	for _, b := range camera.DefaultBindings() {
		fmt.Fprintf(w, "  %-12s %s\n", b.Key.Name(), b.Action)
	}

	fmt.Fprintln(w, "\n  Anytime")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 32))
	fmt.Fprintf(w, "  %-12s %s\n", cfg.Rig.ToggleKey, "toggle mouse follow / keyboard fly")
	fmt.Fprintf(w, "  %-12s %s\n", cfg.Rig.RecenterKey, "recenter camera")
	fmt.Fprintf(w, "  %-12s %s\n", engine.KeySpeedUp, "double animation speed")
	fmt.Fprintf(w, "  %-12s %s\n", engine.KeySlowDown, "halve animation speed")
	fmt.Fprintln(w)
}
