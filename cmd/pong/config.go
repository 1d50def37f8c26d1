package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration pong would play with, as YAML.

Search order:
  --config <path>
  ~/.pong/configs/pong.yaml
  ./configs/pong.yaml
  built-in defaults

The --difficulty preset is applied to the printed computer speed.

Examples:
  pong config
  pong config --difficulty hard
  pong config --defaults > ~/.pong/configs/pong.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Best-effort output
		return
	}

	cfg, preset := mustLoadSettings()
	config.ApplyPongPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# difficulty: %s\n", preset)
	os.Stdout.Write(data) //nolint:errcheck // Best-effort output
}
