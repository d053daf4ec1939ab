package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game tuning",
	Long: `Print the tuning YAML the game would run with.

The file is looked up in this order: --config, ~/.jumper/configs/jumper.yaml,
./configs/jumper.yaml, then the built-in defaults. Redirect the output to
start a custom config.

Examples:
  jumper config > ~/.jumper/configs/jumper.yaml
  jumper config --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	_, _ = os.Stdout.Write(out)
}
