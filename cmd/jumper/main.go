// jumper is an endless vertical platform jumper for the terminal, a desktop
// window and SSH.
//
// Usage:
//
//	jumper play     - Play in the terminal
//	jumper gui      - Play in a desktop window
//	jumper serve    - Start SSH server for remote play
//	jumper best     - Print the highest score
//	jumper config   - Print the effective game tuning
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible layouts
//	--db <path>         - Set database path (default: ~/.jumper/scores.db)
//	--config <path>     - Custom tuning YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Bunny Jumper - bounce upward, collect carrots",
	Long: `Bunny Jumper is an endless vertical jumper. The bunny bounces off
every platform it lands on; steer it while airborne, collect carrots and
don't fall below the lowest platform.

Available commands:
  play     - Play in the terminal
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  best     - Print the highest score
  config   - Print the effective game tuning

Examples:
  jumper play
  jumper play --seed 42
  jumper gui --mute
  jumper serve --ssh :2222
  jumper config --config ./my-jumper.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(configCmd)
}
