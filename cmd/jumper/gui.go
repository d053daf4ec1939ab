package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/platform/desktop"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there.

Controls:
  Left/A      - Steer left while airborne
  Right/D     - Steer right while airborne
  Space/R     - Try again (after game over)
  P           - Pause
  Esc/Q       - Quit

Examples:
  jumper gui
  jumper gui --volume 0.3`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func runGUI(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	best, stopBest := openBest(logger)
	sound, stopAudio := openAudio(flagMute, flagVolume, logger)
	reg := registry.New()
	game := newGame(cfg, best, sound, reg)

	runErr := desktop.Run(game, rc, logger)

	stopAudio()
	stopBest()

	if runErr != nil {
		fail("running window: %v", runErr)
	}
	if finalScore := reg.String(registry.KeyFinalScore); finalScore != "" {
		fmt.Printf("Final score: %s\n", finalScore)
	}
	fmt.Printf("Highest: %d\n", best.Best())
}
