package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

var (
	flagMute     bool
	flagVolume   float64
	flagNoResult bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Left/A/H    - Steer left while airborne
  Right/D/L   - Steer right while airborne
  Space/R     - Try again (after game over)
  P           - Pause
  Ctrl+S      - Screenshot
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  jumper play
  jumper play --seed 7 --mute
  jumper play --log-file ~/.jumper/jumper.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, guiCmd} {
		c.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
		c.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (0..1)")
	}
	playCmd.Flags().BoolVar(&flagNoResult, "no-results", false, "Skip the results screen on exit")
}

// newGame assembles a game with the shared infrastructure.
func newGame(cfg config.JumperConfig, store jumper.ScoreStore, sound audio.Player, reg *registry.Registry) *jumper.Game {
	return jumper.New(
		jumper.WithConfig(cfg),
		jumper.WithStore(store),
		jumper.WithAudio(sound),
		jumper.WithRegistry(reg),
	)
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns the terminal; log only when asked to.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	best, stopBest := openBest(logger)
	sound, stopAudio := openAudio(flagMute, flagVolume, logger)
	reg := registry.New()
	game := newGame(cfg, best, sound, reg)

	results, runErr := tui.Run(game, rc, tui.WithLogger(logger))

	stopAudio()
	stopBest()

	if runErr != nil {
		fail("running game: %v", runErr)
	}

	finalScore := reg.String(registry.KeyFinalScore)
	if len(results) > 0 && !flagNoResult {
		if err := tui.RunResults(results, finalScore, width, height); err != nil {
			fail("%v", err)
		}
	}
	if finalScore != "" {
		fmt.Printf("Final score: %s\n", finalScore)
	}
	fmt.Printf("Highest: %d\n", best.Best())
}
