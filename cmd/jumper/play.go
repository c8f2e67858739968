package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-jump/internal/audio"
	"github.com/vovakirdan/bubble-jump/internal/config"
	"github.com/vovakirdan/bubble-jump/internal/core"
	"github.com/vovakirdan/bubble-jump/internal/platform/tui"
	"github.com/vovakirdan/bubble-jump/internal/storage"
)

var (
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Bubble Jump.

Controls:
  Left/A, Right/D  - Move
  Enter            - Start / buy the highlighted item
  M                - Open or close the market
  Up/Down          - Move the market cursor
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  jumper play
  jumper play --sound --volume 0.4
  jumper --config ./my-jumper.yaml play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Config:  gameCfg,
		Runtime: cfg,
		Sound:   audio.NewPlayer(flagSound, flagVolume, logger.WithPrefix("audio")),
		Logger:  logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
	} else {
		opts.Store = store
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
