package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-ports/internal/core"
	"github.com/vovakirdan/arcade-ports/internal/platform/tui"
	"github.com/vovakirdan/arcade-ports/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/S          - Left paddle (Pong)
  Up/Down      - Right paddle (Pong)
  A/D          - Walk (Cavern)
  Space        - Flap (Flappy), jump (Cavern)
  F/X          - Blow an orb (Cavern)
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Leave (while paused or after game over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot to ~/.arcade/screenshots

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play pong
  arcade play flappy --difficulty hard
  arcade play cavern --seed 42
  arcade play flappy --config ./my-flappy.yaml --log-file arcade.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := interactiveLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	runErr := tui.Run(game, terminalConfig(), logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
