// jumper is a vertical platform jumper for the terminal.
//
// Usage:
//
//	jumper                   - Play (same as 'jumper play')
//	jumper play              - Play a game
//	jumper scores            - Show the best runs
//	jumper catalog           - List market items
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.jumper/jumper.db)
//	--config <path>      - Load a custom game config YAML
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command tree and closes the log file on every path.
func execute() error {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	return err
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Bubble Jump - bounce your way up in the terminal",
	Long: `Bubble Jump is a vertical platform jumper played in the terminal.
Land on platforms to climb, earn points for every new platform and spend
them in the market on sea creatures that swim behind the action.

Available commands:
  play     - Play the game (default)
  scores   - View the best runs
  catalog  - List market items

Examples:
  jumper
  jumper play --sound
  jumper --seed 42 play
  jumper scores --interactive
  jumper --log-file jumper.log --log-level debug play`,
	PersistentPreRunE: setupLogger,
	RunE:              runPlay,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/jumper.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(catalogCmd)
}

// setupLogger opens --log-file. The game owns the terminal, so without a
// file nothing is logged.
func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper",
		Level:           level,
	})
	return nil
}
