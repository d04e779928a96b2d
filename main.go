// husky-loves-ducky is a small side-scroller: pick the husky or the duck and
// play against the clock.
//
// Usage:
//
//	husky-loves-ducky                    - Play the game
//	husky-loves-ducky -l                 - Open the level viewer
//	husky-loves-ducky scores             - List the high scores
//	husky-loves-ducky scores add         - Record a score
//
// Global flags:
//
//	--media <dir>   - Directory with sprites, fonts and levels (default: media)
//	--data <path>   - Game data YAML (default: built in)
//	--level <path>  - Level shown by the level viewer, relative to --media
//	--debug         - Log screen transitions and resource loads
package main

import (
	"fmt"
	"os"

	"github.com/automoto/husky-loves-ducky/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "husky-loves-ducky",
	Short:        "Husky Loves Ducky - a side-scroller against the clock",
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&config.Paths.Media, "media", config.Paths.Media, "Directory with sprites, fonts and levels")
	flags.StringVar(&config.Paths.GameData, "data", config.Paths.GameData, "Game data YAML (empty uses the built-in data)")
	flags.BoolVar(&config.Debug.Verbose, "debug", config.Debug.Verbose, "Log screen transitions and resource loads")

	rootCmd.Flags().BoolVarP(&config.Debug.LevelViewer, "level-viewer", "l", config.Debug.LevelViewer, "Open the level viewer instead of the game")
	rootCmd.Flags().StringVar(&config.Paths.Level, "level", config.Paths.Level, "Level for the level viewer, relative to --media")
	rootCmd.Flags().BoolVar(&config.Debug.Fullscreen, "fullscreen", config.Debug.Fullscreen, "Start in fullscreen")

	rootCmd.AddCommand(scoresCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "husky",
	})
	if config.Debug.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
