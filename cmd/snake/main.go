// snake is the classic snake game, played in the terminal.
//
// Usage:
//
//	snake                    - Play
//	snake scores             - Show the best recorded runs
//	snake config             - Print the default YAML configuration
//
// Flags:
//
//	--seed <value>     - RNG seed for reproducible food placement
//	--config <path>    - YAML config overriding the built-in constants
//	--log <path>       - Write a structured log to this file
//	--log-level <lvl>  - debug, info, warn or error (default: info)
//	--save             - Record the finished run in the scores database
//	--db <path>        - Scores database (default: ~/.tui-snake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	flagSeed     int64
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
	flagSave     bool
	flagDBPath   string
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer the snake with the arrow keys, eat food to grow, and avoid the
walls and your own tail. The snake speeds up as it gets longer.

Controls:
  Arrow keys  - Change direction
  Esc/Ctrl+C  - Quit

Examples:
  snake
  snake --seed 42
  snake --save
  snake scores`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-snake/scores.db", "Path to scores database")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagLogPath, "log", "", "Path to log file (empty = no logging)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the scores database")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
