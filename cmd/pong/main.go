// pong is a one-player Pong against the computer, played in the terminal.
//
// Usage:
//
//	pong                 - Open the menu and play (same as "pong play")
//	pong play            - Open the menu and play
//	pong serve           - Start SSH server for remote play
//	pong history         - Show recent sessions and totals
//	pong config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.pong/pong.db)
//	--config <path>       - Load configuration from a YAML file
//	--difficulty <level>  - easy, normal or hard (default: normal)
//	--log-file <path>     - Log file for the terminal client (default: ~/.pong/pong.log)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - beat the computer in your terminal",
	Long: `Pong is a one-player game against a computer-controlled paddle,
played directly in your terminal.

Available commands:
  play     - Open the menu and play (default)
  serve    - Start SSH server for remote play
  history  - View recent sessions and totals
  config   - Print the effective configuration

Examples:
  pong
  pong --difficulty hard
  pong serve --ssh :2222
  pong history --limit 5`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a pong.yaml configuration file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Computer difficulty: easy, normal or hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file for the terminal client")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
