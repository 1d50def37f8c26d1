package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryPlayer string
	flagHistoryClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sessions and totals",
	Long: `Display the most recent playing sessions and the totals over all of them.

A session runs from pressing Play to returning to the menu. Only sessions
in which at least one round was finished are recorded.

Examples:
  pong history
  pong history --limit 5
  pong history --player alice --db /srv/pong/pong.db
  pong history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "player", tui.LocalPlayer, "Player to show (empty for everyone)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the player's history")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(flagHistoryPlayer); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	sessions, err := store.RecentSessions(flagHistoryPlayer, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Session History")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pong' and finish a round to start the history!")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Date", "Score", "Rounds", "Time", "Level")
	if flagHistoryPlayer == "" {
		t.Headers("Date", "Score", "Rounds", "Time", "Level", "Player")
	}
	for _, s := range sessions {
		row := tui.SessionRow(s)
		if flagHistoryPlayer == "" {
			row = append(row, s.Player)
		}
		t.Row(row...)
	}
	fmt.Println(t)

	totals, err := store.Totals(flagHistoryPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Sessions: %d\n", totals.Sessions)
	fmt.Printf("Rounds:   %d (Player %d - %d Computer)\n", totals.Rounds, totals.Points, totals.CPUPoints)
	fmt.Printf("Played:   %s\n", tui.FormatDuration(totals.PlayTime))
	if !totals.LastPlayed.IsZero() {
		fmt.Printf("Last:     %s\n", totals.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
