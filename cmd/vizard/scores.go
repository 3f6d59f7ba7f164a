package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vizard/internal/maps"
	"github.com/vovakirdan/vizard/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [map]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for the specified map, or a summary of every
played map when no map is given.

Examples:
  vizard scores
  vizard scores tutorial`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printAllStats(store)
		return
	}

	mapID := args[0]
	m, err := maps.Get(mapID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'vizard maps' to see available maps.")
		os.Exit(1)
	}

	// Get top scores
	scores, err := store.TopScores(mapID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", m.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'vizard play %s' to set the first high score!\n", mapID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%.1fs", float64(entry.DurationMs)/1000)
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, entry.Score, timeStr, dateStr)
	}

	replays, err := store.RecentReplays(mapID, 5)
	if err == nil && len(replays) > 0 {
		fmt.Println()
		fmt.Println("Recent replays:")
		for _, r := range replays {
			fmt.Printf("  #%-4d  score %-4d  %s\n", r.ID, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
		fmt.Println("Run 'vizard replay <id>' to watch one.")
	}
}

func printAllStats(store *storage.Store) {
	stats, err := store.GetAllMapStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-5s  %-4s  %-6s  %s\n", "Map", "Games", "Best", "Avg", "Last played")
	fmt.Printf("  %-12s  %-5s  %-4s  %-6s  %s\n", "---", "-----", "----", "---", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-12s  %-5d  %-4d  %-6.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
