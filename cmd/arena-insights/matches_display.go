package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ramonehamilton/arena-insights/internal/companion"
)

// runMatches lists matches satisfying the current filter.
func runMatches(ctx context.Context, client *companion.MatchClient) error {
	matches, err := client.GetMatches(ctx, currentFilter())
	if err != nil {
		return err
	}

	fmt.Println("\nMatches")
	fmt.Println("=======")

	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	fmt.Println()
	for i, match := range matches {
		timeStr := match.Timestamp.Format("2006-01-02 15:04")

		resultStr := "LOSS"
		if match.Result == "win" {
			resultStr = "WIN"
		} else if match.Result == "draw" {
			resultStr = "DRAW"
		}

		score := fmt.Sprintf("%d-%d", match.PlayerWins, match.OpponentWins)

		format := match.Format
		if format == "" {
			format = "Unknown"
		}

		eventName := ""
		if match.EventName != "" {
			eventName = fmt.Sprintf(" (%s)", match.EventName)
		}

		fmt.Printf("%d. [%s] %s - %s %s%s\n", i+1, timeStr, resultStr, format, score, eventName)
		fmt.Printf("   ID: %s\n", match.ID)

		if match.OpponentName != nil {
			fmt.Printf("   Opponent: %s\n", *match.OpponentName)
		}

		if match.RankBefore != nil && match.RankAfter != nil {
			fmt.Printf("   Rank: %s -> %s\n", *match.RankBefore, *match.RankAfter)
		}

		if match.DurationSeconds != nil && *match.DurationSeconds > 0 {
			duration := time.Duration(*match.DurationSeconds) * time.Second
			fmt.Printf("   Duration: %s\n", duration)
		}

		fmt.Println()
	}

	return nil
}

// runStats displays aggregate statistics for the current filter.
func runStats(ctx context.Context, client *companion.MatchClient) error {
	stats, err := client.GetStats(ctx, currentFilter())
	if err != nil {
		return err
	}

	fmt.Println("\nStatistics")
	fmt.Println("==========")
	fmt.Printf("Matches:  %d (%d won, %d lost, %.1f%% win rate)\n",
		stats.TotalMatches, stats.MatchesWon, stats.MatchesLost, stats.MatchWinRate*100)
	fmt.Printf("Games:    %d (%d won, %d lost, %.1f%% win rate)\n",
		stats.TotalGames, stats.GamesWon, stats.GamesLost, stats.GameWinRate*100)

	return nil
}

// runFormats lists all formats present in the match history.
func runFormats(ctx context.Context, client *companion.MatchClient) error {
	formats, err := client.GetFormats(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\nFormats")
	fmt.Println("=======")

	if len(formats) == 0 {
		fmt.Println("No formats found.")
		return nil
	}

	for _, format := range formats {
		fmt.Printf("  %s\n", format)
	}

	return nil
}
