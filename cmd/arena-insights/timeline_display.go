package main

import (
	"context"
	"fmt"

	"github.com/ramonehamilton/arena-insights/internal/companion"
	"github.com/ramonehamilton/arena-insights/internal/models"
)

// runTimeline shows the per-turn play timeline for a match. The server's
// aggregated timeline is preferred; if the endpoint reports no entries but
// plays exist, the timeline is rebuilt client-side from the flat play list.
func runTimeline(ctx context.Context, client *companion.GameplayClient) error {
	id, err := requireMatchID()
	if err != nil {
		return err
	}

	timeline, err := client.GetMatchTimeline(ctx, id)
	if err != nil {
		return err
	}

	if len(timeline) == 0 {
		plays, err := client.GetMatchPlays(ctx, id)
		if err != nil {
			return err
		}
		timeline = companion.BuildTimeline(plays)
	}

	fmt.Printf("\nTimeline - Match %s\n", id)
	fmt.Println("===================")

	if len(timeline) == 0 {
		fmt.Println("No plays recorded.")
		return nil
	}

	for _, entry := range timeline {
		fmt.Printf("\nTurn %d (active: %s)\n", entry.Turn, entry.ActivePlayer)
		displayPlays("  You:     ", entry.PlayerPlays)
		displayPlays("  Opponent:", entry.OpponentPlays)
	}

	return nil
}

func displayPlays(label string, plays []*models.GamePlay) {
	if len(plays) == 0 {
		return
	}
	for i, play := range plays {
		prefix := "           "
		if i == 0 {
			prefix = label
		}
		fmt.Printf("%s %s", prefix, describePlay(play))
		fmt.Println()
	}
}

// describePlay renders one play as a short human-readable line.
func describePlay(play *models.GamePlay) string {
	desc := play.ActionType
	switch play.ActionType {
	case models.ActionTypePlayCard:
		desc = "played"
	case models.ActionTypeAttack:
		desc = "attacked"
	case models.ActionTypeBlock:
		desc = "blocked"
	case models.ActionTypeLandDrop:
		desc = "played land"
	case models.ActionTypeMulligan:
		desc = "mulliganed"
	}

	if play.CardName != nil {
		desc = fmt.Sprintf("%s %s", desc, *play.CardName)
	}
	if play.Phase != "" {
		desc = fmt.Sprintf("%s [%s]", desc, play.Phase)
	}
	return desc
}

// runSummary shows aggregate play counters for a match.
func runSummary(ctx context.Context, client *companion.GameplayClient) error {
	id, err := requireMatchID()
	if err != nil {
		return err
	}

	summary, err := client.GetMatchPlaySummary(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("\nPlay Summary - Match %s\n", id)
	fmt.Println("=======================")
	fmt.Printf("Total plays:         %d\n", summary.TotalPlays)
	fmt.Printf("  Yours:             %d\n", summary.PlayerPlays)
	fmt.Printf("  Opponent's:        %d\n", summary.OpponentPlays)
	fmt.Printf("Card plays:          %d\n", summary.CardPlays)
	fmt.Printf("Attacks:             %d\n", summary.Attacks)
	fmt.Printf("Blocks:              %d\n", summary.Blocks)
	fmt.Printf("Land drops:          %d\n", summary.LandDrops)
	fmt.Printf("Total turns:         %d\n", summary.TotalTurns)
	fmt.Printf("Opponent cards seen: %d\n", summary.OpponentCardsSeen)

	return nil
}

// runOpponentCards lists cards the opponent revealed during a match.
func runOpponentCards(ctx context.Context, client *companion.GameplayClient) error {
	id, err := requireMatchID()
	if err != nil {
		return err
	}

	cards, err := client.GetMatchOpponentCards(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("\nOpponent Cards - Match %s\n", id)
	fmt.Println("=========================")

	if len(cards) == 0 {
		fmt.Println("No opponent cards observed.")
		return nil
	}

	for _, card := range cards {
		name := fmt.Sprintf("card %d", card.CardID)
		if card.CardName != nil {
			name = *card.CardName
		}
		fmt.Printf("  %s - first seen turn %d in %s, seen %dx\n",
			name, card.TurnFirstSeen, card.ZoneObserved, card.TimesSeen)
	}

	return nil
}

// runSnapshots lists game state snapshots for a match.
func runSnapshots(ctx context.Context, client *companion.GameplayClient) error {
	id, err := requireMatchID()
	if err != nil {
		return err
	}

	var game *int
	if *gameID > 0 {
		game = gameID
	}

	snapshots, err := client.GetMatchSnapshots(ctx, id, game)
	if err != nil {
		return err
	}

	fmt.Printf("\nSnapshots - Match %s\n", id)
	fmt.Println("====================")

	if len(snapshots) == 0 {
		fmt.Println("No snapshots recorded.")
		return nil
	}

	for _, snapshot := range snapshots {
		line := fmt.Sprintf("  Game %d, turn %d (active: %s)",
			snapshot.GameID, snapshot.TurnNumber, snapshot.ActivePlayer)
		if snapshot.PlayerLife != nil && snapshot.OpponentLife != nil {
			line += fmt.Sprintf(" - life %d vs %d", *snapshot.PlayerLife, *snapshot.OpponentLife)
		}
		fmt.Println(line)
	}

	return nil
}
