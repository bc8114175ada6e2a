package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ramonehamilton/arena-insights/internal/models"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		_ = a.Close()
	})
	return a
}

func testMatch(id string, ts time.Time) *models.Match {
	opponent := "Opponent#12345"
	return &models.Match{
		ID:           id,
		EventName:    "Ladder",
		Timestamp:    ts,
		PlayerWins:   2,
		OpponentWins: 1,
		Format:       "Ladder",
		Result:       "win",
		OpponentName: &opponent,
	}
}

func TestArchive_SaveAndReadMatches(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	matches := []*models.Match{
		testMatch("m1", base),
		testMatch("m2", base.Add(time.Hour)),
	}
	if err := a.SaveMatches(ctx, matches); err != nil {
		t.Fatalf("SaveMatches failed: %v", err)
	}

	got, err := a.Matches(ctx, "")
	if err != nil {
		t.Fatalf("Matches failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	// Newest first
	if got[0].ID != "m2" || got[1].ID != "m1" {
		t.Errorf("order = %s, %s, want m2, m1", got[0].ID, got[1].ID)
	}
	if got[1].OpponentName == nil || *got[1].OpponentName != "Opponent#12345" {
		t.Errorf("OpponentName = %v", got[1].OpponentName)
	}
	if !got[1].Timestamp.Equal(base) {
		t.Errorf("Timestamp = %v, want %v", got[1].Timestamp, base)
	}
}

func TestArchive_SaveMatchesUpserts(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	match := testMatch("m1", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	if err := a.SaveMatches(ctx, []*models.Match{match}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	match.Result = "loss"
	match.PlayerWins = 1
	if err := a.SaveMatches(ctx, []*models.Match{match}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := a.Matches(ctx, "")
	if err != nil {
		t.Fatalf("Matches failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d matches after upsert, want 1", len(got))
	}
	if got[0].Result != "loss" || got[0].PlayerWins != 1 {
		t.Errorf("match not updated: %+v", got[0])
	}
}

func TestArchive_MatchesFilterByFormat(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	ladder := testMatch("m1", time.Now().UTC())
	draft := testMatch("m2", time.Now().UTC())
	draft.Format = "Draft"
	if err := a.SaveMatches(ctx, []*models.Match{ladder, draft}); err != nil {
		t.Fatalf("SaveMatches failed: %v", err)
	}

	got, err := a.Matches(ctx, "Draft")
	if err != nil {
		t.Fatalf("Matches failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m2" {
		t.Errorf("got %+v, want only m2", got)
	}
}

func TestArchive_SaveAndReadPlays(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	cardID := 555
	plays := []*models.GamePlay{
		{
			ID:             2,
			GameID:         1,
			MatchID:        "m1",
			TurnNumber:     1,
			Phase:          models.PhaseCombat,
			PlayerType:     models.PlayerTypeOpponent,
			ActionType:     models.ActionTypeAttack,
			Timestamp:      time.Date(2024, 3, 1, 12, 5, 0, 0, time.UTC),
			SequenceNumber: 2,
		},
		{
			ID:             1,
			GameID:         1,
			MatchID:        "m1",
			TurnNumber:     1,
			Phase:          models.PhaseMain1,
			PlayerType:     models.PlayerTypePlayer,
			ActionType:     models.ActionTypePlayCard,
			CardID:         &cardID,
			Timestamp:      time.Date(2024, 3, 1, 12, 4, 0, 0, time.UTC),
			SequenceNumber: 1,
		},
	}
	if err := a.SavePlays(ctx, plays); err != nil {
		t.Fatalf("SavePlays failed: %v", err)
	}

	got, err := a.PlaysByMatch(ctx, "m1")
	if err != nil {
		t.Fatalf("PlaysByMatch failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d plays, want 2", len(got))
	}
	// Ordered by sequence number regardless of insert order
	if got[0].SequenceNumber != 1 || got[1].SequenceNumber != 2 {
		t.Errorf("sequence order = %d, %d, want 1, 2", got[0].SequenceNumber, got[1].SequenceNumber)
	}
	if got[0].CardID == nil || *got[0].CardID != 555 {
		t.Errorf("CardID = %v, want 555", got[0].CardID)
	}
	if got[1].CardID != nil {
		t.Errorf("CardID = %v, want nil", got[1].CardID)
	}

	other, err := a.PlaysByMatch(ctx, "m2")
	if err != nil {
		t.Fatalf("PlaysByMatch failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("got %d plays for unknown match, want 0", len(other))
	}
}
