package models

import "time"

// Match represents a single match as returned by the service.
// A match may consist of multiple games (best-of-3).
type Match struct {
	ID              string    `json:"id"`
	AccountID       int       `json:"account_id"`
	EventID         string    `json:"event_id"`
	EventName       string    `json:"event_name"`
	Timestamp       time.Time `json:"timestamp"`
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
	PlayerWins      int       `json:"player_wins"`
	OpponentWins    int       `json:"opponent_wins"`
	DeckID          *string   `json:"deck_id,omitempty"`
	DeckFormat      *string   `json:"deck_format,omitempty"`
	RankBefore      *string   `json:"rank_before,omitempty"`
	RankAfter       *string   `json:"rank_after,omitempty"`
	Format          string    `json:"format"`
	Result          string    `json:"result"` // "win" or "loss"
	ResultReason    *string   `json:"result_reason,omitempty"`
	OpponentName    *string   `json:"opponent_name,omitempty"`
	OpponentID      *string   `json:"opponent_id,omitempty"`
}

// Game represents a single game within a match.
type Game struct {
	ID              int     `json:"id"`
	MatchID         string  `json:"match_id"`
	GameNumber      int     `json:"game_number"`
	Result          string  `json:"result"`
	DurationSeconds *int    `json:"duration_seconds,omitempty"`
	ResultReason    *string `json:"result_reason,omitempty"`
}

// Statistics represents aggregated match statistics.
type Statistics struct {
	TotalMatches int     `json:"total_matches"`
	MatchesWon   int     `json:"matches_won"`
	MatchesLost  int     `json:"matches_lost"`
	TotalGames   int     `json:"total_games"`
	GamesWon     int     `json:"games_won"`
	GamesLost    int     `json:"games_lost"`
	MatchWinRate float64 `json:"match_win_rate"`
	GameWinRate  float64 `json:"game_win_rate"`
}

// PerformanceBucket holds win-rate metrics for one hour-of-day bucket.
type PerformanceBucket struct {
	Hour          int     `json:"hour"`
	MatchesPlayed int     `json:"matches_played"`
	MatchesWon    int     `json:"matches_won"`
	WinRate       float64 `json:"win_rate"`
}

// RankChange is a single step in a rank progression.
type RankChange struct {
	Timestamp time.Time `json:"timestamp"`
	RankClass string    `json:"rank_class"`
	RankLevel *int      `json:"rank_level,omitempty"`
	MatchID   *string   `json:"match_id,omitempty"`
}

// RankProgression summarizes rank movement for a single format.
type RankProgression struct {
	Format      string        `json:"format"`
	CurrentRank *string       `json:"current_rank"`
	PeakRank    *string       `json:"peak_rank"`
	SeasonStart *time.Time    `json:"season_start"`
	MatchesWon  int           `json:"matches_won"`
	MatchesLost int           `json:"matches_lost"`
	WinRate     float64       `json:"win_rate"`
	RankChanges []*RankChange `json:"rank_changes"`
}

// StatsFilter provides filtering options for match and statistics queries.
// All fields are optional; nil means the constraint is not applied. An empty
// Formats/EventNames slice is a real (empty-set) constraint and is distinct
// from nil.
type StatsFilter struct {
	AccountID    *int // Filter by account ID, nil means all accounts
	StartDate    *FilterDate
	EndDate      *FilterDate
	Format       *string  // Single format filter - filters matches.format (Ladder/Play)
	Formats      []string // Multiple format filter (e.g., ["Ladder", "Play"])
	DeckFormat   *string  // Filter by deck format (Standard, Historic, etc.)
	DeckID       *string
	EventName    *string  // Filter by event name (exact match)
	EventNames   []string // Multiple event names (OR logic)
	OpponentName *string  // Filter by opponent name (exact match)
	OpponentID   *string  // Filter by opponent ID
	Result       *string  // Filter by result ("win" or "loss")
	RankClass    *string  // Filter by rank class (e.g., "Mythic", "Diamond")
	RankMinClass *string  // Minimum rank class
	RankMaxClass *string  // Maximum rank class
	ResultReason *string  // Filter by result reason (e.g., "concede", "timeout")
}
