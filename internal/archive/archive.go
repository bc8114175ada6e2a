// Package archive keeps a local sqlite copy of data fetched from the
// companion API, so match history and play logs stay browsable offline. The
// archive is written by callers after a successful fetch; the query clients
// themselves never read from it.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ramonehamilton/arena-insights/internal/models"
)

// timeLayout is the stored timestamp format.
const timeLayout = time.RFC3339Nano

// Archive is a local store of fetched matches and plays.
type Archive struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive database at path and applies
// pending schema migrations.
func Open(path string) (*Archive, error) {
	if err := runMigrations(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveMatches upserts fetched matches by ID.
func (a *Archive) SaveMatches(ctx context.Context, matches []*models.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO matches (
			id, account_id, event_id, event_name, timestamp, duration_seconds,
			player_wins, opponent_wins, deck_id, deck_format, rank_before,
			rank_after, format, result, result_reason, opponent_name, opponent_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			account_id = excluded.account_id,
			event_id = excluded.event_id,
			event_name = excluded.event_name,
			timestamp = excluded.timestamp,
			duration_seconds = excluded.duration_seconds,
			player_wins = excluded.player_wins,
			opponent_wins = excluded.opponent_wins,
			deck_id = excluded.deck_id,
			deck_format = excluded.deck_format,
			rank_before = excluded.rank_before,
			rank_after = excluded.rank_after,
			format = excluded.format,
			result = excluded.result,
			result_reason = excluded.result_reason,
			opponent_name = excluded.opponent_name,
			opponent_id = excluded.opponent_id
	`

	for _, match := range matches {
		_, err := tx.ExecContext(ctx, query,
			match.ID,
			match.AccountID,
			match.EventID,
			match.EventName,
			match.Timestamp.UTC().Format(timeLayout),
			match.DurationSeconds,
			match.PlayerWins,
			match.OpponentWins,
			match.DeckID,
			match.DeckFormat,
			match.RankBefore,
			match.RankAfter,
			match.Format,
			match.Result,
			match.ResultReason,
			match.OpponentName,
			match.OpponentID,
		)
		if err != nil {
			return fmt.Errorf("failed to save match %s: %w", match.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SavePlays upserts fetched plays by ID.
func (a *Archive) SavePlays(ctx context.Context, plays []*models.GamePlay) error {
	if len(plays) == 0 {
		return nil
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO game_plays (
			id, game_id, match_id, turn_number, phase, step, player_type,
			action_type, card_id, card_name, zone_from, zone_to, timestamp,
			sequence_number
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			game_id = excluded.game_id,
			match_id = excluded.match_id,
			turn_number = excluded.turn_number,
			phase = excluded.phase,
			step = excluded.step,
			player_type = excluded.player_type,
			action_type = excluded.action_type,
			card_id = excluded.card_id,
			card_name = excluded.card_name,
			zone_from = excluded.zone_from,
			zone_to = excluded.zone_to,
			timestamp = excluded.timestamp,
			sequence_number = excluded.sequence_number
	`

	for _, play := range plays {
		_, err := tx.ExecContext(ctx, query,
			play.ID,
			play.GameID,
			play.MatchID,
			play.TurnNumber,
			play.Phase,
			play.Step,
			play.PlayerType,
			play.ActionType,
			play.CardID,
			play.CardName,
			play.ZoneFrom,
			play.ZoneTo,
			play.Timestamp.UTC().Format(timeLayout),
			play.SequenceNumber,
		)
		if err != nil {
			return fmt.Errorf("failed to save play %d: %w", play.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Matches returns archived matches, newest first. An empty format returns
// every match.
func (a *Archive) Matches(ctx context.Context, format string) ([]*models.Match, error) {
	query := `
		SELECT id, account_id, event_id, event_name, timestamp, duration_seconds,
		       player_wins, opponent_wins, deck_id, deck_format, rank_before,
		       rank_after, format, result, result_reason, opponent_name, opponent_id
		FROM matches
	`
	args := []interface{}{}
	if format != "" {
		query += " WHERE format = ?"
		args = append(args, format)
	}
	query += " ORDER BY timestamp DESC"

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var matches []*models.Match
	for rows.Next() {
		match := &models.Match{}
		var timestamp string
		err := rows.Scan(
			&match.ID,
			&match.AccountID,
			&match.EventID,
			&match.EventName,
			&timestamp,
			&match.DurationSeconds,
			&match.PlayerWins,
			&match.OpponentWins,
			&match.DeckID,
			&match.DeckFormat,
			&match.RankBefore,
			&match.RankAfter,
			&match.Format,
			&match.Result,
			&match.ResultReason,
			&match.OpponentName,
			&match.OpponentID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if t, err := time.Parse(timeLayout, timestamp); err == nil {
			match.Timestamp = t
		}
		matches = append(matches, match)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}

	return matches, nil
}

// PlaysByMatch returns archived plays for a match, ordered by sequence number.
func (a *Archive) PlaysByMatch(ctx context.Context, matchID string) ([]*models.GamePlay, error) {
	query := `
		SELECT id, game_id, match_id, turn_number, phase, step, player_type,
		       action_type, card_id, card_name, zone_from, zone_to, timestamp,
		       sequence_number
		FROM game_plays
		WHERE match_id = ?
		ORDER BY sequence_number ASC
	`

	rows, err := a.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var plays []*models.GamePlay
	for rows.Next() {
		play := &models.GamePlay{}
		var timestamp string
		err := rows.Scan(
			&play.ID,
			&play.GameID,
			&play.MatchID,
			&play.TurnNumber,
			&play.Phase,
			&play.Step,
			&play.PlayerType,
			&play.ActionType,
			&play.CardID,
			&play.CardName,
			&play.ZoneFrom,
			&play.ZoneTo,
			&timestamp,
			&play.SequenceNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan play: %w", err)
		}
		if t, err := time.Parse(timeLayout, timestamp); err == nil {
			play.Timestamp = t
		}
		plays = append(plays, play)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plays: %w", err)
	}

	return plays, nil
}
