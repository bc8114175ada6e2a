package companion

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ramonehamilton/arena-insights/internal/models"
)

// GameplayClient issues read-only queries for play-by-play match data.
// Failures from the transport propagate unchanged; there are no retries or
// fallbacks at this level.
type GameplayClient struct {
	transport Transport
}

// NewGameplayClient creates a new gameplay query client.
func NewGameplayClient(transport Transport) *GameplayClient {
	return &GameplayClient{transport: transport}
}

// matchPath builds a path under /matches/{matchID}. Match IDs originate from
// user-supplied text, so the ID is percent-encoded as a single path segment;
// an ID containing "/" must not introduce extra segments.
func matchPath(matchID, suffix string) string {
	return "/matches/" + url.PathEscape(matchID) + suffix
}

// GetMatchPlays returns all plays for a match, ordered by sequence number.
func (c *GameplayClient) GetMatchPlays(ctx context.Context, matchID string) ([]*models.GamePlay, error) {
	var plays []*models.GamePlay
	if err := c.transport.Get(ctx, matchPath(matchID, "/plays"), &plays); err != nil {
		return nil, fmt.Errorf("failed to get plays for match %s: %w", matchID, err)
	}
	return plays, nil
}

// GetMatchTimeline returns the match's plays organized by turn. The service
// aggregates this server-side; BuildTimeline produces the same shape from a
// flat play list when only GetMatchPlays data is available.
func (c *GameplayClient) GetMatchTimeline(ctx context.Context, matchID string) ([]*models.PlayTimelineEntry, error) {
	var timeline []*models.PlayTimelineEntry
	if err := c.transport.Get(ctx, matchPath(matchID, "/plays/timeline"), &timeline); err != nil {
		return nil, fmt.Errorf("failed to get timeline for match %s: %w", matchID, err)
	}
	return timeline, nil
}

// GetMatchPlaySummary returns aggregate play counters for a match.
func (c *GameplayClient) GetMatchPlaySummary(ctx context.Context, matchID string) (*models.GamePlaySummary, error) {
	var summary models.GamePlaySummary
	if err := c.transport.Get(ctx, matchPath(matchID, "/plays/summary"), &summary); err != nil {
		return nil, fmt.Errorf("failed to get play summary for match %s: %w", matchID, err)
	}
	return &summary, nil
}

// GetMatchOpponentCards returns cards observed from the opponent during a match.
func (c *GameplayClient) GetMatchOpponentCards(ctx context.Context, matchID string) ([]*models.OpponentCard, error) {
	var cards []*models.OpponentCard
	if err := c.transport.Get(ctx, matchPath(matchID, "/opponent-cards"), &cards); err != nil {
		return nil, fmt.Errorf("failed to get opponent cards for match %s: %w", matchID, err)
	}
	return cards, nil
}

// GetMatchSnapshots returns game state snapshots for a match. When gameID is
// non-nil the query is scoped to that game; otherwise no query string is sent.
func (c *GameplayClient) GetMatchSnapshots(ctx context.Context, matchID string, gameID *int) ([]*models.GameStateSnapshot, error) {
	path := matchPath(matchID, "/snapshots")
	if gameID != nil {
		path += fmt.Sprintf("?gameID=%d", *gameID)
	}

	var snapshots []*models.GameStateSnapshot
	if err := c.transport.Get(ctx, path, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to get snapshots for match %s: %w", matchID, err)
	}
	return snapshots, nil
}

// GetPlaysByGame returns all plays for a specific game within a match. Game
// IDs are numeric and interpolated directly.
func (c *GameplayClient) GetPlaysByGame(ctx context.Context, gameID int) ([]*models.GamePlay, error) {
	var plays []*models.GamePlay
	path := fmt.Sprintf("/gameplays/game/%d", gameID)
	if err := c.transport.Get(ctx, path, &plays); err != nil {
		return nil, fmt.Errorf("failed to get plays for game %d: %w", gameID, err)
	}
	return plays, nil
}
