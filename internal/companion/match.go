package companion

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ramonehamilton/arena-insights/internal/models"
)

// ExportFormat selects the payload format for match exports.
type ExportFormat string

// Export formats supported by the service.
const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// MatchClient issues match-level queries. Filtered queries POST the
// normalized wire request, never the raw filter.
type MatchClient struct {
	transport Transport
}

// NewMatchClient creates a new match query client.
func NewMatchClient(transport Transport) *MatchClient {
	return &MatchClient{transport: transport}
}

// GetMatches returns matches satisfying the filter.
func (c *MatchClient) GetMatches(ctx context.Context, filter models.StatsFilter) ([]*models.Match, error) {
	var matches []*models.Match
	if err := c.transport.Post(ctx, "/matches", NormalizeFilter(filter), &matches); err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	return matches, nil
}

// GetMatch returns a single match by ID.
func (c *MatchClient) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	var match models.Match
	if err := c.transport.Get(ctx, matchPath(matchID, ""), &match); err != nil {
		return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
	}
	return &match, nil
}

// GetMatchGames returns the games of a match.
func (c *MatchClient) GetMatchGames(ctx context.Context, matchID string) ([]*models.Game, error) {
	var games []*models.Game
	if err := c.transport.Get(ctx, matchPath(matchID, "/games"), &games); err != nil {
		return nil, fmt.Errorf("failed to get games for match %s: %w", matchID, err)
	}
	return games, nil
}

// GetStats returns aggregated statistics for matches satisfying the filter.
func (c *MatchClient) GetStats(ctx context.Context, filter models.StatsFilter) (*models.Statistics, error) {
	var stats models.Statistics
	if err := c.transport.Post(ctx, "/matches/stats", NormalizeFilter(filter), &stats); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}

// GetFormats returns all formats present in the match history.
func (c *MatchClient) GetFormats(ctx context.Context) ([]string, error) {
	var formats []string
	if err := c.transport.Get(ctx, "/matches/formats", &formats); err != nil {
		return nil, fmt.Errorf("failed to get formats: %w", err)
	}
	return formats, nil
}

// GetPerformanceByHour returns win-rate metrics bucketed by hour of day for
// matches satisfying the filter.
func (c *MatchClient) GetPerformanceByHour(ctx context.Context, filter models.StatsFilter) ([]*models.PerformanceBucket, error) {
	var buckets []*models.PerformanceBucket
	if err := c.transport.Post(ctx, "/matches/performance", NormalizeFilter(filter), &buckets); err != nil {
		return nil, fmt.Errorf("failed to get performance metrics: %w", err)
	}
	return buckets, nil
}

// GetRankProgression returns rank progression data for a format.
func (c *MatchClient) GetRankProgression(ctx context.Context, format string) (*models.RankProgression, error) {
	var progression models.RankProgression
	path := "/matches/rank-progression/" + url.PathEscape(format)
	if err := c.transport.Get(ctx, path, &progression); err != nil {
		return nil, fmt.Errorf("failed to get rank progression for %s: %w", format, err)
	}
	return &progression, nil
}

// ExportMatches downloads the full match history in the given format. The
// payload is returned exactly as the service sent it: structured JSON bytes
// for ExportJSON, raw CSV text for ExportCSV. No parsing or validation
// happens client-side.
func (c *MatchClient) ExportMatches(ctx context.Context, format ExportFormat) ([]byte, error) {
	path := "/matches/export?format=" + url.QueryEscape(string(format))
	payload, err := c.transport.GetRaw(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to export matches as %s: %w", format, err)
	}
	return payload, nil
}
