package companion

import (
	"github.com/ramonehamilton/arena-insights/internal/models"
)

// StatsFilterRequest is the canonical wire form of a StatsFilter. The shape
// is fixed: every field is serialized on every request, with null marking an
// absent constraint. The service relies on the full key set being present, so
// none of the fields carry omitempty.
type StatsFilterRequest struct {
	AccountID    *int     `json:"account_id"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	Format       *string  `json:"format"`
	Formats      []string `json:"formats"`
	DeckFormat   *string  `json:"deck_format"`
	DeckID       *string  `json:"deck_id"`
	EventName    *string  `json:"event_name"`
	EventNames   []string `json:"event_names"`
	OpponentName *string  `json:"opponent_name"`
	OpponentID   *string  `json:"opponent_id"`
	Result       *string  `json:"result"`
	RankClass    *string  `json:"rank_class"`
	RankMinClass *string  `json:"rank_min_class"`
	RankMaxClass *string  `json:"rank_max_class"`
	ResultReason *string  `json:"result_reason"`
}

// RequestFieldNames lists every wire key of StatsFilterRequest. Adding a
// filter field means adding the struct field, its Normalize assignment, and
// an entry here; the exhaustive-key test fails until all three agree.
var RequestFieldNames = []string{
	"account_id",
	"start_date",
	"end_date",
	"format",
	"formats",
	"deck_format",
	"deck_id",
	"event_name",
	"event_names",
	"opponent_name",
	"opponent_id",
	"result",
	"rank_class",
	"rank_min_class",
	"rank_max_class",
	"result_reason",
}

// NormalizeFilter converts a client-side StatsFilter into the canonical wire
// request. The conversion is total: it never fails, and every request field
// is populated (possibly with nil). Dates are narrowed to calendar dates;
// array fields keep their nil/empty distinction because the service treats
// "no constraint" and "empty set" differently.
func NormalizeFilter(f models.StatsFilter) StatsFilterRequest {
	req := StatsFilterRequest{
		AccountID:    f.AccountID,
		Format:       f.Format,
		Formats:      f.Formats,
		DeckFormat:   f.DeckFormat,
		DeckID:       f.DeckID,
		EventName:    f.EventName,
		EventNames:   f.EventNames,
		OpponentName: f.OpponentName,
		OpponentID:   f.OpponentID,
		Result:       f.Result,
		RankClass:    f.RankClass,
		RankMinClass: f.RankMinClass,
		RankMaxClass: f.RankMaxClass,
		ResultReason: f.ResultReason,
	}

	if f.StartDate != nil {
		date := f.StartDate.Calendar()
		req.StartDate = &date
	}
	if f.EndDate != nil {
		date := f.EndDate.Calendar()
		req.EndDate = &date
	}

	return req
}
