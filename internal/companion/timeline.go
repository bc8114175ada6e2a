package companion

import (
	"github.com/ramonehamilton/arena-insights/internal/models"
)

// BuildTimeline reorganizes a flat, sequence-ordered play list into per-turn
// timeline entries, one per distinct turn number in order of first
// appearance. Within a turn, plays are partitioned by player type with their
// relative order preserved, so the union of both sides across all entries is
// exactly the input list. The active player for a turn is the side that made
// the turn's first recorded action; the source data guarantees the acting
// player acts first.
func BuildTimeline(plays []*models.GamePlay) []*models.PlayTimelineEntry {
	entries := make([]*models.PlayTimelineEntry, 0)
	byTurn := make(map[int]*models.PlayTimelineEntry)

	for _, play := range plays {
		entry, ok := byTurn[play.TurnNumber]
		if !ok {
			entry = &models.PlayTimelineEntry{
				Turn:          play.TurnNumber,
				ActivePlayer:  play.PlayerType,
				PlayerPlays:   make([]*models.GamePlay, 0),
				OpponentPlays: make([]*models.GamePlay, 0),
			}
			byTurn[play.TurnNumber] = entry
			entries = append(entries, entry)
		}

		if play.PlayerType == models.PlayerTypePlayer {
			entry.PlayerPlays = append(entry.PlayerPlays, play)
		} else {
			entry.OpponentPlays = append(entry.OpponentPlays, play)
		}
	}

	return entries
}
