package models

import "time"

// GamePlay represents a single play/action recorded during a game.
// Actions include card plays, attacks, blocks, land drops, and mulligans.
type GamePlay struct {
	ID             int       `json:"id"`
	GameID         int       `json:"game_id"`
	MatchID        string    `json:"match_id"`
	TurnNumber     int       `json:"turn_number"`
	Phase          string    `json:"phase"`               // Beginning, Main1, Combat, Main2, Ending
	Step           string    `json:"step,omitempty"`      // BeginCombat, DeclareAttackers, etc.
	PlayerType     string    `json:"player_type"`         // "player" or "opponent"
	ActionType     string    `json:"action_type"`         // "play_card", "attack", "block", "land_drop", "mulligan"
	CardID         *int      `json:"card_id,omitempty"`   // Arena card ID (nullable for some actions)
	CardName       *string   `json:"card_name,omitempty"` // Card name for display (nullable)
	ZoneFrom       *string   `json:"zone_from,omitempty"`
	ZoneTo         *string   `json:"zone_to,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	SequenceNumber int       `json:"sequence_number"` // Authoritative order within the match
}

// PlayTimelineEntry groups one turn's plays by acting side for display.
type PlayTimelineEntry struct {
	Turn          int         `json:"turn"`
	ActivePlayer  string      `json:"active_player"` // "player" or "opponent"
	PlayerPlays   []*GamePlay `json:"player_plays"`
	OpponentPlays []*GamePlay `json:"opponent_plays"`
}

// GamePlaySummary provides aggregated play statistics at the match level.
type GamePlaySummary struct {
	MatchID           string `json:"match_id"`
	TotalPlays        int    `json:"total_plays"`
	PlayerPlays       int    `json:"player_plays"`
	OpponentPlays     int    `json:"opponent_plays"`
	CardPlays         int    `json:"card_plays"`
	Attacks           int    `json:"attacks"`
	Blocks            int    `json:"blocks"`
	LandDrops         int    `json:"land_drops"`
	TotalTurns        int    `json:"total_turns"`
	OpponentCardsSeen int    `json:"opponent_cards_seen"`
}

// OpponentCard tracks a card the opponent is known to have played or revealed.
// TimesSeen only ever grows as more observations accrue.
type OpponentCard struct {
	ID            int     `json:"id"`
	GameID        int     `json:"game_id"`
	MatchID       string  `json:"match_id"`
	CardID        int     `json:"card_id"`
	CardName      *string `json:"card_name,omitempty"`
	ZoneObserved  string  `json:"zone_observed"` // Where the card was seen (hand, battlefield, graveyard)
	TurnFirstSeen int     `json:"turn_first_seen"`
	TimesSeen     int     `json:"times_seen"`
}

// GameStateSnapshot captures life totals and board counts at a specific turn.
type GameStateSnapshot struct {
	ID                  int       `json:"id"`
	GameID              int       `json:"game_id"`
	MatchID             string    `json:"match_id"`
	TurnNumber          int       `json:"turn_number"`
	ActivePlayer        string    `json:"active_player"` // "player" or "opponent"
	PlayerLife          *int      `json:"player_life,omitempty"`
	OpponentLife        *int      `json:"opponent_life,omitempty"`
	PlayerCardsInHand   *int      `json:"player_cards_in_hand,omitempty"`
	OpponentCardsInHand *int      `json:"opponent_cards_in_hand,omitempty"`
	PlayerLandsInPlay   *int      `json:"player_lands_in_play,omitempty"`
	OpponentLandsInPlay *int      `json:"opponent_lands_in_play,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}

// Constants for player types.
const (
	PlayerTypePlayer   = "player"
	PlayerTypeOpponent = "opponent"
)

// Constants for action types. The set is open: the service passes through
// action types this client has never seen, so these are plain strings.
const (
	ActionTypePlayCard = "play_card"
	ActionTypeAttack   = "attack"
	ActionTypeBlock    = "block"
	ActionTypeLandDrop = "land_drop"
	ActionTypeMulligan = "mulligan"
)

// Constants for game phases.
const (
	PhaseBeginning = "Beginning"
	PhaseMain1     = "Main1"
	PhaseCombat    = "Combat"
	PhaseMain2     = "Main2"
	PhaseEnding    = "Ending"
)

// Constants for combat steps.
const (
	StepBeginCombat      = "BeginCombat"
	StepDeclareAttackers = "DeclareAttackers"
	StepDeclareBlockers  = "DeclareBlockers"
	StepCombatDamage     = "CombatDamage"
	StepEndCombat        = "EndCombat"
)

// Constants for zones. Open set, same as action types.
const (
	ZoneHand        = "hand"
	ZoneLibrary     = "library"
	ZoneBattlefield = "battlefield"
	ZoneGraveyard   = "graveyard"
	ZoneExile       = "exile"
	ZoneStack       = "stack"
	ZoneCommand     = "command"
)
