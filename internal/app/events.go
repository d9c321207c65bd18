package app

import "riichi/internal/domain"

// EventKind identifies emitted match events for transport dispatch.
type EventKind string

const (
	EventMatchCreated         EventKind = "match_created"
	EventRoundStarted         EventKind = "round_started"
	EventDoraRevealed         EventKind = "dora_revealed"
	EventRoundFinished        EventKind = "round_finished"
	EventDealerRotated        EventKind = "dealer_rotated"
	EventPrevalentWindChanged EventKind = "prevalent_wind_changed"
	EventMatchFinished        EventKind = "match_finished"
)

// Event is an app-level event describing a completed state transition.
type Event struct {
	Kind    EventKind `json:"kind"`
	Payload any       `json:"payload,omitempty"`
}

type MatchCreatedPayload struct {
	Players []string `json:"players"`
}

type RoundStartedPayload struct {
	Round         int         `json:"round"`
	PrevalentWind domain.Wind `json:"prevalent_wind"`
	Dealer        string      `json:"dealer"`
	IndicatorID   string      `json:"dora_indicator_id"`
}

type DoraRevealedPayload struct {
	IndicatorID string `json:"dora_indicator_id"`
	Indicators  int    `json:"indicator_count"` // total revealed this round
}

type RoundFinishedPayload struct {
	Round          int            `json:"round"`
	Winner         string         `json:"winner"`
	WinType        domain.WinType `json:"win_type"`
	Points         int            `json:"points"`
	PointsPerLoser int            `json:"points_per_loser,omitempty"`
}

type DealerRotatedPayload struct {
	Dealer string `json:"dealer"`
}

type PrevalentWindChangedPayload struct {
	PrevalentWind domain.Wind `json:"prevalent_wind"`
}

type MatchFinishedPayload struct {
	Ranking     []domain.GameRanking `json:"ranking"`
	TotalRounds int                  `json:"total_rounds"`
}
