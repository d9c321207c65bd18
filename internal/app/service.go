package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"riichi/internal/config"
	"riichi/internal/domain"
	"riichi/internal/ports"
)

// Logical persistence keys: one collection, three keys, whole-snapshot JSON
// values.
const (
	KeyMatchState   = "match_state"
	KeyFinalRanking = "final_ranking"
	KeyGameHistory  = "game_history"
)

// ErrNoMatch is returned by match operations before NewMatch or Load.
var ErrNoMatch = errors.New("no match in progress")

// Service contains the scoring and match-progression use-cases. Transitions
// are applied to a clone of the live match and persisted before the clone is
// committed, so a failed save leaves both memory and storage unchanged.
type Service struct {
	store ports.Store
	cfg   *config.GameConfig
	match *domain.Match

	now   func() time.Time
	newID func() string
}

// NewService constructs a Service over the given store and config.
func NewService(store ports.Store, cfg *config.GameConfig) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Service{
		store: store,
		cfg:   cfg,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Match returns the live match, or nil when none is loaded.
func (s *Service) Match() *domain.Match { return s.match }

// EvaluateHand scores a candidate winning hand. Stateless; exposed here so
// the transport layer has a single application boundary.
func (s *Service) EvaluateHand(in domain.EvaluateInput) (*domain.ScoreResult, error) {
	return domain.EvaluateHand(in)
}

// NewMatch seats the named players and persists the fresh waiting match.
func (s *Service) NewMatch(ctx context.Context, names []string) ([]Event, error) {
	m, err := domain.NewMatch(names, s.cfg.StartingScore)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, m); err != nil {
		return nil, err
	}
	s.match = m
	return []Event{{Kind: EventMatchCreated, Payload: MatchCreatedPayload{Players: m.PlayerNames()}}}, nil
}

// StartRound reveals the initial dora indicator and opens the round.
func (s *Service) StartRound(ctx context.Context, doraID string) ([]Event, error) {
	if s.match == nil {
		return nil, ErrNoMatch
	}
	indicator, ok := domain.TileByID(doraID)
	if !ok {
		return nil, fmt.Errorf("start round: %w: %q", domain.ErrUnknownTileID, doraID)
	}

	next := s.match.Clone()
	if err := next.StartRound(indicator); err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	s.match = next

	return []Event{{Kind: EventRoundStarted, Payload: RoundStartedPayload{
		Round:         next.CurrentRound,
		PrevalentWind: next.PrevalentWind,
		Dealer:        next.Dealer().Name,
		IndicatorID:   indicator.ID,
	}}}, nil
}

// Kan reveals an additional dora indicator mid-round.
func (s *Service) Kan(ctx context.Context, doraID string) ([]Event, error) {
	if s.match == nil {
		return nil, ErrNoMatch
	}
	indicator, ok := domain.TileByID(doraID)
	if !ok {
		return nil, fmt.Errorf("kan: %w: %q", domain.ErrUnknownTileID, doraID)
	}

	next := s.match.Clone()
	if err := next.Kan(indicator); err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	s.match = next

	return []Event{{Kind: EventDoraRevealed, Payload: DoraRevealedPayload{
		IndicatorID: indicator.ID,
		Indicators:  len(next.DoraIndicators),
	}}}, nil
}

// FinishRound settles the round with an already-computed point amount and
// persists the rotated match.
func (s *Service) FinishRound(ctx context.Context, winner string, winType domain.WinType, loser string, points int) ([]Event, error) {
	if s.match == nil {
		return nil, ErrNoMatch
	}

	next := s.match.Clone()
	outcome, err := next.FinishRound(winner, winType, loser, points)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	s.match = next

	events := []Event{{Kind: EventRoundFinished, Payload: RoundFinishedPayload{
		Round:          next.CurrentRound - 1,
		Winner:         outcome.Winner,
		WinType:        outcome.WinType,
		Points:         outcome.Points,
		PointsPerLoser: outcome.PointsPerLoser,
	}}}
	if outcome.DealerRotated {
		events = append(events, Event{Kind: EventDealerRotated, Payload: DealerRotatedPayload{Dealer: next.Dealer().Name}})
	}
	if outcome.PrevalentWindChanged {
		events = append(events, Event{Kind: EventPrevalentWindChanged, Payload: PrevalentWindChangedPayload{PrevalentWind: next.PrevalentWind}})
	}
	return events, nil
}

// FinishMatch records the final ranking, appends a bounded history entry,
// clears the persisted snapshot, and reseats the same players in a fresh
// waiting match. The fresh match is not persisted.
func (s *Service) FinishMatch(ctx context.Context) ([]domain.GameRanking, []Event, error) {
	if s.match == nil {
		return nil, nil, ErrNoMatch
	}

	ranking := s.match.FinalRanking()
	totalRounds := s.match.CurrentRound - 1
	entry := domain.GameHistoryEntry{
		ID:           s.newID(),
		Date:         s.now().UTC(),
		Players:      s.match.PlayerNames(),
		FinalRanking: ranking,
		TotalRounds:  totalRounds,
	}

	history, err := s.History(ctx)
	if err != nil {
		return nil, nil, err
	}
	history = append([]domain.GameHistoryEntry{entry}, history...)
	if len(history) > s.cfg.HistoryLimit {
		history = history[:s.cfg.HistoryLimit]
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal history: %w", err)
	}
	rankingJSON, err := json.Marshal(ranking)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal ranking: %w", err)
	}
	if err := s.store.Set(ctx, KeyGameHistory, string(historyJSON)); err != nil {
		return nil, nil, err
	}
	if err := s.store.Set(ctx, KeyFinalRanking, string(rankingJSON)); err != nil {
		return nil, nil, err
	}
	if err := s.store.Remove(ctx, KeyMatchState); err != nil {
		return nil, nil, err
	}

	fresh, err := domain.NewMatch(s.match.PlayerNames(), s.cfg.StartingScore)
	if err != nil {
		return nil, nil, err
	}
	s.match = fresh

	events := []Event{{Kind: EventMatchFinished, Payload: MatchFinishedPayload{
		Ranking:     ranking,
		TotalRounds: totalRounds,
	}}}
	return ranking, events, nil
}

// Reset clears the persisted snapshot and drops the live match.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Remove(ctx, KeyMatchState); err != nil {
		return err
	}
	s.match = nil
	return nil
}

// Load resumes a previously saved match. Returns false when no snapshot
// exists.
func (s *Service) Load(ctx context.Context) (bool, error) {
	value, ok, err := s.store.Get(ctx, KeyMatchState)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return false, fmt.Errorf("decode match snapshot: %w", err)
	}
	m, err := domain.MatchFromSnapshot(snap)
	if err != nil {
		return false, err
	}
	s.match = m
	return true, nil
}

// History returns the persisted match history, most recent first.
func (s *Service) History(ctx context.Context) ([]domain.GameHistoryEntry, error) {
	value, ok, err := s.store.Get(ctx, KeyGameHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var history []domain.GameHistoryEntry
	if err := json.Unmarshal([]byte(value), &history); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return history, nil
}

// LastFinalRanking returns the most recently persisted final ranking.
func (s *Service) LastFinalRanking(ctx context.Context) ([]domain.GameRanking, bool, error) {
	value, ok, err := s.store.Get(ctx, KeyFinalRanking)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var ranking []domain.GameRanking
	if err := json.Unmarshal([]byte(value), &ranking); err != nil {
		return nil, false, fmt.Errorf("decode ranking: %w", err)
	}
	return ranking, true, nil
}

// UpdatePlayerNames renames seated players and persists the change.
func (s *Service) UpdatePlayerNames(ctx context.Context, names []string) error {
	if s.match == nil {
		return ErrNoMatch
	}
	next := s.match.Clone()
	if err := next.UpdatePlayerNames(names); err != nil {
		return err
	}
	if err := s.save(ctx, next); err != nil {
		return err
	}
	s.match = next
	return nil
}

func (s *Service) save(ctx context.Context, m *domain.Match) error {
	snapshot, err := json.Marshal(m.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal match snapshot: %w", err)
	}
	return s.store.Set(ctx, KeyMatchState, string(snapshot))
}
