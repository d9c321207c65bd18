package domain

import (
	"errors"
	"sort"
	"time"
)

// Wind is a seat or prevalent wind.
type Wind string

const (
	WindEast  Wind = "east"
	WindSouth Wind = "south"
	WindWest  Wind = "west"
	WindNorth Wind = "north"
)

// windOrder is the fixed rotation assigned from the dealer seat outward.
var windOrder = []Wind{WindEast, WindSouth, WindWest, WindNorth}

// WindTile returns the honor tile for a wind.
func WindTile(w Wind) Tile {
	t, _ := TileByID("honor-" + string(w))
	return t
}

// ParseWind resolves a wind name, rejecting anything outside the four winds.
func ParseWind(s string) (Wind, bool) {
	for _, w := range windOrder {
		if Wind(s) == w {
			return w, true
		}
	}
	return "", false
}

// NextWind cycles east→south→west→north→east.
func NextWind(w Wind) Wind {
	for i, o := range windOrder {
		if o == w {
			return windOrder[(i+1)%len(windOrder)]
		}
	}
	return WindEast
}

// Phase is the lifecycle stage of a match round.
type Phase string

const (
	// PhaseWaiting means no round is active yet.
	PhaseWaiting Phase = "waiting"
	// PhasePlaying means a round is in progress.
	PhasePlaying Phase = "playing"
	// PhaseFinished means the last round has been settled.
	PhaseFinished Phase = "finished"
)

// WinType distinguishes a win by discard from a self-draw.
type WinType string

const (
	WinRon   WinType = "ron"
	WinTsumo WinType = "tsumo"
)

// State-machine errors. Operations that return one of these have not mutated
// the match.
var (
	ErrPlayerCount      = errors.New("a match needs two to four players")
	ErrDuplicateName    = errors.New("player names must be unique")
	ErrEmptyName        = errors.New("player names must not be empty")
	ErrRoundInProgress  = errors.New("a round is already in progress")
	ErrNoActiveRound    = errors.New("no round is in progress")
	ErrUnknownWinner    = errors.New("winning player not found")
	ErrUnknownDiscarder = errors.New("discarding player not found")
	ErrMissingDiscarder = errors.New("a ron win requires the discarder's name")
	ErrInvalidWinType   = errors.New("win type must be ron or tsumo")
	ErrUnknownTileID    = errors.New("tile id not in catalog")
	ErrUnknownWind      = errors.New("wind must be east, south, west, or north")
)

// Player is one seat in the match. The seat order never changes; winds rotate
// over it.
type Player struct {
	Name     string `json:"name"`
	Score    int    `json:"points"`
	Wind     Wind   `json:"wind"`
	IsDealer bool   `json:"is_dealer"`
}

// Match is the aggregate state of one running match.
type Match struct {
	Players        []*Player
	PrevalentWind  Wind
	CurrentRound   int
	DealerIndex    int
	DoraIndicators []Tile
	Phase          Phase
}

// NewMatch seats the named players with the starting score, assigns winds
// from seat zero, and leaves the match waiting for its first round.
func NewMatch(names []string, startingScore int) (*Match, error) {
	if len(names) < 2 || len(names) > len(windOrder) {
		return nil, ErrPlayerCount
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if seen[name] {
			return nil, ErrDuplicateName
		}
		seen[name] = true
	}

	m := &Match{
		PrevalentWind: WindEast,
		CurrentRound:  1,
		Phase:         PhaseWaiting,
	}
	for _, name := range names {
		m.Players = append(m.Players, &Player{Name: name, Score: startingScore})
	}
	m.assignWinds()
	return m, nil
}

// Dealer returns the player the dealer index points at.
func (m *Match) Dealer() *Player { return m.Players[m.DealerIndex] }

// PlayerByName finds a seated player, or nil.
func (m *Match) PlayerByName(name string) *Player {
	for _, p := range m.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// assignWinds reassigns winds in rotation order starting at the dealer seat.
func (m *Match) assignWinds() {
	for i := range m.Players {
		p := m.Players[(m.DealerIndex+i)%len(m.Players)]
		p.Wind = windOrder[i]
		p.IsDealer = i == 0
	}
}

// StartRound begins a round: clears the dora indicators, reveals the initial
// one, and moves to the playing phase.
func (m *Match) StartRound(indicator Tile) error {
	if m.Phase == PhasePlaying {
		return ErrRoundInProgress
	}
	m.DoraIndicators = []Tile{indicator}
	m.Phase = PhasePlaying
	return nil
}

// Kan reveals an additional dora indicator during a round.
func (m *Match) Kan(indicator Tile) error {
	if m.Phase != PhasePlaying {
		return ErrNoActiveRound
	}
	m.DoraIndicators = append(m.DoraIndicators, indicator)
	return nil
}

// RoundOutcome summarizes a settled round for event dispatch.
type RoundOutcome struct {
	Winner               string
	WinType              WinType
	Points               int
	PointsPerLoser       int // tsumo only; remainder is not distributed
	DealerRotated        bool
	PrevalentWindChanged bool
}

// FinishRound settles the round. Ron transfers the full amount from the
// discarder; tsumo takes floor(points / (n-1)) from every other player. A
// non-dealer win rotates the dealer one seat and reassigns winds. Every
// validation failure leaves the match untouched.
func (m *Match) FinishRound(winnerName string, winType WinType, loserName string, points int) (*RoundOutcome, error) {
	if m.Phase != PhasePlaying {
		return nil, ErrNoActiveRound
	}
	winner := m.PlayerByName(winnerName)
	if winner == nil {
		return nil, ErrUnknownWinner
	}

	outcome := &RoundOutcome{Winner: winnerName, WinType: winType, Points: points}

	switch winType {
	case WinRon:
		if loserName == "" {
			return nil, ErrMissingDiscarder
		}
		discarder := m.PlayerByName(loserName)
		if discarder == nil {
			return nil, ErrUnknownDiscarder
		}
		winner.Score += points
		discarder.Score -= points
	case WinTsumo:
		per := points / (len(m.Players) - 1)
		outcome.PointsPerLoser = per
		for _, p := range m.Players {
			if p == winner {
				continue
			}
			p.Score -= per
			winner.Score += per
		}
	default:
		return nil, ErrInvalidWinType
	}

	if !winner.IsDealer {
		m.DealerIndex = (m.DealerIndex + 1) % len(m.Players)
		m.assignWinds()
		outcome.DealerRotated = true
	}

	m.CurrentRound++
	if (m.CurrentRound-1)%len(m.Players) == 0 {
		m.PrevalentWind = NextWind(m.PrevalentWind)
		outcome.PrevalentWindChanged = true
	}

	m.DoraIndicators = nil
	m.Phase = PhaseFinished
	return outcome, nil
}

// UpdatePlayerNames renames players in seat order. Missing trailing names
// leave those seats unchanged.
func (m *Match) UpdatePlayerNames(names []string) error {
	if len(names) > len(m.Players) {
		return ErrPlayerCount
	}
	seen := make(map[string]bool, len(m.Players))
	renamed := append([]string(nil), names...)
	for i := len(names); i < len(m.Players); i++ {
		renamed = append(renamed, m.Players[i].Name)
	}
	for _, name := range renamed {
		if name == "" {
			return ErrEmptyName
		}
		if seen[name] {
			return ErrDuplicateName
		}
		seen[name] = true
	}
	for i, name := range names {
		m.Players[i].Name = name
	}
	return nil
}

// GameRanking is one row of a final standing.
type GameRanking struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// GameHistoryEntry is an immutable snapshot of a completed match.
type GameHistoryEntry struct {
	ID           string        `json:"id"`
	Date         time.Time     `json:"date"`
	Players      []string      `json:"players"`
	FinalRanking []GameRanking `json:"final_ranking"`
	TotalRounds  int           `json:"total_rounds"`
}

// FinalRanking orders players by score descending. Ties keep seat order.
func (m *Match) FinalRanking() []GameRanking {
	players := append([]*Player(nil), m.Players...)
	sort.SliceStable(players, func(i, j int) bool { return players[i].Score > players[j].Score })
	ranking := make([]GameRanking, len(players))
	for i, p := range players {
		ranking[i] = GameRanking{Rank: i + 1, Name: p.Name, Points: p.Score}
	}
	return ranking
}

// PlayerNames returns the names in seat order.
func (m *Match) PlayerNames() []string {
	names := make([]string, len(m.Players))
	for i, p := range m.Players {
		names[i] = p.Name
	}
	return names
}

// Clone deep-copies the match so a transition can be applied and persisted
// before the live state is replaced.
func (m *Match) Clone() *Match {
	out := &Match{
		PrevalentWind: m.PrevalentWind,
		CurrentRound:  m.CurrentRound,
		DealerIndex:   m.DealerIndex,
		Phase:         m.Phase,
	}
	for _, p := range m.Players {
		cp := *p
		out.Players = append(out.Players, &cp)
	}
	out.DoraIndicators = append([]Tile(nil), m.DoraIndicators...)
	return out
}

// Snapshot is the persisted form of a match, one JSON blob.
type Snapshot struct {
	Players        []Player `json:"players"`
	PrevalentWind  Wind     `json:"prevalent_wind"`
	CurrentRound   int      `json:"current_round"`
	DealerIndex    int      `json:"dealer_index"`
	Phase          Phase    `json:"game_phase"`
	DoraIndicators []string `json:"dora_indicators"`
}

// Snapshot captures the full match state for persistence.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		PrevalentWind: m.PrevalentWind,
		CurrentRound:  m.CurrentRound,
		DealerIndex:   m.DealerIndex,
		Phase:         m.Phase,
	}
	for _, p := range m.Players {
		s.Players = append(s.Players, *p)
	}
	for _, t := range m.DoraIndicators {
		s.DoraIndicators = append(s.DoraIndicators, t.ID)
	}
	return s
}

// MatchFromSnapshot rebuilds a match from its persisted form. Indicator ids
// no longer in the catalog are dropped, and an out-of-range dealer index is
// normalized into the seat range, rather than failing the load.
func MatchFromSnapshot(s Snapshot) (*Match, error) {
	if len(s.Players) < 2 || len(s.Players) > len(windOrder) {
		return nil, ErrPlayerCount
	}
	dealer := s.DealerIndex % len(s.Players)
	if dealer < 0 {
		dealer += len(s.Players)
	}
	m := &Match{
		PrevalentWind: s.PrevalentWind,
		CurrentRound:  s.CurrentRound,
		DealerIndex:   dealer,
		Phase:         s.Phase,
	}
	for i := range s.Players {
		p := s.Players[i]
		m.Players = append(m.Players, &p)
	}
	for _, id := range s.DoraIndicators {
		if t, ok := TileByID(id); ok {
			m.DoraIndicators = append(m.DoraIndicators, t)
		}
	}
	return m, nil
}
