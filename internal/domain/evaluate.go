package domain

import "errors"

// Validation errors: the requested flag combination contradicts the rules.
var (
	ErrDoubleRiichiWithoutRiichi  = errors.New("double riichi must be combined with riichi")
	ErrDoubleRiichiNotFirstTurn   = errors.New("double riichi must be declared on the player's first draw")
	ErrRiichiOpenHand             = errors.New("riichi can only be declared on a closed hand")
	ErrFirstTurnWinWithRiichi     = errors.New("a first-turn win cannot be combined with riichi")
	ErrOpenTsumoWithoutNonSimples = errors.New("an open tsumo hand needs a scoring element beyond simple tiles")
	ErrHandSize                   = errors.New("hand must hold 14 tiles (13 for a thirteen-orphans wait)")
)

// Structural errors: the tiles do not form a legal winning shape.
var (
	ErrNoDecomposition = errors.New("hand has no four-meld one-pair shape")
	ErrNoYaku          = errors.New("hand has no scoring yaku")
)

// EvaluateInput is a candidate winning hand plus its context flags.
type EvaluateInput struct {
	Hand              []Tile
	DoraIndicators    []Tile
	UraDoraIndicators []Tile
	PrevalentWind     Wind
	SeatWind          Wind
	WinningTile       Tile

	IsTsumo              bool
	IsRiichi             bool
	IsDoubleRiichi       bool
	IsClosed             bool
	IsDealer             bool
	IsFirstTurnWin       bool
	IsFirstTurnForPlayer bool

	RemainingTiles int
}

// ScoreResult is the outcome of a successful hand evaluation.
type ScoreResult struct {
	HanByName   YakuResult `json:"han_by_name"`
	TotalFu     int        `json:"total_fu"`
	TotalHan    int        `json:"total_han"`
	TotalPoints int        `json:"total_points"`
}

// EvaluateHand scores a candidate winning hand: flag validation, yakuman
// shape detection, the seven-pairs path, then standard decomposition with
// yaku classification and fu. The first valid decomposition found is the one
// scored; alternatives are not compared.
func EvaluateHand(in EvaluateInput) (*ScoreResult, error) {
	if in.IsDoubleRiichi && !in.IsRiichi {
		return nil, ErrDoubleRiichiWithoutRiichi
	}
	if in.IsDoubleRiichi && !in.IsFirstTurnForPlayer {
		return nil, ErrDoubleRiichiNotFirstTurn
	}
	if in.IsRiichi && !in.IsClosed {
		return nil, ErrRiichiOpenHand
	}
	if in.IsFirstTurnWin && (in.IsRiichi || in.IsDoubleRiichi) {
		return nil, ErrFirstTurnWinWithRiichi
	}
	if len(in.Hand) != 14 && len(in.Hand) != 13 {
		return nil, ErrHandSize
	}
	if in.IsTsumo && !in.IsClosed && !hasTerminalOrHonor(in.Hand) {
		return nil, ErrOpenTsumoWithoutNonSimples
	}

	ctx := YakuContext{
		PrevalentWind:        WindTile(in.PrevalentWind),
		SeatWind:             WindTile(in.SeatWind),
		WinningTile:          in.WinningTile,
		DoraIndicators:       in.DoraIndicators,
		UraDoraIndicators:    in.UraDoraIndicators,
		IsTsumo:              in.IsTsumo,
		IsRiichi:             in.IsRiichi,
		IsDoubleRiichi:       in.IsDoubleRiichi,
		IsFirstTurnWin:       in.IsFirstTurnWin,
		IsFirstTurnForPlayer: in.IsFirstTurnForPlayer,
		IsClosed:             in.IsClosed,
		IsDealer:             in.IsDealer,
		RemainingTiles:       in.RemainingTiles,
	}

	// Yakuman shapes are recognized without a decomposition and score with
	// zero fu.
	if shapeYaku := ClassifyYaku(in.Hand, nil, ctx); shapeYaku.TotalHan() >= 13 {
		han := shapeYaku.TotalHan()
		return &ScoreResult{
			HanByName:   shapeYaku,
			TotalHan:    han,
			TotalPoints: TotalPoints(0, han, in.IsDealer),
		}, nil
	}

	if IsSevenPairs(in.Hand) {
		yaku := YakuResult{YakuSevenPairs: 2}
		han := yaku.TotalHan()
		return &ScoreResult{
			HanByName:   yaku,
			TotalFu:     SevenPairsFu,
			TotalHan:    han,
			TotalPoints: TotalPoints(SevenPairsFu, han, in.IsDealer),
		}, nil
	}

	decs := Decompose(in.Hand)
	if len(decs) == 0 {
		return nil, ErrNoDecomposition
	}
	dec := &decs[0]

	yaku := ClassifyYaku(in.Hand, dec, ctx)
	if yaku.ScoringHan() == 0 {
		return nil, ErrNoYaku
	}

	_, isPinfu := yaku[YakuPinfu]
	fu := CalculateFu(dec, in.WinningTile, ctx.PrevalentWind, ctx.SeatWind, in.IsTsumo, isPinfu, in.IsClosed)
	han := yaku.TotalHan()

	return &ScoreResult{
		HanByName:   yaku,
		TotalFu:     fu,
		TotalHan:    han,
		TotalPoints: TotalPoints(fu, han, in.IsDealer),
	}, nil
}

func hasTerminalOrHonor(hand []Tile) bool {
	for _, t := range hand {
		if t.IsTerminalOrHonor() {
			return true
		}
	}
	return false
}
