package domain

import "fmt"

// Rule names reported in YakuResult. The two bonus entries never make a hand
// scoring on their own.
const (
	YakuBlessingOfHeaven    = "Blessing of Heaven"
	YakuBlessingOfEarth     = "Blessing of Earth"
	YakuThirteenOrphansWait = "Thirteen Orphans (13-sided wait)"
	YakuThirteenOrphans     = "Thirteen Orphans"
	YakuAllHonors           = "All Honors"
	YakuFourWindPungs       = "Four Pungs of Winds"
	YakuDoubleRiichi        = "Double Riichi"
	YakuRiichi              = "Riichi"
	YakuMenzenTsumo         = "Menzen Tsumo"
	YakuPinfu               = "Pinfu"
	YakuAllSimples          = "All Simples"
	YakuYakuhaiDragons      = "Yakuhai (dragons)"
	YakuIipeikou            = "Iipeikou"
	YakuHonitsu             = "Honitsu"
	YakuChinitsu            = "Chinitsu"
	YakuUnderTheSea         = "Under the Sea"
	YakuUnderTheRiver       = "Under the River"
	YakuSevenPairs          = "Seven Pairs"
	YakuDora                = "Dora"
	YakuUraDora             = "Ura Dora"
)

// YakuResult maps rule names to han values.
type YakuResult map[string]int

// TotalHan sums every entry, bonus tiles included.
func (r YakuResult) TotalHan() int {
	total := 0
	for _, han := range r {
		total += han
	}
	return total
}

// ScoringHan sums every entry except the Dora and Ura Dora bonuses. A hand
// with zero scoring han is not a legal win.
func (r YakuResult) ScoringHan() int {
	total := 0
	for name, han := range r {
		if name == YakuDora || name == YakuUraDora {
			continue
		}
		total += han
	}
	return total
}

// YakuContext carries the scoring flags and round context for classification.
type YakuContext struct {
	PrevalentWind Tile
	SeatWind      Tile
	WinningTile   Tile

	DoraIndicators    []Tile
	UraDoraIndicators []Tile

	IsTsumo              bool
	IsRiichi             bool
	IsDoubleRiichi       bool
	IsFirstTurnWin       bool
	IsFirstTurnForPlayer bool
	IsClosed             bool
	IsDealer             bool

	RemainingTiles int
}

func yakuhaiWindName(t Tile) string {
	switch t.Honor {
	case HonorEast:
		return "East"
	case HonorSouth:
		return "South"
	case HonorWest:
		return "West"
	case HonorNorth:
		return "North"
	}
	return t.ID
}

// isYakuhaiPair reports whether the pair tile would score as a yakuhai pung:
// a dragon, the prevalent wind, or the seat wind.
func isYakuhaiPair(pair Tile, ctx YakuContext) bool {
	return pair.IsDragon() || pair == ctx.PrevalentWind.Canonical() || pair == ctx.SeatWind.Canonical()
}

// ClassifyYaku produces the rule→han mapping for a hand. Yakuman shapes
// short-circuit to a single entry. With dec == nil only the shape checks run;
// the accumulation rules need a decomposition.
func ClassifyYaku(hand []Tile, dec *Decomposition, ctx YakuContext) YakuResult {
	yaku := YakuResult{}

	if ctx.IsFirstTurnWin {
		if ctx.IsDealer {
			yaku[YakuBlessingOfHeaven] = 13
		} else {
			yaku[YakuBlessingOfEarth] = 13
		}
		return yaku
	}

	if IsThirteenOrphansWait(hand) {
		yaku[YakuThirteenOrphansWait] = 26
		return yaku
	}
	if IsThirteenOrphansComplete(hand) {
		yaku[YakuThirteenOrphans] = 13
		return yaku
	}
	if IsAllHonors(hand) {
		yaku[YakuAllHonors] = 13
		return yaku
	}
	if IsFourWindPungs(dec) {
		yaku[YakuFourWindPungs] = 26
		return yaku
	}

	if dec == nil {
		return yaku
	}

	if ctx.IsDoubleRiichi && ctx.IsClosed && ctx.IsFirstTurnForPlayer {
		yaku[YakuDoubleRiichi] = 2
	} else if ctx.IsRiichi && ctx.IsClosed {
		yaku[YakuRiichi] = 1
	}

	if ctx.IsTsumo && ctx.IsClosed {
		yaku[YakuMenzenTsumo] = 1
	}

	if hasPinfu(dec, ctx) {
		yaku[YakuPinfu] = 1
	}

	allSimples := true
	for _, t := range hand {
		if t.IsTerminalOrHonor() {
			allSimples = false
			break
		}
	}
	if allSimples {
		yaku[YakuAllSimples] = 1
	}

	seat := ctx.SeatWind.Canonical()
	prevalent := ctx.PrevalentWind.Canonical()
	seatPungs, prevalentPungs, dragonPungs := 0, 0, 0
	for _, m := range dec.Melds {
		if m.Kind != MeldPung {
			continue
		}
		switch {
		case m.Tiles[0] == seat:
			seatPungs++
		case m.Tiles[0] == prevalent:
			prevalentPungs++
		}
		if m.Tiles[0].IsDragon() {
			dragonPungs++
		}
	}
	if seatPungs > 0 {
		yaku[fmt.Sprintf("Yakuhai (%s)", yakuhaiWindName(seat))] = seatPungs
	}
	if prevalentPungs > 0 && prevalent != seat {
		yaku[fmt.Sprintf("Yakuhai (%s)", yakuhaiWindName(prevalent))] = prevalentPungs
	}
	if dragonPungs > 0 {
		yaku[YakuYakuhaiDragons] = dragonPungs
	}

	if ctx.IsClosed && hasTwinChows(dec) {
		yaku[YakuIipeikou] = 1
	}

	if name, han, ok := flushYaku(hand, ctx.IsClosed); ok {
		yaku[name] = han
	}

	if ctx.RemainingTiles == 0 {
		if ctx.IsTsumo {
			yaku[YakuUnderTheSea] = 1
		} else {
			yaku[YakuUnderTheRiver] = 1
		}
	}

	doraCount := countDora(hand, ctx.DoraIndicators, true)
	if doraCount > 0 {
		yaku[YakuDora] = doraCount
	}
	uraCount := countDora(hand, ctx.UraDoraIndicators, false)
	if uraCount > 0 {
		yaku[YakuUraDora] = uraCount
	}

	// Dora alone never constitutes a yaku.
	if yaku.ScoringHan() == 0 && yaku.TotalHan() > 0 {
		return YakuResult{}
	}
	return yaku
}

// hasPinfu: closed, four chows, non-yakuhai pair, and a two-sided wait
// (the winning tile is the middle tile of at least one chow).
func hasPinfu(dec *Decomposition, ctx YakuContext) bool {
	if !ctx.IsClosed {
		return false
	}
	for _, m := range dec.Melds {
		if m.Kind != MeldChow {
			return false
		}
	}
	if isYakuhaiPair(dec.Pair, ctx) {
		return false
	}
	winning := ctx.WinningTile.Canonical()
	for _, m := range dec.Melds {
		if winning == m.Tiles[1] {
			return true
		}
	}
	return false
}

func hasTwinChows(dec *Decomposition) bool {
	for i := 0; i < len(dec.Melds); i++ {
		if dec.Melds[i].Kind != MeldChow {
			continue
		}
		for j := i + 1; j < len(dec.Melds); j++ {
			if dec.Melds[j].Kind == MeldChow && dec.Melds[i].Tiles == dec.Melds[j].Tiles {
				return true
			}
		}
	}
	return false
}

// flushYaku detects Honitsu (one suit plus honors) and Chinitsu (one suit,
// no honors).
func flushYaku(hand []Tile, closed bool) (string, int, bool) {
	var suit Suit
	suitSeen, honorSeen := false, false
	for _, t := range hand {
		if t.IsHonor() {
			honorSeen = true
			continue
		}
		if suitSeen && t.Suit != suit {
			return "", 0, false
		}
		suit = t.Suit
		suitSeen = true
	}
	if !suitSeen {
		return "", 0, false
	}
	if honorSeen {
		if closed {
			return YakuHonitsu, 3, true
		}
		return YakuHonitsu, 2, true
	}
	if closed {
		return YakuChinitsu, 6, true
	}
	return YakuChinitsu, 5, true
}

// countDora tallies bonus tiles. Successor matching is by tile identity, so a
// red five never stands in for the plain five of its suit; with withRed set,
// a red five contributes one for the red flag instead.
func countDora(hand []Tile, indicators []Tile, withRed bool) int {
	if len(indicators) == 0 && !withRed {
		return 0
	}
	successors := make(map[Tile]bool, len(indicators))
	for _, ind := range indicators {
		successors[DoraSuccessor(ind)] = true
	}
	count := 0
	for _, t := range hand {
		switch {
		case withRed && t.RedFive:
			count++
		case successors[t]:
			count++
		}
	}
	return count
}
