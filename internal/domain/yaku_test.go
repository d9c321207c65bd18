package domain

import (
	"testing"
)

// classify decomposes a standard hand and classifies it against the context.
func classify(t *testing.T, hand []Tile, ctx YakuContext) YakuResult {
	t.Helper()
	decs := Decompose(hand)
	if len(decs) == 0 {
		t.Fatal("hand does not decompose")
	}
	return ClassifyYaku(hand, &decs[0], ctx)
}

func closedRonContext(t *testing.T, winning string) YakuContext {
	t.Helper()
	return YakuContext{
		PrevalentWind:  WindTile(WindEast),
		SeatWind:       WindTile(WindSouth),
		WinningTile:    tileOf(t, winning),
		IsClosed:       true,
		RemainingTiles: 30,
	}
}

func TestPinfu(t *testing.T) {
	hand := handOf(t,
		"man-2", "man-3", "man-4",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"sou-9", "sou-9",
	)

	yaku := classify(t, hand, closedRonContext(t, "pin-4"))
	if yaku[YakuPinfu] != 1 {
		t.Errorf("middle-tile wait should be pinfu, got %v", yaku)
	}

	yaku = classify(t, hand, closedRonContext(t, "man-2"))
	if _, ok := yaku[YakuPinfu]; ok {
		t.Error("edge wait must not be pinfu")
	}

	open := closedRonContext(t, "pin-4")
	open.IsClosed = false
	yaku = classify(t, hand, open)
	if _, ok := yaku[YakuPinfu]; ok {
		t.Error("open hand must not be pinfu")
	}
}

func TestPinfuRejectsYakuhaiPair(t *testing.T) {
	hand := handOf(t,
		"man-2", "man-3", "man-4",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"honor-south", "honor-south",
	)

	// Seat wind pair: the hand still scores elsewhere, but not pinfu.
	ctx := closedRonContext(t, "pin-4")
	ctx.IsRiichi = true
	yaku := classify(t, hand, ctx)
	if _, ok := yaku[YakuPinfu]; ok {
		t.Error("seat-wind pair must not be pinfu")
	}
}

func TestRiichiVariants(t *testing.T) {
	hand := handOf(t,
		"man-2", "man-3", "man-4",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"sou-9", "sou-9",
	)

	ctx := closedRonContext(t, "man-2")
	ctx.IsRiichi = true
	yaku := classify(t, hand, ctx)
	if yaku[YakuRiichi] != 1 {
		t.Errorf("riichi missing: %v", yaku)
	}

	ctx.IsDoubleRiichi = true
	ctx.IsFirstTurnForPlayer = true
	yaku = classify(t, hand, ctx)
	if yaku[YakuDoubleRiichi] != 2 {
		t.Errorf("double riichi missing: %v", yaku)
	}
	if _, ok := yaku[YakuRiichi]; ok {
		t.Error("double riichi must replace riichi, not stack with it")
	}
}

func TestMenzenTsumo(t *testing.T) {
	hand := handOf(t,
		"man-2", "man-3", "man-4",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"sou-9", "sou-9",
	)

	ctx := closedRonContext(t, "man-2")
	ctx.IsTsumo = true
	yaku := classify(t, hand, ctx)
	if yaku[YakuMenzenTsumo] != 1 {
		t.Errorf("menzen tsumo missing: %v", yaku)
	}

	ctx.IsClosed = false
	yaku = classify(t, hand, ctx)
	if _, ok := yaku[YakuMenzenTsumo]; ok {
		t.Error("open tsumo must not score menzen tsumo")
	}
}

func TestAllSimples(t *testing.T) {
	hand := handOf(t,
		"man-2", "man-3", "man-4",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"sou-8", "sou-8",
	)

	yaku := classify(t, hand, closedRonContext(t, "pin-4"))
	if yaku[YakuAllSimples] != 1 {
		t.Errorf("all simples missing: %v", yaku)
	}
}

func TestYakuhaiPungs(t *testing.T) {
	hand := handOf(t,
		"honor-white", "honor-white", "honor-white",
		"man-2", "man-3", "man-4",
		"pin-5", "pin-6", "pin-7",
		"sou-6", "sou-7", "sou-8",
		"man-9", "man-9",
	)

	yaku := classify(t, hand, closedRonContext(t, "man-9"))
	if yaku[YakuYakuhaiDragons] != 1 {
		t.Errorf("dragon pung missing: %v", yaku)
	}

	seatHand := handOf(t,
		"honor-south", "honor-south", "honor-south",
		"man-2", "man-3", "man-4",
		"pin-5", "pin-6", "pin-7",
		"sou-6", "sou-7", "sou-8",
		"man-9", "man-9",
	)
	yaku = classify(t, seatHand, closedRonContext(t, "man-9"))
	if yaku["Yakuhai (South)"] != 1 {
		t.Errorf("seat wind pung missing: %v", yaku)
	}

	prevalentHand := handOf(t,
		"honor-east", "honor-east", "honor-east",
		"man-2", "man-3", "man-4",
		"pin-5", "pin-6", "pin-7",
		"sou-6", "sou-7", "sou-8",
		"man-9", "man-9",
	)
	yaku = classify(t, prevalentHand, closedRonContext(t, "man-9"))
	if yaku["Yakuhai (East)"] != 1 {
		t.Errorf("prevalent wind pung missing: %v", yaku)
	}
}

func TestIipeikou(t *testing.T) {
	hand := handOf(t,
		"man-2", "man-3", "man-4",
		"man-2", "man-3", "man-4",
		"pin-5", "pin-6", "pin-7",
		"sou-5", "sou-6", "sou-7",
		"pin-9", "pin-9",
	)

	yaku := classify(t, hand, closedRonContext(t, "pin-6"))
	if yaku[YakuIipeikou] != 1 {
		t.Errorf("iipeikou missing: %v", yaku)
	}

	open := closedRonContext(t, "pin-6")
	open.IsClosed = false
	yaku = classify(t, hand, open)
	if _, ok := yaku[YakuIipeikou]; ok {
		t.Error("open hand must not score iipeikou")
	}
}

func TestFlushYaku(t *testing.T) {
	honitsu := handOf(t,
		"sou-1", "sou-2", "sou-3",
		"sou-4", "sou-5", "sou-6",
		"sou-7", "sou-8", "sou-9",
		"honor-white", "honor-white", "honor-white",
		"sou-1", "sou-1",
	)
	yaku := classify(t, honitsu, closedRonContext(t, "sou-2"))
	if yaku[YakuHonitsu] != 3 {
		t.Errorf("closed honitsu = %d han, want 3: %v", yaku[YakuHonitsu], yaku)
	}

	open := closedRonContext(t, "sou-2")
	open.IsClosed = false
	yaku = classify(t, honitsu, open)
	if yaku[YakuHonitsu] != 2 {
		t.Errorf("open honitsu = %d han, want 2: %v", yaku[YakuHonitsu], yaku)
	}

	chinitsu := handOf(t,
		"man-1", "man-2", "man-3",
		"man-2", "man-3", "man-4",
		"man-5", "man-6", "man-7",
		"man-7", "man-8", "man-9",
		"man-9", "man-9",
	)
	yaku = classify(t, chinitsu, closedRonContext(t, "man-5"))
	if yaku[YakuChinitsu] != 6 {
		t.Errorf("closed chinitsu = %d han, want 6: %v", yaku[YakuChinitsu], yaku)
	}
	openYaku := classify(t, chinitsu, YakuContext{
		PrevalentWind:  WindTile(WindEast),
		SeatWind:       WindTile(WindSouth),
		WinningTile:    tileOf(t, "man-5"),
		RemainingTiles: 30,
	})
	if openYaku[YakuChinitsu] != 5 {
		t.Errorf("open chinitsu = %d han, want 5: %v", openYaku[YakuChinitsu], openYaku)
	}
}

func TestLastTileYaku(t *testing.T) {
	hand := handOf(t,
		"man-2", "man-3", "man-4",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"sou-9", "sou-9",
	)

	ctx := closedRonContext(t, "man-2")
	ctx.RemainingTiles = 0
	yaku := classify(t, hand, ctx)
	if yaku[YakuUnderTheRiver] != 1 {
		t.Errorf("last-discard ron missing under the river: %v", yaku)
	}

	ctx.IsTsumo = true
	yaku = classify(t, hand, ctx)
	if yaku[YakuUnderTheSea] != 1 {
		t.Errorf("last-draw tsumo missing under the sea: %v", yaku)
	}
}

func TestYakumanShapes(t *testing.T) {
	ctx := closedRonContext(t, "honor-east")

	allHonors := handOf(t,
		"honor-east", "honor-east", "honor-east",
		"honor-south", "honor-south", "honor-south",
		"honor-white", "honor-white", "honor-white",
		"honor-green", "honor-green", "honor-green",
		"honor-red", "honor-red",
	)
	yaku := ClassifyYaku(allHonors, nil, ctx)
	if yaku[YakuAllHonors] != 13 {
		t.Errorf("all honors = %v", yaku)
	}

	wait := handOf(t, orphanKinds...)
	yaku = ClassifyYaku(wait, nil, ctx)
	if yaku[YakuThirteenOrphansWait] != 26 {
		t.Errorf("13-sided orphans wait = %v", yaku)
	}

	complete := handOf(t, append(append([]string{}, orphanKinds...), "man-1")...)
	yaku = ClassifyYaku(complete, nil, ctx)
	if yaku[YakuThirteenOrphans] != 13 {
		t.Errorf("thirteen orphans = %v", yaku)
	}

	windHand := handOf(t,
		"honor-east", "honor-east", "honor-east",
		"honor-south", "honor-south", "honor-south",
		"honor-west", "honor-west", "honor-west",
		"honor-north", "honor-north", "honor-north",
		"man-5", "man-5",
	)
	yaku = classify(t, windHand, ctx)
	if yaku[YakuFourWindPungs] != 26 {
		t.Errorf("four wind pungs = %v", yaku)
	}

	firstTurn := ctx
	firstTurn.IsFirstTurnWin = true
	firstTurn.IsDealer = true
	yaku = ClassifyYaku(wait, nil, firstTurn)
	if yaku[YakuBlessingOfHeaven] != 13 {
		t.Errorf("dealer first-turn win = %v", yaku)
	}
	firstTurn.IsDealer = false
	yaku = ClassifyYaku(wait, nil, firstTurn)
	if yaku[YakuBlessingOfEarth] != 13 {
		t.Errorf("non-dealer first-turn win = %v", yaku)
	}
}

func TestDoraTally(t *testing.T) {
	hand := handOf(t,
		"man-2", "man-3", "man-4",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"sou-9", "sou-9",
	)

	ctx := closedRonContext(t, "man-2")
	ctx.IsRiichi = true
	ctx.DoraIndicators = handOf(t, "sou-8") // promotes sou-9
	ctx.UraDoraIndicators = handOf(t, "man-1")

	yaku := classify(t, hand, ctx)
	if yaku[YakuDora] != 2 {
		t.Errorf("dora = %d, want 2 (pair of sou-9): %v", yaku[YakuDora], yaku)
	}
	if yaku[YakuUraDora] != 1 {
		t.Errorf("ura dora = %d, want 1 (man-2): %v", yaku[YakuUraDora], yaku)
	}
}

func TestRedFiveCountsOnce(t *testing.T) {
	hand := handOf(t,
		"man-3", "man-4", "man-5-dora",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"sou-9", "sou-9",
	)

	ctx := closedRonContext(t, "man-3")
	ctx.IsRiichi = true
	// man-4 indicator promotes man-5; the red five matches it but still
	// tallies a single bonus.
	ctx.DoraIndicators = handOf(t, "man-4")

	yaku := classify(t, hand, ctx)
	if yaku[YakuDora] != 1 {
		t.Errorf("red five on its own successor = %d bonuses, want 1: %v", yaku[YakuDora], yaku)
	}
}

func TestUraDoraIgnoresRedFive(t *testing.T) {
	hand := handOf(t,
		"man-3", "man-4", "man-5-dora",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"sou-9", "sou-9",
	)

	ctx := closedRonContext(t, "man-3")
	ctx.IsRiichi = true
	// The ura indicator promotes the plain man-5. The red five is a distinct
	// tile and the ura tally carries no red-flag bonus, so it scores nothing.
	ctx.UraDoraIndicators = handOf(t, "man-4")

	yaku := classify(t, hand, ctx)
	if _, ok := yaku[YakuUraDora]; ok {
		t.Errorf("red five must not match an ura indicator's plain successor: %v", yaku)
	}

	// A plain five in hand does match the same indicator.
	plain := handOf(t,
		"man-3", "man-4", "man-5",
		"pin-3", "pin-4", "pin-5",
		"pin-6", "pin-7", "pin-8",
		"sou-3", "sou-4", "sou-5",
		"sou-9", "sou-9",
	)
	yaku = classify(t, plain, ctx)
	if yaku[YakuUraDora] != 1 {
		t.Errorf("ura dora = %d, want 1 for the plain five: %v", yaku[YakuUraDora], yaku)
	}
}

func TestDoraAloneIsNotAWin(t *testing.T) {
	hand := handOf(t,
		"man-1", "man-2", "man-3",
		"man-7", "man-8", "man-9",
		"pin-1", "pin-2", "pin-3",
		"sou-7", "sou-8", "sou-9",
		"pin-9", "pin-9",
	)

	// Open ron with a live dora: the bonus exists but no yaku does.
	ctx := YakuContext{
		PrevalentWind:  WindTile(WindEast),
		SeatWind:       WindTile(WindSouth),
		WinningTile:    tileOf(t, "pin-2"),
		DoraIndicators: handOf(t, "man-1"),
		RemainingTiles: 30,
	}
	yaku := classify(t, hand, ctx)
	if len(yaku) != 0 {
		t.Errorf("dora without a scoring yaku must clear the result, got %v", yaku)
	}
}
