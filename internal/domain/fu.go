package domain

// SevenPairsFu is the fixed fu for a seven-pairs hand.
const SevenPairsFu = 25

// CalculateFu computes the fu of a decomposed standard hand. Pinfu hands are
// fixed at 20 (tsumo) or 30 (ron); otherwise 20 base, +10 closed ron, per-pung
// values by tile class, +2 for a yakuhai pair, +2 for a pair wait, rounded up
// to the next multiple of ten. Chows add nothing.
func CalculateFu(dec *Decomposition, winningTile, prevalentWind, seatWind Tile, isTsumo, isPinfu, isClosed bool) int {
	if isPinfu {
		if isTsumo {
			return 20
		}
		return 30
	}

	fu := 20
	if isClosed && !isTsumo {
		fu += 10
	}

	for _, m := range dec.Melds {
		if m.Kind != MeldPung {
			continue
		}
		switch {
		case m.Tiles[0].IsTerminalOrHonor() && isClosed:
			fu += 8
		case m.Tiles[0].IsTerminalOrHonor():
			fu += 4
		case isClosed:
			fu += 4
		default:
			fu += 2
		}
	}

	if isYakuhaiPairTile(dec.Pair, prevalentWind, seatWind) {
		fu += 2
	}
	if dec.Pair == winningTile.Canonical() {
		// Tanki wait.
		fu += 2
	}

	if fu%10 != 0 {
		fu = (fu/10 + 1) * 10
	}
	return fu
}

func isYakuhaiPairTile(pair, prevalentWind, seatWind Tile) bool {
	return pair.IsDragon() || pair == prevalentWind.Canonical() || pair == seatWind.Canonical()
}
