package domain

// MeldKind distinguishes the two structural meld shapes.
type MeldKind uint8

const (
	MeldPung MeldKind = iota
	MeldChow
)

// Meld is a pung (three identical tiles) or chow (three consecutive numerals
// of one suit). Tiles are canonical and sorted.
type Meld struct {
	Kind  MeldKind
	Tiles [3]Tile
}

// Decomposition is one partition of a 14-tile hand into four melds and a pair.
type Decomposition struct {
	Melds []Meld
	Pair  Tile
}

// kindCounts builds a canonical tile→count multiset from a hand.
func kindCounts(hand []Tile) map[Tile]int {
	counts := make(map[Tile]int, len(hand))
	for _, t := range hand {
		counts[t.Canonical()]++
	}
	return counts
}

func sortedKinds(counts map[Tile]int) []Tile {
	kinds := make([]Tile, 0, len(counts))
	for t, c := range counts {
		if c > 0 {
			kinds = append(kinds, t)
		}
	}
	SortTiles(kinds)
	return kinds
}

func copyCounts(counts map[Tile]int) map[Tile]int {
	out := make(map[Tile]int, len(counts))
	for t, c := range counts {
		out[t] = c
	}
	return out
}

// findMelds enumerates every way to consume the multiset, taking the lowest
// remaining tile at each step as a pung, a chow, or a skipped singleton.
// Each branch recurses on its own copy of the counts, so no state is shared
// between search branches. Skipped singletons produce short meld lists that
// the caller filters out.
func findMelds(counts map[Tile]int) [][]Meld {
	kinds := sortedKinds(counts)
	if len(kinds) == 0 {
		return [][]Meld{nil}
	}

	first := kinds[0]
	var results [][]Meld

	if counts[first] >= 3 {
		sub := copyCounts(counts)
		sub[first] -= 3
		for _, rest := range findMelds(sub) {
			meld := Meld{Kind: MeldPung, Tiles: [3]Tile{first, first, first}}
			results = append(results, append([]Meld{meld}, rest...))
		}
	}

	if first.Suit != SuitHonor && first.Rank <= 7 {
		second, _ := TileByID(first.Suit.String() + "-" + string(rune('0'+first.Rank+1)))
		third, _ := TileByID(first.Suit.String() + "-" + string(rune('0'+first.Rank+2)))
		if counts[second] >= 1 && counts[third] >= 1 {
			sub := copyCounts(counts)
			sub[first]--
			sub[second]--
			sub[third]--
			for _, rest := range findMelds(sub) {
				meld := Meld{Kind: MeldChow, Tiles: [3]Tile{first, second, third}}
				results = append(results, append([]Meld{meld}, rest...))
			}
		}
	}

	// Skip the tile without assigning it to a meld. This lets the search
	// move past tiles that cannot head a meld; a partition that needed the
	// skip ends with fewer than four melds and is rejected by Decompose.
	sub := copyCounts(counts)
	sub[first]--
	results = append(results, findMelds(sub)...)

	return results
}

// Decompose enumerates every valid four-meld one-pair partition of a 14-tile
// hand, in deterministic search order (pair kinds ascending; pung before chow
// before skip). A hand with no valid partition yields an empty slice.
func Decompose(hand []Tile) []Decomposition {
	counts := kindCounts(hand)

	var out []Decomposition
	for _, pair := range sortedKinds(counts) {
		if counts[pair] < 2 {
			continue
		}
		rem := copyCounts(counts)
		rem[pair] -= 2
		for _, melds := range findMelds(rem) {
			if len(melds) != 4 {
				continue
			}
			out = append(out, Decomposition{Melds: melds, Pair: pair})
		}
	}
	return out
}

// IsSevenPairs reports whether the hand is exactly seven distinct kinds, each
// appearing twice. A red five pairs with the plain five of its suit.
func IsSevenPairs(hand []Tile) bool {
	counts := kindCounts(hand)
	if len(counts) != 7 {
		return false
	}
	for _, c := range counts {
		if c != 2 {
			return false
		}
	}
	return true
}

// IsThirteenOrphansWait reports the 13-sided thirteen-orphans wait: exactly
// one of each of the thirteen terminal/honor kinds.
func IsThirteenOrphansWait(hand []Tile) bool {
	if len(hand) != 13 {
		return false
	}
	counts := kindCounts(hand)
	if len(counts) != 13 {
		return false
	}
	for t, c := range counts {
		if !t.IsTerminalOrHonor() || c != 1 {
			return false
		}
	}
	return true
}

// IsThirteenOrphansComplete reports a completed thirteen orphans: all
// thirteen terminal/honor kinds present, exactly one of them duplicated.
func IsThirteenOrphansComplete(hand []Tile) bool {
	if len(hand) != 14 {
		return false
	}
	counts := kindCounts(hand)
	if len(counts) != 13 {
		return false
	}
	pairs := 0
	for t, c := range counts {
		if !t.IsTerminalOrHonor() {
			return false
		}
		switch c {
		case 1:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 1
}

// IsAllHonors reports whether every tile in the hand is an honor.
func IsAllHonors(hand []Tile) bool {
	for _, t := range hand {
		if !t.IsHonor() {
			return false
		}
	}
	return len(hand) > 0
}

// IsFourWindPungs reports whether all four melds of a decomposition are pungs
// of wind tiles.
func IsFourWindPungs(dec *Decomposition) bool {
	if dec == nil || len(dec.Melds) != 4 {
		return false
	}
	for _, m := range dec.Melds {
		if m.Kind != MeldPung || !m.Tiles[0].IsWind() {
			return false
		}
	}
	return true
}
