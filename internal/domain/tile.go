package domain

import "sort"

// Suit identifies the tile family.
type Suit uint8

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitHonor
)

// String returns the suit segment used in tile ids ("man", "pin", "sou", "honor").
func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "man"
	case SuitPin:
		return "pin"
	case SuitSou:
		return "sou"
	default:
		return "honor"
	}
}

// HonorKind identifies an honor tile. Winds come before dragons, matching
// the catalog ordering.
type HonorKind uint8

const (
	HonorNone HonorKind = iota
	HonorEast
	HonorSouth
	HonorWest
	HonorNorth
	HonorWhite
	HonorGreen
	HonorRed
)

// String returns the honor segment used in tile ids ("east", ..., "red").
func (h HonorKind) String() string {
	switch h {
	case HonorEast:
		return "east"
	case HonorSouth:
		return "south"
	case HonorWest:
		return "west"
	case HonorNorth:
		return "north"
	case HonorWhite:
		return "white"
	case HonorGreen:
		return "green"
	case HonorRed:
		return "red"
	default:
		return ""
	}
}

// Tile is an immutable tile identity. Tiles are interned by ID: two tiles
// with the same ID are the same entity, and equality is by ID.
type Tile struct {
	ID      string
	Suit    Suit
	Rank    int       // 1..9 for numeral suits, 0 for honors
	Honor   HonorKind // HonorNone for numeral suits
	RedFive bool
}

// IsHonor reports whether the tile is a wind or dragon.
func (t Tile) IsHonor() bool { return t.Suit == SuitHonor }

// IsWind reports whether the tile is one of the four winds.
func (t Tile) IsWind() bool { return t.Honor >= HonorEast && t.Honor <= HonorNorth }

// IsDragon reports whether the tile is one of the three dragons.
func (t Tile) IsDragon() bool { return t.Honor >= HonorWhite && t.Honor <= HonorRed }

// IsTerminal reports whether the tile is a 1 or 9 of a numeral suit.
func (t Tile) IsTerminal() bool {
	return t.Suit != SuitHonor && (t.Rank == 1 || t.Rank == 9)
}

// IsSimple reports whether the tile is neither a terminal nor an honor.
func (t Tile) IsSimple() bool { return !t.IsHonor() && !t.IsTerminal() }

// IsTerminalOrHonor reports whether the tile is a terminal or an honor.
func (t Tile) IsTerminalOrHonor() bool { return t.IsHonor() || t.IsTerminal() }

// Canonical maps a red five onto the plain five of its suit. All structural
// logic (decomposition, pairs, waits) works on canonical tiles; only the
// bonus tally cares about the red flag.
func (t Tile) Canonical() Tile {
	if !t.RedFive {
		return t
	}
	c, _ := TileByID(t.Suit.String() + "-5")
	return c
}

// Less orders tiles (suit, rank) with honors last, honors in catalog order.
func (t Tile) Less(o Tile) bool {
	if t.Suit != o.Suit {
		return t.Suit < o.Suit
	}
	if t.Suit == SuitHonor {
		return t.Honor < o.Honor
	}
	return t.Rank < o.Rank
}

var (
	catalog   []Tile
	catalogID map[string]Tile
)

func init() {
	for _, s := range []Suit{SuitMan, SuitPin, SuitSou} {
		for r := 1; r <= 9; r++ {
			catalog = append(catalog, Tile{
				ID:   s.String() + "-" + string(rune('0'+r)),
				Suit: s,
				Rank: r,
			})
		}
		catalog = append(catalog, Tile{
			ID:      s.String() + "-5-dora",
			Suit:    s,
			Rank:    5,
			RedFive: true,
		})
	}
	for h := HonorEast; h <= HonorRed; h++ {
		catalog = append(catalog, Tile{
			ID:    "honor-" + h.String(),
			Suit:  SuitHonor,
			Honor: h,
		})
	}
	catalogID = make(map[string]Tile, len(catalog))
	for _, t := range catalog {
		catalogID[t.ID] = t
	}
}

// TileByID resolves a catalog tile by its id.
func TileByID(id string) (Tile, bool) {
	t, ok := catalogID[id]
	return t, ok
}

// Tiles returns the full catalog in (suit, rank) order, red fives included.
func Tiles() []Tile {
	out := make([]Tile, len(catalog))
	copy(out, catalog)
	return out
}

// SortTiles orders a hand in place by (suit, rank) with honors last.
func SortTiles(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })
}

// DoraSuccessor maps an indicator tile to the tile it promotes. Numeral ranks
// wrap 9→1, winds cycle east→south→west→north, dragons cycle
// white→green→red. A red-five indicator promotes the 6 of its suit.
func DoraSuccessor(indicator Tile) Tile {
	if indicator.Suit != SuitHonor {
		rank := indicator.Rank + 1
		if rank > 9 {
			rank = 1
		}
		t, _ := TileByID(indicator.Suit.String() + "-" + string(rune('0'+rank)))
		return t
	}
	var next HonorKind
	switch {
	case indicator.Honor == HonorNorth:
		next = HonorEast
	case indicator.Honor == HonorRed:
		next = HonorWhite
	default:
		next = indicator.Honor + 1
	}
	t, _ := TileByID("honor-" + next.String())
	return t
}
