package domain

import (
	"testing"
)

// handOf resolves catalog ids into tiles, failing the test on a bad id.
func handOf(t *testing.T, ids ...string) []Tile {
	t.Helper()
	tiles := make([]Tile, 0, len(ids))
	for _, id := range ids {
		tile, ok := TileByID(id)
		if !ok {
			t.Fatalf("unknown tile id %q", id)
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

func tileOf(t *testing.T, id string) Tile {
	t.Helper()
	tile, ok := TileByID(id)
	if !ok {
		t.Fatalf("unknown tile id %q", id)
	}
	return tile
}

func TestCatalog(t *testing.T) {
	all := Tiles()
	if len(all) != 37 {
		t.Fatalf("catalog size = %d, want 37", len(all))
	}

	seen := make(map[string]bool, len(all))
	for _, tile := range all {
		if seen[tile.ID] {
			t.Errorf("duplicate catalog id %q", tile.ID)
		}
		seen[tile.ID] = true
	}

	for _, id := range []string{"man-1", "pin-9", "sou-5", "man-5-dora", "pin-5-dora", "sou-5-dora", "honor-east", "honor-red"} {
		if _, ok := TileByID(id); !ok {
			t.Errorf("catalog missing %q", id)
		}
	}
	if _, ok := TileByID("man-10"); ok {
		t.Error("catalog resolved nonexistent man-10")
	}
}

func TestTilePredicates(t *testing.T) {
	tests := []struct {
		id       string
		honor    bool
		terminal bool
		simple   bool
		wind     bool
		dragon   bool
	}{
		{id: "man-1", terminal: true},
		{id: "man-9", terminal: true},
		{id: "pin-5", simple: true},
		{id: "sou-5-dora", simple: true},
		{id: "honor-east", honor: true, wind: true},
		{id: "honor-north", honor: true, wind: true},
		{id: "honor-white", honor: true, dragon: true},
		{id: "honor-red", honor: true, dragon: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tile := tileOf(t, tt.id)
			if tile.IsHonor() != tt.honor {
				t.Errorf("IsHonor = %v, want %v", tile.IsHonor(), tt.honor)
			}
			if tile.IsTerminal() != tt.terminal {
				t.Errorf("IsTerminal = %v, want %v", tile.IsTerminal(), tt.terminal)
			}
			if tile.IsSimple() != tt.simple {
				t.Errorf("IsSimple = %v, want %v", tile.IsSimple(), tt.simple)
			}
			if tile.IsWind() != tt.wind {
				t.Errorf("IsWind = %v, want %v", tile.IsWind(), tt.wind)
			}
			if tile.IsDragon() != tt.dragon {
				t.Errorf("IsDragon = %v, want %v", tile.IsDragon(), tt.dragon)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	red := tileOf(t, "sou-5-dora")
	plain := tileOf(t, "sou-5")
	if red.Canonical() != plain {
		t.Errorf("red five canonicalizes to %q, want %q", red.Canonical().ID, plain.ID)
	}
	if plain.Canonical() != plain {
		t.Error("plain tile must canonicalize to itself")
	}
}

func TestSortTiles(t *testing.T) {
	hand := handOf(t, "honor-red", "sou-1", "man-9", "honor-east", "pin-3", "man-1")
	SortTiles(hand)

	want := []string{"man-1", "man-9", "pin-3", "sou-1", "honor-east", "honor-red"}
	for i, id := range want {
		if hand[i].ID != id {
			t.Fatalf("position %d = %q, want %q", i, hand[i].ID, id)
		}
	}
}

func TestDoraSuccessor(t *testing.T) {
	tests := []struct {
		name      string
		indicator string
		want      string
	}{
		{name: "numeral step", indicator: "man-3", want: "man-4"},
		{name: "nine wraps to one", indicator: "pin-9", want: "pin-1"},
		{name: "red five promotes six", indicator: "sou-5-dora", want: "sou-6"},
		{name: "east to south", indicator: "honor-east", want: "honor-south"},
		{name: "north wraps to east", indicator: "honor-north", want: "honor-east"},
		{name: "white to green", indicator: "honor-white", want: "honor-green"},
		{name: "red wraps to white", indicator: "honor-red", want: "honor-white"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DoraSuccessor(tileOf(t, tt.indicator))
			if got.ID != tt.want {
				t.Errorf("successor of %s = %s, want %s", tt.indicator, got.ID, tt.want)
			}
		})
	}
}
