package domain

import (
	"testing"
)

func TestParseDetections(t *testing.T) {
	detections := []Detection{
		{TileCode: "1B", Confidence: 0.98},
		{TileCode: "5D", Confidence: 0.91},
		{TileCode: "9C", Confidence: 0.88},
		{TileCode: "EW", Confidence: 0.95},
		{TileCode: "RD", Confidence: 0.93},
	}

	tiles, unmapped := ParseDetections(detections)
	if len(unmapped) != 0 {
		t.Fatalf("unmapped = %v, want none", unmapped)
	}

	want := []string{"sou-1", "pin-5", "man-9", "honor-east", "honor-red"}
	if len(tiles) != len(want) {
		t.Fatalf("tiles = %d, want %d", len(tiles), len(want))
	}
	for i, id := range want {
		if tiles[i].ID != id {
			t.Errorf("tile %d = %s, want %s", i, tiles[i].ID, id)
		}
	}
}

func TestParseDetectionsSkipsUnknownCodes(t *testing.T) {
	detections := []Detection{
		{TileCode: "3B", Confidence: 0.97},
		{TileCode: "XX", Confidence: 0.42},
		{TileCode: "7D", Confidence: 0.89},
		{TileCode: "0C", Confidence: 0.51},
	}

	tiles, unmapped := ParseDetections(detections)
	if len(tiles) != 2 {
		t.Fatalf("tiles = %d, want 2", len(tiles))
	}
	if len(unmapped) != 2 || unmapped[0] != "XX" || unmapped[1] != "0C" {
		t.Errorf("unmapped = %v, want [XX 0C]", unmapped)
	}
}

func TestParseDetectionsEmpty(t *testing.T) {
	tiles, unmapped := ParseDetections(nil)
	if len(tiles) != 0 || len(unmapped) != 0 {
		t.Errorf("empty input produced tiles=%v unmapped=%v", tiles, unmapped)
	}
}
