package domain

// Detection is one tile recognized by the external image detector.
type Detection struct {
	TileCode   string  `json:"tile_code"`
	Confidence float64 `json:"confidence"`
}

// tileCodeToID maps detector class codes onto catalog ids. B = bamboo (sou),
// D = dots (pin), C = characters (man).
var tileCodeToID = map[string]string{
	"1B": "sou-1", "2B": "sou-2", "3B": "sou-3", "4B": "sou-4", "5B": "sou-5",
	"6B": "sou-6", "7B": "sou-7", "8B": "sou-8", "9B": "sou-9",
	"1D": "pin-1", "2D": "pin-2", "3D": "pin-3", "4D": "pin-4", "5D": "pin-5",
	"6D": "pin-6", "7D": "pin-7", "8D": "pin-8", "9D": "pin-9",
	"1C": "man-1", "2C": "man-2", "3C": "man-3", "4C": "man-4", "5C": "man-5",
	"6C": "man-6", "7C": "man-7", "8C": "man-8", "9C": "man-9",
	"EW": "honor-east", "SW": "honor-south", "WW": "honor-west", "NW": "honor-north",
	"WD": "honor-white", "GD": "honor-green", "RD": "honor-red",
}

// ParseDetections maps detector output onto catalog tiles, preserving order.
// Codes with no mapping are returned separately so the caller can log them;
// they never fail the parse.
func ParseDetections(detections []Detection) ([]Tile, []string) {
	var tiles []Tile
	var unmapped []string
	for _, d := range detections {
		id, ok := tileCodeToID[d.TileCode]
		if !ok {
			unmapped = append(unmapped, d.TileCode)
			continue
		}
		t, ok := TileByID(id)
		if !ok {
			unmapped = append(unmapped, d.TileCode)
			continue
		}
		tiles = append(tiles, t)
	}
	return tiles, unmapped
}
