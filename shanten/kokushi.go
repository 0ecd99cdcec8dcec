package shanten

import "github.com/Apricot-S/mahjong/tile"

// terminalAndHonorIndices are the 13 kinds required by kokushi musou: the
// terminal (rank 1 and 9) tile of each suit, plus all seven honors.
var terminalAndHonorIndices = [13]tile.Type34{
	tile.Man1, tile.Man9,
	tile.Pin1, tile.Pin9,
	tile.Sou1, tile.Sou9,
	tile.East, tile.South, tile.West, tile.North,
	tile.Haku, tile.Hatsu, tile.Chun,
}

// CalculateKokushi returns the shanten number for the thirteen-orphans hand
// shape: one of each terminal/honor kind, plus a duplicate of any one of
// them.
func CalculateKokushi(count tile.Count34) int {
	present := 0
	hasDuplicate := false
	for _, t := range terminalAndHonorIndices {
		if count[t] >= 1 {
			present++
		}
		if count[t] >= 2 {
			hasDuplicate = true
		}
	}

	shanten := 13 - present
	if hasDuplicate {
		shanten--
	}
	return shanten
}
