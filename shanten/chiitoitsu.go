package shanten

import "github.com/Apricot-S/mahjong/tile"

// CalculateChiitoitsu returns the shanten number for the seven-pairs hand
// shape. Seven distinct pairs complete the hand; falling short of seven
// distinct kinds present in the hand also costs shanten, since chiitoitsu
// cannot be completed by upgrading a duplicate of a kind already paired.
func CalculateChiitoitsu(count tile.Count34) int {
	pairs := 0
	kinds := 0
	for _, n := range count {
		if n >= 2 {
			pairs++
		}
		if n >= 1 {
			kinds++
		}
	}

	if pairs == 7 {
		return Agari
	}

	shortOfKinds := 0
	if kinds < 7 {
		shortOfKinds = 7 - kinds
	}
	return 6 - pairs + shortOfKinds
}
