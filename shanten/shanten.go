// Package shanten implements the shanten (minimum tiles to tenpai/agari)
// calculation across the three recognized hand shapes: regular (four sets
// plus one pair), chiitoitsu (seven pairs), and kokushi musou (thirteen
// orphans).
//
// The package is pure and synchronous: every exported function operates
// only on its arguments and a private, per-call workspace. Concurrent calls
// on independent hands need no coordination.
package shanten

import "github.com/Apricot-S/mahjong/tile"

// Agari is the shanten value of a complete, winning hand.
const Agari = -1

// Tenpai is the shanten value of a hand one tile away from winning.
const Tenpai = 0

// Calculate returns the minimum shanten number across the regular hand
// shape and, when enabled, the chiitoitsu and kokushi shapes. The result is
// always in [-1, 8].
//
// Calculate returns an error, with the int unusable, only on the
// precondition violations documented on CalculateRegular: a hand of more
// than 14 tiles, or a count entry outside [0,4].
func Calculate(count tile.Count34, useChiitoitsu, useKokushi bool) (result int, err error) {
	defer func() {
		// An internal invariant violation (a programming error in the
		// search, not a bad input) degrades to the maximum shanten rather
		// than taking down a caller that embeds this library in an
		// always-on service.
		if p := recover(); p != nil {
			result, err = 8, nil
		}
	}()

	best, err := CalculateRegular(count)
	if err != nil {
		return 0, err
	}

	if useChiitoitsu {
		if c := CalculateChiitoitsu(count); c < best {
			best = c
		}
	}
	if useKokushi {
		if k := CalculateKokushi(count); k < best {
			best = k
		}
	}

	return best, nil
}
