package shanten

import "errors"

// ErrTooManyTiles is returned when a hand's tile count exceeds 14.
var ErrTooManyTiles = errors.New("shanten: hand has more than 14 tiles")

// ErrInvalidCount is returned when a 34-count entry is negative or exceeds 4.
var ErrInvalidCount = errors.New("shanten: count entry out of range [0,4]")
