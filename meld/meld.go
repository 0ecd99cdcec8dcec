// Package meld defines the external-collaborator representation of a
// declared meld: the abstraction the shanten engine needs just enough of to
// let callers exclude called tiles from a hand before counting it. The
// engine never inspects a Meld itself.
package meld

import (
	"fmt"

	"github.com/Apricot-S/mahjong/tile"
)

// Type identifies the kind of a declared meld.
type Type string

// Recognized meld types.
const (
	Chi        Type = "chi"
	Pon        Type = "pon"
	Kan        Type = "kan"
	Shouminkan Type = "shouminkan"
	Nuki       Type = "nuki"
)

// Meld is a declared (called or concealed) set of tiles. Who/FromWho/
// CalledTile are optional bookkeeping fields for open melds; they are left
// at their zero value for concealed kans.
type Meld struct {
	Type       Type
	Tiles      []tile.ID136
	Opened     bool
	CalledTile *tile.ID136
	Who        *int
	FromWho    *int
}

// New builds a Meld from its type and physical tiles.
func New(t Type, tiles []tile.ID136, opened bool) Meld {
	return Meld{Type: t, Tiles: append([]tile.ID136(nil), tiles...), Opened: opened}
}

// Types34 converts the meld's physical tiles to their 34-types, preserving
// order.
func (m Meld) Types34() []tile.Type34 {
	types := make([]tile.Type34, len(m.Tiles))
	for i, id := range m.Tiles {
		types[i] = id.Type()
	}
	return types
}

// String renders the meld's type and tiles for debugging/logging.
func (m Meld) String() string {
	return fmt.Sprintf("Type: %s, Tiles: %s %v", m.Type, tile.IDsToMPSZ(m.Tiles, false), m.Tiles)
}
