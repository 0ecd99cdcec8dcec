// Package tile implements the three tile encodings used throughout the shanten
// engine (mpsz strings, 34-type counts, and 136-unique identifiers), along with
// the classifier and dora predicates built on top of them.
package tile

import "fmt"

// Type34 identifies one of the 34 distinct tile kinds: man 1-9 (0-8), pin 1-9
// (9-17), sou 1-9 (18-26), winds E/S/W/N (27-30), dragons haku/hatsu/chun (31-33).
type Type34 int

// ID136 identifies one physical tile among the 136 in a set. The four copies
// of type t are 4t, 4t+1, 4t+2, 4t+3.
type ID136 int

// Count34 is a per-type histogram of a hand: Count34[t] is the number of
// copies of type t present. Callers own this value; the shanten package only
// ever reads it or operates on a private copy.
type Count34 [34]int

// Terminal and honor type indices, per the 34-type layout.
const (
	Man1 Type34 = 0
	Man9 Type34 = 8

	Pin1 Type34 = 9
	Pin9 Type34 = 17

	Sou1 Type34 = 18
	Sou9 Type34 = 26

	East  Type34 = 27
	South Type34 = 28
	West  Type34 = 29
	North Type34 = 30

	Haku  Type34 = 31
	Hatsu Type34 = 32
	Chun  Type34 = 33
)

// Red-five ids, in 136-format. Aka identity only exists at this encoding.
const (
	RedFiveMan ID136 = 16
	RedFivePin ID136 = 52
	RedFiveSou ID136 = 88
)

// Type returns the 34-type of a physical tile.
func (id ID136) Type() Type34 {
	return Type34(id / 4)
}

func (t Type34) String() string {
	switch {
	case t >= East && t <= North:
		return [...]string{"East", "South", "West", "North"}[t-East]
	case t >= Haku && t <= Chun:
		return [...]string{"Haku", "Hatsu", "Chun"}[t-Haku]
	case t >= 0 && t <= Sou9:
		suit := [...]string{"m", "p", "s"}[t/9]
		return fmt.Sprintf("%d%s", t%9+1, suit)
	default:
		return fmt.Sprintf("Type34(%d)", int(t))
	}
}
