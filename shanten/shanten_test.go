package shanten_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apricot-S/mahjong/shanten"
	"github.com/Apricot-S/mahjong/tile"
)

func TestCalculate_RegularOnlyMatchesCalculateRegular(t *testing.T) {
	c := countOf(0, 3)
	want, err := shanten.CalculateRegular(c)
	require.NoError(t, err)

	got, err := shanten.Calculate(c, false, false)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCalculate_ChiitoitsuCanBeatRegular(t *testing.T) {
	// Seven scattered pairs: hopeless as a regular hand (no triplets, no
	// runs, far too many pair-only groups), but complete as chiitoitsu.
	// 114477m 114477p 11s: no two kinds lie within two ranks of each other.
	c := countOf(0, 2, 3, 2, 6, 2, 9, 2, 12, 2, 15, 2, 18, 2)

	regularOnly, err := shanten.Calculate(c, false, false)
	require.NoError(t, err)

	withChiitoitsu, err := shanten.Calculate(c, true, false)
	require.NoError(t, err)

	require.Equal(t, shanten.Agari, withChiitoitsu)
	require.Less(t, withChiitoitsu, regularOnly)
}

func TestCalculate_KokushiCanBeatRegular(t *testing.T) {
	c := countOf(
		int(tile.Man1), 1, int(tile.Man9), 1,
		int(tile.Pin1), 1, int(tile.Pin9), 1,
		int(tile.Sou1), 1, int(tile.Sou9), 2,
		int(tile.East), 1, int(tile.South), 1, int(tile.West), 1, int(tile.North), 1,
		int(tile.Haku), 1, int(tile.Hatsu), 1, int(tile.Chun), 1,
	)

	regularOnly, err := shanten.Calculate(c, false, false)
	require.NoError(t, err)

	withKokushi, err := shanten.Calculate(c, false, true)
	require.NoError(t, err)

	require.Equal(t, shanten.Agari, withKokushi)
	require.Less(t, withKokushi, regularOnly)
}

func TestCalculate_TakesMinimumAcrossAllEnabledShapes(t *testing.T) {
	c := countOf(0, 2, 1, 2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 2)

	regular, err := shanten.CalculateRegular(c)
	require.NoError(t, err)
	chiitoitsu := shanten.CalculateChiitoitsu(c)
	kokushi := shanten.CalculateKokushi(c)

	min := regular
	if chiitoitsu < min {
		min = chiitoitsu
	}
	if kokushi < min {
		min = kokushi
	}

	got, err := shanten.Calculate(c, true, true)
	require.NoError(t, err)
	require.Equal(t, min, got)
}

func TestCalculate_ErrorsPropagateFromRegular(t *testing.T) {
	c := countOf(0, 5)
	_, err := shanten.Calculate(c, true, true)
	require.ErrorIs(t, err, shanten.ErrInvalidCount)

	tooMany := countOf(0, 4, 1, 4, 2, 4, 3, 3)
	_, err = shanten.Calculate(tooMany, true, true)
	require.ErrorIs(t, err, shanten.ErrTooManyTiles)
}

func TestCalculate_ResultAlwaysInRange(t *testing.T) {
	hands := []tile.Count34{
		countOf(0, 1),
		countOf(0, 2),
		countOf(0, 3),
		countOf(0, 4),
		{},
		countOf(0, 1, 1, 1, 2, 1, 3, 1, 4, 1, 5, 1, 6, 1, 7, 1, 8, 1, 9, 1, 10, 1, 11, 1, 18, 2),
	}

	for _, c := range hands {
		got, err := shanten.Calculate(c, true, true)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, shanten.Agari)
		require.LessOrEqual(t, got, 8)
	}
}
