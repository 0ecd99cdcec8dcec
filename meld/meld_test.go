package meld_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apricot-S/mahjong/meld"
	"github.com/Apricot-S/mahjong/tile"
)

func TestNew_CopiesTilesDefensively(t *testing.T) {
	tiles := []tile.ID136{0, 4, 8}
	m := meld.New(meld.Chi, tiles, true)

	tiles[0] = 99
	require.Equal(t, tile.ID136(0), m.Tiles[0], "New must copy its tiles slice, not alias the caller's")
}

func TestTypes34_PreservesOrder(t *testing.T) {
	m := meld.New(meld.Pon, []tile.ID136{36, 37, 38}, true) // three copies of 1p
	got := m.Types34()
	require.Equal(t, []tile.Type34{tile.Pin1, tile.Pin1, tile.Pin1}, got)
}

func TestString_ContainsTypeAndMPSZ(t *testing.T) {
	m := meld.New(meld.Chi, []tile.ID136{0, 4, 8}, true) // 123m
	s := m.String()
	require.True(t, strings.Contains(s, string(meld.Chi)))
	require.True(t, strings.Contains(s, "123m"))
}
