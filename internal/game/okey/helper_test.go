package okey

import (
	"strconv"
	"strings"
	"testing"
)

// tilesOf parses short tokens such as "R1 K13 J" where J is the wildcard.
func tilesOf(tb testing.TB, s string) []Tile {
	tb.Helper()
	var res []Tile
	for _, token := range strings.Fields(s) {
		if token == "J" {
			res = append(res, Wildcard)
			continue
		}
		c, ok := ColorFromName(token[:1])
		if !ok {
			tb.Fatalf("bad color in %q", token)
		}
		n, err := strconv.Atoi(token[1:])
		if err != nil {
			tb.Fatalf("bad number in %q", token)
		}
		res = append(res, NewTile(c, n))
	}
	return res
}

func handOf(tb testing.TB, s string) Hand {
	tb.Helper()
	tiles := tilesOf(tb, s)
	if len(tiles) > HandSize {
		tb.Fatalf("too many tiles: %d", len(tiles))
	}
	return NewHand(tiles...)
}

func groupStrings(groups []Group) []string {
	res := make([]string, len(groups))
	for i, g := range groups {
		res[i] = g.String()
	}
	return res
}
