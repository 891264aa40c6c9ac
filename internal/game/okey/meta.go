package okey

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

type GroupKind byte

const (
	KindRun GroupKind = iota // 顺子：同色连续
	KindSet                  // 组：同点不同色
)

func (k GroupKind) String() string {
	if k == KindSet {
		return "set"
	}
	return "run"
}

// Group is one building block found in a hand: a run or a set of at least
// three tiles. Wildcard placeholders inside a run hold the joker value.
type Group struct {
	Kind  GroupKind
	Tiles []Tile
}

func (g Group) Len() int {
	return len(g.Tiles)
}

func (g Group) Wildcards(joker Tile) int {
	return countTile(g.Tiles, joker)
}

// Key identifies a group structurally.
func (g Group) Key() string {
	return g.Kind.String() + ":" + joinTiles(g.Tiles)
}

func (g Group) String() string {
	return "[" + joinTiles(g.Tiles) + "]"
}

// Candidate is a combination of groups flattened into one tile multiset.
type Candidate struct {
	Groups []Group
	Tiles  []Tile
}

// Key identifies the flattened multiset regardless of group order.
func (c Candidate) Key() string {
	tiles := make([]Tile, len(c.Tiles))
	copy(tiles, c.Tiles)
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })
	return joinTiles(tiles)
}

// Combination is a candidate that covers the hand exactly. Slots holds the
// hand slot bound to every tile of Groups, in flattened order; Free holds the
// wildcard slots that no group needed.
type Combination struct {
	Groups []Group
	Slots  []int
	Free   []int
}

func (c Combination) String() string {
	parts := make([]string, 0, len(c.Groups))
	for _, g := range c.Groups {
		parts = append(parts, g.String())
	}
	s := strings.Join(parts, "")
	if len(c.Free) > 0 {
		s += fmt.Sprintf(" +%d joker", len(c.Free))
	}
	return s
}

type Result struct {
	Winning      bool
	Combinations []Combination
}

func (r Result) String() string {
	n := len(r.Combinations)
	verb, plural := "are", "s"
	if n == 1 {
		verb, plural = "is", ""
	}
	s := fmt.Sprintf("There %s %d winning combination%s.", verb, n, plural)
	if n > 0 {
		s += " One of which is " + r.Combinations[0].String()
	}
	return s
}

// Stats counts tiles per color and number.
type Stats [ColorCount][MaxNumber + 1]byte

func (ms *Stats) From(tiles ...Tile) {
	for _, t := range tiles {
		if t.IsNormal() {
			ms[t.Color][t.Number]++
		}
	}
}

func (ms *Stats) Count(t Tile) int {
	if !t.IsNormal() {
		return 0
	}
	return int(ms[t.Color][t.Number])
}

func (ms *Stats) String() string {
	buf := &bytes.Buffer{}
	for c := range ms {
		for n, count := range ms[c] {
			if count == 0 {
				continue
			}
			fmt.Fprintf(buf, "%s:%d ", NewTile(Color(c), n), count)
		}
	}
	return strings.TrimSpace(buf.String())
}

func countTile(tiles []Tile, needle Tile) int {
	count := 0
	for _, t := range tiles {
		if t.Equals(needle) {
			count++
		}
	}
	return count
}

func joinTiles(tiles []Tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
