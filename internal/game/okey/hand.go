package okey

import (
	"sort"
	"strings"
)

const (
	HandSize    = 15 // 14张手牌 + 1个待出牌位
	HeldSize    = 14
	PendingSlot = HandSize - 1
)

// Hand is the fixed set of tile slots owned by one player. Unused slots hold
// Empty. The engine only ever reads a Hand by value.
type Hand [HandSize]Tile

type Slot struct {
	Index int
	Tile  Tile
}

// NewHand fills the hand in order and marks the remaining slots as Empty.
// Tiles beyond HandSize are ignored.
func NewHand(tiles ...Tile) Hand {
	var h Hand
	for i := range h {
		if i < len(tiles) {
			h[i] = tiles[i]
		} else {
			h[i] = Empty
		}
	}
	return h
}

// Slots returns every non-empty slot together with its index.
func (h Hand) Slots() []Slot {
	slots := make([]Slot, 0, HandSize)
	for i, t := range h {
		if t.IsEmpty() {
			continue
		}
		slots = append(slots, Slot{Index: i, Tile: t})
	}
	return slots
}

func (h Hand) Tiles() []Tile {
	tiles := make([]Tile, 0, HandSize)
	for _, t := range h {
		if !t.IsEmpty() {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

func (h Hand) Count() int {
	count := 0
	for _, t := range h {
		if !t.IsEmpty() {
			count++
		}
	}
	return count
}

// Index returns the first slot holding a tile equal to t, or -1.
func (h Hand) Index(t Tile) int {
	for i := range h {
		if h[i].Equals(t) {
			return i
		}
	}
	return -1
}

func (h Hand) Contains(t Tile) bool {
	return h.Index(t) >= 0
}

// Without returns a copy of the hand where the first slot equal to discard is
// emptied. Only one slot is emptied even when the hand holds both copies.
func (h Hand) Without(discard Tile) (Hand, bool) {
	i := h.Index(discard)
	if i < 0 || discard.IsEmpty() {
		return h, false
	}
	h[i] = Empty
	return h, true
}

// Put places t in the pending slot if it is free, otherwise in the first Empty
// slot. It reports false when the hand is full.
func (h *Hand) Put(t Tile) bool {
	if h[PendingSlot].IsEmpty() {
		h[PendingSlot] = t
		return true
	}
	for i := range h {
		if h[i].IsEmpty() {
			h[i] = t
			return true
		}
	}
	return false
}

// Wildcards counts the slots recognized as the joker.
func (h Hand) Wildcards(joker Tile) int {
	count := 0
	for _, t := range h {
		if !t.IsEmpty() && t.Equals(joker) {
			count++
		}
	}
	return count
}

// Sort orders the hand by color then number. Wildcards come after the colored
// tiles and Empty slots last.
func (h *Hand) Sort() {
	sort.SliceStable(h[:], func(i, j int) bool {
		return sortKey(h[i]).Less(sortKey(h[j]))
	})
}

func sortKey(t Tile) Tile {
	switch {
	case t.IsEmpty():
		return Tile{Color: ColorCount + 1}
	case t.IsWildcard():
		return Tile{Color: ColorCount}
	}
	return t
}

func (h Hand) String() string {
	parts := make([]string, 0, HandSize)
	for _, t := range h {
		parts = append(parts, t.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
