package okey

import (
	"github.com/lonng/okey/pkg/set"
)

// arena hands out hand slots by tile value. Two physical tiles of equal value
// occupy two slots, so a value can be claimed as many times as the hand holds
// it and no more.
type arena struct {
	free  map[Tile][]int
	joker Tile
}

func newArena(slots []Slot, joker Tile) *arena {
	a := &arena{free: make(map[Tile][]int, len(slots)), joker: joker}
	for _, s := range slots {
		a.free[s.Tile] = append(a.free[s.Tile], s.Index)
	}
	return a
}

// bind claims one slot for every tile, in order. It returns false on the first
// tile whose value has no free slot left.
func (a *arena) bind(tiles []Tile) ([]int, bool) {
	claimed := make(map[Tile]int, len(tiles))
	slots := make([]int, len(tiles))
	for i, t := range tiles {
		n := claimed[t]
		if n >= len(a.free[t]) {
			return nil, false
		}
		slots[i] = a.free[t][n]
		claimed[t] = n + 1
	}
	return slots, true
}

// remaining returns the joker slots left after bind claimed used of them.
func (a *arena) remaining(used int) []int {
	jokers := a.free[a.joker]
	if used >= len(jokers) {
		return nil
	}
	free := make([]int, len(jokers)-used)
	copy(free, jokers[used:])
	return free
}

// Validate keeps the candidates that cover the hand exactly: the candidate
// length plus the wildcards it leaves unused must equal handSize, it may not
// use more wildcards than budget, and every tile must be bound to its own
// hand slot. Structurally identical candidates are reported once.
func Validate(candidates []Candidate, slots []Slot, joker Tile, budget, handSize int) []Combination {
	var (
		res  []Combination
		seen = set.New()
		a    = newArena(slots, joker)
	)

	for _, c := range candidates {
		used := countTile(c.Tiles, joker)
		if used > budget {
			continue
		}
		available := budget - used
		if len(c.Tiles)+available != handSize {
			continue
		}

		bound, ok := a.bind(c.Tiles)
		if !ok {
			continue
		}
		if !seen.Add(c.Key()) {
			continue
		}

		res = append(res, Combination{
			Groups: c.Groups,
			Slots:  bound,
			Free:   a.remaining(used),
		})
	}
	return res
}
