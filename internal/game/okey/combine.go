package okey

import (
	"github.com/lonng/okey/pkg/set"
)

// MaxGroups bounds how many groups a candidate combines: with groups of at
// least three tiles no more than four fit in a fourteen tile hand.
const MaxGroups = 4

// Distinct drops structurally identical groups, keeping the first occurrence.
func Distinct(groups []Group) []Group {
	seen := set.New()
	res := make([]Group, 0, len(groups))
	for _, g := range groups {
		if seen.Add(g.Key()) {
			res = append(res, g)
		}
	}
	return res
}

// Combine enumerates every combination of at most maxGroups distinct groups,
// flattens each one and keeps those whose length lies in [minLen, maxLen].
// A group may appear more than once in a combination because a hand can hold
// both physical copies of it; the validator decides whether the copies exist.
// Branches longer than maxLen are pruned while enumerating.
func Combine(groups []Group, maxGroups, minLen, maxLen int) []Candidate {
	blocks := Distinct(groups)

	var (
		res    []Candidate
		picked = make([]Group, 0, maxGroups)
	)

	var walk func(from, length int)
	walk = func(from, length int) {
		if length >= minLen {
			res = append(res, flatten(picked, length))
		}
		if len(picked) == maxGroups {
			return
		}
		for i := from; i < len(blocks); i++ {
			l := length + blocks[i].Len()
			if l > maxLen {
				continue
			}
			picked = append(picked, blocks[i])
			walk(i, l)
			picked = picked[:len(picked)-1]
		}
	}
	walk(0, 0)

	return res
}

func flatten(groups []Group, length int) Candidate {
	c := Candidate{
		Groups: make([]Group, len(groups)),
		Tiles:  make([]Tile, 0, length),
	}
	copy(c.Groups, groups)
	for _, g := range groups {
		c.Tiles = append(c.Tiles, g.Tiles...)
	}
	return c
}
