package okey

import (
	"sort"
)

// FindRuns returns every run of at least three tiles that can be laid from
// tiles. Runs are single colored, consecutive modulo 13 (13 wraps to 1), and may
// bridge a gap of one number with one wildcard or a gap of two numbers with two
// wildcards. budget is the number of wildcards the hand holds; each run may
// spend at most that many. Placeholders inside a run hold the joker value.
//
// Every window of a maximal run that starts and ends on a real tile is a
// separate building block.
func FindRuns(tiles []Tile, joker Tile, budget int) []Group {
	numbers := make(map[Color][]int, ColorCount)
	var seen Stats
	for _, t := range tiles {
		if !t.IsNormal() || t.Equals(joker) {
			continue
		}
		// a duplicate copy never extends a run
		if seen.Count(t) > 0 {
			continue
		}
		seen.From(t)
		numbers[t.Color] = append(numbers[t.Color], t.Number)
	}

	var groups []Group
	for c := Yellow; c <= Black; c++ {
		ns := numbers[c]
		if len(ns) == 0 {
			continue
		}
		sort.Ints(ns)
		groups = append(groups, runsInColor(c, ns, joker, budget)...)
	}
	return groups
}

// runsInColor scans distinct, sorted numbers of one color. Each start position
// extends greedily; the wildcard counter is restored for every start so a
// wildcard spent before a break is never carried past it.
func runsInColor(c Color, numbers []int, joker Tile, budget int) []Group {
	var (
		groups []Group
		k      = len(numbers)
	)

	for s := 0; s < k; s++ {
		run := []Tile{NewTile(c, numbers[s])}
		remain := budget

		for step := 1; step < k; step++ {
			cur := numbers[(s+step-1)%k]
			next := numbers[(s+step)%k]

			gap := next - cur
			if gap <= 0 {
				gap += MaxNumber
			}

			fill, ok := bridge(gap, remain)
			if !ok || len(run)+fill+1 > MaxNumber {
				break
			}

			for i := 0; i < fill; i++ {
				run = append(run, joker)
			}
			remain -= fill
			run = append(run, NewTile(c, next))

			if len(run) >= 3 {
				tiles := make([]Tile, len(run))
				copy(tiles, run)
				groups = append(groups, Group{Kind: KindRun, Tiles: tiles})
			}
		}
	}
	return groups
}

// bridge returns how many wildcards close the gap between two numbers of a run.
func bridge(gap, remain int) (int, bool) {
	switch {
	case gap == 1:
		return 0, true
	case gap == 2 && remain >= 1:
		return 1, true
	case gap == 3 && remain >= 2:
		return 2, true
	}
	return 0, false
}
