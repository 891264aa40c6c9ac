package okey

// FindSets returns every set that can be laid from tiles: three or four tiles
// of one number with pairwise distinct colors. All 3-color subsets are
// emitted when four colors are present, together with the 4-color set.
func FindSets(tiles []Tile, joker Tile) []Group {
	var stats Stats
	for _, t := range tiles {
		if t.Equals(joker) {
			continue
		}
		stats.From(t)
	}

	var groups []Group
	for n := 1; n <= MaxNumber; n++ {
		var colors []Color
		for c := Yellow; c <= Black; c++ {
			if stats[c][n] > 0 {
				colors = append(colors, c)
			}
		}
		if len(colors) < 3 {
			continue
		}

		for _, idx := range subsets(len(colors), 3) {
			tiles := make([]Tile, len(idx))
			for i, ci := range idx {
				tiles[i] = NewTile(colors[ci], n)
			}
			groups = append(groups, Group{Kind: KindSet, Tiles: tiles})
		}
	}
	return groups
}

// subsets returns the index combinations of n items having at least min
// elements, smallest first.
func subsets(n, min int) [][]int {
	var res [][]int
	for size := min; size <= n; size++ {
		idx := make([]int, size)
		var walk func(pos, from int)
		walk = func(pos, from int) {
			if pos == size {
				c := make([]int, size)
				copy(c, idx)
				res = append(res, c)
				return
			}
			for i := from; i <= n-(size-pos); i++ {
				idx[pos] = i
				walk(pos+1, i+1)
			}
		}
		walk(0, 0)
	}
	return res
}
