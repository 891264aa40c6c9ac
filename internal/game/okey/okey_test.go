package okey

import (
	"reflect"
	"sync"
	"testing"
)

func TestEngine_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		hand    string
		discard string
		win     bool
	}{
		{
			name:    "straight of six and two sets of four",
			hand:    "R1 R2 R3 R4 R5 R6 R7 Y9 R9 B9 K9 Y10 R10 B10 K10",
			discard: "R1",
			win:     true,
		},
		{
			name:    "run takes a window so its last tile joins a set",
			hand:    "R1 R2 R3 R4 R5 R6 R7 R8 R9 Y9 B9 Y10 B10 K10 K5",
			discard: "K5",
			win:     true,
		},
		{
			name:    "broken run leaves tiles over",
			hand:    "R1 K12 R3 R4 R5 R6 R7 R8 R9 Y9 B9 Y10 B10 K10 K5",
			discard: "K5",
			win:     false,
		},
		{
			name:    "only sets",
			hand:    "R1 R2 B2 K2 Y2 R6 B6 K6 Y6 R1 B1 K1 R4 B4 K4",
			discard: "R1",
			win:     true,
		},
		{
			name:    "wrap around from 13 to 1",
			hand:    "R1 R2 R3 R4 R12 R13 R1 Y9 R9 B9 K9 Y10 R10 B10 K10",
			discard: "R1",
			win:     true,
		},
		{
			name:    "unused joker completes the count",
			hand:    "R1 R2 R3 R4 R5 R6 J Y9 R9 B9 K9 Y10 R10 B10 K10",
			discard: "R1",
			win:     true,
		},
		{
			name:    "two jokers bridge a run of eight",
			hand:    "R1 R2 J R4 R5 J R7 R8 Y9 B9 K9 Y10 B10 K10 K1",
			discard: "K1",
			win:     true,
		},
		{
			name:    "gap of two without joker",
			hand:    "R1 R2 R4 R5 R6 R7 R8 Y9 B9 K9 Y10 B10 K10 R11 K1",
			discard: "K1",
			win:     false,
		},
		{
			name:    "both copies of a run",
			hand:    "R1 R2 R3 R4 R1 R2 R3 R4 Y5 B5 K5 Y6 B6 K6 K12",
			discard: "K12",
			win:     true,
		},
		{
			name:    "single copy claimed by a run and a set",
			hand:    "R1 R2 R3 R4 Y4 B4 Y7 R7 B7 K7 Y8 B8 K8 K12 Y1",
			discard: "Y1",
			win:     false,
		},
		{
			name:    "second physical copy serves the set",
			hand:    "R1 R2 R3 R4 R4 Y4 B4 Y7 R7 B7 K7 Y8 B8 K8 Y1",
			discard: "Y1",
			win:     true,
		},
		{
			name:    "discard not in hand",
			hand:    "R1 R2 R3 R4 R5 R6 R7 Y9 R9 B9 K9 Y10 R10 B10 K10",
			discard: "K13",
			win:     false,
		},
	}

	e := New(Options{})
	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			h := handOf(t, c.hand)
			discard := tilesOf(t, c.discard)[0]
			before := h

			res := e.Evaluate(h, discard)
			if res.Winning != c.win {
				t.Fatalf("Evaluate(%s, %s) = %t, want %t, combinations: %v", h, discard, res.Winning, c.win, res.Combinations)
			}
			if res.Winning != (len(res.Combinations) > 0) {
				t.Fatalf("winning=%t with %d combinations", res.Winning, len(res.Combinations))
			}
			if h != before {
				t.Fatalf("hand mutated: %s -> %s", before, h)
			}
		})
	}
}

func TestEngine_CombinationSlots(t *testing.T) {
	h := handOf(t, "R1 R2 R3 R4 R1 R2 R3 R4 Y5 B5 K5 Y6 B6 K6 K12")
	res := New(Options{}).Evaluate(h, NewTile(Black, 12))
	if !res.Winning {
		t.Fatalf("expect win")
	}

	for _, comb := range res.Combinations {
		seen := map[int]bool{}
		i := 0
		for _, g := range comb.Groups {
			for _, tile := range g.Tiles {
				slot := comb.Slots[i]
				if seen[slot] {
					t.Fatalf("slot %d bound twice in %s", slot, comb)
				}
				seen[slot] = true
				if !h[slot].Equals(tile) {
					t.Fatalf("slot %d holds %s, bound to %s", slot, h[slot], tile)
				}
				i++
			}
		}
		if i != HeldSize {
			t.Fatalf("bound %d tiles, want %d", i, HeldSize)
		}
	}
}

func TestEngine_FreeWildcards(t *testing.T) {
	h := handOf(t, "R2 R3 R4 R5 R6 J Y9 R9 B9 K9 Y10 R10 B10 K10")
	res := EvaluateWin(h, Wildcard)
	if !res.Winning {
		t.Fatalf("expect win")
	}
	for _, comb := range res.Combinations {
		if len(comb.Free) != 1 || comb.Free[0] != 5 {
			t.Fatalf("free wildcard slots: %v", comb.Free)
		}
	}
}

func TestEngine_CustomJoker(t *testing.T) {
	h := handOf(t, "Y1 Y2 Y4 R5 Y9 R9 B9 K9 Y10 R10 B10 Y11 R11 B11")

	if EvaluateWin(h, Wildcard).Winning {
		t.Fatalf("R5 is a plain tile under the default joker")
	}
	if !EvaluateWin(h, NewTile(Red, 5)).Winning {
		t.Fatalf("R5 should bridge Y2 and Y4")
	}
}

func TestEngine_MaxGroups(t *testing.T) {
	h := handOf(t, "R2 R3 R4 R5 R6 R7 Y9 R9 B9 K9 Y10 R10 B10 K10")
	if !New(Options{}).EvaluateWin(h).Winning {
		t.Fatalf("expect win with default group cap")
	}
	if New(Options{MaxGroups: 2}).EvaluateWin(h).Winning {
		t.Fatalf("three groups can not win with a cap of two")
	}
}

func TestEngine_EmptyHand(t *testing.T) {
	if res := New(Options{}).EvaluateWin(NewHand()); res.Winning || len(res.Combinations) != 0 {
		t.Fatalf("empty hand: %+v", res)
	}
}

func TestEngine_TileCount(t *testing.T) {
	e := New(Options{})
	full := handOf(t, "R1 R2 R3 R4 R5 R6 R7 Y9 R9 B9 K9 Y10 R10 B10 K10")
	if res := e.EvaluateWin(full); res.Winning || len(res.Combinations) != 0 {
		t.Fatalf("a hand that still holds its discard can not win: %v", res)
	}
	if EvaluateWin(full, Wildcard).Winning {
		t.Fatalf("package EvaluateWin accepted %d tiles", full.Count())
	}

	short := handOf(t, "R2 R3 R4 R5 R6 R7 Y9 R9 B9 K9 Y10 R10 B10")
	if e.EvaluateWin(short).Winning {
		t.Fatalf("a hand of %d tiles can not win", short.Count())
	}

	rest, _ := full.Without(NewTile(Red, 1))
	if !e.EvaluateWin(rest).Winning {
		t.Fatalf("expect win after the discard")
	}
}

func TestEngine_Idempotent(t *testing.T) {
	h := handOf(t, "R1 R2 J R4 R5 J R7 R8 Y9 B9 K9 Y10 B10 K10")
	e := New(Options{})
	first := e.EvaluateWin(h)
	second := e.EvaluateWin(h)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ:\n%v\n%v", first, second)
	}
}

func TestEngine_Concurrent(t *testing.T) {
	h := handOf(t, "R1 R2 R3 R4 R12 R13 R1 Y9 R9 B9 K9 Y10 R10 B10 K10")
	e := New(Options{})
	want := e.Evaluate(h, NewTile(Red, 1))

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Evaluate(h, NewTile(Red, 1))
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("goroutine %d: %v, want %v", i, got, want)
		}
	}
}

func TestEngine_WinningDiscards(t *testing.T) {
	h := handOf(t, "R1 R2 R3 R4 R5 R6 R7 Y9 R9 B9 K9 Y10 R10 B10 K10")
	got := New(Options{}).WinningDiscards(h)
	want := tilesOf(t, "R1 R4 R7 Y9 R9 B9 K9 Y10 R10 B10 K10")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WinningDiscards = %v, want %v", got, want)
	}
}

func BenchmarkEngine_EvaluateWin(b *testing.B) {
	h := handOf(b, "R1 R2 J R4 R5 J R7 R8 Y9 B9 K9 Y10 B10 K10")
	e := New(Options{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EvaluateWin(h)
	}
}
