package okey

import (
	"testing"
)

func TestHand_NewHand(t *testing.T) {
	h := NewHand(tilesOf(t, "R1 R2 R3")...)
	if h.Count() != 3 {
		t.Fatalf("count: %d", h.Count())
	}
	for i := 3; i < HandSize; i++ {
		if !h[i].IsEmpty() {
			t.Fatalf("slot %d: %s", i, h[i])
		}
	}
	if len(h.Slots()) != 3 || len(h.Tiles()) != 3 {
		t.Fatalf("slots: %v", h.Slots())
	}
}

func TestHand_Without(t *testing.T) {
	h := handOf(t, "R1 R2 R1 J")
	rest, ok := h.Without(NewTile(Red, 1))
	if !ok {
		t.Fatalf("R1 is in hand")
	}
	if !rest[0].IsEmpty() || !rest[2].Equals(NewTile(Red, 1)) {
		t.Fatalf("only the first copy leaves: %s", rest)
	}
	if !h[0].Equals(NewTile(Red, 1)) {
		t.Fatalf("original hand changed: %s", h)
	}

	if _, ok := h.Without(NewTile(Blue, 1)); ok {
		t.Fatalf("B1 is not in hand")
	}
	if _, ok := h.Without(Empty); ok {
		t.Fatalf("Empty can not be discarded")
	}
}

func TestHand_Put(t *testing.T) {
	h := handOf(t, "Y1 Y2 Y3 Y4 Y5 Y6 Y7 Y8 Y9 Y10 Y11 Y12 Y13 R1")
	if !h.Put(Wildcard) {
		t.Fatalf("pending slot is free")
	}
	if !h[PendingSlot].IsWildcard() {
		t.Fatalf("pending slot: %s", h[PendingSlot])
	}
	if h.Put(NewTile(Red, 2)) {
		t.Fatalf("hand is full")
	}

	h[3] = Empty
	if !h.Put(NewTile(Red, 2)) || !h[3].Equals(NewTile(Red, 2)) {
		t.Fatalf("first empty slot not used: %s", h)
	}
}

func TestHand_Sort(t *testing.T) {
	h := handOf(t, "J K2 R5 Y9 R1")
	h.Sort()
	want := handOf(t, "Y9 R1 R5 K2 J")
	if h != want {
		t.Fatalf("Sort = %s, want %s", h, want)
	}
}

func TestHand_Wildcards(t *testing.T) {
	h := handOf(t, "J R5 J R5")
	if n := h.Wildcards(Wildcard); n != 2 {
		t.Fatalf("wildcards: %d", n)
	}
	if n := h.Wildcards(NewTile(Red, 5)); n != 2 {
		t.Fatalf("R5 as joker: %d", n)
	}
	if n := h.Wildcards(Empty); n != 0 {
		t.Fatalf("Empty is never a wildcard: %d", n)
	}
}
