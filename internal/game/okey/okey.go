package okey

import (
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "okey")

// Options tune the engine. The zero value of a field selects its default.
type Options struct {
	Joker     Tile // value recognized as a wildcard, Wildcard by default
	HandSize  int  // tiles left after the discard, HeldSize by default
	MaxGroups int  // groups per candidate, MaxGroups by default
}

// Engine evaluates hands. It holds no state between calls and is safe for
// concurrent use.
type Engine struct {
	joker     Tile
	handSize  int
	maxGroups int
}

func New(opts Options) *Engine {
	e := &Engine{
		joker:     opts.Joker,
		handSize:  opts.HandSize,
		maxGroups: opts.MaxGroups,
	}
	if e.joker == (Tile{}) {
		e.joker = Wildcard
	}
	if e.handSize <= 0 {
		e.handSize = HeldSize
	}
	if e.maxGroups <= 0 {
		e.maxGroups = MaxGroups
	}
	return e
}

var defaultEngine = New(Options{})

// EvaluateWin evaluates a hand that already reflects the discard, recognizing
// joker as the wildcard.
func EvaluateWin(h Hand, joker Tile) Result {
	if joker.Equals(defaultEngine.joker) {
		return defaultEngine.EvaluateWin(h)
	}
	return New(Options{Joker: joker}).EvaluateWin(h)
}

func (e *Engine) Joker() Tile {
	return e.joker
}

// EvaluateWin reports whether the tiles of h split exactly into at most
// maxGroups runs and sets, with unused wildcards free to join any group.
// The hand must already reflect the discard: a hand holding any other count
// than the configured hand size never wins.
func (e *Engine) EvaluateWin(h Hand) Result {
	if n := h.Count(); n != e.handSize {
		logger.Debugf("hand %s holds %d tiles, want %d", h, n, e.handSize)
		return Result{}
	}

	slots := h.Slots()
	tiles := h.Tiles()
	budget := h.Wildcards(e.joker)

	groups := FindRuns(tiles, e.joker, budget)
	groups = append(groups, FindSets(tiles, e.joker)...)

	minLen := e.handSize - 2
	if minLen < 0 {
		minLen = 0
	}
	candidates := Combine(groups, e.maxGroups, minLen, e.handSize)
	combinations := Validate(candidates, slots, e.joker, budget, e.handSize)

	logger.WithFields(log.Fields{
		"hand":         h.String(),
		"wildcards":    budget,
		"groups":       len(groups),
		"candidates":   len(candidates),
		"combinations": len(combinations),
	}).Debug("evaluate win")

	return Result{
		Winning:      len(combinations) > 0,
		Combinations: combinations,
	}
}

// Evaluate discards one tile equal to discard from a copy of h and evaluates
// the rest. A discard that is not in the hand never wins.
func (e *Engine) Evaluate(h Hand, discard Tile) Result {
	rest, ok := h.Without(discard)
	if !ok {
		logger.Debugf("discard %s not in hand %s", discard, h)
		return Result{}
	}
	return e.EvaluateWin(rest)
}

// WinningDiscards returns, in hand order, every distinct tile whose discard
// leaves a winning hand.
func (e *Engine) WinningDiscards(h Hand) []Tile {
	var (
		res  []Tile
		seen = make(map[Tile]bool, HandSize)
	)
	for _, s := range h.Slots() {
		if seen[s.Tile] {
			continue
		}
		seen[s.Tile] = true
		if e.Evaluate(h, s.Tile).Winning {
			res = append(res, s.Tile)
		}
	}
	return res
}
