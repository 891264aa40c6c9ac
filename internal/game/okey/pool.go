package okey

import (
	"math/rand"
	"time"

	"github.com/lonng/okey/pkg/errutil"
)

const (
	Copies    = 2 // 每种牌两张
	Jokers    = 2
	PoolSize  = Copies*ColorCount*MaxNumber + Jokers
	MinPlayer = 2
	MaxPlayer = 4
)

// Pool is the face-down tile source of a match.
type Pool []Tile

// NewPool builds the full tile set. The two wildcard tiles carry the joker
// value so the engine recognizes them under any joker setting.
func NewPool(joker Tile) Pool {
	p := make(Pool, 0, PoolSize)
	for i := 0; i < Copies; i++ {
		for n := 1; n <= MaxNumber; n++ {
			for c := Yellow; c <= Black; c++ {
				p = append(p, NewTile(c, n))
			}
		}
	}
	for i := 0; i < Jokers; i++ {
		p = append(p, joker)
	}
	return p
}

// Shuffle permutes the pool with r, or with a time seeded source when r is nil.
func (p Pool) Shuffle(r *rand.Rand) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
}

// Draw takes the top tile.
func (p *Pool) Draw() (Tile, error) {
	if len(*p) == 0 {
		return Empty, errutil.ErrPoolEmpty
	}
	t := (*p)[0]
	*p = (*p)[1:]
	return t, nil
}

// Deal gives every player HeldSize tiles with an empty pending slot, then
// puts one more tile in the first player's pending slot so that player opens
// by discarding.
func (p *Pool) Deal(players int) ([]Hand, error) {
	if players < MinPlayer || players > MaxPlayer {
		return nil, errutil.ErrIllegalPlayerCount
	}
	if len(*p) < players*HeldSize+1 {
		return nil, errutil.ErrPoolEmpty
	}

	hands := make([]Hand, players)
	for i := range hands {
		hands[i] = NewHand((*p)[:HeldSize]...)
		*p = (*p)[HeldSize:]
	}

	t, err := p.Draw()
	if err != nil {
		return nil, err
	}
	hands[0][PendingSlot] = t
	return hands, nil
}
