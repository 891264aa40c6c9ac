package game

import (
	"github.com/lonng/okey/internal/game/okey"
	"github.com/lonng/okey/pkg/errutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Player owns a hand and keeps its draw/discard bookkeeping. The engine never
// sees a Player, only hand snapshots.
type Player struct {
	name string // 玩家名字
	hand okey.Hand

	logger *log.Entry // 日志
}

func NewPlayer(name string, hand okey.Hand) *Player {
	return &Player{
		name:   name,
		hand:   hand,
		logger: log.WithField(fieldPlayer, name),
	}
}

func (p *Player) Name() string {
	return p.name
}

// Hand returns a snapshot of the player's hand.
func (p *Player) Hand() okey.Hand {
	return p.hand
}

// Draw puts a drawn or taken tile into the hand.
func (p *Player) Draw(t okey.Tile) error {
	if !p.hand.Put(t) {
		return errors.Wrapf(errutil.ErrHandFull, "player %s draws %s", p.name, t)
	}
	p.logger.Debugf("draw %s", t)
	return nil
}

// Discard removes one tile equal to t from the hand. The pending tile moves
// into the freed slot so the next draw lands in the pending slot again.
func (p *Player) Discard(t okey.Tile) error {
	i := p.hand.Index(t)
	rest, ok := p.hand.Without(t)
	if !ok {
		return errors.Wrapf(errutil.ErrTileNotInHand, "player %s discards %s", p.name, t)
	}
	rest[i], rest[okey.PendingSlot] = rest[okey.PendingSlot], rest[i]
	p.hand = rest
	p.logger.Debugf("discard %s", t)
	return nil
}

// Pending returns the tile in the pending slot.
func (p *Player) Pending() (okey.Tile, bool) {
	t := p.hand[okey.PendingSlot]
	return t, !t.IsEmpty()
}

// DeclareWin evaluates the hand without discard. On a win the discard leaves
// the hand; otherwise the hand is left untouched so the player can throw
// another tile.
func (p *Player) DeclareWin(e *okey.Engine, discard okey.Tile) (*Declaration, error) {
	if !p.hand.Contains(discard) {
		return nil, errors.Wrapf(errutil.ErrTileNotInHand, "player %s declares with %s", p.name, discard)
	}

	d := newDeclaration(p.name, discard, e.Evaluate(p.hand, discard))
	if d.Result.Winning {
		p.hand, _ = p.hand.Without(discard)
	}

	p.logger.WithFields(log.Fields{
		fieldDeclaration: d.ID,
		"discard":        discard.String(),
		"winning":        d.Result.Winning,
	}).Info("declare win")
	return d, nil
}

// Apply executes the hand changing part of a parsed command. Draw and take
// need the tile from the caller; show and exit leave the hand alone.
func (p *Player) Apply(e *okey.Engine, cmd Command, supplied okey.Tile) (*Declaration, error) {
	switch cmd.Type {
	case CommandDraw, CommandTake:
		return nil, p.Draw(supplied)
	case CommandDiscard:
		return nil, p.Discard(cmd.Tile)
	case CommandWin:
		discard := cmd.Tile
		if !cmd.HasTile {
			t, ok := p.Pending()
			if !ok {
				return nil, errors.Wrapf(errutil.ErrTileNotInHand, "player %s has no pending tile", p.name)
			}
			discard = t
		}
		return p.DeclareWin(e, discard)
	}
	return nil, nil
}
