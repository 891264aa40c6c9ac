package game

import (
	"github.com/lonng/okey/internal/game/okey"
	"github.com/lonng/okey/pkg/errutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Match drives the turn loop of one dealt game. The player on turn holds a
// full hand and either throws a tile or declares a win; the next player first
// draws from the pool or takes the thrown tile.
type Match struct {
	engine  *okey.Engine
	players []*Player
	pool    okey.Pool
	turn    int
	thrown  okey.Tile
	winner  *Declaration
	logger  *log.Entry
}

func NewMatch(e *okey.Engine, players []*Player, pool okey.Pool) *Match {
	return &Match{
		engine:  e,
		players: players,
		pool:    pool,
		thrown:  okey.Empty,
		logger:  logger.WithField("players", len(players)),
	}
}

// Current returns the player on turn.
func (m *Match) Current() *Player {
	return m.players[m.turn]
}

// Thrown returns the last thrown tile that nobody has taken yet.
func (m *Match) Thrown() (okey.Tile, bool) {
	return m.thrown, !m.thrown.IsEmpty()
}

func (m *Match) Left() int {
	return len(m.pool)
}

func (m *Match) Over() bool {
	return m.winner != nil
}

// Winner returns the winning declaration, nil while the match is running.
func (m *Match) Winner() *Declaration {
	return m.winner
}

// Play executes cmd for the player on turn. A declaration is returned for
// every win attempt, won or not; show and exit are left to the caller.
func (m *Match) Play(cmd Command) (*Declaration, error) {
	if m.Over() {
		return nil, errors.Wrapf(errutil.ErrIllegalCommand, "%s won already", m.winner.Player)
	}

	p := m.Current()
	full := p.Hand().Count() == okey.HandSize

	switch cmd.Type {
	case CommandDraw:
		if full {
			return nil, errors.Wrapf(errutil.ErrIllegalCommand, "%s must throw a tile first", p.Name())
		}
		t, err := m.pool.Draw()
		if err != nil {
			return nil, err
		}
		return p.Apply(m.engine, cmd, t)

	case CommandTake:
		if full {
			return nil, errors.Wrapf(errutil.ErrIllegalCommand, "%s must throw a tile first", p.Name())
		}
		t, ok := m.Thrown()
		if !ok {
			return nil, errors.Wrap(errutil.ErrIllegalCommand, "no thrown tile")
		}
		if _, err := p.Apply(m.engine, cmd, t); err != nil {
			return nil, err
		}
		m.thrown = okey.Empty
		return nil, nil

	case CommandDiscard:
		if !full {
			return nil, errors.Wrapf(errutil.ErrIllegalCommand, "%s must draw a tile first", p.Name())
		}
		if _, err := p.Apply(m.engine, cmd, okey.Empty); err != nil {
			return nil, err
		}
		m.thrown = cmd.Tile
		m.turn = (m.turn + 1) % len(m.players)
		m.logger.Debugf("%s throws %s, %s is on turn", p.Name(), cmd.Tile, m.Current().Name())
		return nil, nil

	case CommandWin:
		if !full {
			return nil, errors.Wrapf(errutil.ErrIllegalCommand, "%s must draw a tile first", p.Name())
		}
		d, err := p.Apply(m.engine, cmd, okey.Empty)
		if err != nil {
			return nil, err
		}
		if d.Result.Winning {
			m.winner = d
		}
		return d, nil
	}
	return nil, nil
}
