package game

import (
	"fmt"
	"math/rand"

	"github.com/lonng/okey/internal/game/okey"
	"github.com/lonng/okey/pkg/errutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "game")

// NewEngine builds the win engine from the rules section of the configuration.
func NewEngine() (*okey.Engine, error) {
	viper.SetDefault("rules.joker", defaultConfigJoker)

	joker, err := ParseTile(viper.GetString("rules.joker"))
	if err != nil {
		return nil, errors.Wrap(err, "rules.joker")
	}

	opts := okey.Options{
		Joker:     joker,
		HandSize:  viper.GetInt("rules.hand-size"),
		MaxGroups: viper.GetInt("rules.max-groups"),
	}
	logger.Infof("当前规则配置: Joker=%s, HandSize=%d, MaxGroups=%d", joker, opts.HandSize, opts.MaxGroups)
	return okey.New(opts), nil
}

// Deal shuffles a fresh pool with r and seats players named after names.
// An empty names slice seats deal.players anonymous players. The pool's
// wildcard tiles carry the joker of e.
func Deal(e *okey.Engine, r *rand.Rand, names ...string) ([]*Player, okey.Pool, error) {
	if len(names) == 0 {
		viper.SetDefault("deal.players", defaultPlayers)
		for i := 0; i < viper.GetInt("deal.players"); i++ {
			names = append(names, fmt.Sprintf("player%d", i+1))
		}
	}
	if err := verifyNames(names); err != nil {
		return nil, nil, err
	}

	pool := okey.NewPool(e.Joker())
	pool.Shuffle(r)

	hands, err := pool.Deal(len(names))
	if err != nil {
		return nil, nil, err
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, hands[i])
	}
	logger.Debugf("dealt %d players, %d tiles left", len(players), len(pool))
	return players, pool, nil
}

func verifyNames(names []string) error {
	if len(names) < okey.MinPlayer || len(names) > okey.MaxPlayer {
		return errors.Wrapf(errutil.ErrIllegalPlayerCount, "%d players", len(names))
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			return errors.Wrapf(errutil.ErrIllegalName, "%q", n)
		}
		seen[n] = true
	}
	return nil
}
