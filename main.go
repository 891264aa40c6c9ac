package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lonng/okey/internal/async"
	"github.com/lonng/okey/internal/game"
	"github.com/lonng/okey/internal/game/okey"
	"github.com/lonng/okey/internal/hooks"
	"github.com/lonng/okey/pkg/errutil"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "okey"
	app.Author = "okey"
	app.Version = "0.0.1"
	app.Usage = "okey hand win checker"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}

	handFlag := cli.StringFlag{
		Name:  "hand",
		Usage: "hand tiles, e.g. \"R1 R2 R3 Joker\"",
	}

	app.Commands = []cli.Command{
		{
			Name:  "eval",
			Usage: "evaluate whether discarding a tile wins",
			Flags: []cli.Flag{
				handFlag,
				cli.StringFlag{
					Name:  "discard",
					Usage: "tile to discard, omit when the hand already reflects the discard",
				},
			},
			Action: eval,
		},
		{
			Name:   "discards",
			Usage:  "list every winning discard of a hand",
			Flags:  []cli.Flag{handFlag},
			Action: discards,
		},
		{
			Name:  "deal",
			Usage: "deal a shuffled pool and report winning discards",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "player, p",
					Usage: "player name, repeat for every seat",
				},
			},
			Action: deal,
		},
		{
			Name:  "play",
			Usage: "play a dealt match from standard input",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "player, p",
					Usage: "player name, repeat for every seat",
				},
			},
			Action: play,
		},
	}

	app.Before = setup
	if err := app.Run(os.Args); err != nil {
		log.WithField("code", errutil.Code(err)).Error(err)
		os.Exit(errutil.Status(err))
	}
}

func setup(c *cli.Context) error {
	viper.SetConfigType("toml")
	viper.SetConfigFile(c.GlobalString("config"))
	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("读取配置失败, 使用默认配置: %v", err)
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") || c.GlobalBool("debug") {
		log.SetLevel(log.DebugLevel)
		log.AddHook(hooks.NewHook())
	}
	return nil
}

func eval(c *cli.Context) error {
	engine, hand, err := prepare(c)
	if err != nil {
		return err
	}

	var result okey.Result
	if d := c.String("discard"); d != "" {
		discard, err := game.ParseTile(d)
		if err != nil {
			return err
		}
		if !hand.Contains(discard) {
			return errors.Wrapf(errutil.ErrTileNotInHand, "discard %s", discard)
		}
		result = engine.Evaluate(hand, discard)
	} else {
		result = engine.EvaluateWin(hand)
	}

	fmt.Println(result)
	for _, comb := range result.Combinations {
		fmt.Println("  ", comb)
	}
	if !result.Winning {
		return errors.Wrapf(errutil.ErrNotWon, "hand %s", hand)
	}
	return nil
}

func discards(c *cli.Context) error {
	engine, hand, err := prepare(c)
	if err != nil {
		return err
	}
	fmt.Println(tileList(engine.WinningDiscards(hand)))
	return nil
}

func deal(c *cli.Context) error {
	engine, err := game.NewEngine()
	if err != nil {
		return err
	}
	players, pool, err := game.Deal(engine, nil, c.StringSlice("player")...)
	if err != nil {
		return err
	}

	wins := make([][]okey.Tile, len(players))
	fns := make([]func(), len(players))
	for i, p := range players {
		i, h := i, p.Hand()
		fns[i] = func() { wins[i] = engine.WinningDiscards(h) }
	}
	async.Wait(fns...)

	fmt.Printf("%d tiles left in pool\n", len(pool))
	for i, p := range players {
		h := p.Hand()
		h.Sort()
		fmt.Printf("%s %s winning discards: %s\n", p.Name(), h, tileList(wins[i]))
	}
	return nil
}

func play(c *cli.Context) error {
	engine, err := game.NewEngine()
	if err != nil {
		return err
	}
	players, pool, err := game.Deal(engine, nil, c.StringSlice("player")...)
	if err != nil {
		return err
	}

	m := game.NewMatch(engine, players, pool)
	fmt.Println("Match starts!!")
	prompt(m)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		cmd, err := game.ParseCommand(scanner.Text())
		if err != nil {
			report(err)
			continue
		}

		switch cmd.Type {
		case game.CommandExit:
			fmt.Println("A player left the match.")
			return nil
		case game.CommandShow:
			fmt.Println(m.Current().Hand())
			continue
		}

		d, err := m.Play(cmd)
		if err != nil {
			report(err)
			continue
		}
		if d != nil {
			fmt.Println(d)
		}
		if m.Over() {
			return nil
		}
		prompt(m)
	}
	return scanner.Err()
}

func prompt(m *game.Match) {
	p := m.Current()
	if p.Hand().Count() == okey.HandSize {
		fmt.Printf("%s, throw a tile or declare a win.\n", p.Name())
		return
	}
	if t, ok := m.Thrown(); ok {
		fmt.Printf("It's %ss turn. Take the thrown tile {%s} or get a new one (%d left).\n", p.Name(), t, m.Left())
		return
	}
	fmt.Printf("It's %ss turn. Get a new tile (%d left).\n", p.Name(), m.Left())
}

func report(err error) {
	fmt.Printf("[%d] %v\n", errutil.Code(err), err)
}

func prepare(c *cli.Context) (*okey.Engine, okey.Hand, error) {
	engine, err := game.NewEngine()
	if err != nil {
		return nil, okey.Hand{}, err
	}
	hand, err := game.ParseHand(c.String("hand"))
	if err != nil {
		return nil, okey.Hand{}, err
	}
	return engine, hand, nil
}

func tileList(tiles []okey.Tile) string {
	if len(tiles) == 0 {
		return "none"
	}
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
