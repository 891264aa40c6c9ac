package game

import (
	"strings"

	"github.com/lonng/okey/internal/game/okey"
	"github.com/lonng/okey/pkg/errutil"
	"github.com/pkg/errors"
)

type CommandType byte

const (
	CommandDraw    CommandType = iota + 1 // new: 摸新牌
	CommandTake                           // thrown: 拿上家打出的牌
	CommandExit                           // exit
	CommandShow                           // show
	CommandDiscard                        // <color> <n> | Joker
	CommandWin                            // win [<color> <n> | Joker]
)

var commandNames = [...]string{
	CommandDraw:    "new",
	CommandTake:    "thrown",
	CommandExit:    "exit",
	CommandShow:    "show",
	CommandDiscard: "discard",
	CommandWin:     "win",
}

func (t CommandType) String() string {
	if int(t) < len(commandNames) && commandNames[t] != "" {
		return commandNames[t]
	}
	return "unknown"
}

// Command is one line of player input. HasTile is false for a bare "win",
// which declares with the tile in the pending slot.
type Command struct {
	Type    CommandType
	Tile    okey.Tile
	HasTile bool
}

// ParseCommand parses the fixed command grammar of a turn.
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, errors.Wrap(errutil.ErrIllegalCommand, "empty input")
	}

	switch strings.ToLower(parts[0]) {
	case "new":
		return single(CommandDraw, parts)
	case "thrown":
		return single(CommandTake, parts)
	case "exit":
		return single(CommandExit, parts)
	case "show":
		return single(CommandShow, parts)
	case "win":
		if len(parts) == 1 {
			return Command{Type: CommandWin}, nil
		}
		t, err := parseTileArgs(parts[1:])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: CommandWin, Tile: t, HasTile: true}, nil
	}

	t, err := parseTileArgs(parts)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: CommandDiscard, Tile: t, HasTile: true}, nil
}

func single(typ CommandType, parts []string) (Command, error) {
	if len(parts) != 1 {
		return Command{}, errors.Wrapf(errutil.ErrIllegalCommand, "%s takes no argument", typ)
	}
	return Command{Type: typ}, nil
}

func parseTileArgs(parts []string) (okey.Tile, error) {
	switch len(parts) {
	case 1:
		return ParseTile(parts[0])
	case 2:
		return ParseTileParts(parts[0], parts[1])
	}
	return okey.Empty, errors.Wrapf(errutil.ErrIllegalCommand, "%q", strings.Join(parts, " "))
}
