package game

import (
	"fmt"

	"github.com/lonng/okey/internal/game/okey"
	"github.com/pborman/uuid"
)

// Declaration records one win attempt.
type Declaration struct {
	ID      string
	Player  string
	Discard okey.Tile
	Result  okey.Result
}

func newDeclaration(player string, discard okey.Tile, result okey.Result) *Declaration {
	return &Declaration{
		ID:      uuid.New(),
		Player:  player,
		Discard: discard,
		Result:  result,
	}
}

func (d *Declaration) String() string {
	if !d.Result.Winning {
		return fmt.Sprintf("If you throw the tile {%s} it isn't a win. Please throw another tile.", d.Discard)
	}
	return fmt.Sprintf("%s wins by throwing {%s}. %s", d.Player, d.Discard, d.Result)
}
