package okey

import (
	"fmt"
	"strings"
)

type Color int

const (
	Yellow Color = iota
	Red
	Blue
	Black
)

const (
	WildcardColor Color = -1 // 百搭
	EmptyColor    Color = -2 // 空位
)

const (
	ColorCount = 4
	MaxNumber  = 13
)

var colorNames = [ColorCount]string{"Yellow", "Red", "Blue", "Black"}
var colorShortNames = [ColorCount]string{"Y", "R", "B", "K"}

func (c Color) String() string {
	switch {
	case c.IsValid():
		return colorNames[c]
	case c == WildcardColor:
		return "Joker"
	case c == EmptyColor:
		return "Empty"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) IsValid() bool {
	return c >= Yellow && c <= Black
}

// ColorFromName accepts a full color name or its one letter abbreviation,
// case-insensitively.
func ColorFromName(name string) (Color, bool) {
	for i := range colorNames {
		if strings.EqualFold(name, colorNames[i]) || strings.EqualFold(name, colorShortNames[i]) {
			return Color(i), true
		}
	}
	return EmptyColor, false
}

type Tile struct {
	Color  Color
	Number int
}

var (
	Wildcard = Tile{Color: WildcardColor, Number: -1}
	Empty    = Tile{Color: EmptyColor, Number: -1}
)

func NewTile(c Color, number int) Tile {
	return Tile{Color: c, Number: number}
}

// IsNormal reports whether the tile is a colored, numbered tile.
func (t Tile) IsNormal() bool {
	return t.Color.IsValid() && t.Number >= 1 && t.Number <= MaxNumber
}

func (t Tile) IsWildcard() bool {
	return t.Color == WildcardColor
}

func (t Tile) IsEmpty() bool {
	return t.Color == EmptyColor
}

func (t Tile) Equals(other Tile) bool {
	return t.Color == other.Color && t.Number == other.Number
}

// Less orders tiles by color first and number second.
func (t Tile) Less(other Tile) bool {
	if t.Color != other.Color {
		return t.Color < other.Color
	}
	return t.Number < other.Number
}

func (t Tile) String() string {
	switch {
	case t.IsWildcard():
		return "Joker"
	case t.IsEmpty():
		return "-"
	case t.Color.IsValid():
		return fmt.Sprintf("%s%d", colorShortNames[t.Color], t.Number)
	}
	return fmt.Sprintf("?%d", t.Number)
}
