package game

import (
	"strconv"
	"strings"

	"github.com/lonng/okey/internal/game/okey"
	"github.com/lonng/okey/pkg/errutil"
	"github.com/pkg/errors"
)

const jokerToken = "joker"

// ParseTile parses a single tile token: "Joker", a one letter color followed
// by the number ("R5", "K13") or a color name followed by the number with an
// optional space ("Red 5").
func ParseTile(s string) (okey.Tile, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, jokerToken) {
		return okey.Wildcard, nil
	}

	i := strings.IndexAny(s, "0123456789")
	if i <= 0 {
		return okey.Empty, errors.Wrapf(errutil.ErrIllegalTile, "token %q", s)
	}
	return ParseTileParts(strings.TrimSpace(s[:i]), s[i:])
}

// ParseTileParts parses a color token and a number token.
func ParseTileParts(color, number string) (okey.Tile, error) {
	c, ok := okey.ColorFromName(color)
	if !ok {
		return okey.Empty, errors.Wrapf(errutil.ErrUnknownColor, "color %q", color)
	}
	n, err := strconv.Atoi(number)
	if err != nil || n < 1 || n > okey.MaxNumber {
		return okey.Empty, errors.Wrapf(errutil.ErrIllegalNumber, "number %q", number)
	}
	return okey.NewTile(c, n), nil
}

// ParseTiles parses a whitespace or comma separated tile list. Color names may
// be separated from their number by a space.
func ParseTiles(s string) ([]okey.Tile, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var tiles []okey.Tile
	for i := 0; i < len(fields); i++ {
		token := fields[i]
		if _, ok := okey.ColorFromName(token); ok && i+1 < len(fields) {
			t, err := ParseTileParts(token, fields[i+1])
			if err != nil {
				return nil, errors.Wrapf(err, "tile %d", len(tiles)+1)
			}
			tiles = append(tiles, t)
			i++
			continue
		}
		t, err := ParseTile(token)
		if err != nil {
			return nil, errors.Wrapf(err, "tile %d", len(tiles)+1)
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// ParseHand parses at most okey.HandSize tiles into a hand.
func ParseHand(s string) (okey.Hand, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return okey.Hand{}, err
	}
	if len(tiles) > okey.HandSize {
		return okey.Hand{}, errors.Wrapf(errutil.ErrHandFull, "%d tiles", len(tiles))
	}
	return okey.NewHand(tiles...), nil
}
