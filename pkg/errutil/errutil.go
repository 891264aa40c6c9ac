package errutil

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrIllegalTile        = errors.New("illegal tile")
	ErrUnknownColor       = errors.New("unknown tile color")
	ErrIllegalNumber      = errors.New("illegal tile number")
	ErrIllegalCommand     = errors.New("illegal command")
	ErrTileNotInHand      = errors.New("tile not in hand")
	ErrHandFull           = errors.New("hand is full")
	ErrPoolEmpty          = errors.New("tile pool is empty")
	ErrIllegalPlayerCount = errors.New("illegal player count")
	ErrIllegalName        = errors.New("illegal player name")
	ErrNotWon             = errors.New("not won now")
)

//Code code for the error, wrapped errors are unwrapped first
func Code(err error) int {
	if c, ok := errs[pkgerrors.Cause(err)]; ok {
		return c
	}
	return Unknown
}

// Status maps err to a process exit status: 0 for nil, 2 when the hand did
// not win and 1 for every other failure.
func Status(err error) int {
	switch {
	case err == nil:
		return 0
	case pkgerrors.Cause(err) == ErrNotWon:
		return 2
	}
	return 1
}
