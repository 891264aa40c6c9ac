package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	okIllegalTile
	okUnknownColor
	okIllegalNumber
	okIllegalCommand
	okTileNotInHand
	okHandFull
	okPoolEmpty
	okIllegalPlayerCount
	okIllegalName
	okNotWon
)

var errs = map[error]int{
	ErrIllegalTile:        okIllegalTile,
	ErrUnknownColor:       okUnknownColor,
	ErrIllegalNumber:      okIllegalNumber,
	ErrIllegalCommand:     okIllegalCommand,
	ErrTileNotInHand:      okTileNotInHand,
	ErrHandFull:           okHandFull,
	ErrPoolEmpty:          okPoolEmpty,
	ErrIllegalPlayerCount: okIllegalPlayerCount,
	ErrIllegalName:        okIllegalName,
	ErrNotWon:             okNotWon,
}
