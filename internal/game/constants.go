package game

const (
	fieldPlayer      = "player"
	fieldDeclaration = "declaration"
)

const (
	defaultConfigJoker = "Joker"
	defaultPlayers     = 2
)
