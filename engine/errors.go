package engine

import "errors"

var (
	ErrInvalidRank      = errors.New("invalid rank")
	ErrInvalidSuit      = errors.New("invalid suit")
	ErrEmptyDeck        = errors.New("deck is empty")
	ErrCardNotFound     = errors.New("card not in stash")
	ErrCapacityExceeded = errors.New("stash exceeds maximum card length")
	ErrDuplicatePlayer  = errors.New("duplicate player name")
	ErrUnknownPlayer    = errors.New("player does not belong to this game")
	ErrDeckTooSmall     = errors.New("not enough cards to deal")
	ErrNoPlayers        = errors.New("game needs at least one player")
)
