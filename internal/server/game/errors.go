package game

import "errors"

var (
	ErrNotFound           = errors.New("game not found")
	ErrNotYourPiece       = errors.New("no piece of the side to move on that square")
	ErrIllegalMove        = errors.New("illegal move")
	ErrAwaitingPromotion  = errors.New("awaiting promotion choice")
	ErrNoPromotionPending = errors.New("no promotion pending")
	ErrInvalidPromotion   = errors.New("invalid promotion choice")
)
