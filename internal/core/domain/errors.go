package domain

import "errors"

var (
	ErrSeatNotFound      = errors.New("seat not found")
	ErrInvalidTransition = errors.New("invalid seat transition")
	ErrNotOwner          = errors.New("seat held by another user")
	ErrEmptyHistory      = errors.New("nothing to undo")
	ErrNoReservation     = errors.New("user has no reserved seat")
	ErrInvalidSeatID     = errors.New("invalid seat id")
)
