package ports

import (
	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

// SeatRegistry owns the fixed seat set of a session. GetSeat returns a
// reference the engine mutates in place; Seats returns copies for display.
type SeatRegistry interface {
	GetSeat(seatID string) (*domain.Seat, error)
	Seats() []domain.Seat
}
