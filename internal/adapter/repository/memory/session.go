package memory

import (
	"fmt"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

var DefaultSeatIDs = []string{"A1", "A2", "A3", "A4", "A5", "A6"}

// Session is a single showtime with a fixed seat set held in memory.
type Session struct {
	id    string
	time  string
	order []string
	seats map[string]*domain.Seat
}

func NewSession(id, time string) *Session {
	s, _ := NewSessionWithSeats(id, time, DefaultSeatIDs...)
	return s
}

func NewSessionWithSeats(id, time string, seatIDs ...string) (*Session, error) {
	if len(seatIDs) == 0 {
		return nil, fmt.Errorf("session %s: no seats: %w", id, domain.ErrInvalidSeatID)
	}

	s := &Session{
		id:    id,
		time:  time,
		order: make([]string, 0, len(seatIDs)),
		seats: make(map[string]*domain.Seat, len(seatIDs)),
	}

	for _, seatID := range seatIDs {
		if seatID == "" {
			return nil, fmt.Errorf("session %s: empty seat id: %w", id, domain.ErrInvalidSeatID)
		}
		if _, dup := s.seats[seatID]; dup {
			return nil, fmt.Errorf("session %s: duplicate seat %s: %w", id, seatID, domain.ErrInvalidSeatID)
		}

		seat := domain.NewSeat(seatID)
		s.seats[seatID] = &seat
		s.order = append(s.order, seatID)
	}

	return s, nil
}

func (s *Session) ID() string   { return s.id }
func (s *Session) Time() string { return s.time }

func (s *Session) GetSeat(seatID string) (*domain.Seat, error) {
	seat, ok := s.seats[seatID]
	if !ok {
		return nil, fmt.Errorf("seat %s: %w", seatID, domain.ErrSeatNotFound)
	}

	return seat, nil
}

// Seats returns copies of all seats in layout order.
func (s *Session) Seats() []domain.Seat {
	seats := make([]domain.Seat, 0, len(s.order))
	for _, id := range s.order {
		seat := *s.seats[id]
		if seat.Occupant != nil {
			occupant := *seat.Occupant
			seat.Occupant = &occupant
		}
		seats = append(seats, seat)
	}

	return seats
}
