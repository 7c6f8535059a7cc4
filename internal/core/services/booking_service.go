package services

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/srgjo27/seat_reservation/internal/core/ports"
)

// BookingService applies seat transitions to one session and keeps the undo
// history for it. It is not safe for concurrent use.
type BookingService struct {
	registry ports.SeatRegistry
	history  []domain.HistoryEntry
	logger   *slog.Logger
}

type Option func(*BookingService)

func WithLogger(logger *slog.Logger) Option {
	return func(s *BookingService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewBookingService(registry ports.SeatRegistry, opts ...Option) *BookingService {
	s := &BookingService{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *BookingService) ReserveSeat(seatID string, user domain.User) error {
	seat, err := s.registry.GetSeat(seatID)
	if err != nil {
		return err
	}

	if !seat.IsFree() {
		return fmt.Errorf("reserve %s: seat is %s: %w", seatID, seat.Status, domain.ErrInvalidTransition)
	}

	s.push(domain.ReserveEntry{SeatID: seatID, Prior: seat.Snapshot(), Actor: user})
	seat.Reserve(user)

	s.logger.Debug("seat reserved", "seat", seatID, "user", user.Name)
	return nil
}

func (s *BookingService) CancelReservation(seatID string, user domain.User) error {
	seat, err := s.reservedBy(seatID, user, "cancel")
	if err != nil {
		return err
	}

	s.push(domain.CancelEntry{SeatID: seatID, Prior: seat.Snapshot(), Actor: user})
	seat.Release()

	s.logger.Debug("reservation cancelled", "seat", seatID, "user", user.Name)
	return nil
}

func (s *BookingService) BuyTicket(seatID string, user domain.User) error {
	seat, err := s.reservedBy(seatID, user, "buy")
	if err != nil {
		return err
	}

	s.push(domain.BuyEntry{SeatID: seatID, Prior: seat.Snapshot(), Actor: user})
	seat.Sell()

	s.logger.Debug("ticket sold", "seat", seatID, "user", user.Name)
	return nil
}

// ChangeSeat moves the user's reservation from oldSeatID to newSeatID. Both
// seats change or neither does.
func (s *BookingService) ChangeSeat(oldSeatID, newSeatID string, user domain.User) error {
	oldSeat, err := s.reservedBy(oldSeatID, user, "change")
	if err != nil {
		return err
	}

	newSeat, err := s.registry.GetSeat(newSeatID)
	if err != nil {
		return err
	}

	if !newSeat.IsFree() {
		return fmt.Errorf("change %s -> %s: target seat is %s: %w", oldSeatID, newSeatID, newSeat.Status, domain.ErrInvalidTransition)
	}

	s.push(domain.ChangeSeatEntry{
		OldSeatID: oldSeatID,
		NewSeatID: newSeatID,
		PriorOld:  oldSeat.Snapshot(),
		PriorNew:  newSeat.Snapshot(),
		Actor:     user,
	})
	oldSeat.Release()
	newSeat.Reserve(user)

	s.logger.Debug("seat changed", "from", oldSeatID, "to", newSeatID, "user", user.Name)
	return nil
}

// ChangeSeatTo moves the first seat the user holds reserved to newSeatID.
func (s *BookingService) ChangeSeatTo(newSeatID string, user domain.User) error {
	for _, seat := range s.registry.Seats() {
		if seat.Status == domain.SeatReserved && seat.OwnedBy(user) {
			return s.ChangeSeat(seat.ID, newSeatID, user)
		}
	}

	return fmt.Errorf("change to %s for %s: %w", newSeatID, user.Name, domain.ErrNoReservation)
}

// UndoLast reverts the most recent successful operation by writing back the
// captured snapshots. The current seat state is not checked.
func (s *BookingService) UndoLast() (domain.HistoryEntry, error) {
	if len(s.history) == 0 {
		return nil, domain.ErrEmptyHistory
	}

	last := len(s.history) - 1
	entry := s.history[last]

	var err error
	switch e := entry.(type) {
	case domain.ReserveEntry:
		err = s.restore(e.SeatID, e.Prior)
	case domain.CancelEntry:
		err = s.restore(e.SeatID, e.Prior)
	case domain.BuyEntry:
		err = s.restore(e.SeatID, e.Prior)
	case domain.ChangeSeatEntry:
		err = s.restorePair(e)
	default:
		err = fmt.Errorf("undo: unknown history entry %T", entry)
	}
	if err != nil {
		return nil, err
	}

	s.history[last] = nil
	s.history = s.history[:last]

	s.logger.Info("undo", "action", string(entry.Action()))
	return entry, nil
}

// History returns copies of the recorded entries, oldest first.
func (s *BookingService) History() []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(s.history))
	for i, entry := range s.history {
		out[i] = domain.CopyEntry(entry)
	}
	return out
}

func (s *BookingService) CanUndo() bool {
	return len(s.history) > 0
}

func (s *BookingService) reservedBy(seatID string, user domain.User, op string) (*domain.Seat, error) {
	seat, err := s.registry.GetSeat(seatID)
	if err != nil {
		return nil, err
	}

	if seat.IsFree() {
		return nil, fmt.Errorf("%s %s: seat is %s: %w", op, seatID, seat.Status, domain.ErrInvalidTransition)
	}

	// A held seat belongs to someone else whatever its stage.
	if !seat.OwnedBy(user) {
		return nil, fmt.Errorf("%s %s: %w", op, seatID, domain.ErrNotOwner)
	}

	if seat.Status != domain.SeatReserved {
		return nil, fmt.Errorf("%s %s: seat is %s: %w", op, seatID, seat.Status, domain.ErrInvalidTransition)
	}

	return seat, nil
}

func (s *BookingService) restore(seatID string, snap domain.SeatSnapshot) error {
	seat, err := s.registry.GetSeat(seatID)
	if err != nil {
		return err
	}

	seat.Restore(snap)
	return nil
}

func (s *BookingService) restorePair(e domain.ChangeSeatEntry) error {
	oldSeat, err := s.registry.GetSeat(e.OldSeatID)
	if err != nil {
		return err
	}
	newSeat, err := s.registry.GetSeat(e.NewSeatID)
	if err != nil {
		return err
	}

	oldSeat.Restore(e.PriorOld)
	newSeat.Restore(e.PriorNew)
	return nil
}

func (s *BookingService) push(entry domain.HistoryEntry) {
	s.history = append(s.history, entry)
}
