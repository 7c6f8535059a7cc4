package domain

import "fmt"

type SeatStatus int

const (
	SeatFree SeatStatus = iota
	SeatReserved
	SeatSold
)

func (s SeatStatus) String() string {
	switch s {
	case SeatFree:
		return "FREE"
	case SeatReserved:
		return "RESERVED"
	case SeatSold:
		return "SOLD"
	default:
		return fmt.Sprintf("SeatStatus(%d)", int(s))
	}
}

func (s SeatStatus) Valid() bool {
	return s >= SeatFree && s <= SeatSold
}

// Seat is one place in a session. Occupant is set exactly when Status is
// not SeatFree.
type Seat struct {
	ID       string
	Status   SeatStatus
	Occupant *User
}

func NewSeat(id string) Seat {
	return Seat{ID: id, Status: SeatFree}
}

func (s *Seat) IsFree() bool {
	return s.Status == SeatFree
}

func (s *Seat) HasOccupant() bool {
	return s.Occupant != nil
}

// OwnedBy reports whether the seat is held by a user with the same ID.
func (s *Seat) OwnedBy(user User) bool {
	return s.Occupant != nil && s.Occupant.ID == user.ID
}

// Snapshot captures the seat state. The snapshot owns its occupant copy.
func (s *Seat) Snapshot() SeatSnapshot {
	return SeatSnapshot{Status: s.Status, Occupant: cloneUser(s.Occupant)}
}

// Restore overwrites the seat with a previously captured snapshot.
func (s *Seat) Restore(snap SeatSnapshot) {
	s.Status = snap.Status
	s.Occupant = cloneUser(snap.Occupant)
}

// Reserve marks the seat as reserved by user. Callers validate the source
// state first.
func (s *Seat) Reserve(user User) {
	s.Status = SeatReserved
	s.Occupant = &user
}

func (s *Seat) Release() {
	s.Status = SeatFree
	s.Occupant = nil
}

// Sell moves the seat to sold, keeping its occupant as the buyer.
func (s *Seat) Sell() {
	s.Status = SeatSold
}

// SeatSnapshot is the state of a seat before a mutation.
type SeatSnapshot struct {
	Status   SeatStatus
	Occupant *User
}

func (s SeatSnapshot) Clone() SeatSnapshot {
	return SeatSnapshot{Status: s.Status, Occupant: cloneUser(s.Occupant)}
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
