// Package render turns seats and history entries into text for the
// console client.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

const nobody = "nobody"

type Renderer struct {
	header lipgloss.Style
	status map[domain.SeatStatus]lipgloss.Style
}

// New returns a Renderer. With plain set, output carries no styling.
func New(plain bool) *Renderer {
	r := &Renderer{
		header: lipgloss.NewStyle(),
		status: map[domain.SeatStatus]lipgloss.Style{
			domain.SeatFree:     lipgloss.NewStyle(),
			domain.SeatReserved: lipgloss.NewStyle(),
			domain.SeatSold:     lipgloss.NewStyle(),
		},
	}
	if plain {
		return r
	}

	r.header = r.header.Bold(true)
	r.status[domain.SeatFree] = r.status[domain.SeatFree].Foreground(lipgloss.Color("2"))
	r.status[domain.SeatReserved] = r.status[domain.SeatReserved].Foreground(lipgloss.Color("3"))
	r.status[domain.SeatSold] = r.status[domain.SeatSold].Foreground(lipgloss.Color("1")).Bold(true)
	return r
}

func (r *Renderer) Seat(seat domain.Seat) string {
	return fmt.Sprintf("%s: %s (%s)", seat.ID, r.status[seat.Status].Render(seat.Status.String()), occupantName(seat))
}

// Layout writes a session header followed by one line per seat.
func (r *Renderer) Layout(w io.Writer, sessionID, time string, seats []domain.Seat) error {
	if _, err := fmt.Fprintln(w, r.header.Render(fmt.Sprintf("session: %s, time: %s", sessionID, time))); err != nil {
		return err
	}

	for _, seat := range seats {
		if _, err := fmt.Fprintf(w, "  %s\n", r.Seat(seat)); err != nil {
			return err
		}
	}

	return nil
}

func occupantName(seat domain.Seat) string {
	if seat.Occupant == nil {
		return nobody
	}
	return seat.Occupant.Name
}

// Entry describes a completed operation.
func Entry(entry domain.HistoryEntry) string {
	switch e := entry.(type) {
	case domain.ReserveEntry:
		return fmt.Sprintf("%s reserved seat %s", e.Actor.Name, e.SeatID)
	case domain.CancelEntry:
		return fmt.Sprintf("%s cancelled the reservation of %s", e.Actor.Name, e.SeatID)
	case domain.BuyEntry:
		return fmt.Sprintf("%s bought a ticket for %s", e.Actor.Name, e.SeatID)
	case domain.ChangeSeatEntry:
		return fmt.Sprintf("%s moved from %s to %s", e.Actor.Name, e.OldSeatID, e.NewSeatID)
	default:
		return fmt.Sprintf("unknown action %T", entry)
	}
}

func UndoMessage(entry domain.HistoryEntry) string {
	switch e := entry.(type) {
	case domain.ReserveEntry:
		return fmt.Sprintf("undo: %s on %s", e.Action(), e.SeatID)
	case domain.CancelEntry:
		return fmt.Sprintf("undo: %s on %s", e.Action(), e.SeatID)
	case domain.BuyEntry:
		return fmt.Sprintf("undo: %s on %s", e.Action(), e.SeatID)
	case domain.ChangeSeatEntry:
		return fmt.Sprintf("undo: change %s -> %s", e.OldSeatID, e.NewSeatID)
	default:
		return fmt.Sprintf("undo: unknown action %T", entry)
	}
}
