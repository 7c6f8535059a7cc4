package domain

type ActionKind string

const (
	ActionReserve ActionKind = "reserve"
	ActionCancel  ActionKind = "cancel"
	ActionBuy     ActionKind = "buy"
	ActionChange  ActionKind = "change"
)

// HistoryEntry records one successful mutation together with the state it
// replaced. The set of implementations is closed to this package.
type HistoryEntry interface {
	Action() ActionKind
	historyEntry()
}

type ReserveEntry struct {
	SeatID string
	Prior  SeatSnapshot
	Actor  User
}

type CancelEntry struct {
	SeatID string
	Prior  SeatSnapshot
	Actor  User
}

type BuyEntry struct {
	SeatID string
	Prior  SeatSnapshot
	Actor  User
}

// ChangeSeatEntry covers both seats of a seat change so they are undone together.
type ChangeSeatEntry struct {
	OldSeatID string
	NewSeatID string
	PriorOld  SeatSnapshot
	PriorNew  SeatSnapshot
	Actor     User
}

func (ReserveEntry) Action() ActionKind    { return ActionReserve }
func (CancelEntry) Action() ActionKind     { return ActionCancel }
func (BuyEntry) Action() ActionKind        { return ActionBuy }
func (ChangeSeatEntry) Action() ActionKind { return ActionChange }

func (ReserveEntry) historyEntry()    {}
func (CancelEntry) historyEntry()     {}
func (BuyEntry) historyEntry()        {}
func (ChangeSeatEntry) historyEntry() {}

// CopyEntry returns entry with its snapshots detached from the original.
func CopyEntry(entry HistoryEntry) HistoryEntry {
	switch e := entry.(type) {
	case ReserveEntry:
		e.Prior = e.Prior.Clone()
		return e
	case CancelEntry:
		e.Prior = e.Prior.Clone()
		return e
	case BuyEntry:
		e.Prior = e.Prior.Clone()
		return e
	case ChangeSeatEntry:
		e.PriorOld = e.PriorOld.Clone()
		e.PriorNew = e.PriorNew.Clone()
		return e
	default:
		return entry
	}
}
