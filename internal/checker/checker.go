package checker

import (
	"context"
	"time"

	"github.com/stjohnspark/court-watch/internal/slot"
)

// Summary categorizes every slot observed on the booking site for the
// lookahead window.
type Summary struct {
	AvailableSlots []slot.Slot `json:"available_slots"`
	BookedSlots    []slot.Slot `json:"booked_slots"`
	SessionSlots   []slot.Slot `json:"session_slots"`
	ClosedDays     []string    `json:"closed_days"`
	CheckedAt      time.Time   `json:"checked_at"`
}

// Checker is the booking-site collaborator contract. The monitor treats the
// implementation as opaque: a session is established once, then a full slot
// summary is fetched.
type Checker interface {
	InitializeSession(ctx context.Context) error
	AllSlotsSummary(ctx context.Context) (*Summary, error)
}
