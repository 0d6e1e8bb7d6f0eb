package checker

import (
	"fmt"
	"strings"
)

// FormatSummaryReport renders a Summary as the human-readable multi-line
// report written to the run log.
func FormatSummaryReport(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Checked at: %s\n", s.CheckedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "Available: %d | Booked: %d | Sessions: %d | Closed days: %d\n",
		len(s.AvailableSlots), len(s.BookedSlots), len(s.SessionSlots), len(s.ClosedDays))

	for _, sl := range s.AvailableSlots {
		fmt.Fprintf(&b, "  AVAILABLE: %s at %s - %s\n", sl.Date, sl.Time, sl.Court)
	}
	for _, d := range s.ClosedDays {
		fmt.Fprintf(&b, "  CLOSED: %s\n", d)
	}

	return strings.TrimRight(b.String(), "\n")
}
