package slot

// Slot represents a single bookable (date, time, court) combination reported
// by the booking site.
type Slot struct {
	Date  string `json:"date"`  // ISO date, e.g. "2026-09-05"
	Time  string `json:"time"`  // "HH:MM" or "8pm" style label
	Court string `json:"court"` // e.g. "Court 1"
}

// ID returns the de-duplication key for a slot. The format matches the
// identifiers persisted in the notified-state file.
func (s Slot) ID() string {
	return s.Date + "_" + s.Time + "_" + s.Court
}

// IDs returns the identifiers of the given slots, preserving order.
func IDs(slots []Slot) []string {
	ids := make([]string, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.ID())
	}
	return ids
}

// IDSet returns the identifiers of the given slots as a set.
func IDSet(slots []Slot) map[string]struct{} {
	set := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		set[s.ID()] = struct{}{}
	}
	return set
}

// Diff returns the slots whose identifiers do not appear in previous,
// preserving input order. A nil previous set means every slot is new.
func Diff(previous map[string]struct{}, current []Slot) []Slot {
	fresh := make([]Slot, 0)
	for _, s := range current {
		if _, seen := previous[s.ID()]; !seen {
			fresh = append(fresh, s)
		}
	}
	return fresh
}
