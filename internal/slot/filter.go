package slot

import "sort"

// FilterWindow keeps slots whose parsed hour lies inside the day-appropriate
// booking window. Slots with unparseable time labels are returned separately
// so the caller can log them before dropping them.
func FilterWindow(slots []Slot) (kept, skipped []Slot) {
	kept = make([]Slot, 0, len(slots))
	for _, s := range slots {
		h := ParseHour(s.Time)
		if h == InvalidHour {
			skipped = append(skipped, s)
			continue
		}
		min, max := HourRange(s.Date)
		if h >= min && h < max {
			kept = append(kept, s)
		}
	}
	return kept, skipped
}

// GroupByDate buckets slots by date. The returned dates are sorted ascending
// and each bucket is sorted by time of day, earliest first.
func GroupByDate(slots []Slot) ([]string, map[string][]Slot) {
	buckets := make(map[string][]Slot)
	for _, s := range slots {
		buckets[s.Date] = append(buckets[s.Date], s)
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, d := range dates {
		b := buckets[d]
		sort.SliceStable(b, func(i, j int) bool {
			return MinutesOfDay(b[i].Time) < MinutesOfDay(b[j].Time)
		})
	}
	return dates, buckets
}
