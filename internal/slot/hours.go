package slot

import (
	"strconv"
	"strings"
	"time"
)

// InvalidHour is returned by ParseHour for labels it cannot understand.
const InvalidHour = -1

// lastMinute sorts unparseable time labels after every real time of day.
const lastMinute = 24 * 60

// IsWeekend reports whether the ISO date falls on a Saturday or Sunday.
// Unparseable dates are treated as weekdays.
func IsWeekend(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// HourRange returns the half-open [min, max) hour window that counts as
// notification-worthy for the given date: 9am-10pm on weekends, 5pm-midnight
// on weekdays.
func HourRange(date string) (min, max int) {
	if IsWeekend(date) {
		return 9, 22
	}
	return 17, 24
}

// ParseHour converts a time label to a 24-hour value. It accepts "Npm", "Nam"
// (12pm stays 12, 12am becomes 0) and "HH:MM". Anything else yields
// InvalidHour.
func ParseHour(label string) int {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.HasSuffix(l, "pm"):
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(l, "pm")))
		if err != nil || n < 1 || n > 12 {
			return InvalidHour
		}
		if n != 12 {
			n += 12
		}
		return n
	case strings.HasSuffix(l, "am"):
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(l, "am")))
		if err != nil || n < 1 || n > 12 {
			return InvalidHour
		}
		if n == 12 {
			n = 0
		}
		return n
	case strings.Contains(l, ":"):
		n, err := strconv.Atoi(strings.SplitN(l, ":", 2)[0])
		if err != nil || n < 0 || n > 23 {
			return InvalidHour
		}
		return n
	}
	return InvalidHour
}

// MinutesOfDay converts a time label to minutes since midnight for sorting.
// It is more lenient than ParseHour ("5:30pm" is accepted); labels it cannot
// parse sort last.
func MinutesOfDay(label string) int {
	l := strings.ToLower(strings.TrimSpace(label))

	meridiem := ""
	if strings.HasSuffix(l, "am") || strings.HasSuffix(l, "pm") {
		meridiem = l[len(l)-2:]
		l = strings.TrimSpace(l[:len(l)-2])
	}

	hs, ms := l, "0"
	if i := strings.IndexByte(l, ':'); i >= 0 {
		hs, ms = l[:i], l[i+1:]
	}

	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 {
		return lastMinute
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return lastMinute
	}

	switch meridiem {
	case "pm":
		if h != 12 {
			h += 12
		}
	case "am":
		if h == 12 {
			h = 0
		}
	}
	if h > 23 {
		return lastMinute
	}
	return h*60 + m
}
