// Package checker talks to the St Johns Park booking site. It establishes a
// session, scrapes the day pages for the lookahead window, and buckets every
// slot it sees into available, booked, coached-session, and closed-day
// categories.
package checker
