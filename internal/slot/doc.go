// Package slot holds the Slot data model and the pure logic around it:
// identifier generation, hour parsing, weekend classification, the
// day-dependent booking windows, window filtering, and the diff against the
// previously-notified identifier set.
package slot
