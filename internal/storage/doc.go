// Package storage persists the de-duplication state between runs: the flat
// set of slot identifiers that have already been included in a notification.
package storage
