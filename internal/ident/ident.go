// Package ident generates record identifiers and timestamps.
// A Source is injected into the store so tests can pin the clock.
package ident

import (
	"time"

	"github.com/google/uuid"
)

// Source mints globally unique ids and ISO-8601 timestamps.
type Source struct {
	clock func() time.Time
}

// New creates a Source backed by the wall clock.
func New() *Source {
	return &Source{clock: time.Now}
}

// NewWithClock creates a Source with an injected clock.
func NewWithClock(clock func() time.Time) *Source {
	return &Source{clock: clock}
}

// NewID returns a fresh unique record id.
func (s *Source) NewID() string {
	return uuid.NewString()
}

// Now returns the current time as an RFC3339 UTC string.
// Lexicographic order of these strings is chronological order.
func (s *Source) Now() string {
	return s.clock().UTC().Format(time.RFC3339)
}
