package seqstore

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Kind labels what a store event describes.
type Kind string

const (
	// KindRegister marks a sequence entering the store.
	KindRegister Kind = "register"
	// KindAccess marks a guarded access through Do (or a convenience built
	// on it).
	KindAccess Kind = "access"
	// KindRemove marks a sequence leaving the store.
	KindRemove Kind = "remove"
)

// Event describes one mutating access to the store.
type Event struct {
	// EntryID identifies the entry across its lifetime; stable under
	// extension, distinct across re-registrations of the same name.
	EntryID string
	Name    string
	Kind    Kind
	// Terms is the entry's cached term count when the operation finished.
	Terms int
	// Span covers the guarded operation, start to finish.
	Span timespan.TimeSpan
}

func newEvent(entryID, name string, kind Kind, terms int, start time.Time) Event {
	return Event{
		EntryID: entryID,
		Name:    name,
		Kind:    kind,
		Terms:   terms,
		Span:    timespan.BetweenTimes(start, time.Now()),
	}
}
