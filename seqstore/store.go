// Package seqstore shares sequences across goroutines by confinement.
//
// autoseq.Sequence is intentionally not thread-safe; this package never makes
// it so. Instead, every registered sequence lives behind its own mutex, and
// all access happens inside Do while that mutex is held — the sequence itself
// never sees concurrency. Entries are sharded by name hash so that unrelated
// sequences do not contend on one lock.
package seqstore

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/autoseq_go/autoseq"
)

var (
	// ErrExists is returned by Register when the name is already taken.
	ErrExists = errors.New("seqstore: sequence already registered")
	// ErrNotFound is returned when no sequence is registered under the name.
	ErrNotFound = errors.New("seqstore: sequence not found")
	// ErrClosed is returned by every operation on a closed store.
	ErrClosed = errors.New("seqstore: store closed")
)

// Store is a named-sequence registry. All methods are safe for concurrent
// use; the sequences inside are confined, one guarded owner per entry.
type Store[T any] struct {
	shards []*shard[T]
	logger *zap.Logger
	events chan Event

	mu     sync.Mutex
	closed bool
}

type shard[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
}

type entry[T any] struct {
	mu   sync.Mutex
	id   string
	name string
	seq  *autoseq.Sequence[T]
}

// New constructs an empty store.
func New[T any](opts ...Option) *Store[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	shards := make([]*shard[T], cfg.numShards)
	for i := range shards {
		shards[i] = &shard[T]{entries: map[string]*entry[T]{}}
	}
	return &Store[T]{
		shards: shards,
		logger: cfg.logger,
		events: make(chan Event, cfg.eventBuffer),
	}
}

func (s *Store[T]) shardFor(name string) *shard[T] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[xxhash.Sum64String(name)%uint64(len(s.shards))]
}

func (s *Store[T]) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Register creates a sequence under name from a formula of either shape plus
// optional seeds. Returns ErrExists if the name is taken, ErrClosed after
// Close.
func (s *Store[T]) Register(name string, formula autoseq.FormulaFunc[T], seeds ...T) error {
	if s.isClosed() {
		return ErrClosed
	}
	if formula == nil {
		return fmt.Errorf("seqstore: nil formula for %q", name)
	}
	start := time.Now()
	sh := s.shardFor(name)

	sh.mu.Lock()
	if _, ok := sh.entries[name]; ok {
		sh.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrExists, name)
	}
	e := &entry[T]{
		id:   uuid.New().String(),
		name: name,
		seq:  autoseq.New(formula, seeds...),
	}
	sh.entries[name] = e
	sh.mu.Unlock()

	s.logger.Info("sequence registered",
		zap.String("name", name),
		zap.String("entryId", e.id),
		zap.Int("seeds", len(seeds)),
	)
	s.emit(newEvent(e.id, name, KindRegister, len(seeds), start))
	return nil
}

// Do runs fn with exclusive access to the named sequence. fn must not retain
// the sequence, nor any live view of it, past its return: confinement only
// holds inside the callback.
func (s *Store[T]) Do(name string, fn func(*autoseq.Sequence[T])) error {
	if s.isClosed() {
		return ErrClosed
	}
	e, err := s.lookup(name)
	if err != nil {
		return err
	}
	start := time.Now()

	e.mu.Lock()
	fn(e.seq)
	terms := e.seq.Len()
	e.mu.Unlock()

	s.emit(newEvent(e.id, name, KindAccess, terms, start))
	return nil
}

// Term returns term n of the named sequence, extending it as needed.
func (s *Store[T]) Term(name string, n int) (T, error) {
	var out T
	err := s.Do(name, func(seq *autoseq.Sequence[T]) {
		out = seq.Get(n)
	})
	return out, err
}

// Window returns an owned copy of terms [start, end) of the named sequence.
// Never a live view: views must not escape the confinement boundary.
func (s *Store[T]) Window(name string, start, end int) ([]T, error) {
	var out []T
	err := s.Do(name, func(seq *autoseq.Sequence[T]) {
		out = seq.Slice(start, end).Snapshot()
	})
	return out, err
}

// SnapshotAll returns an owned copy of every registered sequence's cached
// terms, keyed by name.
func (s *Store[T]) SnapshotAll() map[string][]T {
	out := map[string][]T{}
	for _, sh := range s.shards {
		sh.mu.Lock()
		entries := make([]*entry[T], 0, len(sh.entries))
		for _, e := range sh.entries {
			entries = append(entries, e)
		}
		sh.mu.Unlock()

		for _, e := range entries {
			e.mu.Lock()
			out[e.name] = e.seq.Snapshot()
			e.mu.Unlock()
		}
	}
	return out
}

// Remove deletes the named sequence from the store.
func (s *Store[T]) Remove(name string) error {
	if s.isClosed() {
		return ErrClosed
	}
	start := time.Now()
	sh := s.shardFor(name)

	sh.mu.Lock()
	e, ok := sh.entries[name]
	if !ok {
		sh.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(sh.entries, name)
	sh.mu.Unlock()

	e.mu.Lock()
	terms := e.seq.Len()
	e.mu.Unlock()

	s.logger.Info("sequence removed",
		zap.String("name", name),
		zap.String("entryId", e.id),
		zap.Int("terms", terms),
	)
	s.emit(newEvent(e.id, name, KindRemove, terms, start))
	return nil
}

// Names returns the registered names, sorted.
func (s *Store[T]) Names() []string {
	var names []string
	for _, sh := range s.shards {
		sh.mu.Lock()
		for name := range sh.entries {
			names = append(names, name)
		}
		sh.mu.Unlock()
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered sequences.
func (s *Store[T]) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		total += len(sh.entries)
		sh.mu.Unlock()
	}
	return total
}

// Events returns the store's event stream. Events are emitted best-effort:
// when the buffer is full they are dropped rather than blocking a guarded
// operation. The channel is closed by Close.
func (s *Store[T]) Events() <-chan Event {
	return s.events
}

// Close closes the store and its event channel. Idempotent in effect; a
// second Close returns ErrClosed.
func (s *Store[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	close(s.events)
	s.logger.Info("sequence store closed", zap.Int("entries", s.lenLocked()))
	return nil
}

func (s *Store[T]) lenLocked() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		total += len(sh.entries)
		sh.mu.Unlock()
	}
	return total
}

func (s *Store[T]) lookup(name string) (*entry[T], error) {
	sh := s.shardFor(name)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	e, ok := sh.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e, nil
}

func (s *Store[T]) emit(ev Event) {
	defer func() {
		// Close may race an in-flight guarded operation; an event sent to
		// the closed channel is dropped, not fatal.
		if r := recover(); r != nil {
			s.logger.Warn("event dropped after close",
				zap.String("name", ev.Name),
				zap.String("kind", string(ev.Kind)),
			)
		}
	}()
	select {
	case s.events <- ev:
	default:
	}
}
