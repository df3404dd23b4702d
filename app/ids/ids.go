// Package ids produces opaque identifiers for new posts and replies.
package ids

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a value distinct from every value it returned before.
type Generator interface {
	NewID() string
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() string

func (f GeneratorFunc) NewID() string { return f() }

// UUID generates random version 4 UUIDs.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Default returns the generator used when none is injected.
func Default() Generator { return UUID{} }

// Counter generates "<prefix>-1", "<prefix>-2", ... and is meant for tests.
type Counter struct {
	prefix string
	n      atomic.Uint64
}

func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

func (c *Counter) NewID() string {
	return c.prefix + "-" + strconv.FormatUint(c.n.Add(1), 10)
}

// Sequence hands out a fixed list of identifiers, then defers to fallback.
type Sequence struct {
	mu       sync.Mutex
	ids      []string
	fallback Generator
}

func NewSequence(fallback Generator, ids ...string) *Sequence {
	if fallback == nil {
		fallback = Default()
	}
	return &Sequence{ids: ids, fallback: fallback}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ids) == 0 {
		return s.fallback.NewID()
	}
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}
