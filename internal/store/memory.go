// internal/store/memory.go
//
// In-memory record of the rounds played in one session.
//
// Characteristics:
//   - Stores *Round values keyed by ID, and remembers insertion order for List.
//   - Concurrency-safe via RWMutex; the driver is single-threaded but the
//     store makes no assumption about its callers.
//   - State is lost when the process exits; nothing is persisted.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrNotFound is returned by Get for unknown round IDs.
var ErrNotFound = errors.New("round not found")

// SecretSource says how a round's secret was chosen.
type SecretSource string

const (
	SourceTyped  SecretSource = "typed"
	SourceRandom SecretSource = "random"
	SourceDaily  SecretSource = "daily"
)

// Round is one solver round as the driver saw it.
type Round struct {
	ID     string         // uuid, also attached to log lines
	Number int            // 1-based position in the session
	Secret string         // the word the solver was looking for
	Source SecretSource   // how Secret was picked
	Result *solver.Result // nil when the round failed before solving started
	Err    error          // why the round failed, if it did
}

// Failed reports whether the round ended without finding its secret.
func (r *Round) Failed() bool {
	return r.Err != nil || r.Result == nil || !r.Result.Solved
}

// Store defines the bookkeeping interface for rounds.
type Store interface {
	// Save records or replaces a round.
	Save(ctx context.Context, r *Round) error

	// Get retrieves a round by ID.
	Get(ctx context.Context, id string) (*Round, error)

	// List returns rounds in the order they were first saved.
	List(ctx context.Context) ([]*Round, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex      // guards rounds and order
	rounds map[string]*Round // keyed by Round.ID
	order  []string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*Round)}
}

func (m *memory) Save(ctx context.Context, r *Round) error {
	if r == nil || r.ID == "" {
		return errors.New("round needs an id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rounds[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.rounds[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) List(ctx context.Context) ([]*Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Round, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rounds[id])
	}
	return out, nil
}
