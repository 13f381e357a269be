// internal/store/memory.go
//
// In-memory implementation of the round Store used by the HTTP front end.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs the mutation under the write lock so guesses on one round
//     never interleave.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNotFound is returned for unknown round IDs.
var ErrNotFound = errors.New("round not found")

// Store defines the persistence interface for rounds.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, g *game.Round) error

	// Get retrieves a round by ID.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Update applies fn to the stored round while holding it exclusively.
	Update(ctx context.Context, id string, fn func(*game.Round) error) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards rounds map and the rounds themselves
	rounds map[string]*game.Round // keyed by Round.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

// Save adds or updates the round in the map.
func (m *memory) Save(ctx context.Context, g *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[g.ID] = g
	return nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.rounds[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

// Update runs fn against the stored round under the write lock.
func (m *memory) Update(ctx context.Context, id string, fn func(*game.Round) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}
