// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package datastore is a small key-value DSL built on readers.
//
// Programs are composed from [Get] and [Set] without touching a concrete
// store. A [Datastore] is supplied only when the program is run.
package datastore

import (
	"maps"
	"sync"
)

// Datastore is the capability bundle that DSL computations read.
type Datastore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryOption configures a Memory datastore.
type MemoryOption func(*Memory)

// WithSeed pre-populates the datastore. The seed map is copied.
func WithSeed(seed map[string]string) MemoryOption {
	return func(m *Memory) {
		maps.Copy(m.entries, seed)
	}
}

// Memory is a map-backed Datastore safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory returns an empty Memory datastore.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		entries: make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get implements the Datastore interface.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Set implements the Datastore interface.
func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
