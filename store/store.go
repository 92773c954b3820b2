package store

import "github.com/krisalay/ttl-cache/types"

/*
This file defines how entries are actually held by a cache.

The store is a plain map. It takes no locks: a cache owns exactly one store
and whoever owns the cache serializes access to it.
*/

// Store is the interface the cache uses to store and retrieve entries. Keys
// are already validated and normalized by the time they reach it.
type Store interface {

	// Get retrieves an entry by key.
	Get(any) (*types.CacheEntry, bool)

	// Put inserts or replaces an entry.
	Put(any, *types.CacheEntry)

	// Delete removes an entry. Deleting a missing key is a no-op.
	Delete(any)

	// Clear removes every entry.
	Clear()

	// Len returns how many entries are stored, expired or not.
	Len() int

	// Range calls fn for every entry until fn returns false.
	// fn may delete the entry it is given.
	Range(fn func(key any, ent *types.CacheEntry) bool)
}

type mapStore struct {
	data map[any]*types.CacheEntry
}

// NewMapStore returns an empty map-backed Store.
func NewMapStore() Store {
	return &mapStore{data: make(map[any]*types.CacheEntry)}
}

func (s *mapStore) Get(key any) (*types.CacheEntry, bool) {
	ent, ok := s.data[key]
	return ent, ok
}

func (s *mapStore) Put(key any, ent *types.CacheEntry) {
	s.data[key] = ent
}

func (s *mapStore) Delete(key any) {
	delete(s.data, key)
}

// Clear swaps in a fresh map instead of deleting key by key.
func (s *mapStore) Clear() {
	s.data = make(map[any]*types.CacheEntry)
}

func (s *mapStore) Len() int {
	return len(s.data)
}

func (s *mapStore) Range(fn func(key any, ent *types.CacheEntry) bool) {
	for k, ent := range s.data {
		if !fn(k, ent) {
			return
		}
	}
}
