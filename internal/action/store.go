package action

import (
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/itemkit/internal/logger"
	"github.com/osse101/itemkit/internal/metrics"
)

// Store holds registered actions by identifier
type Store interface {
	Get(id string) (RegisteredAction, bool)
	Put(id string, action RegisteredAction)
	Delete(id string) bool
	Len() int
	Keys() []string
}

// MapStore keeps every action for the life of the process. Items are
// discarded by the host without notice, so entries are never reclaimed
// unless Unregister is called. Not safe for concurrent use on its own.
type MapStore struct {
	actions map[string]RegisteredAction
}

// NewMapStore creates an unbounded store
func NewMapStore() *MapStore {
	return &MapStore{actions: make(map[string]RegisteredAction)}
}

func (s *MapStore) Get(id string) (RegisteredAction, bool) {
	a, ok := s.actions[id]
	return a, ok
}

func (s *MapStore) Put(id string, action RegisteredAction) {
	s.actions[id] = action
}

func (s *MapStore) Delete(id string) bool {
	if _, ok := s.actions[id]; !ok {
		return false
	}
	delete(s.actions, id)
	return true
}

func (s *MapStore) Len() int {
	return len(s.actions)
}

func (s *MapStore) Keys() []string {
	keys := make([]string, 0, len(s.actions))
	for k := range s.actions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LRUStore bounds the number of live actions and optionally expires them.
// Clicking an item whose action was evicted does nothing.
type LRUStore struct {
	lru *expirable.LRU[string, RegisteredAction]
}

// NewLRUStore creates a store holding at most size actions; ttl <= 0 disables expiry.
// Evictions and expiries decrement the stored-actions gauge.
func NewLRUStore(size int, ttl time.Duration) *LRUStore {
	// runs under the LRU's own lock, so it must not call back into the store
	onEvict := func(id string, _ RegisteredAction) {
		metrics.ActionsStored.Dec()
		logger.Debug(LogMsgActionEvicted, "action_id", id)
	}
	return &LRUStore{
		lru: expirable.NewLRU[string, RegisteredAction](size, onEvict, ttl),
	}
}

func (s *LRUStore) Get(id string) (RegisteredAction, bool) {
	return s.lru.Get(id)
}

func (s *LRUStore) Put(id string, action RegisteredAction) {
	s.lru.Add(id, action)
}

func (s *LRUStore) Delete(id string) bool {
	return s.lru.Remove(id)
}

func (s *LRUStore) Len() int {
	return s.lru.Len()
}

// Keys returns identifiers from oldest to newest
func (s *LRUStore) Keys() []string {
	return s.lru.Keys()
}
