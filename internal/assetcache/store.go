package assetcache

import (
	"sort"
	"strings"
	"sync"
)

// Entry is one cached response.
type Entry struct {
	URL         string
	Status      int
	ContentType string
	Body        []byte
}

// Store holds named caches. Commit replaces a cache atomically.
type Store interface {
	Commit(name string, entries []Entry) error
	Keys(name string) []string
	Names() []string
	Delete(name string)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.RWMutex
	caches map[string]map[string]Entry
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{caches: map[string]map[string]Entry{}}
}

func (s *MemoryStore) Commit(name string, entries []Entry) error {
	cache := make(map[string]Entry, len(entries))
	for _, e := range entries {
		cache[e.URL] = e
	}
	s.mu.Lock()
	s.caches[name] = cache
	s.mu.Unlock()
	return nil
}

// Keys lists the URLs stored under name in sorted order.
func (s *MemoryStore) Keys(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.caches[name]))
	for k := range s.caches[name] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the entry for url in cache name.
func (s *MemoryStore) Get(name, url string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.caches[name][url]
	return e, ok
}

func (s *MemoryStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.caches))
	for k := range s.caches {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (s *MemoryStore) Delete(name string) {
	s.mu.Lock()
	delete(s.caches, name)
	s.mu.Unlock()
}

// Prune deletes every cache sharing prefix except keep. It returns the deleted names.
func Prune(s Store, prefix, keep string) []string {
	var deleted []string
	for _, name := range s.Names() {
		if name != keep && strings.HasPrefix(name, prefix+"-") {
			s.Delete(name)
			deleted = append(deleted, name)
		}
	}
	return deleted
}
