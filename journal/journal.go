package journal

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Provider stores recorded exchanges.
// It stores []byte values, which represent a request and its response.
// Entries are found by key prefix, see KeyPrefix and MethodPrefix.
//
// Implementations must be thread-safe!
type Provider interface {
	// Put stores an entry under its key, replacing any entry with the same key.
	Put(Entry) error
	// All returns all entries that have the specific key prefix,
	// oldest request first.
	All(prefix string) ([]Entry, error)
	// Close releases the storage.
	Close() error
}

type Entry struct {
	Key         string
	RequestedAt time.Time
	RespondedAt time.Time
	Bytes       []byte
}

// Open returns the provider for a journal name:
// "memory" for an in-memory journal, otherwise the SQLite file name.
func Open(name string) (Provider, error) {
	switch name {
	case "":
		return nil, fmt.Errorf("Journal name is empty")
	case "memory":
		return NewMemJournal(), nil
	default:
		return NewSQLiteJournal(name)
	}
}

type MemJournal struct {
	mutex *sync.RWMutex
	db    map[string]Entry
}

func NewMemJournal() MemJournal {
	return MemJournal{
		mutex: &sync.RWMutex{},
		db:    make(map[string]Entry),
	}
}

func (m MemJournal) Put(e Entry) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.db[e.Key] = e
	return nil
}

func (m MemJournal) All(prefix string) ([]Entry, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	entries := make([]Entry, 0)
	for key, entry := range m.db {
		if strings.HasPrefix(key, prefix) {
			entries = append(entries, entry)
		}
	}
	sortEntries(entries)
	return entries, nil
}

func (m MemJournal) Close() error {
	return nil
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].RequestedAt.Equal(entries[j].RequestedAt) {
			return entries[i].Key < entries[j].Key
		}
		return entries[i].RequestedAt.Before(entries[j].RequestedAt)
	})
}
