// Package freq holds the word frequency table shared by all workers of a run.
package freq

import (
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultShards is used when New is given a non-positive shard count.
const DefaultShards = 64

// Entry is one row of the final table.
type Entry struct {
	Word  string
	Count uint64
}

type shard struct {
	mu     sync.Mutex
	counts map[string]uint64
}

// Table maps normalized words to occurrence counts. Words are spread over
// independently locked shards so that writers only contend when they hit
// the same shard. Entries are never removed or decremented.
type Table struct {
	shards []shard
	mask   uint64
}

// New creates a table with the given number of shards, rounded up to a
// power of two.
func New(shards int) *Table {
	if shards <= 0 {
		shards = DefaultShards
	}
	n := 1
	for n < shards {
		n <<= 1
	}
	t := &Table{
		shards: make([]shard, n),
		mask:   uint64(n - 1),
	}
	for i := range t.shards {
		t.shards[i].counts = make(map[string]uint64)
	}
	return t
}

func (t *Table) shardFor(word string) *shard {
	return &t.shards[xxhash.Sum64String(word)&t.mask]
}

// Increment adds one occurrence of word, inserting it if needed, and
// returns the new count. Safe for concurrent use.
func (t *Table) Increment(word string) uint64 {
	s := t.shardFor(word)
	s.mu.Lock()
	n, ok := s.counts[word]
	if !ok {
		// word usually aliases a whole document's text; keep only its bytes.
		word = strings.Clone(word)
	}
	n++
	s.counts[word] = n
	s.mu.Unlock()
	return n
}

// Count returns the current count of word.
func (t *Table) Count(word string) uint64 {
	s := t.shardFor(word)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[word]
}

// Len returns the number of unique words.
func (t *Table) Len() int {
	n := 0
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.Lock()
		n += len(s.counts)
		s.mu.Unlock()
	}
	return n
}

// Total returns the sum of all counts.
func (t *Table) Total() uint64 {
	var total uint64
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.Lock()
		for _, c := range s.counts {
			total += c
		}
		s.mu.Unlock()
	}
	return total
}

// Snapshot copies out every entry in no particular order. It is meant to be
// called once, after all writers have finished.
func (t *Table) Snapshot() []Entry {
	entries := make([]Entry, 0, t.Len())
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.Lock()
		for w, c := range s.counts {
			entries = append(entries, Entry{Word: w, Count: c})
		}
		s.mu.Unlock()
	}
	return entries
}
