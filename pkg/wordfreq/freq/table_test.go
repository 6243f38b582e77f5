package freq

import (
	"fmt"
	"sort"
	"sync"
	"testing"
)

func TestTableIncrement(t *testing.T) {
	table := New(4)

	if n := table.Increment("apple"); n != 1 {
		t.Errorf("Expected first increment to return 1, got %d", n)
	}
	if n := table.Increment("apple"); n != 2 {
		t.Errorf("Expected second increment to return 2, got %d", n)
	}
	table.Increment("pear")

	if table.Count("apple") != 2 {
		t.Errorf("Expected apple=2, got %d", table.Count("apple"))
	}
	if table.Count("missing") != 0 {
		t.Error("Unknown word should count 0")
	}
	if table.Len() != 2 {
		t.Errorf("Expected 2 unique words, got %d", table.Len())
	}
	if table.Total() != 3 {
		t.Errorf("Expected total 3, got %d", table.Total())
	}
}

func TestTableShardRounding(t *testing.T) {
	tests := map[int]int{0: DefaultShards, -3: DefaultShards, 1: 1, 3: 4, 64: 64, 65: 128}
	for in, want := range tests {
		if got := len(New(in).shards); got != want {
			t.Errorf("New(%d) has %d shards, expected %d", in, got, want)
		}
	}
}

func TestTableConcurrentIncrements(t *testing.T) {
	table := New(8)
	words := []string{"the", "and", "word", "list", "typing"}

	const workers = 32
	const perWorker = 1000

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				table.Increment(words[i%len(words)])
			}
		}()
	}
	wg.Wait()

	want := uint64(workers * perWorker / len(words))
	for _, w := range words {
		if got := table.Count(w); got != want {
			t.Errorf("Expected %s=%d, got %d", w, want, got)
		}
	}
	if table.Total() != workers*perWorker {
		t.Errorf("Lost updates: total %d", table.Total())
	}
}

func TestTableSnapshot(t *testing.T) {
	table := New(2)
	for i := 0; i < 50; i++ {
		table.Increment(fmt.Sprintf("w%02d", i%10))
	}

	entries := table.Snapshot()
	if len(entries) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(entries))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })
	for i, e := range entries {
		if e.Word != fmt.Sprintf("w%02d", i) || e.Count != 5 {
			t.Errorf("Unexpected entry %+v", e)
		}
	}
}
