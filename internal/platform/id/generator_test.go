package id

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestSequence_StartsAtOneAndResets(t *testing.T) {
	t.Parallel()

	seq := NewSequence()
	if got := seq.Next(); got != 1 {
		t.Fatalf("first value: got=%d want=1", got)
	}
	if got := seq.Next(); got != 2 {
		t.Fatalf("second value: got=%d want=2", got)
	}

	seq.Reset()
	if got := seq.Last(); got != 0 {
		t.Fatalf("last after reset: got=%d want=0", got)
	}
	if got := seq.Next(); got != 1 {
		t.Fatalf("value after reset: got=%d want=1", got)
	}
}

func TestSequence_ConcurrentValuesAreUnique(t *testing.T) {
	t.Parallel()

	seq := NewSequence()
	const n = 200

	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := seq.Next()
			mu.Lock()
			seen[v] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Fatalf("expected %d unique values, got %d", n, len(seen))
	}
	if seq.Last() != n {
		t.Fatalf("expected last=%d, got %d", n, seq.Last())
	}
}

func TestRunIDGenerator_ReturnsUUID(t *testing.T) {
	t.Parallel()

	got, err := NewRunIDGenerator().NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", got, err)
	}
}
