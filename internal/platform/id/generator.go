package id

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// RunIDGenerator labels one warehouse build so its logs and metrics can be
// correlated.
type RunIDGenerator struct{}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{}
}

func (g *RunIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}

	return v.String(), nil
}

// Sequence hands out monotonically increasing surrogate keys starting at 1.
// It is safe for concurrent use.
type Sequence struct {
	last atomic.Int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Last returns the most recently issued value, or 0 when none was issued.
func (s *Sequence) Last() int64 {
	return s.last.Load()
}

// Reset restarts the sequence so the next value is 1 again.
func (s *Sequence) Reset() {
	s.last.Store(0)
}
