package mocks

import (
	"fmt"

	"github.com/snakeduel/snakeduel-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing. Queued values
// are returned in order; once exhausted it falls back to a deterministic
// counter so tests that don't care about ids still get unique ones.
type MockRandom struct {
	// IDResults is a queue of results to return from ID
	IDResults []string
	idIndex   int
	counter   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// ID returns the next queued result, or a deterministic generated id
func (r *MockRandom) ID(prefix string) string {
	if r.idIndex < len(r.IDResults) {
		result := r.IDResults[r.idIndex]
		r.idIndex++
		return result
	}
	r.counter++
	return fmt.Sprintf("%s%08d", prefix, r.counter)
}

// QueueID adds values to the ID result queue
func (r *MockRandom) QueueID(values ...string) {
	r.IDResults = append(r.IDResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IDResults = nil
	r.idIndex = 0
	r.counter = 0
}
