// Package enginetest provides test doubles for the engine.
package enginetest

import (
	"github.com/vovakirdan/tui-match3/internal/engine"
)

// MockRandom returns queued Intn results, then a fallback cycle.
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// Calls counts Intn invocations.
	Calls int

	next int
}

// Ensure MockRandom implements Random
var _ engine.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with the given queued results.
func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntnResults: values}
}

// Intn returns the next queued result reduced modulo n. Once the queue is
// exhausted it cycles through 0..n-1 so retry loops always terminate.
func (r *MockRandom) Intn(n int) int {
	r.Calls++
	if n <= 0 {
		return 0
	}
	if r.intnIndex < len(r.IntnResults) {
		result := r.IntnResults[r.intnIndex]
		r.intnIndex++
		return result % n
	}
	result := r.next % n
	r.next++
	return result
}

// Remaining returns how many queued results have not been consumed.
func (r *MockRandom) Remaining() int {
	return len(r.IntnResults) - r.intnIndex
}
