package mocks

import (
	"fmt"

	"github.com/gamestorehq/gamestore/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// TokenResults is a queue of results to return from Token
	TokenResults []string
	tokenIndex   int

	// issued counts tokens handed out once the queue is exhausted
	issued int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Token returns the next queued result. Once the queue is exhausted it
// returns a deterministic sequential hex string of the requested width,
// so tests that don't care about exact token values still get unique
// well-formed tokens.
func (r *MockRandom) Token(n int) (string, error) {
	if r.tokenIndex < len(r.TokenResults) {
		result := r.TokenResults[r.tokenIndex]
		r.tokenIndex++
		return result, nil
	}
	r.issued++
	return fmt.Sprintf("%0*x", n*2, r.issued), nil
}

// QueueToken adds values to the Token result queue
func (r *MockRandom) QueueToken(values ...string) {
	r.TokenResults = append(r.TokenResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.TokenResults = nil
	r.tokenIndex = 0
	r.issued = 0
}
