package invoice

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSubmissionInFlight = errors.New("this invoice is already being submitted")

// SubmissionGuard rejects a submission while another one with the same
// idempotency key is still running. Keys are released when the submission
// finishes, successfully or not, so a failed draft can be sent again.
type SubmissionGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSubmissionGuard() *SubmissionGuard {
	return &SubmissionGuard{inFlight: make(map[string]struct{})}
}

// NewKey returns a fresh idempotency key.
func NewKey() string {
	return uuid.NewString()
}

// Do runs fn under key. An empty key gets a fresh one, so it never collides.
func (g *SubmissionGuard) Do(key string, fn func() error) error {
	if key == "" {
		key = NewKey()
	}

	g.mu.Lock()
	if _, busy := g.inFlight[key]; busy {
		g.mu.Unlock()
		return ErrSubmissionInFlight
	}
	g.inFlight[key] = struct{}{}
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.inFlight, key)
		g.mu.Unlock()
	}()
	return fn()
}

// InFlight reports whether a submission with key is running.
func (g *SubmissionGuard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inFlight[key]
	return busy
}
