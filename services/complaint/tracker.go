package complaint

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type inflight struct {
	id     string
	cancel context.CancelFunc
}

// SubmissionTracker remembers the one in-flight submission per user. Starting a
// new submission cancels the previous one, whose result must then be dropped.
type SubmissionTracker struct {
	mu      sync.Mutex
	pending map[string]inflight
}

func NewSubmissionTracker() *SubmissionTracker {
	return &SubmissionTracker{pending: make(map[string]inflight)}
}

// Begin registers a submission for userID and returns its id together with a
// context that is cancelled when a newer submission from the same user begins.
func (t *SubmissionTracker) Begin(ctx context.Context, userID string) (string, context.Context) {
	subCtx, cancel := context.WithCancel(ctx)
	id := uuid.NewString()

	t.mu.Lock()
	if prev, ok := t.pending[userID]; ok {
		prev.cancel()
	}
	t.pending[userID] = inflight{id: id, cancel: cancel}
	t.mu.Unlock()

	return id, subCtx
}

// Finish ends the submission and reports whether it was still the current one.
// Calling it more than once is harmless.
func (t *SubmissionTracker) Finish(userID, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.pending[userID]
	if !ok || cur.id != id {
		return false
	}
	cur.cancel()
	delete(t.pending, userID)
	return true
}

// InFlight returns the number of users with a pending submission.
func (t *SubmissionTracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
