// Package outbox buffers provider reservations whose database persist
// failed, so the scheduler can retry them once the store recovers.
package outbox

import (
	"sync"

	"github.com/stellarops/gsbooker/internal/domain"
)

type Queue struct {
	mu      sync.Mutex
	pending []*domain.Booking
}

func New() *Queue {
	return &Queue{}
}

func (q *Queue) Enqueue(booking *domain.Booking) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, booking)
}

// Drain removes and returns every queued booking. Entries that still fail
// to persist must be re-enqueued by the caller.
func (q *Queue) Drain() []*domain.Booking {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.pending
	q.pending = nil
	return drained
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
