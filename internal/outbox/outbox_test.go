package outbox

import (
	"sync"
	"testing"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestQueue_EnqueueDrain(t *testing.T) {
	q := New()

	first := &domain.Booking{SatelliteID: "SAT-1"}
	second := &domain.Booking{SatelliteID: "SAT-2"}

	q.Enqueue(first)
	q.Enqueue(second)
	assert.Equal(t, 2, q.Len())

	drained := q.Drain()
	assert.Equal(t, []*domain.Booking{first, second}, drained)
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func TestQueue_ConcurrentEnqueue(t *testing.T) {
	q := New()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Enqueue(&domain.Booking{SatelliteID: "SAT-1"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, q.Len())
	assert.Len(t, q.Drain(), 50)
}
