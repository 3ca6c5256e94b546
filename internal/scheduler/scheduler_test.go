package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stellarops/gsbooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RetriesOutbox(t *testing.T) {
	retrier := mocks.NewMockOutboxRetrier(t)
	log := newTestLogger(t)

	s := New(retrier, 50*time.Millisecond, log)

	retrier.EXPECT().RetryFailedStores(mock.Anything).Return(2, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(retrier.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	retrier := mocks.NewMockOutboxRetrier(t)
	log := newTestLogger(t)

	s := New(retrier, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
