package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
	"github.com/GlebShishkov/explore-with-me/internal/scheduler/mocks"
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

func TestScheduler_Tick_DeclinesStale(t *testing.T) {
	decliner := mocks.NewMockStaleDecliner(t)
	log := newTestLogger(t)

	s := New(decliner, 50*time.Millisecond, log)

	declined := []*domain.Participation{
		{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusRejected},
	}
	decliner.EXPECT().DeclineStale(mock.Anything).Return(declined, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(decliner.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	decliner := mocks.NewMockStaleDecliner(t)
	log := newTestLogger(t)

	s := New(decliner, 50*time.Millisecond, log)

	decliner.EXPECT().DeclineStale(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(decliner.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	decliner := mocks.NewMockStaleDecliner(t)
	log := newTestLogger(t)

	s := New(decliner, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	decliner := mocks.NewMockStaleDecliner(t)
	log := newTestLogger(t)

	s := New(decliner, 30*time.Millisecond, log)

	decliner.EXPECT().DeclineStale(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(decliner.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
