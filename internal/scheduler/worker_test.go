package scheduler

import (
	"context"
	"errors"
	"reminderbot/internal/core/domain/logging"
	notifyduereminders "reminderbot/internal/core/services/notify_due_reminders"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTickService struct {
	lock    sync.Mutex
	runs    int
	result  notifyduereminders.Result
	err     error
	blockCh chan struct{}
}

func (s *fakeTickService) Run(
	ctx context.Context,
	input notifyduereminders.Input,
) (notifyduereminders.Result, error) {
	s.lock.Lock()
	s.runs++
	s.lock.Unlock()
	if s.blockCh != nil {
		<-s.blockCh
	}
	return s.result, s.err
}

func (s *fakeTickService) runCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.runs
}

func TestWorkerRunsTicksUntilCanceled(t *testing.T) {
	log := logging.NewFakeLogger()
	service := &fakeTickService{}
	worker := NewWorker(log, service, time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.Eventually(
		t,
		func() bool { return service.runCount() >= 3 },
		time.Second,
		time.Millisecond,
	)
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestWorkerTicksAreSerial(t *testing.T) {
	log := logging.NewFakeLogger()
	service := &fakeTickService{blockCh: make(chan struct{})}
	worker := NewWorker(log, service, time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.Eventually(
		t,
		func() bool { return service.runCount() == 1 },
		time.Second,
		time.Millisecond,
	)
	// The first tick is still blocked, later ticks must wait for it.
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 1, service.runCount())

	close(service.blockCh)
	require.Eventually(
		t,
		func() bool { return service.runCount() >= 2 },
		time.Second,
		time.Millisecond,
	)
}

func TestWorkerKeepsRunningAfterTickError(t *testing.T) {
	log := logging.NewFakeLogger()
	service := &fakeTickService{err: errors.New("tick failed")}
	worker := NewWorker(log, service, time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.Eventually(
		t,
		func() bool { return service.runCount() >= 2 },
		time.Second,
		time.Millisecond,
	)
	assert.NotEmpty(t, log.LoggedWithLevel(logging.ERROR))
}

func TestNewWorkerPanicsOnInvalidArguments(t *testing.T) {
	log := logging.NewFakeLogger()
	service := &fakeTickService{}
	require.Panics(t, func() { NewWorker(nil, service, time.Minute, time.Second) })
	require.Panics(t, func() { NewWorker(log, nil, time.Minute, time.Second) })
	require.Panics(t, func() { NewWorker(log, service, 0, time.Second) })
	require.Panics(t, func() { NewWorker(log, service, time.Minute, 0) })
}
