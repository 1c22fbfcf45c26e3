package scheduler

import (
	"context"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/services"
	notifyduereminders "reminderbot/internal/core/services/notify_due_reminders"
	"time"
)

// Worker runs the due reminder scan on a fixed interval. Ticks are strictly
// serial: a tick that overruns the interval delays the next one instead of
// running concurrently with it.
type Worker struct {
	log          logging.Logger
	service      services.Service[notifyduereminders.Input, notifyduereminders.Result]
	pollInterval time.Duration
	tickTimeout  time.Duration
}

func NewWorker(
	log logging.Logger,
	service services.Service[notifyduereminders.Input, notifyduereminders.Result],
	pollInterval time.Duration,
	tickTimeout time.Duration,
) *Worker {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if pollInterval <= 0 {
		panic("Argument pollInterval must be positive.")
	}
	if tickTimeout <= 0 {
		panic("Argument tickTimeout must be positive.")
	}
	return &Worker{
		log:          log,
		service:      service,
		pollInterval: pollInterval,
		tickTimeout:  tickTimeout,
	}
}

// Run blocks until ctx is canceled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.log.Info(
		ctx,
		"Starting reminder scheduler.",
		logging.Entry("pollIntervalSeconds", w.pollInterval.Seconds()),
	)
	for {
		select {
		case <-ctx.Done():
			w.log.Info(ctx, "Stopping reminder scheduler.")
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, w.tickTimeout)
	defer cancel()

	result, err := w.service.Run(tickCtx, notifyduereminders.Input{})
	if err != nil {
		w.log.Error(ctx, "Scheduler tick failed.", logging.Entry("err", err))
		return
	}
	if result.NotifiedCount == 0 && result.FailedCount == 0 {
		return
	}
	w.log.Info(
		ctx,
		"Scheduler tick finished.",
		logging.Entry("notified", result.NotifiedCount),
		logging.Entry("rescheduled", result.RescheduledCount),
		logging.Entry("completed", result.CompletedCount),
		logging.Entry("failed", result.FailedCount),
	)
}
