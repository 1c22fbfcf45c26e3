package notifyduereminders

import (
	"context"
	c "reminderbot/internal/core/domain/common"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/services"
	"time"
)

type Input struct{}

type Result struct {
	NotifiedCount    int
	RescheduledCount int
	CompletedCount   int
	FailedCount      int
}

// service performs one scheduler tick: scan for due reminders across
// all users, notify each exactly once, then either advance the due
// time (recurring) or mark the reminder completed (one-shot). A
// failure on one reminder never aborts the tick for the others; the
// failed reminder stays due and is retried on the next tick.
type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
	notifier           reminder.Notifier
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
	notifier reminder.Notifier,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		notifier:           notifier,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	dueReminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		DueBefore:         c.NewOptional(now, true),
		IsCompletedEquals: c.NewOptional(false, true),
		OrderBy:           reminder.OrderByDueAtAsc,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	if len(dueReminders) == 0 {
		return result, nil
	}

	s.log.Info(ctx, "Got due reminders.", logging.Entry("count", len(dueReminders)))
	for _, rem := range dueReminders {
		if notifyErr := s.notifier.Notify(ctx, rem); notifyErr != nil {
			// The reminder stays due and will be retried on the next tick.
			s.log.Warning(
				ctx,
				"Could not notify, reminder left due.",
				logging.Entry("reminderID", rem.ID),
				logging.Entry("userID", rem.CreatedBy),
				logging.Entry("err", notifyErr),
			)
			result.FailedCount++
			continue
		}
		result.NotifiedCount++

		if rem.IsRecurring() {
			if s.reschedule(ctx, rem, now) {
				result.RescheduledCount++
			} else {
				result.FailedCount++
			}
		} else {
			if s.complete(ctx, rem) {
				result.CompletedCount++
			} else {
				result.FailedCount++
			}
		}
	}

	s.log.Info(
		ctx,
		"Scheduler tick finished.",
		logging.Entry("notified", result.NotifiedCount),
		logging.Entry("rescheduled", result.RescheduledCount),
		logging.Entry("completed", result.CompletedCount),
		logging.Entry("failed", result.FailedCount),
	)
	return result, nil
}

func (s *service) reschedule(ctx context.Context, rem reminder.Reminder, now time.Time) bool {
	// A reminder missed for several cycles is fast-forwarded without
	// notifying once per missed occurrence.
	nextDueAt := rem.Recurrence.Value.NextFrom(rem.DueAt)
	for !nextDueAt.After(now) {
		nextDueAt = rem.Recurrence.Value.NextFrom(nextDueAt)
	}

	_, err := s.reminderRepository.Update(ctx, reminder.UpdateInput{
		ID:            rem.ID,
		DoDueAtUpdate: true,
		DueAt:         nextDueAt,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return false
	}

	s.log.Info(
		ctx,
		"Recurring reminder rescheduled.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("dueAt", nextDueAt),
	)
	return true
}

func (s *service) complete(ctx context.Context, rem reminder.Reminder) bool {
	_, err := s.reminderRepository.Update(ctx, reminder.UpdateInput{
		ID:                  rem.ID,
		DoIsCompletedUpdate: true,
		IsCompleted:         true,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return false
	}

	s.log.Info(ctx, "Reminder completed after notification.", logging.Entry("reminderID", rem.ID))
	return true
}
