package postponereminder

import (
	"context"
	"errors"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/core/services"
	"time"
)

type Input struct {
	UserID     user.ID
	ReminderID reminder.ID
	// By is the duration the due time is shifted by, usually one of
	// the presets accepted by reminder.ParsePostponement.
	By time.Duration
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.By <= 0 {
		return result, reminder.ErrParsePostponement
	}

	rem, err := s.reminderRepository.GetByID(ctx, input.ReminderID)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			s.log.Info(ctx, "Reminder not found.", logging.Entry("input", input))
		default:
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}
	if rem.CreatedBy != input.UserID {
		s.log.Info(ctx, "Reminder belongs to another user.", logging.Entry("input", input))
		return result, reminder.ErrReminderPermission
	}

	updatedReminder, err := s.reminderRepository.Update(ctx, reminder.UpdateInput{
		ID:            rem.ID,
		DoDueAtUpdate: true,
		DueAt:         rem.DueAt.Add(input.By),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder postponed.",
		logging.Entry("reminderID", updatedReminder.ID),
		logging.Entry("by", input.By),
		logging.Entry("dueAt", updatedReminder.DueAt),
	)
	result.Reminder = updatedReminder
	return result, nil
}
