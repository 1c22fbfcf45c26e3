package updatereminder

import (
	"context"
	"errors"
	c "reminderbot/internal/core/domain/common"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/core/services"
	"strings"
	"time"
)

type Input struct {
	UserID              user.ID
	ReminderID          reminder.ID
	DoTitleUpdate       bool
	Title               string
	DoDescriptionUpdate bool
	Description         c.Optional[string]
	DoDueAtUpdate       bool
	DueAt               time.Time
	DoCategoryUpdate    bool
	Category            reminder.Category
	DoPriorityUpdate    bool
	Priority            reminder.Priority
	DoRecurrenceUpdate  bool
	Recurrence          c.Optional[reminder.Recurrence]
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
	categories         reminder.CategorySet
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
	categories reminder.CategorySet,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if categories == nil {
		panic(e.NewNilArgumentError("categories"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		categories:         categories,
	}
}

func (s *service) validate(input Input) error {
	if input.DoTitleUpdate && strings.TrimSpace(input.Title) == "" {
		return reminder.ErrReminderTitleRequired
	}
	if input.DoDueAtUpdate && input.DueAt.IsZero() {
		return reminder.ErrReminderDueAtRequired
	}
	if input.DoCategoryUpdate {
		if err := s.categories.Validate(input.Category); err != nil {
			return err
		}
	}
	if input.DoPriorityUpdate && input.Priority == reminder.PriorityUnknown {
		return reminder.ErrParsePriority
	}
	if input.DoRecurrenceUpdate && input.Recurrence.IsPresent {
		if err := input.Recurrence.Value.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err = s.validate(input); err != nil {
		return result, err
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

	update := reminder.UpdateInput{
		ID:                  rem.ID,
		DoTitleUpdate:       input.DoTitleUpdate,
		Title:               strings.TrimSpace(input.Title),
		DoDescriptionUpdate: input.DoDescriptionUpdate,
		Description:         input.Description,
		DoDueAtUpdate:       input.DoDueAtUpdate,
		DueAt:               input.DueAt.UTC(),
		DoCategoryUpdate:    input.DoCategoryUpdate,
		Category:            input.Category,
		DoPriorityUpdate:    input.DoPriorityUpdate,
		Priority:            input.Priority,
		DoRecurrenceUpdate:  input.DoRecurrenceUpdate,
		Recurrence:          input.Recurrence,
	}
	updatedReminder, err := s.reminderRepository.Update(ctx, update)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully updated.",
		logging.Entry("reminderID", updatedReminder.ID),
	)
	result.Reminder = updatedReminder
	return result, nil
}
