package createreminder

import (
	"context"
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
	UserID      user.ID
	Title       string
	Description c.Optional[string]
	DueAt       time.Time
	Category    reminder.Category
	Priority    reminder.Priority
	Recurrence  c.Optional[reminder.Recurrence]
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
	categories         reminder.CategorySet
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
	categories reminder.CategorySet,
	now func() time.Time,
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
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		categories:         categories,
		now:                now,
	}
}

func (s *service) validate(input Input) error {
	if strings.TrimSpace(input.Title) == "" {
		return reminder.ErrReminderTitleRequired
	}
	if input.DueAt.IsZero() {
		return reminder.ErrReminderDueAtRequired
	}
	if err := s.categories.Validate(input.Category); err != nil {
		return err
	}
	if input.Recurrence.IsPresent {
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

	priority := input.Priority
	if priority == reminder.PriorityUnknown {
		priority = reminder.PriorityMedium
	}

	createdReminder, err := s.reminderRepository.Create(ctx, reminder.CreateInput{
		CreatedBy:   input.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		DueAt:       input.DueAt.UTC(),
		Category:    input.Category,
		Priority:    priority,
		Recurrence:  input.Recurrence,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully created.",
		logging.Entry("reminderID", createdReminder.ID),
		logging.Entry("userID", createdReminder.CreatedBy),
		logging.Entry("dueAt", createdReminder.DueAt),
	)
	result.Reminder = createdReminder
	return result, nil
}
