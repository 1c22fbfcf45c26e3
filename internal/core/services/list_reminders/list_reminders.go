package listreminders

import (
	"context"
	c "reminderbot/internal/core/domain/common"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/core/services"
)

type Input struct {
	UserID           user.ID
	CategoryEquals   c.Optional[reminder.Category]
	PriorityEquals   c.Optional[reminder.Priority]
	IncludeCompleted bool
	OrderBy          reminder.OrderBy
	Limit            c.Optional[uint]
	Offset           uint
}

type Result struct {
	Reminders  []reminder.Reminder
	TotalCount uint
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
	options := reminder.ReadOptions{
		CreatedByEquals: c.NewOptional(input.UserID, true),
		CategoryEquals:  input.CategoryEquals,
		PriorityEquals:  input.PriorityEquals,
		OrderBy:         input.OrderBy,
		Limit:           input.Limit,
		Offset:          input.Offset,
	}
	if !input.IncludeCompleted {
		options.IsCompletedEquals = c.NewOptional(false, true)
	}
	if options.OrderBy == reminder.OrderByNotSet {
		options.OrderBy = reminder.OrderByDueAtAsc
	}

	reminders, err := s.reminderRepository.Read(ctx, options)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	totalCount, err := s.reminderRepository.Count(ctx, options)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	result.Reminders = reminders
	result.TotalCount = totalCount
	return result, nil
}
