package wipeuserdata

import (
	"context"
	"errors"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/logging"
	uow "reminderbot/internal/core/domain/unit_of_work"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/core/services"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	RemindersDeleted uint
}

type service struct {
	log logging.Logger
	uow uow.UnitOfWork
}

func New(
	log logging.Logger,
	uow uow.UnitOfWork,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if uow == nil {
		panic(e.NewNilArgumentError("uow"))
	}
	return &service{
		log: log,
		uow: uow,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.uow.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	remindersDeleted, err := uow.Reminders().DeleteByUserID(ctx, input.UserID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	err = uow.Users().Delete(ctx, input.UserID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"User data successfully wiped.",
		logging.Entry("userId", input.UserID),
		logging.Entry("remindersDeleted", remindersDeleted),
	)
	return Result{RemindersDeleted: remindersDeleted}, nil
}
