package uow

import (
	"context"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Reminders() reminder.ReminderRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
