package user

import (
	"context"
	c "reminderbot/internal/core/domain/common"
	"time"
)

type UpsertUserInput struct {
	ID        ID
	FirstName string
	LastName  c.Optional[string]
	Username  c.Optional[string]
	CreatedAt time.Time
}

type UserRepository interface {
	// Upsert creates the user on first contact and refreshes the
	// name fields on every later one. CreatedAt is written once.
	Upsert(ctx context.Context, input UpsertUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	ReadAll(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id ID) error
}
