package reminder

import (
	"context"
	c "reminderbot/internal/core/domain/common"
	"reminderbot/internal/core/domain/user"
	"time"
)

type CreateInput struct {
	CreatedBy   user.ID
	Title       string
	Description c.Optional[string]
	DueAt       time.Time
	Category    Category
	Priority    Priority
	Recurrence  c.Optional[Recurrence]
	IsCompleted bool
	CreatedAt   time.Time
}

type ReadOptions struct {
	CreatedByEquals   c.Optional[user.ID]
	DueBefore         c.Optional[time.Time]
	CategoryEquals    c.Optional[Category]
	PriorityEquals    c.Optional[Priority]
	IsCompletedEquals c.Optional[bool]
	OrderBy           OrderBy
	Limit             c.Optional[uint]
	Offset            uint
}

type UpdateInput struct {
	ID                  ID
	DoTitleUpdate       bool
	Title               string
	DoDescriptionUpdate bool
	Description         c.Optional[string]
	DoDueAtUpdate       bool
	DueAt               time.Time
	DoCategoryUpdate    bool
	Category            Category
	DoPriorityUpdate    bool
	Priority            Priority
	DoRecurrenceUpdate  bool
	Recurrence          c.Optional[Recurrence]
	DoIsCompletedUpdate bool
	IsCompleted         bool
}

type ReminderRepository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	GetByID(ctx context.Context, id ID) (Reminder, error)
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Update(ctx context.Context, input UpdateInput) (Reminder, error)
	Delete(ctx context.Context, id ID) error
	// DeleteByUserID removes every reminder owned by the user and
	// returns the removed count. Used by the data wipe.
	DeleteByUserID(ctx context.Context, userID user.ID) (uint, error)
}
