package reminder

import (
	c "reminderbot/internal/core/domain/common"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/user"
	"time"
)

type ID int64

type Reminder struct {
	ID          ID
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

func (r *Reminder) Validate() error {
	if r.Title == "" {
		return e.NewInvalidStateError("reminder title must not be empty")
	}
	if r.DueAt.IsZero() {
		return e.NewInvalidStateError("reminder due time is not set")
	}
	if r.Priority == PriorityUnknown {
		return e.NewInvalidStateError("reminder priority is not set")
	}
	if r.Recurrence.IsPresent {
		if err := r.Recurrence.Value.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reminder) IsRecurring() bool {
	return r.Recurrence.IsPresent
}
