package persistence

import (
	c "reminderbot/internal/core/domain/common"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Snapshot is the on-disk JSON form of a single user's exported data.
type Snapshot struct {
	SnapshotID string             `json:"snapshot_id"`
	ExportedAt time.Time          `json:"exported_at"`
	User       SnapshotUser       `json:"user"`
	Reminders  []SnapshotReminder `json:"reminders"`
}

type SnapshotUser struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name,omitempty"`
	Username  *string   `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SnapshotReminder struct {
	Title       string               `json:"title"`
	Description *string              `json:"description,omitempty"`
	DueAt       time.Time            `json:"due_at"`
	Category    string               `json:"category"`
	Priority    string               `json:"priority"`
	Recurrence  *reminder.Recurrence `json:"recurrence,omitempty"`
	IsCompleted bool                 `json:"is_completed"`
	CreatedAt   time.Time            `json:"created_at"`
}

func (s Snapshot) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.SnapshotID, validation.Required),
		validation.Field(&s.ExportedAt, validation.Required),
	)
	if err != nil {
		return err
	}
	if err := s.User.Validate(); err != nil {
		return err
	}
	for _, rem := range s.Reminders {
		if err := rem.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (u SnapshotUser) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.FirstName, validation.Required, validation.Length(1, 256)),
		validation.Field(&u.CreatedAt, validation.Required),
	)
}

func (r SnapshotReminder) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&r.DueAt, validation.Required),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Priority, validation.Required, validation.In("high", "medium", "low")),
	)
	if err != nil {
		return err
	}
	if r.Recurrence != nil {
		return r.Recurrence.Validate()
	}
	return nil
}

func (u *SnapshotUser) FromDomainType(du user.User) {
	u.ID = int64(du.ID)
	u.FirstName = du.FirstName
	u.LastName = encodeOptionalString(du.LastName)
	u.Username = encodeOptionalString(du.Username)
	u.CreatedAt = du.CreatedAt
}

func (r *SnapshotReminder) FromDomainType(rem reminder.Reminder) {
	r.Title = rem.Title
	r.Description = encodeOptionalString(rem.Description)
	r.DueAt = rem.DueAt
	r.Category = string(rem.Category)
	r.Priority = rem.Priority.String()
	if rem.Recurrence.IsPresent {
		recurrence := rem.Recurrence.Value
		r.Recurrence = &recurrence
	}
	r.IsCompleted = rem.IsCompleted
	r.CreatedAt = rem.CreatedAt
}

// ToCreateInput converts a validated snapshot reminder back to a repository
// create input owned by userID. Reminder IDs are never imported.
func (r SnapshotReminder) ToCreateInput(userID user.ID) (reminder.CreateInput, error) {
	priority, err := reminder.ParsePriority(r.Priority)
	if err != nil {
		return reminder.CreateInput{}, err
	}
	input := reminder.CreateInput{
		CreatedBy:   userID,
		Title:       r.Title,
		Description: decodeOptionalString(r.Description),
		DueAt:       r.DueAt,
		Category:    reminder.Category(r.Category),
		Priority:    priority,
		IsCompleted: r.IsCompleted,
		CreatedAt:   r.CreatedAt,
	}
	if r.Recurrence != nil {
		input.Recurrence = c.NewOptional(*r.Recurrence, true)
	}
	return input, nil
}

func encodeOptionalString(s c.Optional[string]) *string {
	if !s.IsPresent {
		return nil
	}
	value := s.Value
	return &value
}

func decodeOptionalString(s *string) c.Optional[string] {
	if s == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*s, true)
}
