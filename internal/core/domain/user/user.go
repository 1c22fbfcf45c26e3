package user

import (
	c "reminderbot/internal/core/domain/common"
	e "reminderbot/internal/core/domain/errors"
	"time"
)

// ID is assigned by the chat platform, not by the storage.
type ID int64

type User struct {
	ID        ID
	FirstName string
	LastName  c.Optional[string]
	Username  c.Optional[string]
	CreatedAt time.Time
}

func (u *User) Validate() error {
	if u.ID == 0 {
		return e.NewInvalidStateError("user ID is not set")
	}
	if u.FirstName == "" {
		return e.NewInvalidStateError("user first name is not set")
	}
	return nil
}

func (u *User) DisplayName() string {
	if u.Username.IsPresent {
		return "@" + u.Username.Value
	}
	if u.LastName.IsPresent {
		return u.FirstName + " " + u.LastName.Value
	}
	return u.FirstName
}
