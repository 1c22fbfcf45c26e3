package reminder

import "errors"

var (
	ErrReminderDoesNotExist  = errors.New("reminder does not exist")
	ErrReminderPermission    = errors.New("reminder belongs to another user")
	ErrReminderTitleRequired = errors.New("reminder title must not be empty")
	ErrReminderDueAtRequired = errors.New("reminder due time must be set")
)
