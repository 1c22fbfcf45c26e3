package user

import "errors"

var (
	ErrUserDoesNotExist = errors.New("user does not exist")
	ErrInvalidUserName  = errors.New("user first name must not be empty")
)
