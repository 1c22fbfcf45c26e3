package registeruser

import (
	"context"
	c "reminderbot/internal/core/domain/common"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/core/services"
	"strings"
	"time"
)

type Input struct {
	UserID    user.ID
	FirstName string
	LastName  c.Optional[string]
	Username  c.Optional[string]
}

func (i Input) Validate() error {
	if strings.TrimSpace(i.FirstName) == "" {
		return user.ErrInvalidUserName
	}
	return nil
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err = input.Validate(); err != nil {
		return result, err
	}

	u, err := s.userRepository.Upsert(ctx, user.UpsertUserInput{
		ID:        input.UserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "User registered.", logging.Entry("userID", u.ID))
	result.User = u
	return result, nil
}
