package registeruser

import (
	"context"
	"errors"
	c "reminderbot/internal/core/domain/common"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const UserID = user.ID(42)

var Now time.Time = time.Date(2023, 5, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	log            *logging.FakeLogger
	userRepository *user.FakeUserRepository
	service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.log = logging.NewFakeLogger()
	suite.userRepository = user.NewFakeUserRepository()
	suite.service = New(suite.log, suite.userRepository, func() time.Time { return Now })
}

func TestRegisterUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.service.Run(context.Background(), Input{
		UserID:    UserID,
		FirstName: "John",
		LastName:  c.NewOptional("Doe", true),
		Username:  c.NewOptional("johndoe", true),
	})

	s.Nil(err)
	s.Equal(UserID, result.User.ID)
	s.Equal("John", result.User.FirstName)
	s.Equal(c.NewOptional("Doe", true), result.User.LastName)
	s.True(Now.Equal(result.User.CreatedAt))
}

func (s *testSuite) TestRepeatedRegistrationRefreshesNames() {
	_, err := s.service.Run(context.Background(), Input{
		UserID:    UserID,
		FirstName: "John",
		Username:  c.NewOptional("johndoe", true),
	})
	s.Require().NoError(err)

	result, err := s.service.Run(context.Background(), Input{
		UserID:    UserID,
		FirstName: "Johnny",
	})

	s.Nil(err)
	s.Equal("Johnny", result.User.FirstName)
	s.False(result.User.Username.IsPresent)
	s.True(Now.Equal(result.User.CreatedAt))
}

func (s *testSuite) TestBlankFirstNameRejected() {
	type test struct {
		id        string
		firstName string
	}
	cases := []test{
		{id: "empty", firstName: ""},
		{id: "spaces", firstName: "   "},
		{id: "tab", firstName: "\t"},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			_, err := s.service.Run(context.Background(), Input{
				UserID:    UserID,
				FirstName: testcase.firstName,
			})

			s.True(errors.Is(err, user.ErrInvalidUserName))
			s.Empty(s.userRepository.Users)
		})
	}
}

func (s *testSuite) TestRepositoryError() {
	s.userRepository.UpsertError = errors.New("upsert failed")

	_, err := s.service.Run(context.Background(), Input{
		UserID:    UserID,
		FirstName: "John",
	})

	s.Error(err)
	s.NotEmpty(s.log.LoggedWithLevel(logging.ERROR))
}
