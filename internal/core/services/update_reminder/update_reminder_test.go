package updatereminder

import (
	"context"
	c "reminderbot/internal/core/domain/common"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	repository *reminder.FakeReminderRepository
	service    services.Service[Input, Result]
	reminderID reminder.ID
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.repository = reminder.NewFakeReminderRepository()
	suite.service = New(
		suite.logger,
		suite.repository,
		reminder.NewCategorySet("Work", "Personal"),
	)

	created, err := suite.repository.Create(context.Background(), reminder.CreateInput{
		CreatedBy: user.ID(100),
		Title:     "Original title",
		DueAt:     Now.Add(24 * time.Hour),
		Category:  reminder.Category("Work"),
		Priority:  reminder.PriorityMedium,
		CreatedAt: Now,
	})
	suite.Require().Nil(err)
	suite.reminderID = created.ID
}

func TestUpdateReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestPartialUpdate() {
	result, err := s.service.Run(context.Background(), Input{
		UserID:           user.ID(100),
		ReminderID:       s.reminderID,
		DoPriorityUpdate: true,
		Priority:         reminder.PriorityHigh,
	})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(reminder.PriorityHigh, result.Reminder.Priority)
	// Untouched fields stay as they were.
	assert.Equal("Original title", result.Reminder.Title)
	assert.Equal(reminder.Category("Work"), result.Reminder.Category)
}

func (s *testSuite) TestDueAtAndRecurrenceUpdate() {
	newDueAt := Now.Add(72 * time.Hour)
	result, err := s.service.Run(context.Background(), Input{
		UserID:             user.ID(100),
		ReminderID:         s.reminderID,
		DoDueAtUpdate:      true,
		DueAt:              newDueAt,
		DoRecurrenceUpdate: true,
		Recurrence:         c.NewOptional(reminder.NewDaily(), true),
	})

	assert := s.Require()
	assert.Nil(err)
	assert.True(newDueAt.Equal(result.Reminder.DueAt))
	assert.True(result.Reminder.IsRecurring())
}

func (s *testSuite) TestRecurrenceCanBeCleared() {
	_, err := s.service.Run(context.Background(), Input{
		UserID:             user.ID(100),
		ReminderID:         s.reminderID,
		DoRecurrenceUpdate: true,
		Recurrence:         c.NewOptional(reminder.NewDaily(), true),
	})
	s.Require().Nil(err)

	result, err := s.service.Run(context.Background(), Input{
		UserID:             user.ID(100),
		ReminderID:         s.reminderID,
		DoRecurrenceUpdate: true,
		Recurrence:         c.NewOptional(reminder.Recurrence{}, false),
	})

	assert := s.Require()
	assert.Nil(err)
	assert.False(result.Reminder.IsRecurring())
}

func (s *testSuite) TestErrors() {
	cases := []struct {
		id    string
		input Input
		err   error
	}{
		{
			id: "not found",
			input: Input{
				UserID:           user.ID(100),
				ReminderID:       reminder.ID(100500),
				DoPriorityUpdate: true,
				Priority:         reminder.PriorityLow,
			},
			err: reminder.ErrReminderDoesNotExist,
		},
		{
			id: "another user",
			input: Input{
				UserID:           user.ID(200),
				ReminderID:       s.reminderID,
				DoPriorityUpdate: true,
				Priority:         reminder.PriorityLow,
			},
			err: reminder.ErrReminderPermission,
		},
		{
			id: "empty title",
			input: Input{
				UserID:        user.ID(100),
				ReminderID:    s.reminderID,
				DoTitleUpdate: true,
				Title:         " ",
			},
			err: reminder.ErrReminderTitleRequired,
		},
		{
			id: "unknown category",
			input: Input{
				UserID:           user.ID(100),
				ReminderID:       s.reminderID,
				DoCategoryUpdate: true,
				Category:         reminder.Category("Unknown"),
			},
			err: reminder.ErrUnknownCategory,
		},
		{
			id: "unknown priority",
			input: Input{
				UserID:           user.ID(100),
				ReminderID:       s.reminderID,
				DoPriorityUpdate: true,
			},
			err: reminder.ErrParsePriority,
		},
		{
			id: "invalid recurrence",
			input: Input{
				UserID:             user.ID(100),
				ReminderID:         s.reminderID,
				DoRecurrenceUpdate: true,
				Recurrence:         c.NewOptional(reminder.NewMonthly(50), true),
			},
			err: reminder.ErrInvalidRecurrence,
		},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			_, err := s.service.Run(context.Background(), testcase.input)
			s.Require().ErrorIs(err, testcase.err)
		})
	}
}
