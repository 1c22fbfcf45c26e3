package createreminder

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
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.repository = reminder.NewFakeReminderRepository()
	suite.service = New(
		suite.logger,
		suite.repository,
		reminder.NewCategorySet("Work", "Personal", "Other"),
		func() time.Time { return Now },
	)
}

func TestCreateReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	input := Input{
		UserID:   user.ID(100),
		Title:    "Test Reminder",
		DueAt:    Now.Add(24 * time.Hour),
		Category: reminder.Category("Work"),
		Priority: reminder.PriorityHigh,
	}

	result, err := s.service.Run(context.Background(), input)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(input.Title, result.Reminder.Title)
	assert.Equal(input.UserID, result.Reminder.CreatedBy)
	assert.Equal(input.Category, result.Reminder.Category)
	assert.Equal(reminder.PriorityHigh, result.Reminder.Priority)
	assert.True(input.DueAt.Equal(result.Reminder.DueAt))
	assert.False(result.Reminder.IsCompleted)
	assert.False(result.Reminder.IsRecurring())

	stored, err := s.repository.GetByID(context.Background(), result.Reminder.ID)
	assert.Nil(err)
	assert.Equal(result.Reminder, stored)
}

func (s *testSuite) TestDefaultPriorityIsMedium() {
	input := Input{
		UserID:   user.ID(100),
		Title:    "No priority given",
		DueAt:    Now.Add(time.Hour),
		Category: reminder.Category("Personal"),
	}

	result, err := s.service.Run(context.Background(), input)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(reminder.PriorityMedium, result.Reminder.Priority)
}

func (s *testSuite) TestRecurringReminder() {
	input := Input{
		UserID:     user.ID(100),
		Title:      "Recurring",
		DueAt:      Now.Add(time.Hour),
		Category:   reminder.Category("Work"),
		Recurrence: c.NewOptional(reminder.NewWeekly(0, 4), true),
	}

	result, err := s.service.Run(context.Background(), input)

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Reminder.IsRecurring())
	assert.Equal(reminder.NewWeekly(0, 4), result.Reminder.Recurrence.Value)
}

func (s *testSuite) TestValidationErrors() {
	cases := []struct {
		id    string
		input Input
		err   error
	}{
		{
			id: "empty title",
			input: Input{
				UserID:   user.ID(100),
				Title:    "   ",
				DueAt:    Now.Add(time.Hour),
				Category: reminder.Category("Work"),
			},
			err: reminder.ErrReminderTitleRequired,
		},
		{
			id: "zero due time",
			input: Input{
				UserID:   user.ID(100),
				Title:    "No due time",
				Category: reminder.Category("Work"),
			},
			err: reminder.ErrReminderDueAtRequired,
		},
		{
			id: "unknown category",
			input: Input{
				UserID:   user.ID(100),
				Title:    "Bad category",
				DueAt:    Now.Add(time.Hour),
				Category: reminder.Category("Fitness"),
			},
			err: reminder.ErrUnknownCategory,
		},
		{
			id: "invalid recurrence",
			input: Input{
				UserID:     user.ID(100),
				Title:      "Bad recurrence",
				DueAt:      Now.Add(time.Hour),
				Category:   reminder.Category("Work"),
				Recurrence: c.NewOptional(reminder.NewWeekly(9), true),
			},
			err: reminder.ErrInvalidRecurrence,
		},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			_, err := s.service.Run(context.Background(), testcase.input)

			assert := s.Require()
			assert.ErrorIs(err, testcase.err)
			assert.Empty(s.repository.Reminders)
		})
	}
}
