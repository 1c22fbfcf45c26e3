package listreminders

import (
	"context"
	c "reminderbot/internal/core/domain/common"
	"reminderbot/internal/core/domain/logging"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T, repository *reminder.FakeReminderRepository) {
	t.Helper()
	reminders := []reminder.CreateInput{
		{
			CreatedBy: user.ID(100),
			Title:     "Work early",
			DueAt:     Now.Add(time.Hour),
			Category:  reminder.Category("Work"),
			Priority:  reminder.PriorityHigh,
		},
		{
			CreatedBy: user.ID(100),
			Title:     "Work late",
			DueAt:     Now.Add(48 * time.Hour),
			Category:  reminder.Category("Work"),
			Priority:  reminder.PriorityLow,
		},
		{
			CreatedBy: user.ID(100),
			Title:     "Groceries",
			DueAt:     Now.Add(2 * time.Hour),
			Category:  reminder.Category("Shopping"),
			Priority:  reminder.PriorityMedium,
		},
		{
			CreatedBy:   user.ID(100),
			Title:       "Already done",
			DueAt:       Now.Add(-time.Hour),
			Category:    reminder.Category("Work"),
			Priority:    reminder.PriorityMedium,
			IsCompleted: true,
		},
		{
			CreatedBy: user.ID(200),
			Title:     "Other user's task",
			DueAt:     Now.Add(time.Hour),
			Category:  reminder.Category("Work"),
			Priority:  reminder.PriorityHigh,
		},
	}
	for _, input := range reminders {
		_, err := repository.Create(context.Background(), input)
		require.Nil(t, err)
	}
}

func TestListRemindersForUser(t *testing.T) {
	assert := require.New(t)
	repository := reminder.NewFakeReminderRepository()
	seed(t, repository)
	service := New(logging.NewFakeLogger(), repository)

	result, err := service.Run(context.Background(), Input{UserID: user.ID(100)})

	assert.Nil(err)
	assert.Equal(uint(3), result.TotalCount)
	titles := make([]string, 0, len(result.Reminders))
	for _, rem := range result.Reminders {
		titles = append(titles, rem.Title)
	}
	// Default order is due time ascending, completed excluded.
	assert.Equal([]string{"Work early", "Groceries", "Work late"}, titles)
}

func TestListRemindersFilters(t *testing.T) {
	cases := []struct {
		id       string
		input    Input
		expected []string
	}{
		{
			id: "by category",
			input: Input{
				UserID:         user.ID(100),
				CategoryEquals: c.NewOptional(reminder.Category("Work"), true),
			},
			expected: []string{"Work early", "Work late"},
		},
		{
			id: "by priority",
			input: Input{
				UserID:         user.ID(100),
				PriorityEquals: c.NewOptional(reminder.PriorityHigh, true),
			},
			expected: []string{"Work early"},
		},
		{
			id: "including completed",
			input: Input{
				UserID:           user.ID(100),
				IncludeCompleted: true,
				CategoryEquals:   c.NewOptional(reminder.Category("Work"), true),
			},
			expected: []string{"Already done", "Work early", "Work late"},
		},
		{
			id: "with limit",
			input: Input{
				UserID: user.ID(100),
				Limit:  c.NewOptional(uint(1), true),
			},
			expected: []string{"Work early"},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := require.New(t)
			repository := reminder.NewFakeReminderRepository()
			seed(t, repository)
			service := New(logging.NewFakeLogger(), repository)

			result, err := service.Run(context.Background(), testcase.input)

			assert.Nil(err)
			titles := make([]string, 0, len(result.Reminders))
			for _, rem := range result.Reminders {
				titles = append(titles, rem.Title)
			}
			assert.Equal(testcase.expected, titles)
		})
	}
}
