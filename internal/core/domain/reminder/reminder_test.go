package reminder

import (
	c "reminderbot/internal/core/domain/common"
	"reminderbot/internal/core/domain/user"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var NOW = time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)

func TestReminderValidate(t *testing.T) {
	valid := Reminder{
		ID:        ID(1),
		CreatedBy: user.ID(100),
		Title:     "Test Reminder",
		DueAt:     NOW.Add(24 * time.Hour),
		Category:  Category("Work"),
		Priority:  PriorityHigh,
		CreatedAt: NOW,
	}
	assert.Nil(t, valid.Validate())

	recurring := valid
	recurring.Recurrence = c.NewOptional(NewDaily(), true)
	assert.Nil(t, recurring.Validate())

	noTitle := valid
	noTitle.Title = ""
	assert.NotNil(t, noTitle.Validate())

	noDueAt := valid
	noDueAt.DueAt = time.Time{}
	assert.NotNil(t, noDueAt.Validate())

	noPriority := valid
	noPriority.Priority = PriorityUnknown
	assert.NotNil(t, noPriority.Validate())

	badRecurrence := valid
	badRecurrence.Recurrence = c.NewOptional(Recurrence{}, true)
	assert.NotNil(t, badRecurrence.Validate())
}

func TestParsePriority(t *testing.T) {
	validCases := []struct {
		value    string
		expected Priority
	}{
		{"high", PriorityHigh},
		{"medium", PriorityMedium},
		{"low", PriorityLow},
	}
	for _, testcase := range validCases {
		t.Run(testcase.value, func(t *testing.T) {
			p, err := ParsePriority(testcase.value)
			assert.Nil(t, err)
			assert.Equal(t, testcase.expected, p)
		})
	}

	invalidCases := []string{"", "High", "urgent", " low"}
	for _, value := range invalidCases {
		t.Run(value, func(t *testing.T) {
			p, err := ParsePriority(value)
			assert.ErrorIs(t, err, ErrParsePriority)
			assert.Equal(t, PriorityUnknown, p)
		})
	}
}

func TestCategorySet(t *testing.T) {
	set := NewCategorySet("Work", "Personal", "Other")

	assert.True(t, set.Contains(Category("Work")))
	assert.Nil(t, set.Validate(Category("Personal")))
	assert.False(t, set.Contains(Category("work")))
	assert.ErrorIs(t, set.Validate(Category("Fitness")), ErrUnknownCategory)
}

func TestParsePostponement(t *testing.T) {
	validCases := []struct {
		value    string
		expected time.Duration
	}{
		{"1h", time.Hour},
		{"3h", 3 * time.Hour},
		{"1d", 24 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
	}
	for _, testcase := range validCases {
		t.Run(testcase.value, func(t *testing.T) {
			d, err := ParsePostponement(testcase.value)
			assert.Nil(t, err)
			assert.Equal(t, testcase.expected, d)
		})
	}

	invalidCases := []string{"", "2h", "1 h", "1day"}
	for _, value := range invalidCases {
		t.Run(value, func(t *testing.T) {
			_, err := ParsePostponement(value)
			assert.ErrorIs(t, err, ErrParsePostponement)
		})
	}
}

func TestParseOrderBy(t *testing.T) {
	cases := []struct {
		value    string
		expected OrderBy
		err      error
	}{
		{"id_asc", OrderByIDAsc, nil},
		{"id_desc", OrderByIDDesc, nil},
		{"due_at_asc", OrderByDueAtAsc, nil},
		{"due_at_desc", OrderByDueAtDesc, nil},
		{"", OrderByNotSet, ErrParseOrderBy},
		{"due_asc", OrderByNotSet, ErrParseOrderBy},
	}
	for _, testcase := range cases {
		t.Run(testcase.value, func(t *testing.T) {
			order, err := ParseOrderBy(testcase.value)
			assert.ErrorIs(t, err, testcase.err)
			assert.Equal(t, testcase.expected, order)
		})
	}
}
