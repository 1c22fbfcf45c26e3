package uow

import (
	"context"
	"errors"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/db"
	dbuser "reminderbot/internal/db/user"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const UserID = user.ID(100500)

var Now time.Time = time.Date(2023, 5, 15, 12, 0, 0, 0, time.UTC)

func TestCommitPersistsChanges(t *testing.T) {
	store := db.CreateTestStore(t)
	unitOfWork := NewSQLiteUnitOfWork(store.DB())

	uow, err := unitOfWork.Begin(context.Background())
	require.NoError(t, err)
	defer uow.Rollback(context.Background())

	_, err = uow.Users().Upsert(context.Background(), user.UpsertUserInput{
		ID:        UserID,
		FirstName: "John",
		CreatedAt: Now,
	})
	require.NoError(t, err)
	created, err := uow.Reminders().Create(context.Background(), reminder.CreateInput{
		CreatedBy: UserID,
		Title:     "Test reminder",
		DueAt:     Now.Add(time.Hour),
		Category:  reminder.Category("work"),
		Priority:  reminder.PriorityMedium,
		CreatedAt: Now,
	})
	require.NoError(t, err)
	require.NoError(t, uow.Commit(context.Background()))

	users := dbuser.NewSQLiteUserRepository(store.DB())
	u, err := users.GetByID(context.Background(), UserID)
	require.NoError(t, err)
	require.Equal(t, UserID, u.ID)
	require.NotZero(t, created.ID)
}

func TestRollbackDiscardsChanges(t *testing.T) {
	store := db.CreateTestStore(t)
	unitOfWork := NewSQLiteUnitOfWork(store.DB())

	uow, err := unitOfWork.Begin(context.Background())
	require.NoError(t, err)

	_, err = uow.Users().Upsert(context.Background(), user.UpsertUserInput{
		ID:        UserID,
		FirstName: "John",
		CreatedAt: Now,
	})
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(context.Background()))

	users := dbuser.NewSQLiteUserRepository(store.DB())
	_, err = users.GetByID(context.Background(), UserID)
	require.True(t, errors.Is(err, user.ErrUserDoesNotExist))
}

func TestRollbackAfterCommitIsNoop(t *testing.T) {
	store := db.CreateTestStore(t)
	unitOfWork := NewSQLiteUnitOfWork(store.DB())

	uow, err := unitOfWork.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, uow.Commit(context.Background()))
	require.NoError(t, uow.Rollback(context.Background()))
}
