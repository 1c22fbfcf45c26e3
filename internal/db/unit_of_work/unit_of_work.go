package uow

import (
	"context"
	"database/sql"
	"reminderbot/internal/core/domain/reminder"
	uow "reminderbot/internal/core/domain/unit_of_work"
	"reminderbot/internal/core/domain/user"
	dbreminder "reminderbot/internal/db/reminder"
	dbuser "reminderbot/internal/db/user"
)

type sqliteUnitOfWorkContext struct {
	tx *sql.Tx
}

func newSQLiteUnitOfWorkContext(tx *sql.Tx) *sqliteUnitOfWorkContext {
	return &sqliteUnitOfWorkContext{
		tx: tx,
	}
}

func (c *sqliteUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit()
}

func (c *sqliteUnitOfWorkContext) Rollback(ctx context.Context) error {
	err := c.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}

func (c *sqliteUnitOfWorkContext) Users() user.UserRepository {
	return dbuser.NewSQLiteUserRepository(c.tx)
}

func (c *sqliteUnitOfWorkContext) Reminders() reminder.ReminderRepository {
	return dbreminder.NewSQLiteReminderRepository(c.tx)
}

type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newSQLiteUnitOfWorkContext(tx), nil
}
