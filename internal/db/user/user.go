package user

import (
	"context"
	"database/sql"
	"errors"
	c "reminderbot/internal/core/domain/common"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/db"
)

type SQLiteUserRepository struct {
	db db.DBTX
}

func NewSQLiteUserRepository(db db.DBTX) *SQLiteUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &SQLiteUserRepository{db: db}
}

func (r *SQLiteUserRepository) Upsert(
	ctx context.Context,
	input user.UpsertUserInput,
) (u user.User, err error) {
	row := r.db.QueryRowContext(
		ctx,
		`INSERT INTO users (user_id, first_name, last_name, username, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			username = excluded.username
		RETURNING user_id, first_name, last_name, username, created_at`,
		int64(input.ID),
		input.FirstName,
		encodeOptionalString(input.LastName),
		encodeOptionalString(input.Username),
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *SQLiteUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT user_id, first_name, last_name, username, created_at
		FROM users WHERE user_id = ?`,
		int64(id),
	)
	u, err = scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *SQLiteUserRepository) ReadAll(ctx context.Context) (users []user.User, err error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT user_id, first_name, last_name, username, created_at
		FROM users ORDER BY user_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *SQLiteUserRepository) Delete(ctx context.Context, id user.ID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, int64(id))
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (u user.User, err error) {
	var id int64
	var lastName, username sql.NullString
	err = row.Scan(&id, &u.FirstName, &lastName, &username, &u.CreatedAt)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.LastName = decodeOptionalString(lastName)
	u.Username = decodeOptionalString(username)
	return u, nil
}

func encodeOptionalString(s c.Optional[string]) sql.NullString {
	return sql.NullString{String: s.Value, Valid: s.IsPresent}
}

func decodeOptionalString(s sql.NullString) c.Optional[string] {
	return c.NewOptional(s.String, s.Valid)
}
