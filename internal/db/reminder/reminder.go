package reminder

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	c "reminderbot/internal/core/domain/common"
	e "reminderbot/internal/core/domain/errors"
	"reminderbot/internal/core/domain/reminder"
	"reminderbot/internal/core/domain/user"
	"reminderbot/internal/db"
	"strings"
)

const reminderColumns = `id, user_id, title, description, due_at, category,
	priority, recurrence, is_completed, created_at`

type SQLiteReminderRepository struct {
	db db.DBTX
}

func NewSQLiteReminderRepository(db db.DBTX) *SQLiteReminderRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &SQLiteReminderRepository{db: db}
}

func (r *SQLiteReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	recurrence, err := encodeRecurrence(input.Recurrence)
	if err != nil {
		return rem, err
	}
	row := r.db.QueryRowContext(
		ctx,
		`INSERT INTO reminders
			(user_id, title, description, due_at, category, priority,
			is_recurring, recurrence, is_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+reminderColumns,
		int64(input.CreatedBy),
		input.Title,
		encodeOptionalString(input.Description),
		input.DueAt,
		string(input.Category),
		input.Priority.String(),
		input.Recurrence.IsPresent,
		recurrence,
		input.IsCompleted,
		input.CreatedAt,
	)
	return scanReminder(row)
}

func (r *SQLiteReminderRepository) GetByID(
	ctx context.Context,
	id reminder.ID,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE id = ?`,
		int64(id),
	)
	rem, err = scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *SQLiteReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) (reminders []reminder.Reminder, err error) {
	where, args := encodeReadOptions(options)
	query := `SELECT ` + reminderColumns + ` FROM reminders` + where + orderByClause(options.OrderBy)
	if options.Limit.IsPresent {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, int64(options.Limit.Value), int64(options.Offset))
	} else if options.Offset > 0 {
		query += ` LIMIT -1 OFFSET ?`
		args = append(args, int64(options.Offset))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *SQLiteReminderRepository) Count(
	ctx context.Context,
	options reminder.ReadOptions,
) (uint, error) {
	where, args := encodeReadOptions(options)
	var count uint
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM reminders`+where,
		args...,
	).Scan(&count)
	return count, err
}

func (r *SQLiteReminderRepository) Update(
	ctx context.Context,
	input reminder.UpdateInput,
) (rem reminder.Reminder, err error) {
	assignments := make([]string, 0, 7)
	args := make([]any, 0, 8)
	if input.DoTitleUpdate {
		assignments = append(assignments, "title = ?")
		args = append(args, input.Title)
	}
	if input.DoDescriptionUpdate {
		assignments = append(assignments, "description = ?")
		args = append(args, encodeOptionalString(input.Description))
	}
	if input.DoDueAtUpdate {
		assignments = append(assignments, "due_at = ?")
		args = append(args, input.DueAt)
	}
	if input.DoCategoryUpdate {
		assignments = append(assignments, "category = ?")
		args = append(args, string(input.Category))
	}
	if input.DoPriorityUpdate {
		assignments = append(assignments, "priority = ?")
		args = append(args, input.Priority.String())
	}
	if input.DoRecurrenceUpdate {
		recurrence, err := encodeRecurrence(input.Recurrence)
		if err != nil {
			return rem, err
		}
		assignments = append(assignments, "is_recurring = ?", "recurrence = ?")
		args = append(args, input.Recurrence.IsPresent, recurrence)
	}
	if input.DoIsCompletedUpdate {
		assignments = append(assignments, "is_completed = ?")
		args = append(args, input.IsCompleted)
	}
	if len(assignments) == 0 {
		return r.GetByID(ctx, input.ID)
	}
	args = append(args, int64(input.ID))

	row := r.db.QueryRowContext(
		ctx,
		`UPDATE reminders SET `+strings.Join(assignments, ", ")+
			` WHERE id = ? RETURNING `+reminderColumns,
		args...,
	)
	rem, err = scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *SQLiteReminderRepository) Delete(ctx context.Context, id reminder.ID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, int64(id))
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return reminder.ErrReminderDoesNotExist
	}
	return nil
}

func (r *SQLiteReminderRepository) DeleteByUserID(
	ctx context.Context,
	userID user.ID,
) (uint, error) {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM reminders WHERE user_id = ?`,
		int64(userID),
	)
	if err != nil {
		return 0, err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return uint(deleted), nil
}

func encodeReadOptions(options reminder.ReadOptions) (where string, args []any) {
	conditions := make([]string, 0, 5)
	if options.CreatedByEquals.IsPresent {
		conditions = append(conditions, "user_id = ?")
		args = append(args, int64(options.CreatedByEquals.Value))
	}
	if options.DueBefore.IsPresent {
		conditions = append(conditions, "due_at <= ?")
		args = append(args, options.DueBefore.Value)
	}
	if options.CategoryEquals.IsPresent {
		conditions = append(conditions, "category = ?")
		args = append(args, string(options.CategoryEquals.Value))
	}
	if options.PriorityEquals.IsPresent {
		conditions = append(conditions, "priority = ?")
		args = append(args, options.PriorityEquals.Value.String())
	}
	if options.IsCompletedEquals.IsPresent {
		conditions = append(conditions, "is_completed = ?")
		args = append(args, options.IsCompletedEquals.Value)
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func orderByClause(orderBy reminder.OrderBy) string {
	switch orderBy {
	case reminder.OrderByIDAsc:
		return " ORDER BY id"
	case reminder.OrderByIDDesc:
		return " ORDER BY id DESC"
	case reminder.OrderByDueAtAsc:
		return " ORDER BY due_at, id"
	case reminder.OrderByDueAtDesc:
		return " ORDER BY due_at DESC, id DESC"
	default:
		return ""
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (rem reminder.Reminder, err error) {
	var id, userID int64
	var description, recurrence sql.NullString
	var priority, category string
	err = row.Scan(
		&id,
		&userID,
		&rem.Title,
		&description,
		&rem.DueAt,
		&category,
		&priority,
		&recurrence,
		&rem.IsCompleted,
		&rem.CreatedAt,
	)
	if err != nil {
		return rem, err
	}
	rem.ID = reminder.ID(id)
	rem.CreatedBy = user.ID(userID)
	rem.Description = c.NewOptional(description.String, description.Valid)
	rem.Category = reminder.Category(category)
	rem.Priority, err = reminder.ParsePriority(priority)
	if err != nil {
		return rem, fmt.Errorf("reminder %d: %w", id, err)
	}
	rem.Recurrence, err = decodeRecurrence(recurrence)
	if err != nil {
		return rem, fmt.Errorf("reminder %d: %w", id, err)
	}
	return rem, nil
}

func encodeOptionalString(s c.Optional[string]) sql.NullString {
	return sql.NullString{String: s.Value, Valid: s.IsPresent}
}

func encodeRecurrence(r c.Optional[reminder.Recurrence]) (sql.NullString, error) {
	if !r.IsPresent {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(r.Value)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func decodeRecurrence(s sql.NullString) (r c.Optional[reminder.Recurrence], err error) {
	if !s.Valid {
		return r, nil
	}
	var recurrence reminder.Recurrence
	if err := json.Unmarshal([]byte(s.String), &recurrence); err != nil {
		return r, err
	}
	return c.NewOptional(recurrence, true), nil
}
