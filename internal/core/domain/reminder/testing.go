package reminder

import (
	"context"
	"reminderbot/internal/core/domain/user"
	"sort"
	"sync"
)

// FakeReminderRepository is an in-memory repository for service tests.
type FakeReminderRepository struct {
	CreateError error
	GetError    error
	ReadError   error
	UpdateError error
	DeleteError error
	Reminders   map[ID]Reminder
	ReadWith    []ReadOptions
	UpdatedWith []UpdateInput
	nextID      ID
	lock        sync.Mutex
}

func NewFakeReminderRepository() *FakeReminderRepository {
	return &FakeReminderRepository{Reminders: make(map[ID]Reminder)}
}

func (r *FakeReminderRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.CreateError != nil {
		return rem, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	rem = Reminder{
		ID:          r.nextID,
		CreatedBy:   input.CreatedBy,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Category:    input.Category,
		Priority:    input.Priority,
		Recurrence:  input.Recurrence,
		IsCompleted: input.IsCompleted,
		CreatedAt:   input.CreatedAt,
	}
	r.Reminders[rem.ID] = rem
	return rem, nil
}

func (r *FakeReminderRepository) GetByID(ctx context.Context, id ID) (rem Reminder, err error) {
	if r.GetError != nil {
		return rem, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.Reminders[id]
	if !ok {
		return rem, ErrReminderDoesNotExist
	}
	return rem, nil
}

func (r *FakeReminderRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)

	reminders := make([]Reminder, 0)
	for _, rem := range r.Reminders {
		if matches(rem, options) {
			reminders = append(reminders, rem)
		}
	}
	sort.Slice(reminders, func(i, j int) bool {
		switch options.OrderBy {
		case OrderByIDDesc:
			return reminders[i].ID > reminders[j].ID
		case OrderByDueAtAsc:
			return reminders[i].DueAt.Before(reminders[j].DueAt)
		case OrderByDueAtDesc:
			return reminders[i].DueAt.After(reminders[j].DueAt)
		default:
			return reminders[i].ID < reminders[j].ID
		}
	})
	if options.Offset > 0 {
		if int(options.Offset) >= len(reminders) {
			return []Reminder{}, nil
		}
		reminders = reminders[options.Offset:]
	}
	if options.Limit.IsPresent && int(options.Limit.Value) < len(reminders) {
		reminders = reminders[:options.Limit.Value]
	}
	return reminders, nil
}

func (r *FakeReminderRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.ReadError != nil {
		return 0, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	count := uint(0)
	for _, rem := range r.Reminders {
		if matches(rem, options) {
			count++
		}
	}
	return count, nil
}

func (r *FakeReminderRepository) Update(ctx context.Context, input UpdateInput) (rem Reminder, err error) {
	if r.UpdateError != nil {
		return rem, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.Reminders[input.ID]
	if !ok {
		return rem, ErrReminderDoesNotExist
	}
	if input.DoTitleUpdate {
		rem.Title = input.Title
	}
	if input.DoDescriptionUpdate {
		rem.Description = input.Description
	}
	if input.DoDueAtUpdate {
		rem.DueAt = input.DueAt
	}
	if input.DoCategoryUpdate {
		rem.Category = input.Category
	}
	if input.DoPriorityUpdate {
		rem.Priority = input.Priority
	}
	if input.DoRecurrenceUpdate {
		rem.Recurrence = input.Recurrence
	}
	if input.DoIsCompletedUpdate {
		rem.IsCompleted = input.IsCompleted
	}
	r.Reminders[input.ID] = rem
	r.UpdatedWith = append(r.UpdatedWith, input)
	return rem, nil
}

func (r *FakeReminderRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.Reminders[id]; !ok {
		return ErrReminderDoesNotExist
	}
	delete(r.Reminders, id)
	return nil
}

func (r *FakeReminderRepository) DeleteByUserID(ctx context.Context, userID user.ID) (uint, error) {
	if r.DeleteError != nil {
		return 0, r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	deleted := uint(0)
	for id, rem := range r.Reminders {
		if rem.CreatedBy == userID {
			delete(r.Reminders, id)
			deleted++
		}
	}
	return deleted, nil
}

func matches(rem Reminder, options ReadOptions) bool {
	if options.CreatedByEquals.IsPresent && rem.CreatedBy != options.CreatedByEquals.Value {
		return false
	}
	if options.DueBefore.IsPresent && rem.DueAt.After(options.DueBefore.Value) {
		return false
	}
	if options.CategoryEquals.IsPresent && rem.Category != options.CategoryEquals.Value {
		return false
	}
	if options.PriorityEquals.IsPresent && rem.Priority != options.PriorityEquals.Value {
		return false
	}
	if options.IsCompletedEquals.IsPresent && rem.IsCompleted != options.IsCompletedEquals.Value {
		return false
	}
	return true
}

// FakeNotifier records deliveries and can be told to fail for
// particular reminders.
type FakeNotifier struct {
	Notified   []Reminder
	Error      error
	ErrorForID map[ID]error
	lock       sync.Mutex
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{ErrorForID: make(map[ID]error)}
}

func (n *FakeNotifier) Notify(ctx context.Context, rem Reminder) error {
	if n.Error != nil {
		return n.Error
	}
	if err, ok := n.ErrorForID[rem.ID]; ok {
		return err
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Notified = append(n.Notified, rem)
	return nil
}

func (n *FakeNotifier) NotifiedCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return len(n.Notified)
}
