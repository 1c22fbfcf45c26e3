package user

import (
	"context"
	"sort"
	"sync"
)

type FakeUserRepository struct {
	UpsertError error
	GetError    error
	DeleteError error
	Users       map[ID]User
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make(map[ID]User)}
}

func (r *FakeUserRepository) Upsert(ctx context.Context, input UpsertUserInput) (u User, err error) {
	if r.UpsertError != nil {
		return u, r.UpsertError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	u, ok := r.Users[input.ID]
	if !ok {
		u = User{ID: input.ID, CreatedAt: input.CreatedAt}
	}
	u.FirstName = input.FirstName
	u.LastName = input.LastName
	u.Username = input.Username
	r.Users[input.ID] = u
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.GetError != nil {
		return u, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return u, nil
}

func (r *FakeUserRepository) ReadAll(ctx context.Context) ([]User, error) {
	if r.GetError != nil {
		return nil, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, 0, len(r.Users))
	for _, u := range r.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.Users[id]; !ok {
		return ErrUserDoesNotExist
	}
	delete(r.Users, id)
	return nil
}
