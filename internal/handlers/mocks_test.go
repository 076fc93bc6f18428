package handlers

import (
	"context"
	"sort"
	"time"

	dom "MedDesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repos for handler tests so requests run through the real
// services without a database.

type memTodoRepo struct {
	todos  map[int64]dom.Todo
	nextID int64
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{todos: map[int64]dom.Todo{}, nextID: 1}
}

func (r *memTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = time.Now().Add(time.Duration(t.ID) * time.Millisecond)
	r.todos[t.ID] = t
	return t, nil
}

func (r *memTodoRepo) GetByID(_ context.Context, id int64) (dom.Todo, error) {
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTodoRepo) List(_ context.Context) ([]dom.Todo, error) {
	var out []dom.Todo
	for _, t := range r.todos {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTodoRepo) Update(_ context.Context, id int64, patch dom.Todo) (dom.Todo, error) {
	existing, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	existing.Title = patch.Title
	existing.Description = patch.Description
	existing.Completed = patch.Completed
	r.todos[id] = existing
	return existing, nil
}

func (r *memTodoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.todos[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.todos, id)
	return nil
}

type memAccountRepo struct {
	accounts map[string]dom.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: map[string]dom.Account{}}
}

func (r *memAccountRepo) Create(_ context.Context, a dom.Account) (dom.Account, error) {
	if _, ok := r.accounts[a.Username]; ok {
		return dom.Account{}, &pgconn.PgError{Code: "23505", ConstraintName: "accounts_username_key"}
	}
	a.CreatedAt = time.Now()
	r.accounts[a.Username] = a
	return a, nil
}

func (r *memAccountRepo) GetByUsername(_ context.Context, username string) (dom.Account, error) {
	a, ok := r.accounts[username]
	if !ok {
		return dom.Account{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *memAccountRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := r.accounts[username]
	return ok, nil
}

func (r *memAccountRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}
