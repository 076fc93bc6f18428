package service

import (
	"context"
	"errors"
	"strings"

	dom "MedDesk/internal/domain"
	"MedDesk/internal/repo"

	"github.com/jackc/pgx/v5"
)

var ErrEmptyTitle = errors.New("title cannot be empty")

// TodoService handles todo CRUD. Updates are partial: only fields the
// caller actually sent are changed.
type TodoService struct {
	repo repo.TodoRepo
}

// NewTodoService creates a TodoService.
func NewTodoService(r repo.TodoRepo) *TodoService {
	return &TodoService{repo: r}
}

func (s *TodoService) Create(ctx context.Context, title, desc string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Todo{}, ErrEmptyTitle
	}
	return s.repo.Create(ctx, dom.Todo{
		Title:       title,
		Description: strings.TrimSpace(desc),
	})
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	return s.repo.List(ctx)
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// Update changes only the fields that are present. A nil completed means
// the caller did not send the field, not false. A present but blank
// title rejects the whole update, leaving the row untouched.
func (s *TodoService) Update(ctx context.Context, id int64, title, desc *string, completed *bool) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	patch := existing
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return dom.Todo{}, ErrEmptyTitle
		}
		patch.Title = trimmed
	}
	if desc != nil {
		patch.Description = *desc
	}
	if completed != nil {
		patch.Completed = *completed
	}
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
