// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/anubhav-dev/todo-api/internal/domain/todo"
	"github.com/anubhav-dev/todo-api/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService by orchestrating calls to the
// persistence layer through the TodoStore port. It handles validation and
// structured logging but contains no storage logic.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService. The store port provides persistence
// for todos. The logger is used for structured request/error logging; a nil
// logger is replaced with a no-op logger.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// ListTodos returns all todos ordered by ascending id.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "listing todos")

	todos, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// GetTodo returns a single todo by id.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.Int64("todo_id", id))

	t, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "GetTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// CreateTodo validates and creates a new todo, returning the created entity
// with its store-assigned id.
func (s *TodoService) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo")

	if err := t.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateTodo applies a partial update to an existing todo. An empty patch
// performs no mutation and returns the stored record unchanged.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.Int64("todo_id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "UpdateTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteTodo removes a todo permanently.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.Int64("todo_id", id))

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "DeleteTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
