package ports

import (
	"context"

	"github.com/anubhav-dev/todo-api/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns all todos ordered by ascending id.
	// An empty store yields an empty slice, not an error.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo by id.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo validates and creates a new todo, returning the created
	// entity with its store-assigned id.
	// Returns domain.ErrValidation if content is missing or empty.
	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// UpdateTodo applies a partial update to an existing todo and returns
	// the refreshed entity. An empty patch performs no mutation and returns
	// the record unchanged.
	// Returns domain.ErrNotFound if the todo does not exist.
	// Returns domain.ErrValidation if a supplied content is empty.
	UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo removes a todo permanently.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}
