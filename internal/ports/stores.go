package ports

import (
	"context"

	"github.com/anubhav-dev/todo-api/internal/domain/todo"
)

// TodoStore defines the outbound port for todo persistence.
// Implemented by storage adapters; called by the application layer.
// Every operation runs in its own scoped transaction: committed on success,
// rolled back on failure, with the connection released on every exit path.
type TodoStore interface {
	// List returns all todos ordered by ascending id.
	List(ctx context.Context) ([]todo.Todo, error)

	// Get fetches a todo by id. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create inserts a new todo and returns the persisted row with its
	// store-assigned id.
	Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// Update applies the supplied patch fields to an existing row and
	// returns the refreshed row. An empty patch returns the row unchanged.
	// Returns domain.ErrNotFound if the id does not exist.
	Update(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// Delete removes a row. Returns domain.ErrNotFound if no row was affected.
	Delete(ctx context.Context, id int64) error
}
