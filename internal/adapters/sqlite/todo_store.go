package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anubhav-dev/todo-api/internal/domain"
	"github.com/anubhav-dev/todo-api/internal/domain/todo"
)

// List returns all todos ordered by ascending id. An empty table yields an
// empty (non-nil) slice.
func (s *Store) List(ctx context.Context) (_ []todo.Todo, err error) {
	defer func(start time.Time) { s.record(ctx, "List", start, err) }(time.Now())

	rows, err := s.db.QueryContext(ctx,
		`SELECT todo_id, content, completed FROM todos ORDER BY todo_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	todos := make([]todo.Todo, 0)
	for rows.Next() {
		var t todo.Todo
		if err := rows.Scan(&t.ID, &t.Content, &t.Completed); err != nil {
			return nil, fmt.Errorf("scanning todo row: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo rows: %w", err)
	}

	return todos, nil
}

// Get fetches a single todo by id.
func (s *Store) Get(ctx context.Context, id int64) (_ *todo.Todo, err error) {
	defer func(start time.Time) { s.record(ctx, "Get", start, err) }(time.Now())

	t, err := getTodo(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new todo and returns the persisted row with its assigned
// id. The insert and re-read share one transaction so the returned row is
// exactly what was written.
func (s *Store) Create(ctx context.Context, t *todo.Todo) (_ *todo.Todo, err error) {
	defer func(start time.Time) { s.record(ctx, "Create", start, err) }(time.Now())

	var created *todo.Todo
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO todos (content, completed) VALUES (?, ?)`,
			t.Content, t.Completed)
		if err != nil {
			return fmt.Errorf("inserting todo: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading inserted id: %w", err)
		}

		created, err = getTodo(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the patch to an existing row and returns the refreshed row.
// An empty patch performs no write and returns the record as stored.
func (s *Store) Update(ctx context.Context, id int64, patch todo.Patch) (_ *todo.Todo, err error) {
	defer func(start time.Time) { s.record(ctx, "Update", start, err) }(time.Now())

	var updated *todo.Todo
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		// Existence check first so a missing row reports not-found even
		// when the patch is empty.
		if _, err := getTodo(ctx, tx, id); err != nil {
			return err
		}

		if !patch.IsEmpty() {
			set := make([]string, 0, 2)
			args := make([]any, 0, 3)
			if patch.Content != nil {
				set = append(set, "content = ?")
				args = append(args, *patch.Content)
			}
			if patch.Completed != nil {
				set = append(set, "completed = ?")
				args = append(args, *patch.Completed)
			}
			args = append(args, id)

			query := "UPDATE todos SET " + strings.Join(set, ", ") + " WHERE todo_id = ?"
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("updating todo %d: %w", id, err)
			}
		}

		updated, err = getTodo(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a row permanently.
func (s *Store) Delete(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { s.record(ctx, "Delete", start, err) }(time.Now())

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM todos WHERE todo_id = ?`, id)
		if err != nil {
			return fmt.Errorf("deleting todo %d: %w", id, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reading rows affected: %w", err)
		}
		if affected == 0 {
			return &domain.NotFoundError{ID: id}
		}
		return nil
	})
}

// querier is satisfied by both *sql.DB and *sql.Tx so single-row reads can
// run standalone or inside a transaction.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getTodo(ctx context.Context, q querier, id int64) (*todo.Todo, error) {
	var t todo.Todo
	err := q.QueryRowContext(ctx,
		`SELECT todo_id, content, completed FROM todos WHERE todo_id = ?`, id).
		Scan(&t.ID, &t.Content, &t.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("fetching todo %d: %w", id, err)
	}
	return &t, nil
}
