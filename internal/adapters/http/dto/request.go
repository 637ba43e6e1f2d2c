package dto

import (
	"github.com/anubhav-dev/todo-api/internal/domain"
	"github.com/anubhav-dev/todo-api/internal/domain/todo"
)

// CreateTodoRequest represents the JSON body for creating a new todo item.
type CreateTodoRequest struct {
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	// Only the empty string is rejected; whitespace-only content is kept
	// as submitted.
	if r.Content == "" {
		fields["content"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToTodo converts the request body to a domain Todo entity.
func (r *CreateTodoRequest) ToTodo() *todo.Todo {
	return &todo.Todo{
		Content:   r.Content,
		Completed: r.Completed,
	}
}

// UpdateTodoRequest represents the JSON body for updating an existing todo.
// All fields are optional; nil means "do not change this field".
type UpdateTodoRequest struct {
	Content   *string `json:"content,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Content != nil && *r.Content == "" {
		fields["content"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request body to a domain partial-update patch.
// A body with no fields yields an empty patch, which is a no-op update.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	return todo.Patch{
		Content:   r.Content,
		Completed: r.Completed,
	}
}
