// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/anubhav-dev/todo-api/internal/domain/todo"
)

// TodoResponse represents a single todo item in HTTP responses.
type TodoResponse struct {
	TodoID    int64  `json:"todo_id"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		TodoID:    t.ID,
		Content:   t.Content,
		Completed: t.Completed,
	}
}

// ToTodoResponses converts a slice of domain Todo entities to HTTP response
// DTOs. The list endpoint serializes this directly as a bare JSON array, so
// the result is never nil: an empty input renders [] rather than null.
func ToTodoResponses(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// WelcomeResponse is the payload returned by the root endpoint.
type WelcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}
