package handlers

import (
	"net/http"

	"github.com/anubhav-dev/todo-api/internal/adapters/http/dto"
)

const (
	welcomeMessage = "Welcome to the Todo API"
	apiVersion     = "1.0.0"
	docsPath       = "/docs"
)

// RootHandler serves the API welcome and documentation endpoints.
type RootHandler struct{}

// NewRootHandler creates a new RootHandler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Welcome handles GET /. It returns the service greeting, the API version,
// and a pointer to the documentation endpoint.
func (h *RootHandler) Welcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.WelcomeResponse{
		Message: welcomeMessage,
		Version: apiVersion,
		Docs:    docsPath,
	})
}

// endpointDoc describes a single API operation in the docs payload.
type endpointDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Docs handles GET /docs. It returns a machine-readable description of the
// API surface.
func (h *RootHandler) Docs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"title":   "Todo API",
		"version": apiVersion,
		"endpoints": []endpointDoc{
			{Method: http.MethodGet, Path: "/", Description: "API welcome message"},
			{Method: http.MethodGet, Path: "/docs", Description: "This document"},
			{Method: http.MethodGet, Path: "/todos", Description: "List all todos"},
			{Method: http.MethodPost, Path: "/todos", Description: "Create a todo"},
			{Method: http.MethodGet, Path: "/todos/{id}", Description: "Get a todo by id"},
			{Method: http.MethodPut, Path: "/todos/{id}", Description: "Update a todo"},
			{Method: http.MethodDelete, Path: "/todos/{id}", Description: "Delete a todo"},
			{Method: http.MethodGet, Path: "/health/live", Description: "Liveness probe"},
			{Method: http.MethodGet, Path: "/health/ready", Description: "Readiness probe"},
		},
	})
}
