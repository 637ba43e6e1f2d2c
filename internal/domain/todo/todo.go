// Package todo defines the Todo entity and the partial-update patch type.
package todo

import (
	"github.com/anubhav-dev/todo-api/internal/domain"
)

// Todo represents a single task with content and completion state.
// ID is assigned by the store on creation and immutable thereafter.
type Todo struct {
	ID        int64
	Content   string
	Completed bool
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation), or nil
// if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	// Only the empty string is rejected. Whitespace-only content is stored
	// verbatim so that create/get round-trips are byte-identical.
	if t.Content == "" {
		fields["content"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch describes a partial update. Nil fields mean "do not change".
type Patch struct {
	Content   *string
	Completed *bool
}

// IsEmpty reports whether the patch supplies no fields. An empty patch is a
// no-op update: the stored record is returned unchanged.
func (p Patch) IsEmpty() bool {
	return p.Content == nil && p.Completed == nil
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (p Patch) Validate() error {
	fields := make(map[string]string)

	if p.Content != nil && *p.Content == "" {
		fields["content"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
