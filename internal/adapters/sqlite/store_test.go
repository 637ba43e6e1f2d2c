package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/anubhav-dev/todo-api/internal/adapters/sqlite"
	"github.com/anubhav-dev/todo-api/internal/domain"
	"github.com/anubhav-dev/todo-api/internal/domain/todo"
	"github.com/anubhav-dev/todo-api/internal/platform/config"
)

// newStore opens a store on a fresh temp-file database with the schema applied.
func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	cfg := config.StorageConfig{
		Path:        filepath.Join(t.TempDir(), "todos.db"),
		BusyTimeout: 5 * time.Second,
	}

	store, err := sqlite.Open(cfg, nil)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close error: %v", err)
		}
	})

	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema error: %v", err)
	}
	return store
}

func mustCreate(t *testing.T, store *sqlite.Store, content string, completed bool) *todo.Todo {
	t.Helper()

	created, err := store.Create(context.Background(), &todo.Todo{Content: content, Completed: completed})
	if err != nil {
		t.Fatalf("Create(%q) error: %v", content, err)
	}
	return created
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	cfg := config.StorageConfig{
		Path:        filepath.Join(t.TempDir(), "nested", "dir", "todos.db"),
		BusyTimeout: time.Second,
	}

	store, err := sqlite.Open(cfg, nil)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema error: %v", err)
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	mustCreate(t, store, "keep me", false)

	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("second EnsureSchema error: %v", err)
	}

	todos, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(todos) != 1 {
		t.Errorf("len(todos) = %d after re-running EnsureSchema, want 1", len(todos))
	}
}

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	first := mustCreate(t, store, "first", false)
	second := mustCreate(t, store, "second", true)

	if first.ID <= 0 {
		t.Errorf("first.ID = %d, want positive", first.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("second.ID = %d, want greater than first.ID %d", second.ID, first.ID)
	}
	if second.Content != "second" || !second.Completed {
		t.Errorf("second = %+v, want content %q completed true", second, "second")
	}
}

func TestGet_RoundTrip(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	created := mustCreate(t, store, "buy milk", false)

	got, err := store.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}

	if *got != *created {
		t.Errorf("Get = %+v, want %+v", got, created)
	}
}

func TestGet_RoundTripWhitespaceContent(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	created := mustCreate(t, store, " \t ", false)

	got, err := store.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Content != " \t " {
		t.Errorf("Content = %q, want byte-identical %q", got.Content, " \t ")
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	_, err := store.Get(context.Background(), 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get(9999) error = %v, want domain.ErrNotFound", err)
	}

	var nfe *domain.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("Get(9999) error = %T, want *domain.NotFoundError", err)
	}
	if nfe.ID != 9999 {
		t.Errorf("NotFoundError.ID = %d, want 9999", nfe.ID)
	}
}

func TestList_EmptyStore(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	todos, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if todos == nil {
		t.Fatal("List returned nil slice, want empty slice")
	}
	if len(todos) != 0 {
		t.Errorf("len(todos) = %d, want 0", len(todos))
	}
}

func TestList_OrderedByID(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	for _, content := range []string{"a", "b", "c"} {
		mustCreate(t, store, content, false)
	}

	todos, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("len(todos) = %d, want 3", len(todos))
	}
	for i := 1; i < len(todos); i++ {
		if todos[i].ID <= todos[i-1].ID {
			t.Errorf("todos[%d].ID = %d, not ascending after %d", i, todos[i].ID, todos[i-1].ID)
		}
	}
}

func TestUpdate_ContentOnly(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	created := mustCreate(t, store, "old content", true)

	content := "new content"
	updated, err := store.Update(context.Background(), created.ID, todo.Patch{Content: &content})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if updated.Content != "new content" {
		t.Errorf("Content = %q, want %q", updated.Content, "new content")
	}
	if !updated.Completed {
		t.Error("Completed = false, want true (untouched by patch)")
	}
	if updated.ID != created.ID {
		t.Errorf("ID = %d, want %d", updated.ID, created.ID)
	}
}

func TestUpdate_CompletedOnly(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	created := mustCreate(t, store, "stay the same", false)

	completed := true
	updated, err := store.Update(context.Background(), created.ID, todo.Patch{Completed: &completed})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if !updated.Completed {
		t.Error("Completed = false, want true")
	}
	if updated.Content != "stay the same" {
		t.Errorf("Content = %q, want unchanged", updated.Content)
	}
}

func TestUpdate_EmptyPatchIsNoOp(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	created := mustCreate(t, store, "untouched", true)

	updated, err := store.Update(context.Background(), created.ID, todo.Patch{})
	if err != nil {
		t.Fatalf("Update with empty patch error: %v", err)
	}

	if *updated != *created {
		t.Errorf("Update(empty patch) = %+v, want unchanged %+v", updated, created)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	content := "anything"
	_, err := store.Update(context.Background(), 42, todo.Patch{Content: &content})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update(42) error = %v, want domain.ErrNotFound", err)
	}
}

func TestUpdate_EmptyPatchNotFound(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	_, err := store.Update(context.Background(), 42, todo.Patch{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update(42, empty patch) error = %v, want domain.ErrNotFound", err)
	}
}

func TestDelete_RemovesRow(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	created := mustCreate(t, store, "short-lived", false)

	if err := store.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	_, err := store.Get(context.Background(), created.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get after Delete error = %v, want domain.ErrNotFound", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	err := store.Delete(context.Background(), 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete(7) error = %v, want domain.ErrNotFound", err)
	}
}

func TestDelete_IsIdempotentOnlyOnce(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	created := mustCreate(t, store, "delete twice", false)

	if err := store.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete error: %v", err)
	}
	if err := store.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second Delete error = %v, want domain.ErrNotFound", err)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	cfg := config.StorageConfig{
		Path:        filepath.Join(t.TempDir(), "todos.db"),
		BusyTimeout: 5 * time.Second,
	}
	ctx := context.Background()

	store, err := sqlite.Open(cfg, nil)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema error: %v", err)
	}
	created, err := store.Create(ctx, &todo.Todo{Content: "survive restart", Completed: false})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	reopened, err := sqlite.Open(cfg, nil)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()
	if err := reopened.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema after reopen error: %v", err)
	}

	got, err := reopened.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after reopen error: %v", err)
	}
	if got.Content != "survive restart" {
		t.Errorf("Content = %q after reopen, want %q", got.Content, "survive restart")
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	if got := store.Name(); got != "sqlite" {
		t.Errorf("Name() = %q, want \"sqlite\"", got)
	}
	if err := store.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck error: %v", err)
	}
}
