package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/anubhav-dev/todo-api/internal/adapters/http/dto"
	"github.com/anubhav-dev/todo-api/internal/domain/todo"
)

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	td := &todo.Todo{ID: 42, Content: "buy milk", Completed: true}
	got := dto.ToTodoResponse(td)

	if got.TodoID != 42 {
		t.Errorf("TodoID = %d, want 42", got.TodoID)
	}
	if got.Content != "buy milk" {
		t.Errorf("Content = %q, want %q", got.Content, "buy milk")
	}
	if !got.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestTodoResponse_JSONKeys(t *testing.T) {
	t.Parallel()

	resp := dto.ToTodoResponse(&todo.Todo{ID: 1, Content: "walk dog"})
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var keys map[string]any
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"todo_id", "content", "completed"} {
		if _, ok := keys[key]; !ok {
			t.Errorf("JSON output missing key %q: %s", key, raw)
		}
	}
}

func TestToTodoResponses(t *testing.T) {
	t.Parallel()

	t.Run("empty list renders bare array", func(t *testing.T) {
		t.Parallel()
		got := dto.ToTodoResponses([]todo.Todo{})

		if got == nil {
			t.Fatal("ToTodoResponses = nil, want empty slice so JSON renders [] not null")
		}

		raw, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(raw) != "[]" {
			t.Errorf("JSON = %s, want []", raw)
		}
	})

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()
		todos := []todo.Todo{
			{ID: 1, Content: "first"},
			{ID: 2, Content: "second"},
		}

		got := dto.ToTodoResponses(todos)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].TodoID != 1 || got[1].TodoID != 2 {
			t.Errorf("order = [%d, %d], want [1, 2]", got[0].TodoID, got[1].TodoID)
		}
	})

	t.Run("top-level JSON is an array of objects", func(t *testing.T) {
		t.Parallel()
		got := dto.ToTodoResponses([]todo.Todo{{ID: 7, Content: "buy milk"}})

		raw, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		var decoded []map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("response is not a top-level JSON array: %v", err)
		}
		if len(decoded) != 1 {
			t.Fatalf("len = %d, want 1", len(decoded))
		}
		if decoded[0]["todo_id"] != float64(7) {
			t.Errorf("todo_id = %v, want 7", decoded[0]["todo_id"])
		}
	})
}
