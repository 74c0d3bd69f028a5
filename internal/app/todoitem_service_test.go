package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/mocks"
)

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(b bool) *bool     { return &b }

func storedItem() *todoitem.TodoItem {
	return &todoitem.TodoItem{ID: 1, Title: "Apples", Completed: false, ListID: int64Ptr(4)}
}

func TestTodoItemService_SaveFailureLogsRequestID(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockTodoItemRepository(t)
	svc := NewTodoItemService(repo, discardLogger())

	repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(storedItem(), nil)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

	ctx, buf := requestContext("req-complete")
	if _, err := svc.Complete(ctx, 1); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("Complete() error = %v, want ErrUnavailable", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"operation":"Complete"`) {
		t.Errorf("request log = %q, want operation Complete", out)
	}
	if !strings.Contains(out, `"request_id":"req-complete"`) {
		t.Errorf("request log = %q, want request_id req-complete", out)
	}
}

// --- NewTodoItemService ---

func TestNewTodoItemService_NilLogger(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockTodoItemRepository(t)

	svc := NewTodoItemService(repo, nil)
	if svc.logger == nil {
		t.Fatal("NewTodoItemService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Create ---

func TestTodoItemService_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates incomplete item owned by list", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().Create(mock.Anything, &todoitem.TodoItem{Title: "Apples", ListID: int64Ptr(4)}).
			Return(storedItem(), nil)

		got, err := svc.Create(context.Background(), 4, "Apples")
		if err != nil {
			t.Fatalf("Create() error = %v, want nil", err)
		}
		if got.ID != 1 || got.Completed || !got.BelongsTo(4) {
			t.Errorf("Create() = %+v, want id 1, incomplete, list 4", got)
		}
	})

	t.Run("does not check list existence", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		created := &todoitem.TodoItem{ID: 9, Title: "Orphan", ListID: int64Ptr(12345)}
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(created, nil)

		got, err := svc.Create(context.Background(), 12345, "Orphan")
		if err != nil {
			t.Fatalf("Create() error = %v, want nil", err)
		}
		if !got.BelongsTo(12345) {
			t.Errorf("Create().ListID = %v, want 12345", got.ListID)
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		_, err := svc.Create(context.Background(), 4, "")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Create() error = %v, want ErrValidation", err)
		}
	})

	t.Run("wraps store failure", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.Create(context.Background(), 4, "Apples")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Create() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- FindAllFromList / All ---

func TestTodoItemService_FindAllFromList(t *testing.T) {
	t.Parallel()

	t.Run("queries store with list filter", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		want := []todoitem.TodoItem{*storedItem()}
		repo.EXPECT().FindAll(mock.Anything, todoitem.ByList(4)).Return(want, nil)

		got, err := svc.FindAllFromList(context.Background(), 4)
		if err != nil {
			t.Fatalf("FindAllFromList() error = %v, want nil", err)
		}
		if len(got) != 1 {
			t.Errorf("FindAllFromList() len = %d, want 1", len(got))
		}
	})

	t.Run("unknown list yields empty non-nil slice", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindAll(mock.Anything, todoitem.ByList(77)).Return(nil, nil)

		got, err := svc.FindAllFromList(context.Background(), 77)
		if err != nil {
			t.Fatalf("FindAllFromList() error = %v, want nil", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("FindAllFromList() = %v, want empty slice", got)
		}
	})

	t.Run("propagates store failure", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindAll(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.FindAllFromList(context.Background(), 4)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("FindAllFromList() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestTodoItemService_All(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockTodoItemRepository(t)
	svc := NewTodoItemService(repo, discardLogger())

	repo.EXPECT().FindAll(mock.Anything, todoitem.Filter{}).Return([]todoitem.TodoItem{
		{ID: 1, Title: "a", ListID: int64Ptr(1)},
		{ID: 2, Title: "b", ListID: int64Ptr(2)},
	}, nil)

	got, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v, want nil", err)
	}
	if len(got) != 2 {
		t.Errorf("All() len = %d, want 2", len(got))
	}
}

// --- Get ---

func TestTodoItemService_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns stored item", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(storedItem(), nil)

		got, err := svc.Get(context.Background(), 1)
		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}
		if got.Title != "Apples" {
			t.Errorf("Get().Title = %q, want %q", got.Title, "Apples")
		}
	})

	t.Run("missing id reports todo item not found", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindByID(mock.Anything, int64(999)).Return(nil, domain.ErrNotFound)

		_, err := svc.Get(context.Background(), 999)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Get() error = %v, want ErrNotFound", err)
		}
		if err.Error() != "Todo item not found" {
			t.Errorf("Get() error message = %q, want %q", err.Error(), "Todo item not found")
		}
	})
}

// --- Update ---

func TestTodoItemService_Update(t *testing.T) {
	t.Parallel()

	t.Run("overwrites with id plus payload only", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		want := &todoitem.TodoItem{ID: 1, Title: "Green apples"}
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(storedItem(), nil)
		repo.EXPECT().Save(mock.Anything, want).Return(want, nil)

		got, err := svc.Update(context.Background(), 1, todoitem.Update{Title: stringPtr("Green apples")})
		if err != nil {
			t.Fatalf("Update() error = %v, want nil", err)
		}
		if got.ListID != nil {
			t.Errorf("Update().ListID = %v, want nil", *got.ListID)
		}
		if got.Completed {
			t.Error("Update().Completed = true, want false")
		}
	})

	t.Run("completed only payload clears title", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		want := &todoitem.TodoItem{ID: 1, Completed: true}
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(storedItem(), nil)
		repo.EXPECT().Save(mock.Anything, want).Return(want, nil)

		got, err := svc.Update(context.Background(), 1, todoitem.Update{Completed: boolPtr(true)})
		if err != nil {
			t.Fatalf("Update() error = %v, want nil", err)
		}
		if got.Title != "" || !got.Completed {
			t.Errorf("Update() = %+v, want empty title and completed", got)
		}
	})

	t.Run("missing id does not save", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

		_, err := svc.Update(context.Background(), 5, todoitem.Update{Title: stringPtr("x")})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})
}

// --- Complete ---

func TestTodoItemService_Complete(t *testing.T) {
	t.Parallel()

	t.Run("keeps fields and sets completed", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(storedItem(), nil)
		repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(item *todoitem.TodoItem) bool {
			return item.ID == 1 && item.Title == "Apples" && item.Completed && item.BelongsTo(4)
		})).RunAndReturn(func(_ context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error) {
			return item, nil
		})

		got, err := svc.Complete(context.Background(), 1)
		if err != nil {
			t.Fatalf("Complete() error = %v, want nil", err)
		}
		if !got.Completed {
			t.Error("Complete().Completed = false, want true")
		}
	})

	t.Run("already completed item stays completed", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		done := storedItem()
		done.Completed = true
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(done, nil).Twice()
		repo.EXPECT().Save(mock.Anything, done).Return(done, nil).Twice()

		for range 2 {
			got, err := svc.Complete(context.Background(), 1)
			if err != nil {
				t.Fatalf("Complete() error = %v, want nil", err)
			}
			if !got.Completed || got.Title != "Apples" {
				t.Errorf("Complete() = %+v, want unchanged completed item", got)
			}
		}
	})

	t.Run("missing id does not save", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindByID(mock.Anything, int64(8)).Return(nil, domain.ErrNotFound)

		_, err := svc.Complete(context.Background(), 8)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Complete() error = %v, want ErrNotFound", err)
		}
	})
}

// --- Delete ---

func TestTodoItemService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("get after delete is not found", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(storedItem(), nil).Once()
		repo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)
		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(nil, domain.ErrNotFound).Once()

		if err := svc.Delete(context.Background(), 1); err != nil {
			t.Fatalf("Delete() error = %v, want nil", err)
		}
		_, err := svc.Get(context.Background(), 1)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("missing id does not delete", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindByID(mock.Anything, int64(2)).Return(nil, domain.ErrNotFound)

		err := svc.Delete(context.Background(), 2)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("wraps delete failure", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoItemRepository(t)
		svc := NewTodoItemService(repo, discardLogger())

		repo.EXPECT().FindByID(mock.Anything, int64(1)).Return(storedItem(), nil)
		repo.EXPECT().Delete(mock.Anything, int64(1)).Return(domain.ErrUnavailable)

		err := svc.Delete(context.Background(), 1)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Delete() error = %v, want ErrUnavailable", err)
		}
	})
}
