package todoitem

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
)

func int64Ptr(v int64) *int64    { return &v }
func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func TestNew(t *testing.T) {
	t.Parallel()

	item := New(4, "Apples")

	if item.ID != 0 {
		t.Errorf("ID = %d, want 0 (assigned by store)", item.ID)
	}
	if item.Title != "Apples" {
		t.Errorf("Title = %q, want %q", item.Title, "Apples")
	}
	if item.Completed {
		t.Error("Completed = true, want false at creation")
	}
	if item.ListID == nil || *item.ListID != 4 {
		t.Errorf("ListID = %v, want 4", item.ListID)
	}
}

func TestTodoItem_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid title passes", title: "Apples"},
		{name: "empty title fails", title: "", wantErr: true},
		{name: "whitespace-only title fails", title: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(1, tt.title).Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
			}
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				if _, ok := verr.Fields["title"]; !ok {
					t.Errorf("ValidationError.Fields missing key %q, got %v", "title", verr.Fields)
				}
			}
		})
	}
}

func TestTodoItem_Completion(t *testing.T) {
	t.Parallel()

	original := TodoItem{ID: 1, Title: "Apples", ListID: int64Ptr(1)}
	done := original.Completion()

	if !done.Completed {
		t.Error("Completion().Completed = false, want true")
	}
	if done.ID != 1 || done.Title != "Apples" || done.ListID == nil || *done.ListID != 1 {
		t.Errorf("Completion() = %+v, want other fields preserved", *done)
	}
	if original.Completed {
		t.Error("Completion() mutated the receiver")
	}

	again := done.Completion()
	if !again.Completed {
		t.Error("Completion() on a completed item = false, want true")
	}
}

func TestUpdate_Replacement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		update Update
		want   TodoItem
	}{
		{
			name:   "title only clears completed and list",
			update: Update{Title: stringPtr("T")},
			want:   TodoItem{ID: 9, Title: "T"},
		},
		{
			name:   "completed only clears title",
			update: Update{Completed: boolPtr(true)},
			want:   TodoItem{ID: 9, Completed: true},
		},
		{
			name:   "both fields",
			update: Update{Title: stringPtr("T"), Completed: boolPtr(true)},
			want:   TodoItem{ID: 9, Title: "T", Completed: true},
		},
		{
			name:   "empty update",
			update: Update{},
			want:   TodoItem{ID: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.update.Replacement(9)
			if got.ListID != nil {
				t.Errorf("Replacement().ListID = %d, want nil", *got.ListID)
			}
			if *got != tt.want {
				t.Errorf("Replacement(9) = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	inList1 := &TodoItem{ID: 1, ListID: int64Ptr(1)}
	inList2 := &TodoItem{ID: 2, ListID: int64Ptr(2)}
	orphan := &TodoItem{ID: 3}

	tests := []struct {
		name   string
		filter Filter
		item   *TodoItem
		want   bool
	}{
		{"zero filter matches list item", Filter{}, inList1, true},
		{"zero filter matches orphan", Filter{}, orphan, true},
		{"list filter matches same list", ByList(1), inList1, true},
		{"list filter rejects other list", ByList(1), inList2, false},
		{"list filter rejects orphan", ByList(1), orphan, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(tt.item); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
