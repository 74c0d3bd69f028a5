// Package todoitem defines the TodoItem entity and its list-scoped filter.
package todoitem

import (
	"strings"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
)

// TodoItem is a single task owned by one todo list through ListID.
// ListID is nil only after an overwrite update that did not carry it.
type TodoItem struct {
	ID        int64
	Title     string
	Completed bool
	ListID    *int64
}

// New creates an unsaved, incomplete TodoItem owned by listID. The parent list
// is not checked for existence.
func New(listID int64, title string) *TodoItem {
	return &TodoItem{
		Title:     title,
		Completed: false,
		ListID:    &listID,
	}
}

// Validate checks business rules for the TodoItem entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *TodoItem) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return domain.NewValidationError("title", domain.MsgRequired)
	}
	return nil
}

// Completion returns a copy of the item with Completed forced to true. All
// other fields are kept.
func (t TodoItem) Completion() *TodoItem {
	t.Completed = true
	return &t
}

// BelongsTo reports whether the item references the given list.
func (t *TodoItem) BelongsTo(listID int64) bool {
	return t.ListID != nil && *t.ListID == listID
}

// Update is a partial item payload. Nil fields were not sent by the caller.
type Update struct {
	Title     *string
	Completed *bool
}

// Replacement builds the record that overwrites the stored item with the given
// id. It is exactly {id, ...update}: omitted fields are written as zero values
// and ListID is cleared, since the payload never carries it.
func (u Update) Replacement(id int64) *TodoItem {
	t := &TodoItem{ID: id}
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	return t
}
