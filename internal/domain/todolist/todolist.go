// Package todolist defines the TodoList aggregate root.
package todolist

import (
	"strings"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
)

// TodoList is a named collection of todo items. Items are not stored on the
// list; they reference it through their ListID and are read through the item
// service.
type TodoList struct {
	ID   int64
	Name string
}

// New creates an unsaved TodoList. The store assigns the ID on create.
func New(name string) *TodoList {
	return &TodoList{Name: name}
}

// Validate checks business rules for the TodoList entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (l *TodoList) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}
	return nil
}

// Update is a partial list payload. Nil fields were not sent by the caller.
type Update struct {
	Name *string
}

// Replacement builds the record that overwrites the stored list with the given
// id. Fields absent from the update are written as zero values; nothing is
// merged from the stored record.
func (u Update) Replacement(id int64) *TodoList {
	l := &TodoList{ID: id}
	if u.Name != nil {
		l.Name = *u.Name
	}
	return l
}
