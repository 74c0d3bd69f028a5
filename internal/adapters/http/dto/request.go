package dto

import (
	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
)

// CreateTodoListRequest represents the JSON body for creating a todo list.
type CreateTodoListRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoListRequest) Validate() error {
	return validateStruct(r)
}

// UpdateTodoListRequest represents the JSON body for updating a todo list.
// Omitted fields are written as zero values by the update.
type UpdateTodoListRequest struct {
	Name *string `json:"name,omitempty" validate:"omitnil,notblank"`
}

// Validate rejects a name that is present but blank.
func (r *UpdateTodoListRequest) Validate() error {
	return validateStruct(r)
}

// ToUpdate converts the request to a domain update.
func (r *UpdateTodoListRequest) ToUpdate() todolist.Update {
	return todolist.Update{Name: r.Name}
}

// CreateTodoItemRequest represents the JSON body for creating an item inside
// the list named by the path.
type CreateTodoItemRequest struct {
	Title string `json:"title" validate:"required,notblank"`
}

// Validate checks that required fields are present.
func (r *CreateTodoItemRequest) Validate() error {
	return validateStruct(r)
}

// CreateStandaloneTodoItemRequest represents the JSON body for POST
// /todoitems, where the owning list travels in the payload.
type CreateStandaloneTodoItemRequest struct {
	Title  string `json:"title" validate:"required,notblank"`
	ListID *int64 `json:"listId" validate:"required"`
}

// Validate checks that required fields are present.
func (r *CreateStandaloneTodoItemRequest) Validate() error {
	return validateStruct(r)
}

// UpdateTodoItemRequest represents the JSON body for updating an item.
// Omitted fields are written as zero values by the update.
type UpdateTodoItemRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitnil,notblank"`
	Completed *bool   `json:"completed,omitempty"`
}

// Validate rejects a title that is present but blank.
func (r *UpdateTodoItemRequest) Validate() error {
	return validateStruct(r)
}

// ToUpdate converts the request to a domain update.
func (r *UpdateTodoItemRequest) ToUpdate() todoitem.Update {
	return todoitem.Update{Title: r.Title, Completed: r.Completed}
}
