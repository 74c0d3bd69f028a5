package ports

import (
	"context"

	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
)

// TodoListService defines the service port for the TodoList aggregate.
// Implemented by the application layer; called by inbound adapters (handlers).
// It never reads item state.
type TodoListService interface {
	// All returns every todo list.
	All(ctx context.Context) ([]todolist.TodoList, error)

	// Get returns a single list by ID.
	// Returns a *domain.NotFoundError if the list does not exist.
	Get(ctx context.Context, id int64) (*todolist.TodoList, error)

	// Create persists a new list and returns it with its assigned ID.
	// Returns domain.ErrValidation if the name is blank.
	Create(ctx context.Context, name string) (*todolist.TodoList, error)

	// Update overwrites the list with {id, ...update} and returns that value.
	// Returns a *domain.NotFoundError if the list does not exist.
	Update(ctx context.Context, id int64, update todolist.Update) (*todolist.TodoList, error)

	// Delete removes the list. Its items are left in place.
	// Returns a *domain.NotFoundError if the list does not exist.
	Delete(ctx context.Context, id int64) error
}

// TodoItemService defines the service port for todo items.
// Implemented by the application layer; called by inbound adapters (handlers).
// It never consults the list service: list ids are taken as given.
type TodoItemService interface {
	// Create persists a new incomplete item owned by listID.
	// Returns domain.ErrValidation if the title is blank.
	Create(ctx context.Context, listID int64, title string) (*todoitem.TodoItem, error)

	// FindAllFromList returns the items whose ListID equals listID. The
	// result is empty, not an error, when the list has no items or does not
	// exist.
	FindAllFromList(ctx context.Context, listID int64) ([]todoitem.TodoItem, error)

	// All returns every item across all lists.
	All(ctx context.Context) ([]todoitem.TodoItem, error)

	// Get returns a single item by ID.
	// Returns a *domain.NotFoundError if the item does not exist.
	Get(ctx context.Context, id int64) (*todoitem.TodoItem, error)

	// Update overwrites the item with exactly {id, ...update} and returns
	// that value. Fields missing from update are not preserved.
	// Returns a *domain.NotFoundError if the item does not exist.
	Update(ctx context.Context, id int64, update todoitem.Update) (*todoitem.TodoItem, error)

	// Complete marks the item completed, keeping all other stored fields.
	// Returns a *domain.NotFoundError if the item does not exist.
	Complete(ctx context.Context, id int64) (*todoitem.TodoItem, error)

	// Delete removes the item.
	// Returns a *domain.NotFoundError if the item does not exist.
	Delete(ctx context.Context, id int64) error
}
