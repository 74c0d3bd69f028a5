package ports

import (
	"context"

	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
)

// TodoListRepository is the persistence port for todo lists.
// Implemented by the storage adapters; called by the application layer.
type TodoListRepository interface {
	// FindAll returns every stored list. No ordering is guaranteed.
	FindAll(ctx context.Context) ([]todolist.TodoList, error)

	// FindByID returns the list with the given id.
	// Returns domain.ErrNotFound if no list has that id.
	FindByID(ctx context.Context, id int64) (*todolist.TodoList, error)

	// Create stores a new list and returns it with its assigned ID.
	Create(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error)

	// Save upserts the list by ID, overwriting every stored field.
	Save(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error)

	// Delete removes the list with the given id. Deleting a missing id is not
	// an error.
	Delete(ctx context.Context, id int64) error
}

// TodoItemRepository is the persistence port for todo items.
// Implemented by the storage adapters; called by the application layer.
type TodoItemRepository interface {
	// FindAll returns the items matching filter. Pass a zero-value Filter to
	// list every item. No ordering is guaranteed.
	FindAll(ctx context.Context, filter todoitem.Filter) ([]todoitem.TodoItem, error)

	// FindByID returns the item with the given id.
	// Returns domain.ErrNotFound if no item has that id.
	FindByID(ctx context.Context, id int64) (*todoitem.TodoItem, error)

	// Create stores a new item and returns it with its assigned ID.
	Create(ctx context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error)

	// Save upserts the item by ID, overwriting every stored field.
	Save(ctx context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error)

	// Delete removes the item with the given id. Deleting a missing id is not
	// an error.
	Delete(ctx context.Context, id int64) error
}
