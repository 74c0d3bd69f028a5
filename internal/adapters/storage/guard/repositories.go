package guard

import (
	"context"

	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

const (
	entityList = "todo_list"
	entityItem = "todo_item"
)

var (
	_ ports.TodoListRepository = (*listRepository)(nil)
	_ ports.TodoItemRepository = (*itemRepository)(nil)
)

type listRepository struct {
	breaker *Breaker
	next    ports.TodoListRepository
}

func (r *listRepository) FindAll(ctx context.Context) ([]todolist.TodoList, error) {
	return call(ctx, r.breaker, entityList, "find_all", func(ctx context.Context) ([]todolist.TodoList, error) {
		return r.next.FindAll(ctx)
	})
}

func (r *listRepository) FindByID(ctx context.Context, id int64) (*todolist.TodoList, error) {
	return call(ctx, r.breaker, entityList, "find_by_id", func(ctx context.Context) (*todolist.TodoList, error) {
		return r.next.FindByID(ctx, id)
	})
}

func (r *listRepository) Create(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error) {
	return call(ctx, r.breaker, entityList, "create", func(ctx context.Context) (*todolist.TodoList, error) {
		return r.next.Create(ctx, list)
	})
}

func (r *listRepository) Save(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error) {
	return call(ctx, r.breaker, entityList, "save", func(ctx context.Context) (*todolist.TodoList, error) {
		return r.next.Save(ctx, list)
	})
}

func (r *listRepository) Delete(ctx context.Context, id int64) error {
	_, err := call(ctx, r.breaker, entityList, "delete", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.next.Delete(ctx, id)
	})
	return err
}

type itemRepository struct {
	breaker *Breaker
	next    ports.TodoItemRepository
}

func (r *itemRepository) FindAll(ctx context.Context, filter todoitem.Filter) ([]todoitem.TodoItem, error) {
	return call(ctx, r.breaker, entityItem, "find_all", func(ctx context.Context) ([]todoitem.TodoItem, error) {
		return r.next.FindAll(ctx, filter)
	})
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*todoitem.TodoItem, error) {
	return call(ctx, r.breaker, entityItem, "find_by_id", func(ctx context.Context) (*todoitem.TodoItem, error) {
		return r.next.FindByID(ctx, id)
	})
}

func (r *itemRepository) Create(ctx context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error) {
	return call(ctx, r.breaker, entityItem, "create", func(ctx context.Context) (*todoitem.TodoItem, error) {
		return r.next.Create(ctx, item)
	})
}

func (r *itemRepository) Save(ctx context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error) {
	return call(ctx, r.breaker, entityItem, "save", func(ctx context.Context) (*todoitem.TodoItem, error) {
		return r.next.Save(ctx, item)
	})
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	_, err := call(ctx, r.breaker, entityItem, "delete", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.next.Delete(ctx, id)
	})
	return err
}
