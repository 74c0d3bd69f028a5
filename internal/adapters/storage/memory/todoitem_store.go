package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

// Ensure TodoItemStore implements the interface.
var _ ports.TodoItemRepository = (*TodoItemStore)(nil)

// TodoItemStore is an in-memory implementation of ports.TodoItemRepository.
type TodoItemStore struct {
	mu     sync.RWMutex
	items  map[int64]todoitem.TodoItem
	lastID int64
}

// NewTodoItemStore creates an empty item store.
func NewTodoItemStore() *TodoItemStore {
	return &TodoItemStore{
		items: make(map[int64]todoitem.TodoItem),
	}
}

// FindAll returns the items matching filter ordered by id.
func (s *TodoItemStore) FindAll(_ context.Context, filter todoitem.Filter) ([]todoitem.TodoItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]todoitem.TodoItem, 0, len(s.items))
	for _, item := range s.items {
		if filter.Matches(&item) {
			result = append(result, clone(item))
		}
	}
	slices.SortFunc(result, func(a, b todoitem.TodoItem) int { return cmp.Compare(a.ID, b.ID) })
	return result, nil
}

// FindByID retrieves an item by id.
func (s *TodoItemStore) FindByID(_ context.Context, id int64) (*todoitem.TodoItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item = clone(item)
	return &item, nil
}

// Create assigns the next id and stores the item.
func (s *TodoItemStore) Create(_ context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	created := clone(*item)
	created.ID = s.lastID
	s.items[created.ID] = created
	out := clone(created)
	return &out, nil
}

// Save replaces the item stored under item.ID, inserting it if absent.
func (s *TodoItemStore) Save(ctx context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error) {
	if item.ID == 0 {
		return s.Create(ctx, item)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := clone(*item)
	s.items[saved.ID] = saved
	s.lastID = max(s.lastID, saved.ID)
	out := clone(saved)
	return &out, nil
}

// Delete removes an item. Missing ids are ignored.
func (s *TodoItemStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// clone copies the ListID pointee so callers never share state with the map.
func clone(item todoitem.TodoItem) todoitem.TodoItem {
	if item.ListID != nil {
		listID := *item.ListID
		item.ListID = &listID
	}
	return item
}
