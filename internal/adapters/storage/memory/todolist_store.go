package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

// Ensure TodoListStore implements the interface.
var _ ports.TodoListRepository = (*TodoListStore)(nil)

// TodoListStore is an in-memory implementation of ports.TodoListRepository.
type TodoListStore struct {
	mu     sync.RWMutex
	lists  map[int64]todolist.TodoList
	lastID int64
}

// NewTodoListStore creates an empty list store.
func NewTodoListStore() *TodoListStore {
	return &TodoListStore{
		lists: make(map[int64]todolist.TodoList),
	}
}

// FindAll returns every list ordered by id.
func (s *TodoListStore) FindAll(_ context.Context) ([]todolist.TodoList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]todolist.TodoList, 0, len(s.lists))
	for _, l := range s.lists {
		result = append(result, l)
	}
	slices.SortFunc(result, func(a, b todolist.TodoList) int { return cmp.Compare(a.ID, b.ID) })
	return result, nil
}

// FindByID retrieves a list by id.
func (s *TodoListStore) FindByID(_ context.Context, id int64) (*todolist.TodoList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

// Create assigns the next id and stores the list.
func (s *TodoListStore) Create(_ context.Context, list *todolist.TodoList) (*todolist.TodoList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	created := *list
	created.ID = s.lastID
	s.lists[created.ID] = created
	return &created, nil
}

// Save replaces the list stored under list.ID, inserting it if absent.
func (s *TodoListStore) Save(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error) {
	if list.ID == 0 {
		return s.Create(ctx, list)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := *list
	s.lists[saved.ID] = saved
	s.lastID = max(s.lastID, saved.ID)
	return &saved, nil
}

// Delete removes a list. Missing ids are ignored.
func (s *TodoListStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, id)
	return nil
}
