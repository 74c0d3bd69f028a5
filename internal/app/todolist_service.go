package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
	"github.com/jsamuelsen11/todolists-api/internal/platform/logging"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

// Compile-time check that TodoListService implements ports.TodoListService.
var _ ports.TodoListService = (*TodoListService)(nil)

// TodoListService implements ports.TodoListService on top of a
// TodoListRepository. It has no knowledge of items.
type TodoListService struct {
	lists  ports.TodoListRepository
	logger *slog.Logger
}

// NewTodoListService creates a TodoListService. A nil logger is replaced by a
// no-op logger.
func NewTodoListService(lists ports.TodoListRepository, logger *slog.Logger) *TodoListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoListService{
		lists:  lists,
		logger: logger,
	}
}

// All returns every todo list.
func (s *TodoListService) All(ctx context.Context) ([]todolist.TodoList, error) {
	s.log(ctx).InfoContext(ctx, "listing todo lists")

	lists, err := s.lists.FindAll(ctx)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to list todo lists",
			slog.String("operation", "All"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return lists, nil
}

// Get returns a single list by ID.
func (s *TodoListService) Get(ctx context.Context, id int64) (*todolist.TodoList, error) {
	s.log(ctx).InfoContext(ctx, "fetching todo list", slog.Int64("id", id))

	return s.find(ctx, "Get", id)
}

// Create validates and persists a new list.
func (s *TodoListService) Create(ctx context.Context, name string) (*todolist.TodoList, error) {
	s.log(ctx).InfoContext(ctx, "creating todo list", slog.String("name", name))

	list := todolist.New(name)
	if err := list.Validate(); err != nil {
		return nil, err
	}

	created, err := s.lists.Create(ctx, list)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to create todo list",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating todo list: %w", err)
	}

	return created, nil
}

// Update overwrites an existing list with {id, ...update}. The returned value
// is the object that was written, not a re-read from the store.
func (s *TodoListService) Update(ctx context.Context, id int64, update todolist.Update) (*todolist.TodoList, error) {
	s.log(ctx).InfoContext(ctx, "updating todo list", slog.Int64("id", id))

	if _, err := s.find(ctx, "Update", id); err != nil {
		return nil, err
	}

	replacement := update.Replacement(id)
	if _, err := s.lists.Save(ctx, replacement); err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to save todo list",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving todo list: %w", err)
	}

	return replacement, nil
}

// Delete removes a list. Items referencing it are not touched.
func (s *TodoListService) Delete(ctx context.Context, id int64) error {
	s.log(ctx).InfoContext(ctx, "deleting todo list", slog.Int64("id", id))

	if _, err := s.find(ctx, "Delete", id); err != nil {
		return err
	}

	if err := s.lists.Delete(ctx, id); err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to delete todo list",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting todo list: %w", err)
	}

	return nil
}

// find loads a list by id, turning a repository miss into a NotFoundError.
func (s *TodoListService) find(ctx context.Context, op string, id int64) (*todolist.TodoList, error) {
	list, err := s.lists.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError(domain.ResourceTodoList, id)
	}
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to fetch todo list",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching todo list: %w", err)
	}
	return list, nil
}

// log prefers the request-scoped logger so records carry request_id and
// correlation_id.
func (s *TodoListService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
