package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/platform/logging"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

// Compile-time check that TodoItemService implements ports.TodoItemService.
var _ ports.TodoItemService = (*TodoItemService)(nil)

// TodoItemService implements ports.TodoItemService on top of a
// TodoItemRepository. List ids are taken as given; the owning list is never
// looked up.
type TodoItemService struct {
	items  ports.TodoItemRepository
	logger *slog.Logger
}

// NewTodoItemService creates a TodoItemService. A nil logger is replaced by a
// no-op logger.
func NewTodoItemService(items ports.TodoItemRepository, logger *slog.Logger) *TodoItemService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoItemService{
		items:  items,
		logger: logger,
	}
}

// Create persists a new incomplete item owned by listID.
func (s *TodoItemService) Create(ctx context.Context, listID int64, title string) (*todoitem.TodoItem, error) {
	s.log(ctx).InfoContext(ctx, "creating todo item", slog.Int64("list_id", listID))

	item := todoitem.New(listID, title)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to create todo item",
			slog.String("operation", "Create"),
			slog.Int64("list_id", listID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating todo item: %w", err)
	}

	return created, nil
}

// FindAllFromList returns the items of one list. A list without items, or a
// list id that does not exist, yields an empty slice.
func (s *TodoItemService) FindAllFromList(ctx context.Context, listID int64) ([]todoitem.TodoItem, error) {
	s.log(ctx).InfoContext(ctx, "listing todo items of list", slog.Int64("list_id", listID))

	items, err := s.items.FindAll(ctx, todoitem.ByList(listID))
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to list todo items",
			slog.String("operation", "FindAllFromList"),
			slog.Int64("list_id", listID),
			slog.Any("error", err),
		)
		return nil, err
	}

	if items == nil {
		items = []todoitem.TodoItem{}
	}
	return items, nil
}

// All returns every item across all lists.
func (s *TodoItemService) All(ctx context.Context) ([]todoitem.TodoItem, error) {
	s.log(ctx).InfoContext(ctx, "listing todo items")

	items, err := s.items.FindAll(ctx, todoitem.Filter{})
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to list todo items",
			slog.String("operation", "All"),
			slog.Any("error", err),
		)
		return nil, err
	}

	if items == nil {
		items = []todoitem.TodoItem{}
	}
	return items, nil
}

// Get returns a single item by ID.
func (s *TodoItemService) Get(ctx context.Context, id int64) (*todoitem.TodoItem, error) {
	s.log(ctx).InfoContext(ctx, "fetching todo item", slog.Int64("id", id))

	return s.find(ctx, "Get", id)
}

// Update overwrites an existing item with exactly {id, ...update}. Stored
// fields the caller did not send are not carried over.
func (s *TodoItemService) Update(ctx context.Context, id int64, update todoitem.Update) (*todoitem.TodoItem, error) {
	s.log(ctx).InfoContext(ctx, "updating todo item", slog.Int64("id", id))

	if _, err := s.find(ctx, "Update", id); err != nil {
		return nil, err
	}

	replacement := update.Replacement(id)
	if _, err := s.items.Save(ctx, replacement); err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to save todo item",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving todo item: %w", err)
	}

	return replacement, nil
}

// Complete sets Completed on the stored item and saves it. Calling it on an
// already completed item succeeds and changes nothing.
func (s *TodoItemService) Complete(ctx context.Context, id int64) (*todoitem.TodoItem, error) {
	s.log(ctx).InfoContext(ctx, "completing todo item", slog.Int64("id", id))

	existing, err := s.find(ctx, "Complete", id)
	if err != nil {
		return nil, err
	}

	saved, err := s.items.Save(ctx, existing.Completion())
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to save todo item",
			slog.String("operation", "Complete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving todo item: %w", err)
	}

	return saved, nil
}

// Delete removes an item after confirming it exists.
func (s *TodoItemService) Delete(ctx context.Context, id int64) error {
	s.log(ctx).InfoContext(ctx, "deleting todo item", slog.Int64("id", id))

	if _, err := s.find(ctx, "Delete", id); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to delete todo item",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting todo item: %w", err)
	}

	return nil
}

// find loads an item by id, turning a repository miss into a NotFoundError.
func (s *TodoItemService) find(ctx context.Context, op string, id int64) (*todoitem.TodoItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError(domain.ResourceTodoItem, id)
	}
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to fetch todo item",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching todo item: %w", err)
	}
	return item, nil
}

// log prefers the request-scoped logger so records carry request_id and
// correlation_id.
func (s *TodoItemService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
