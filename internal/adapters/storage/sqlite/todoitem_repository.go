package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

var _ ports.TodoItemRepository = (*itemRepository)(nil)

const itemColumns = "id, title, completed, list_id"

type itemRepository struct {
	db *sql.DB
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*todoitem.TodoItem, error) {
	var (
		item   todoitem.TodoItem
		listID sql.NullInt64
	)
	if err := row.Scan(&item.ID, &item.Title, &item.Completed, &listID); err != nil {
		return nil, err
	}
	if listID.Valid {
		item.ListID = &listID.Int64
	}
	return &item, nil
}

func nullListID(listID *int64) sql.NullInt64 {
	if listID == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *listID, Valid: true}
}

func (r *itemRepository) FindAll(ctx context.Context, filter todoitem.Filter) ([]todoitem.TodoItem, error) {
	query := "SELECT " + itemColumns + " FROM todo_items"
	var args []any
	if filter.ListID != nil {
		query += " WHERE list_id = ?"
		args = append(args, *filter.ListID)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying todo items: %w", err)
	}
	defer rows.Close()

	items := []todoitem.TodoItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning todo item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo items: %w", err)
	}

	return items, nil
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*todoitem.TodoItem, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM todo_items WHERE id = ?", id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning todo item: %w", err)
	}

	return item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO todo_items (title, completed, list_id) VALUES (?, ?, ?)",
		item.Title, item.Completed, nullListID(item.ListID),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting todo item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading todo item id: %w", err)
	}

	created := *item
	created.ID = id
	return &created, nil
}

// Save writes every column of item, replacing the stored row. A nil ListID
// is written as NULL.
func (r *itemRepository) Save(ctx context.Context, item *todoitem.TodoItem) (*todoitem.TodoItem, error) {
	if item.ID == 0 {
		return r.Create(ctx, item)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO todo_items (id, title, completed, list_id) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			completed = excluded.completed,
			list_id = excluded.list_id
	`, item.ID, item.Title, item.Completed, nullListID(item.ListID))
	if err != nil {
		return nil, fmt.Errorf("saving todo item: %w", err)
	}

	saved := *item
	return &saved, nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM todo_items WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting todo item: %w", err)
	}
	return nil
}
