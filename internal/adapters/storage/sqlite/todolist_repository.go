package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

var _ ports.TodoListRepository = (*listRepository)(nil)

type listRepository struct {
	db *sql.DB
}

func (r *listRepository) FindAll(ctx context.Context) ([]todolist.TodoList, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM todo_lists ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying todo lists: %w", err)
	}
	defer rows.Close()

	lists := []todolist.TodoList{}
	for rows.Next() {
		var l todolist.TodoList
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("scanning todo list: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo lists: %w", err)
	}

	return lists, nil
}

func (r *listRepository) FindByID(ctx context.Context, id int64) (*todolist.TodoList, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, name FROM todo_lists WHERE id = ?", id)

	var l todolist.TodoList
	if err := row.Scan(&l.ID, &l.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning todo list: %w", err)
	}

	return &l, nil
}

func (r *listRepository) Create(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO todo_lists (name) VALUES (?)", list.Name)
	if err != nil {
		return nil, fmt.Errorf("inserting todo list: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading todo list id: %w", err)
	}

	created := *list
	created.ID = id
	return &created, nil
}

// Save writes every column of list, replacing the stored row.
func (r *listRepository) Save(ctx context.Context, list *todolist.TodoList) (*todolist.TodoList, error) {
	if list.ID == 0 {
		return r.Create(ctx, list)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO todo_lists (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, list.ID, list.Name)
	if err != nil {
		return nil, fmt.Errorf("saving todo list: %w", err)
	}

	saved := *list
	return &saved, nil
}

func (r *listRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM todo_lists WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting todo list: %w", err)
	}
	return nil
}
