// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
)

// TodoListResponse represents a single todo list in HTTP responses.
type TodoListResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TodoItemResponse represents a single todo item in HTTP responses. ListID
// is omitted once an overwrite update has cleared it.
type TodoItemResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	ListID    *int64 `json:"listId,omitempty"`
}

// ToTodoListResponse converts a domain TodoList to an HTTP response DTO.
func ToTodoListResponse(l *todolist.TodoList) TodoListResponse {
	return TodoListResponse{
		ID:   l.ID,
		Name: l.Name,
	}
}

// ToTodoListsResponse converts lists to a JSON array. An empty input yields
// an empty array, never null.
func ToTodoListsResponse(lists []todolist.TodoList) []TodoListResponse {
	out := make([]TodoListResponse, len(lists))
	for i := range lists {
		out[i] = ToTodoListResponse(&lists[i])
	}
	return out
}

// ToTodoItemResponse converts a domain TodoItem to an HTTP response DTO.
func ToTodoItemResponse(t *todoitem.TodoItem) TodoItemResponse {
	return TodoItemResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		ListID:    t.ListID,
	}
}

// ToTodoItemsResponse converts items to a JSON array. An empty input yields
// an empty array, never null.
func ToTodoItemsResponse(items []todoitem.TodoItem) []TodoItemResponse {
	out := make([]TodoItemResponse, len(items))
	for i := range items {
		out[i] = ToTodoItemResponse(&items[i])
	}
	return out
}

// HealthResponse is the body of the liveness and readiness endpoints. Checks
// maps each checker name to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
