package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todolists-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

// TodoItemHandler handles HTTP requests for todo items, both nested under a
// list and addressed directly.
type TodoItemHandler struct {
	items ports.TodoItemService
}

// NewTodoItemHandler creates a new TodoItemHandler with the given service port.
func NewTodoItemHandler(items ports.TodoItemService) *TodoItemHandler {
	return &TodoItemHandler{items: items}
}

// CreateInList handles POST /todolists/{listId}/todoitems. The list is not
// required to exist.
func (h *TodoItemHandler) CreateInList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTodoItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.items.Create(r.Context(), listID, req.Title)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoItemResponse(created))
}

// ListInList handles GET /todolists/{listId}/todoitems.
func (h *TodoItemHandler) ListInList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.items.FindAllFromList(r.Context(), listID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoItemsResponse(items))
}

// Create handles POST /todoitems.
func (h *TodoItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStandaloneTodoItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.items.Create(r.Context(), *req.ListID, req.Title)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoItemResponse(created))
}

// List handles GET /todoitems.
func (h *TodoItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.All(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoItemsResponse(items))
}

// Get handles GET /todoitems/{id}.
func (h *TodoItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamItemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	item, err := h.items.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoItemResponse(item))
}

// Update handles PATCH /todoitems/{id}. The stored item is overwritten with
// the payload, so omitted fields come back zeroed.
func (h *TodoItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamItemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.items.Update(r.Context(), id, req.ToUpdate())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoItemResponse(updated))
}

// Complete handles PATCH /todoitems/{id}/complete.
func (h *TodoItemHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamItemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	item, err := h.items.Complete(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoItemResponse(item))
}

// Delete handles DELETE /todoitems/{id}.
func (h *TodoItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamItemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.items.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
