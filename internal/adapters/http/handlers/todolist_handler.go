package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todolists-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolists-api/internal/ports"
)

// TodoListHandler handles HTTP requests for todo lists.
type TodoListHandler struct {
	lists ports.TodoListService
}

// NewTodoListHandler creates a new TodoListHandler with the given service port.
func NewTodoListHandler(lists ports.TodoListService) *TodoListHandler {
	return &TodoListHandler{lists: lists}
}

// List handles GET /todolists.
func (h *TodoListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.All(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListsResponse(lists))
}

// Get handles GET /todolists/{listId}.
func (h *TodoListHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.lists.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(list))
}

// Create handles POST /todolists.
func (h *TodoListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.lists.Create(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoListResponse(created))
}

// Update handles PUT /todolists/{listId}.
func (h *TodoListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.lists.Update(r.Context(), id, req.ToUpdate())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(updated))
}

// Delete handles DELETE /todolists/{listId}.
func (h *TodoListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.lists.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
