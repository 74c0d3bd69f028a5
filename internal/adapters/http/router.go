// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todolists-api/internal/adapters/http/handlers"
)

// route binds one method and pattern, relative to the base path, to a handler.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

// apiRoutes lists every todo list and todo item endpoint.
func apiRoutes(lists *handlers.TodoListHandler, items *handlers.TodoItemHandler) []route {
	return []route{
		{http.MethodGet, "/todolists", lists.List},
		{http.MethodPost, "/todolists", lists.Create},
		{http.MethodGet, "/todolists/{listId}", lists.Get},
		{http.MethodPut, "/todolists/{listId}", lists.Update},
		{http.MethodDelete, "/todolists/{listId}", lists.Delete},

		{http.MethodGet, "/todolists/{listId}/todoitems", items.ListInList},
		{http.MethodPost, "/todolists/{listId}/todoitems", items.CreateInList},

		{http.MethodGet, "/todoitems", items.List},
		{http.MethodPost, "/todoitems", items.Create},
		{http.MethodGet, "/todoitems/{id}", items.Get},
		{http.MethodPatch, "/todoitems/{id}", items.Update},
		{http.MethodPatch, "/todoitems/{id}/complete", items.Complete},
		{http.MethodDelete, "/todoitems/{id}", items.Delete},
	}
}

// NewRouter creates an HTTP handler with all application routes registered
// under basePath. An empty basePath or "/" mounts the API at the root.
// Middleware is applied globally in the order given.
func NewRouter(
	basePath string,
	lists *handlers.TodoListHandler,
	items *handlers.TodoItemHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside the API prefix).
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	prefix := strings.TrimSuffix(basePath, "/")
	for _, rt := range apiRoutes(lists, items) {
		r.Method(rt.method, prefix+rt.pattern, rt.handler)
	}

	return r
}
