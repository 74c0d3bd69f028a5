package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todolists-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todoitem"
	"github.com/jsamuelsen11/todolists-api/internal/domain/todolist"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }
func int64Ptr(v int64) *int64    { return &v }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validList() *todolist.TodoList {
	return &todolist.TodoList{ID: 1, Name: "Groceries"}
}

func validItem() *todoitem.TodoItem {
	return &todoitem.TodoItem{ID: 1, Title: "Buy milk", ListID: int64Ptr(1)}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireProblemLocation asserts that the problem response carries exactly one
// error at the given location.
func requireProblemLocation(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1; errors = %+v", len(resp.Errors), resp.Errors)
	}
	if resp.Errors[0].Location != location {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, location)
	}
}
