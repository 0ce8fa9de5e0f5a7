package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veristay/internal/domain"
)

const todoNotFound = "Todo not found"

type todoList struct {
	Todos []domain.Todo `json:"todos"`
	Count int           `json:"count"`
}

type todoEnvelope struct {
	Message string       `json:"message,omitempty"`
	Todo    *domain.Todo `json:"todo,omitempty"`
}

func (h *Handlers) listTodos(w http.ResponseWriter, r *http.Request) {
	todos := h.Todos.List(r.Context())
	writeCacheable(w, r, todoList{Todos: todos, Count: len(todos)})
}

func (h *Handlers) getTodo(w http.ResponseWriter, r *http.Request) {
	t, err := h.Todos.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, "todo", todoNotFound, err)
		return
	}
	writeCacheable(w, r, todoEnvelope{Todo: &t})
}

func (h *Handlers) createTodo(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		fail(w, r, "todo", todoNotFound, err)
		return
	}
	t, err := h.Todos.Create(r.Context(), body)
	if err != nil {
		fail(w, r, "todo", todoNotFound, err)
		return
	}
	writeJSON(w, http.StatusCreated, todoEnvelope{Message: "Todo created successfully", Todo: &t})
}

func (h *Handlers) updateTodo(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		fail(w, r, "todo", todoNotFound, err)
		return
	}
	t, err := h.Todos.Update(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		fail(w, r, "todo", todoNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, todoEnvelope{Message: "Todo updated successfully", Todo: &t})
}

func (h *Handlers) deleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.Todos.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, "todo", todoNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, todoEnvelope{Message: "Todo deleted successfully"})
}
