package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/services"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// TodoHandlers serves the /api/todos routes
type TodoHandlers struct {
	todos services.TodoService
}

// NewTodoHandlers is a constructor for TodoHandlers
func NewTodoHandlers(todos services.TodoService) *TodoHandlers {
	return &TodoHandlers{todos: todos}
}

// createRequest is the body of POST /api/todos
type createRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// decodeBody reads a single JSON value from the request. An empty body
// decodes as {}; anything after the first value is rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return fmt.Errorf("unexpected data after JSON body")
		}
		return err
	}
	return nil
}

// pathID extracts the {id} route variable. Ids too large to exist are
// reported as not found.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondWithError(w, r, errors.NewNotFoundError("todo", raw), "parse id")
		return 0, false
	}
	return id, true
}

// ListTodos handles GET /api/todos
func (h *TodoHandlers) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todos.ListTodos(r.Context())
	if err != nil {
		respondWithError(w, r, err, "fetch todos")
		return
	}
	respondWithJSON(w, http.StatusOK, envelope{
		Success: true,
		Count:   count(int64(len(todos))),
		Data:    todos,
	})
}

// GetTodo handles GET /api/todos/{id}
func (h *TodoHandlers) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	todo, err := h.todos.GetTodo(r.Context(), id)
	if err != nil {
		respondWithError(w, r, err, "fetch todo")
		return
	}
	respondWithJSON(w, http.StatusOK, envelope{Success: true, Data: todo})
}

// CreateTodo handles POST /api/todos
func (h *TodoHandlers) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondInvalidPayload(w, err)
		return
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	todo, err := h.todos.CreateTodo(r.Context(), req.Title, description)
	if err != nil {
		respondWithError(w, r, err, "create todo")
		return
	}
	respondWithJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Todo created successfully",
		Data:    todo,
	})
}

// UpdateTodo handles PUT /api/todos/{id}
func (h *TodoHandlers) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update domain.TodoUpdate
	if err := decodeBody(w, r, &update); err != nil {
		// a missing id is reported as such whatever the body holds
		if _, getErr := h.todos.GetTodo(r.Context(), id); getErr != nil {
			respondWithError(w, r, getErr, "update todo")
			return
		}
		respondInvalidPayload(w, err)
		return
	}

	todo, err := h.todos.UpdateTodo(r.Context(), id, update)
	if err != nil {
		respondWithError(w, r, err, "update todo")
		return
	}
	respondWithJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Todo updated successfully",
		Data:    todo,
	})
}

// DeleteTodo handles DELETE /api/todos/{id}
func (h *TodoHandlers) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.todos.DeleteTodo(r.Context(), id); err != nil {
		respondWithError(w, r, err, "delete todo")
		return
	}
	respondWithJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Todo deleted successfully",
	})
}

// DeleteCompletedTodos handles DELETE /api/todos/completed/all
func (h *TodoHandlers) DeleteCompletedTodos(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.todos.DeleteCompletedTodos(r.Context())
	if err != nil {
		respondWithError(w, r, err, "delete completed todos")
		return
	}
	respondWithJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: fmt.Sprintf("Deleted %d completed todo(s)", deleted),
		Count:   count(deleted),
	})
}
