// Package api exposes the todo services over HTTP as JSON.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"todo-app/internal/services"
)

// Server routes HTTP requests to the todo and system handlers
type Server struct {
	router  *mux.Router
	handler http.Handler
	todos   *TodoHandlers
	system  *SystemHandlers
}

// NewServer builds the router for every API route
func NewServer(container *services.ServiceContainer) *Server {
	s := &Server{
		router: mux.NewRouter(),
		todos:  NewTodoHandlers(container.TodoService),
		system: NewSystemHandlers(container.SystemService),
	}
	s.routes()
	s.handler = RequestID(AccessLog(Recover(s.router)))
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.system.Health).Methods(http.MethodGet)
	api.HandleFunc("/info", s.system.Info).Methods(http.MethodGet)

	api.HandleFunc("/todos", s.todos.ListTodos).Methods(http.MethodGet)
	api.HandleFunc("/todos", s.todos.CreateTodo).Methods(http.MethodPost)
	api.HandleFunc("/todos/completed/all", s.todos.DeleteCompletedTodos).Methods(http.MethodDelete)
	api.HandleFunc("/todos/{id:[0-9]+}", s.todos.GetTodo).Methods(http.MethodGet)
	api.HandleFunc("/todos/{id:[0-9]+}", s.todos.UpdateTodo).Methods(http.MethodPut)
	api.HandleFunc("/todos/{id:[0-9]+}", s.todos.DeleteTodo).Methods(http.MethodDelete)

	// unknown paths and unsupported methods share one response
	for _, r := range []*mux.Router{s.router, api} {
		r.NotFoundHandler = http.HandlerFunc(routeNotFound)
		r.MethodNotAllowedHandler = http.HandlerFunc(routeNotFound)
	}
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusNotFound, envelope{
		Error: "Route not found",
		Path:  r.URL.Path,
	})
}

// Handler returns the router wrapped in the request middleware chain
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
