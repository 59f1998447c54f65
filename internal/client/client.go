// Package client talks to the todo HTTP API and drives the terminal UI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"todo-app/internal/domain"
	"todo-app/internal/logging"
)

// DefaultErrorMessage is shown when a failure carries no usable message
const DefaultErrorMessage = "Something went wrong"

// ConnectionErrorMessage is shown when the server cannot be reached
const ConnectionErrorMessage = "Error connecting to server"

// APIError is a failed API call reduced to what a user may see
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// MessageFor returns the short text to show for err
func MessageFor(err error) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return DefaultErrorMessage
}

// envelope mirrors the server's todo response body
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Count   int64           `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// Health is the body of GET /api/health
type Health struct {
	Status    string  `json:"status"`
	Database  string  `json:"database"`
	DBType    string  `json:"dbType"`
	Error     string  `json:"error"`
	Timestamp string  `json:"timestamp"`
	Hostname  string  `json:"hostname"`
	Uptime    float64 `json:"uptime"`
}

// Healthy reports whether the server could reach its database
func (h *Health) Healthy() bool {
	return h.Status == "healthy"
}

// Info is the body of GET /api/info
type Info struct {
	Application string `json:"application"`
	Version     string `json:"version"`
	Hostname    string `json:"hostname"`
	Platform    string `json:"platform"`
	GoVersion   string `json:"goVersion"`
	Environment string `json:"environment"`
	Database    struct {
		Type string `json:"type"`
		Host string `json:"host"`
	} `json:"database"`
}

// ClearResult reports a bulk delete of completed todos
type ClearResult struct {
	Message string
	Count   int64
}

// Client calls the todo API over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API rooted at baseURL. A zero timeout lets
// requests run until the server answers.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// send performs one request and returns the raw response body
func (c *Client) send(ctx context.Context, method, path string, body interface{}) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, &APIError{Message: DefaultErrorMessage, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, &APIError{Message: DefaultErrorMessage, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	logging.Debugf("client: %s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &APIError{Message: ConnectionErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &APIError{Status: resp.StatusCode, Message: ConnectionErrorMessage, Err: err}
	}
	return resp.StatusCode, data, nil
}

// do performs a request against a todo route and unwraps the envelope.
// When out is non-nil the envelope's data is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (*envelope, error) {
	status, data, err := c.send(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &APIError{Status: status, Message: DefaultErrorMessage, Err: err}
	}

	if status >= http.StatusBadRequest || !env.Success {
		message := env.Error
		if message == "" {
			message = env.Message
		}
		if message == "" {
			message = DefaultErrorMessage
		}
		return nil, &APIError{Status: status, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &APIError{Status: status, Message: DefaultErrorMessage, Err: err}
		}
	}
	return &env, nil
}

// ListTodos fetches every todo, newest first
func (c *Client) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	var todos []domain.Todo
	if _, err := c.do(ctx, http.MethodGet, "/api/todos", nil, &todos); err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

// GetTodo fetches one todo
func (c *Client) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	var todo domain.Todo
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/todos/%d", id), nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// CreateTodo creates a todo and returns the stored row
func (c *Client) CreateTodo(ctx context.Context, title, description string) (*domain.Todo, error) {
	body := map[string]string{"title": title, "description": description}
	var todo domain.Todo
	if _, err := c.do(ctx, http.MethodPost, "/api/todos", body, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo sends a partial update and returns the stored row
func (c *Client) UpdateTodo(ctx context.Context, id int64, update domain.TodoUpdate) (*domain.Todo, error) {
	var todo domain.Todo
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), update, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo removes a todo
func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, nil)
	return err
}

// ClearCompleted removes every completed todo
func (c *Client) ClearCompleted(ctx context.Context) (*ClearResult, error) {
	env, err := c.do(ctx, http.MethodDelete, "/api/todos/completed/all", nil, nil)
	if err != nil {
		return nil, err
	}
	return &ClearResult{Message: env.Message, Count: env.Count}, nil
}

// Health probes the server. An unhealthy server still answers, so only
// transport failures are returned as errors.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	status, data, err := c.send(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return nil, err
	}

	var health Health
	if err := json.Unmarshal(data, &health); err != nil {
		return nil, &APIError{Status: status, Message: DefaultErrorMessage, Err: err}
	}
	return &health, nil
}

// Info fetches server metadata
func (c *Client) Info(ctx context.Context) (*Info, error) {
	status, data, err := c.send(ctx, http.MethodGet, "/api/info", nil)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, &APIError{Status: status, Message: DefaultErrorMessage}
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, &APIError{Status: status, Message: DefaultErrorMessage, Err: err}
	}
	return &info, nil
}
