package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/repository"
	"todo-app/internal/store"
)

// spyRepository counts calls that reach the repository
type spyRepository struct {
	repository.Repository
	mu    sync.Mutex
	calls map[string]int
}

func (s *spyRepository) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[name]++
}

func (s *spyRepository) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *spyRepository) CreateTodo(ctx context.Context, todo *repository.Todo) error {
	s.record("CreateTodo")
	return s.Repository.CreateTodo(ctx, todo)
}

func (s *spyRepository) UpdateTodo(ctx context.Context, id int64, changes repository.TodoChanges) (*repository.Todo, error) {
	s.record("UpdateTodo")
	return s.Repository.UpdateTodo(ctx, id, changes)
}

func setupTestStore(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(store.Options{Kind: store.KindSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.InitializeTables(context.Background()))
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTodoService(t *testing.T) (TodoService, *spyRepository) {
	spy := &spyRepository{
		Repository: repository.New(setupTestStore(t)),
		calls:      make(map[string]int),
	}
	return NewTodoService(spy), spy
}

func setupTodoServiceWithData(t *testing.T, titles ...string) (TodoService, []*domain.Todo) {
	service, _ := setupTodoService(t)
	var todos []*domain.Todo
	for _, title := range titles {
		todo, err := service.CreateTodo(context.Background(), title, "")
		require.NoError(t, err)
		todos = append(todos, todo)
	}
	return service, todos
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTodoService_CreateTodo(t *testing.T) {
	tests := []struct {
		name                string
		title               string
		description         string
		expectedTitle       string
		expectedDescription string
		errorAssertion      func(t *testing.T, err error)
	}{
		{
			name:          "should create todo with valid title",
			title:         "Buy milk",
			expectedTitle: "Buy milk",
		},
		{
			name:                "should trim title and description",
			title:               "  Buy milk  ",
			description:         "  2 liters ",
			expectedTitle:       "Buy milk",
			expectedDescription: "2 liters",
		},
		{
			name:          "should accept maximum length title",
			title:         strings.Repeat("t", 255),
			expectedTitle: strings.Repeat("t", 255),
		},
		{
			name:  "should reject empty title",
			title: "",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Equal(t, "Title is required", errors.GetUserMessage(err))
			},
		},
		{
			name:        "should reject whitespace-only title",
			title:       "   ",
			description: "has a description",
			errorAssertion: func(t *testing.T, err error) {
				assert.Equal(t, "Title is required", errors.GetUserMessage(err))
			},
		},
		{
			name:  "should reject overlong title",
			title: strings.Repeat("t", 256),
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, errors.GetUserMessage(err), "255")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service, spy := setupTodoService(t)
			ctx := context.Background()

			// Act
			result, err := service.CreateTodo(ctx, tt.title, tt.description)

			// Assert
			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
				assert.Equal(t, 0, spy.count("CreateTodo"), "invalid input must not reach the store")
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Greater(t, result.ID, int64(0))
				assert.Equal(t, tt.expectedTitle, result.Title)
				assert.Equal(t, tt.expectedDescription, result.Description)
				assert.False(t, result.Completed)
				assert.Equal(t, result.CreatedAt, result.UpdatedAt)
			}
		})
	}
}

func TestTodoService_ListTodos(t *testing.T) {
	service, created := setupTodoServiceWithData(t, "first", "second", "third")

	todos, err := service.ListTodos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 3)

	// newest first
	for i := range todos {
		assert.Equal(t, created[len(created)-1-i].ID, todos[i].ID)
	}
}

func TestTodoService_GetTodo(t *testing.T) {
	service, created := setupTodoServiceWithData(t, "only")

	tests := []struct {
		name           string
		id             int64
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name: "should return existing todo",
			id:   created[0].ID,
		},
		{
			name: "should return not found for missing id",
			id:   999,
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsNotFound(err))
			},
		},
		{
			name: "should return not found for zero id",
			id:   0,
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsNotFound(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.GetTodo(context.Background(), tt.id)
			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *created[0], *result)
		})
	}
}

func TestTodoService_UpdateTodo(t *testing.T) {
	tests := []struct {
		name           string
		missing        bool
		update         domain.TodoUpdate
		validate       func(t *testing.T, original, updated *domain.Todo)
		errorAssertion func(t *testing.T, err error)
		reachesStore   bool
	}{
		{
			name:         "should toggle completion",
			update:       domain.TodoUpdate{Completed: boolPtr(true)},
			reachesStore: true,
			validate: func(t *testing.T, original, updated *domain.Todo) {
				assert.True(t, updated.Completed)
				assert.Equal(t, original.Title, updated.Title)
				assert.False(t, updated.UpdatedAt.Before(original.UpdatedAt))
				assert.Equal(t, original.CreatedAt, updated.CreatedAt)
			},
		},
		{
			name:         "should trim new title",
			update:       domain.TodoUpdate{Title: strPtr("  Renamed  ")},
			reachesStore: true,
			validate: func(t *testing.T, original, updated *domain.Todo) {
				assert.Equal(t, "Renamed", updated.Title)
			},
		},
		{
			name:   "should reject empty update",
			update: domain.TodoUpdate{},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Equal(t, "No fields to update", errors.GetUserMessage(err))
			},
		},
		{
			name:   "should reject blank title",
			update: domain.TodoUpdate{Title: strPtr("   ")},
			errorAssertion: func(t *testing.T, err error) {
				assert.Equal(t, "Title is required", errors.GetUserMessage(err))
			},
		},
		{
			name:         "should return not found for missing todo",
			missing:      true,
			update:       domain.TodoUpdate{Completed: boolPtr(true)},
			reachesStore: true,
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsNotFound(err))
			},
		},
		{
			name:    "should prefer not found over empty update",
			missing: true,
			update:  domain.TodoUpdate{},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsNotFound(err))
			},
		},
		{
			name:    "should prefer not found over invalid title",
			missing: true,
			update:  domain.TodoUpdate{Title: strPtr("")},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsNotFound(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, spy := setupTodoService(t)
			ctx := context.Background()
			original, err := service.CreateTodo(ctx, "Original", "details")
			require.NoError(t, err)

			id := original.ID
			if tt.missing {
				id = original.ID + 100
			}

			updated, err := service.UpdateTodo(ctx, id, tt.update)

			if tt.reachesStore {
				assert.Equal(t, 1, spy.count("UpdateTodo"))
			} else {
				assert.Equal(t, 0, spy.count("UpdateTodo"))
			}

			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			tt.validate(t, original, updated)
		})
	}
}

func TestTodoService_DeleteTodo(t *testing.T) {
	service, created := setupTodoServiceWithData(t, "doomed", "survivor")
	ctx := context.Background()

	require.NoError(t, service.DeleteTodo(ctx, created[0].ID))

	_, err := service.GetTodo(ctx, created[0].ID)
	assert.True(t, errors.IsNotFound(err))

	err = service.DeleteTodo(ctx, created[0].ID)
	assert.True(t, errors.IsNotFound(err))

	err = service.DeleteTodo(ctx, -1)
	assert.True(t, errors.IsNotFound(err))

	todos, err := service.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, created[1].ID, todos[0].ID)
}

func TestTodoService_DeleteCompletedTodos(t *testing.T) {
	service, created := setupTodoServiceWithData(t, "a", "b", "c")
	ctx := context.Background()

	count, err := service.DeleteCompletedTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for _, todo := range created[:2] {
		_, err := service.UpdateTodo(ctx, todo.ID, domain.TodoUpdate{Completed: boolPtr(true)})
		require.NoError(t, err)
	}

	count, err = service.DeleteCompletedTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	todos, err := service.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, created[2].ID, todos[0].ID)
	assert.False(t, todos[0].Completed)
}
