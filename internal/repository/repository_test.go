package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-app/internal/errors"
	"todo-app/internal/store"
)

// steppingClock advances by one second on every reading
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func setupTestStore(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(store.Options{Kind: store.KindSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.InitializeTables(context.Background()))
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRepo(t *testing.T) (*SQLRepository, *steppingClock) {
	t.Helper()
	clock := &steppingClock{now: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	return NewWithClock(setupTestStore(t), clock.Now), clock
}

func createTodo(t *testing.T, repo *SQLRepository, title string) *Todo {
	t.Helper()
	todo := &Todo{Title: title}
	require.NoError(t, repo.CreateTodo(context.Background(), todo))
	return todo
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTodo(t *testing.T) {
	repo, _ := setupTestRepo(t)

	todo := &Todo{Title: "Buy milk", Description: "2 liters"}
	err := repo.CreateTodo(context.Background(), todo)
	require.NoError(t, err)

	assert.Greater(t, todo.ID, int64(0))
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "2 liters", todo.Description)
	assert.False(t, todo.Completed)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 0, 1, 0, time.UTC), todo.CreatedAt)
	assert.Equal(t, todo.CreatedAt, todo.UpdatedAt)
}

func TestCreateTodo_IgnoresCompletedFlag(t *testing.T) {
	repo, _ := setupTestRepo(t)

	todo := &Todo{Title: "Already done?", Completed: true}
	require.NoError(t, repo.CreateTodo(context.Background(), todo))
	assert.False(t, todo.Completed)
}

func TestGetTodo(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetTodo(ctx, 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	created := createTodo(t, repo, "Walk the dog")
	retrieved, err := repo.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, retrieved)
}

func TestGetTodo_NullDescription(t *testing.T) {
	db := setupTestStore(t)
	repo := New(db)
	ctx := context.Background()

	id, err := db.Insert(ctx, "INSERT INTO todos (title, description) VALUES (?, NULL)", "legacy row")
	require.NoError(t, err)

	todo, err := repo.GetTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "", todo.Description)
}

func TestListTodos(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	todos, err := repo.ListTodos(ctx)
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)

	first := createTodo(t, repo, "first")
	second := createTodo(t, repo, "second")
	third := createTodo(t, repo, "third")

	todos, err = repo.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	assert.Equal(t, third.ID, todos[0].ID)
	assert.Equal(t, second.ID, todos[1].ID)
	assert.Equal(t, first.ID, todos[2].ID)
}

func TestListTodos_SameCreationTimeOrderedByID(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewWithClock(setupTestStore(t), func() time.Time { return fixed })

	a := createTodo(t, repo, "a")
	b := createTodo(t, repo, "b")

	todos, err := repo.ListTodos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, b.ID, todos[0].ID)
	assert.Equal(t, a.ID, todos[1].ID)
}

func TestUpdateTodo(t *testing.T) {
	tests := []struct {
		name     string
		changes  TodoChanges
		validate func(t *testing.T, original, updated *Todo)
	}{
		{
			name:    "completed only",
			changes: TodoChanges{Completed: boolPtr(true)},
			validate: func(t *testing.T, original, updated *Todo) {
				assert.True(t, updated.Completed)
				assert.Equal(t, original.Title, updated.Title)
				assert.Equal(t, original.Description, updated.Description)
			},
		},
		{
			name:    "title only",
			changes: TodoChanges{Title: strPtr("Renamed")},
			validate: func(t *testing.T, original, updated *Todo) {
				assert.Equal(t, "Renamed", updated.Title)
				assert.False(t, updated.Completed)
				assert.Equal(t, original.Description, updated.Description)
			},
		},
		{
			name:    "clear description",
			changes: TodoChanges{Description: strPtr("")},
			validate: func(t *testing.T, original, updated *Todo) {
				assert.Equal(t, "", updated.Description)
				assert.Equal(t, original.Title, updated.Title)
			},
		},
		{
			name: "every field",
			changes: TodoChanges{
				Title:       strPtr("All new"),
				Description: strPtr("fresh"),
				Completed:   boolPtr(true),
			},
			validate: func(t *testing.T, original, updated *Todo) {
				assert.Equal(t, "All new", updated.Title)
				assert.Equal(t, "fresh", updated.Description)
				assert.True(t, updated.Completed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := setupTestRepo(t)
			original := &Todo{Title: "Original", Description: "details"}
			require.NoError(t, repo.CreateTodo(context.Background(), original))

			updated, err := repo.UpdateTodo(context.Background(), original.ID, tt.changes)
			require.NoError(t, err)

			assert.Equal(t, original.ID, updated.ID)
			assert.Equal(t, original.CreatedAt, updated.CreatedAt)
			assert.True(t, updated.UpdatedAt.After(original.UpdatedAt))
			tt.validate(t, original, updated)
		})
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.UpdateTodo(context.Background(), 42, TodoChanges{Completed: boolPtr(true)})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpdateTodo_NoChanges(t *testing.T) {
	repo, _ := setupTestRepo(t)
	todo := createTodo(t, repo, "unchanged")

	_, err := repo.UpdateTodo(context.Background(), todo.ID, TodoChanges{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	assert.Equal(t, "NO_FIELDS", errors.GetErrorCode(err))
}

func TestUpdateTodo_SameValuesStillMatches(t *testing.T) {
	repo, _ := setupTestRepo(t)
	todo := createTodo(t, repo, "same")

	updated, err := repo.UpdateTodo(context.Background(), todo.ID, TodoChanges{Title: strPtr("same")})
	require.NoError(t, err)
	assert.Equal(t, "same", updated.Title)
}

func TestDeleteTodo(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	todo := createTodo(t, repo, "short lived")

	require.NoError(t, repo.DeleteTodo(ctx, todo.ID))

	_, err := repo.GetTodo(ctx, todo.ID)
	assert.True(t, errors.IsNotFound(err))

	err = repo.DeleteTodo(ctx, todo.ID)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeleteTodo_Concurrent(t *testing.T) {
	repo, _ := setupTestRepo(t)
	todo := createTodo(t, repo, "contested")

	const workers = 5
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.DeleteTodo(context.Background(), todo.ID)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, notFound int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.IsNotFound(err):
			notFound++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, notFound)
}

func TestDeleteCompletedTodos(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	count, err := repo.DeleteCompletedTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	keep := createTodo(t, repo, "keep")
	for _, title := range []string{"done one", "done two"} {
		todo := createTodo(t, repo, title)
		_, err := repo.UpdateTodo(ctx, todo.ID, TodoChanges{Completed: boolPtr(true)})
		require.NoError(t, err)
	}

	count, err = repo.DeleteCompletedTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	todos, err := repo.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, keep.ID, todos[0].ID)
}

func TestRepository_ClosedStore(t *testing.T) {
	db, err := store.Open(store.Options{Kind: store.KindSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Close())
	repo := New(db)

	_, err = repo.ListTodos(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))

	err = repo.CreateTodo(context.Background(), &Todo{Title: "nope"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}
