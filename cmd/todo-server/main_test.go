package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-app/internal/config"
	"todo-app/internal/store"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Database.Type = string(store.KindSQLite)
	cfg.Database.Path = filepath.Join(t.TempDir(), "todo.db")
	cfg.Server.ShutdownTimeout = 2 * time.Second
	return cfg
}

func TestServe_ServesUntilCancelled(t *testing.T) {
	cfg := sqliteConfig(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, ln) }()

	url := "http://" + ln.Addr().String() + "/api/health"
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "sqlite", body["dbType"])

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}

	_, err = http.Get(url)
	assert.Error(t, err, "listener is closed after shutdown")
}

func TestServe_UnreachableStoreIsFatal(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Database.Type = string(store.KindPostgres)
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 1

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	err = serve(context.Background(), cfg, ln)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize database")
}

func TestCollectOverrides(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{
		"--db-type", "postgres",
		"--db-port", "6543",
		"--port", "8080",
		"--shutdown-timeout", "3s",
		"--env", "staging",
	}))

	overrides := &config.ConfigOverrides{}
	collectOverrides(cmd, overrides)

	require.NotNil(t, overrides.DBType)
	assert.Equal(t, "postgres", *overrides.DBType)
	assert.Equal(t, 6543, *overrides.DBPort)
	assert.Equal(t, 8080, *overrides.Port)
	assert.Equal(t, 3*time.Second, *overrides.ShutdownTimeout)
	assert.Equal(t, "staging", *overrides.Environment)
	assert.Nil(t, overrides.DBHost, "unset flags leave the environment in charge")
	assert.Nil(t, overrides.PoolSize)
}

func TestRootCommand_InvalidConfiguration(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--db-type", "oracle"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.type")
}
