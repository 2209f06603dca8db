package db

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative-pulse/db/migrations"
)

func TestMigrationSource(t *testing.T) {
	src, err := openSource()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	up, _, err := src.ReadUp(migrations.Version)
	require.NoError(t, err)
	defer up.Close()
	ddl, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Contains(t, string(ddl), "CREATE TABLE IF NOT EXISTS todo_lists")
	assert.Contains(t, string(ddl), "REFERENCES todo_lists (id) ON DELETE CASCADE")

	down, _, err := src.ReadDown(migrations.Version)
	require.NoError(t, err)
	defer down.Close()
	ddl, err = io.ReadAll(down)
	require.NoError(t, err)
	assert.Contains(t, string(ddl), "todos")
	assert.Contains(t, string(ddl), "todo_lists")
}
