package persistence

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrationFilesSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"002_b.sql":   {Data: []byte("SELECT 2")},
		"001_a.sql":   {Data: []byte("SELECT 1")},
		"README.md":   {Data: []byte("notes")},
		"old/003.sql": {Data: []byte("SELECT 3")},
	}
	files, err := migrationFiles(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_a.sql", "002_b.sql"}, files)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := migrationFiles(Migrations)
	require.NoError(t, err)
	assert.Contains(t, files, "001_contact_messages.sql")
}

func TestRunMigrationsWithoutPool(t *testing.T) {
	assert.NoError(t, RunMigrations(context.Background(), nil, Migrations, zap.NewNop()))
}
