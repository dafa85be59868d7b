package db

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrations_Dialects(t *testing.T) {
	dir, dialect, err := Migrations("postgres")
	require.NoError(t, err)
	assert.Equal(t, "migrations/postgres", dir)
	assert.Equal(t, "postgres", dialect)

	dir, dialect, err = Migrations("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "migrations/sqlite", dir)
	assert.Equal(t, "sqlite3", dialect)

	_, _, err = Migrations("mysql")
	assert.Error(t, err)
}

func TestFS_SameVersionsForEveryDriver(t *testing.T) {
	pg, err := fs.Glob(FS(), "migrations/postgres/*.sql")
	require.NoError(t, err)
	lite, err := fs.Glob(FS(), "migrations/sqlite/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, pg)
	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, filepath.Base(pg[i]), filepath.Base(lite[i]))
	}
}

func TestUp_SQLiteWorkIDIsImmutable(t *testing.T) {
	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	require.NoError(t, Up(conn, "sqlite"))
	// applying twice is a no-op
	require.NoError(t, Up(conn, "sqlite"))

	ctx := context.Background()
	_, err = conn.ExecContext(ctx, `INSERT INTO authors (name, country) VALUES ('Borges', 'Argentina')`)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `INSERT INTO books (work_id, title, author_id) VALUES ('OL1W', 'Ficciones', 1)`)
	require.NoError(t, err)

	_, err = conn.ExecContext(ctx, `UPDATE books SET work_id = 'OL2W' WHERE id = 1`)
	assert.Error(t, err)

	_, err = conn.ExecContext(ctx, `UPDATE books SET year = 1944 WHERE id = 1`)
	assert.NoError(t, err)
}
