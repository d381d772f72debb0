package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacySchema = `
CREATE TABLE projects (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE lists (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	ord INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE items (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	list_id TEXT,
	label TEXT NOT NULL,
	description TEXT,
	ord INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

func writeLegacyDB(t *testing.T, dir string) {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(dir, "corkboard.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(legacySchema)
	require.NoError(t, err)

	const ts = "2023-01-01T00:00:00Z"
	const later = "2023-01-02T00:00:00Z"
	_, err = db.Exec(`INSERT INTO projects (id, title, description, created_at, updated_at) VALUES
		('p1', 'Old project', 'from the db era', ?, ?),
		('p2', 'Empty project', NULL, ?, ?)`, ts, ts, later, later)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO lists (id, project_id, title, description, ord, created_at, updated_at) VALUES
		('l1', 'p1', 'Doing', NULL, 0, ?, ?),
		('l2', 'ghost', 'Orphan', NULL, 0, ?, ?)`, ts, ts, ts, ts)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO items (id, project_id, list_id, label, description, ord, created_at, updated_at) VALUES
		('i1', 'p1', 'l1', 'In a list', NULL, 0, ?, ?),
		('i2', 'p1', NULL, 'Loose', 'no column', 1, ?, ?)`, ts, ts, ts, ts)
	require.NoError(t, err)
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()
	src := NewLegacyDB(dir)
	ctx := context.Background()

	found, err := src.Detect(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	writeLegacyDB(t, dir)

	found, err = src.Detect(ctx)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestBoardsReadsLegacyDatabase(t *testing.T) {
	dir := t.TempDir()
	writeLegacyDB(t, dir)
	src := NewLegacyDB(dir)

	boards, err := src.Boards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 2)

	p1 := boards[0]
	assert.Equal(t, "Old project", p1.Project.Title)
	assert.Equal(t, "from the db era", p1.Project.Description)
	require.Len(t, p1.Lists, 1, "orphan list dropped")
	assert.Equal(t, "Doing", p1.Lists[0].Title)

	require.Len(t, p1.Items, 2)
	require.NotNil(t, p1.Items[0].ListID)
	assert.Equal(t, "l1", *p1.Items[0].ListID)
	assert.Nil(t, p1.Items[1].ListID)
	assert.Equal(t, "no column", p1.Items[1].Description)

	p2 := boards[1]
	assert.Equal(t, "Empty project", p2.Project.Title)
	assert.Empty(t, p2.Project.Description)
	assert.Empty(t, p2.Lists)
	assert.Empty(t, p2.Items)
}

func TestRetire(t *testing.T) {
	dir := t.TempDir()
	writeLegacyDB(t, dir)
	src := NewLegacyDB(dir)

	require.NoError(t, src.Retire(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "corkboard.db"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "corkboard.db.legacy"))
	assert.NoError(t, err)
}
