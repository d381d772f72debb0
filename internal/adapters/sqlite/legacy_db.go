// Package sqlite reads the single-file SQLite database that
// pre-JSON releases used to hold every project. It exists only for
// one-time migration into per-project documents.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/ports/secondary"
)

// legacyDBName is the pre-JSON-era single-file database at the data
// directory root.
const legacyDBName = "corkboard.db"

// LegacyDB implements secondary.LegacySource over the old database.
type LegacyDB struct {
	path string
}

// NewLegacyDB creates a LegacyDB source under the data directory.
func NewLegacyDB(dataDir string) *LegacyDB {
	return &LegacyDB{path: filepath.Join(dataDir, legacyDBName)}
}

// Detect reports whether the legacy database exists.
func (l *LegacyDB) Detect(ctx context.Context) (bool, error) {
	_, err := os.Stat(l.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, &board.StorageError{Op: "stat", Path: l.path, Err: err}
	}
	return true, nil
}

// Boards reads every legacy project with its lists and items. The
// results are uncoerced; the store coerces before persisting.
func (l *LegacyDB) Boards(ctx context.Context) ([]*board.Board, error) {
	db, err := sql.Open("sqlite3", l.path+"?mode=ro")
	if err != nil {
		return nil, &board.StorageError{Op: "open", Path: l.path, Err: err}
	}
	defer db.Close()

	boards, index, err := l.readProjects(ctx, db)
	if err != nil {
		return nil, err
	}
	if err := l.readLists(ctx, db, index); err != nil {
		return nil, err
	}
	if err := l.readItems(ctx, db, index); err != nil {
		return nil, err
	}
	return boards, nil
}

func (l *LegacyDB) readProjects(ctx context.Context, db *sql.DB) ([]*board.Board, map[string]*board.Board, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, title, description, created_at, updated_at FROM projects ORDER BY created_at")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read legacy projects: %w", err)
	}
	defer rows.Close()

	var boards []*board.Board
	index := make(map[string]*board.Board)
	for rows.Next() {
		var p board.Project
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan legacy project: %w", err)
		}
		p.Description = description.String
		b := &board.Board{Project: p, Lists: []board.List{}, Items: []board.Item{}}
		boards = append(boards, b)
		index[p.ID] = b
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read legacy projects: %w", err)
	}
	return boards, index, nil
}

func (l *LegacyDB) readLists(ctx context.Context, db *sql.DB, index map[string]*board.Board) error {
	rows, err := db.QueryContext(ctx,
		"SELECT id, project_id, title, description, ord, created_at, updated_at FROM lists ORDER BY project_id, ord")
	if err != nil {
		return fmt.Errorf("failed to read legacy lists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lst board.List
		var description sql.NullString
		if err := rows.Scan(&lst.ID, &lst.ProjectID, &lst.Title, &description, &lst.Order, &lst.CreatedAt, &lst.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan legacy list: %w", err)
		}
		lst.Description = description.String
		// Lists pointing at an unknown project are dropped.
		if b, ok := index[lst.ProjectID]; ok {
			b.Lists = append(b.Lists, lst)
		}
	}
	return rows.Err()
}

func (l *LegacyDB) readItems(ctx context.Context, db *sql.DB, index map[string]*board.Board) error {
	rows, err := db.QueryContext(ctx,
		"SELECT id, project_id, list_id, label, description, ord, created_at, updated_at FROM items ORDER BY project_id, ord")
	if err != nil {
		return fmt.Errorf("failed to read legacy items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it board.Item
		var listID, description sql.NullString
		if err := rows.Scan(&it.ID, &it.ProjectID, &listID, &it.Label, &description, &it.Order, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan legacy item: %w", err)
		}
		it.Description = description.String
		if listID.Valid {
			id := listID.String
			it.ListID = &id
		}
		if b, ok := index[it.ProjectID]; ok {
			b.Items = append(b.Items, it)
		}
	}
	return rows.Err()
}

// Retire renames the legacy database to a .legacy backup.
func (l *LegacyDB) Retire(ctx context.Context) error {
	return os.Rename(l.path, l.path+".legacy")
}

// Ensure LegacyDB implements the interface
var _ secondary.LegacySource = (*LegacyDB)(nil)
