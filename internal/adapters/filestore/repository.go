// Package filestore persists board documents as one JSON file per
// project under the data directory, plus the legacy single-file
// source used for one-time migration.
package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/ports/secondary"
)

// Repository implements secondary.DocumentRepository on the local
// filesystem. Documents live at <dataDir>/projects/<projectID>.json.
type Repository struct {
	dataDir string
	ids     board.Minter
}

// New creates a Repository rooted at the given data directory.
func New(dataDir string, ids board.Minter) *Repository {
	return &Repository{dataDir: dataDir, ids: ids}
}

func (r *Repository) projectsDir() string {
	return filepath.Join(r.dataDir, "projects")
}

func (r *Repository) path(projectID string) string {
	return filepath.Join(r.projectsDir(), projectID+".json")
}

// Load reads a project's document and coerces it into canonical
// shape, so hand-edited or older bytes never leak invariant
// violations into the store.
func (r *Repository) Load(ctx context.Context, projectID string) (*board.Board, error) {
	data, err := os.ReadFile(r.path(projectID))
	if os.IsNotExist(err) {
		return nil, &board.NotFoundError{Kind: "project", ID: projectID}
	}
	if err != nil {
		return nil, &board.StorageError{Op: "read", Path: r.path(projectID), Err: err}
	}
	b, err := board.DecodeDocument(data)
	if err != nil {
		return nil, &board.StorageError{Op: "parse", Path: r.path(projectID), Err: err}
	}
	return board.Coerce(b, r.ids), nil
}

// Save writes a document atomically: the bytes go to a temp file in
// the same directory, then rename replaces the target, so a reader
// never observes a partially written document.
func (r *Repository) Save(ctx context.Context, b *board.Board) error {
	data, err := board.EncodeDocument(b)
	if err != nil {
		return &board.StorageError{Op: "encode", Path: r.path(b.Project.ID), Err: err}
	}
	if err := os.MkdirAll(r.projectsDir(), 0755); err != nil {
		return &board.StorageError{Op: "mkdir", Path: r.projectsDir(), Err: err}
	}
	target := r.path(b.Project.ID)
	tmp, err := os.CreateTemp(r.projectsDir(), "."+b.Project.ID+"-*.tmp")
	if err != nil {
		return &board.StorageError{Op: "write", Path: target, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &board.StorageError{Op: "write", Path: target, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &board.StorageError{Op: "write", Path: target, Err: err}
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return &board.StorageError{Op: "rename", Path: target, Err: err}
	}
	return nil
}

// Delete removes a project's document.
func (r *Repository) Delete(ctx context.Context, projectID string) error {
	err := os.Remove(r.path(projectID))
	if os.IsNotExist(err) {
		return &board.NotFoundError{Kind: "project", ID: projectID}
	}
	if err != nil {
		return &board.StorageError{Op: "delete", Path: r.path(projectID), Err: err}
	}
	return nil
}

// ListIDs returns the ids of all stored projects. A missing projects
// directory is an empty store, not an error.
func (r *Repository) ListIDs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.projectsDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &board.StorageError{Op: "list", Path: r.projectsDir(), Err: err}
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// Ensure Repository implements the interface
var _ secondary.DocumentRepository = (*Repository)(nil)
