package filestore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/ports/secondary"
)

// legacyJSONName is the pre-split single-file store: every project's
// records in one JSON document at the data directory root.
const legacyJSONName = "boards.json"

// LegacyJSON implements secondary.LegacySource for the single-file
// JSON format that predates per-project documents.
type LegacyJSON struct {
	path string
}

// NewLegacyJSON creates a LegacyJSON source under the data directory.
func NewLegacyJSON(dataDir string) *LegacyJSON {
	return &LegacyJSON{path: filepath.Join(dataDir, legacyJSONName)}
}

// Detect reports whether the legacy file exists.
func (l *LegacyJSON) Detect(ctx context.Context) (bool, error) {
	_, err := os.Stat(l.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, &board.StorageError{Op: "stat", Path: l.path, Err: err}
	}
	return true, nil
}

// Boards reads the legacy file and splits it into one board per
// project, filtered by project foreign keys.
func (l *LegacyJSON) Boards(ctx context.Context) ([]*board.Board, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, &board.StorageError{Op: "read", Path: l.path, Err: err}
	}
	boards, err := board.SplitLegacy(data)
	if err != nil {
		return nil, &board.StorageError{Op: "parse", Path: l.path, Err: err}
	}
	return boards, nil
}

// Retire renames the legacy file to a .legacy backup.
func (l *LegacyJSON) Retire(ctx context.Context) error {
	return os.Rename(l.path, l.path+".legacy")
}

// Ensure LegacyJSON implements the interface
var _ secondary.LegacySource = (*LegacyJSON)(nil)
