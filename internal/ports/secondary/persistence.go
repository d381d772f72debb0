// Package secondary defines the secondary ports (driven adapters) for
// the application: document persistence and legacy data sources.
package secondary

import (
	"context"

	"github.com/example/corkboard/internal/core/board"
)

// DocumentRepository defines the secondary port for board document
// persistence: one document per project, written atomically.
type DocumentRepository interface {
	// Load reads and coerces the document for a project. Returns a
	// board.NotFoundError when no document exists.
	Load(ctx context.Context, projectID string) (*board.Board, error)

	// Save writes a document atomically; a reader never observes a
	// partially written file.
	Save(ctx context.Context, b *board.Board) error

	// Delete removes a project's document.
	Delete(ctx context.Context, projectID string) error

	// ListIDs returns the ids of all stored projects.
	ListIDs(ctx context.Context) ([]string, error)
}

// LegacySource is a pre-current-format store that can be migrated
// once into per-project documents.
type LegacySource interface {
	// Detect reports whether legacy data is present.
	Detect(ctx context.Context) (bool, error)

	// Boards reads every legacy project as an uncoerced board.
	Boards(ctx context.Context) ([]*board.Board, error)

	// Retire renames the legacy source out of the way after a
	// successful migration. Failure is non-fatal to the caller.
	Retire(ctx context.Context) error
}
