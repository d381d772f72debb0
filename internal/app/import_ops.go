package app

import (
	"context"
	"fmt"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/ports/primary"
	"github.com/example/corkboard/internal/ports/secondary"
)

// ImportProjectJSON imports arbitrary JSON text. An object with a
// "project" key is one document; an object with a "projects" key is
// the legacy multi-project format, split per project. Anything else
// fails with board.ErrUnsupportedFormat. Colliding project ids are
// re-minted, so imports never overwrite an existing document.
func (s *BoardServiceImpl) ImportProjectJSON(ctx context.Context, text string) (*primary.ImportResponse, error) {
	boards, err := board.DecodeImport([]byte(text))
	if err != nil {
		return nil, err
	}

	var imported []string
	err = s.queue.Do(func() error {
		existing, err := s.existingIDs(ctx)
		if err != nil {
			return err
		}
		for _, b := range boards {
			board.Coerce(b, s.ids)
			if existing[b.Project.ID] {
				s.remintProject(b)
			}
			if err := s.repo.Save(ctx, b); err != nil {
				return fmt.Errorf("failed to import project %s: %w", b.Project.ID, err)
			}
			existing[b.Project.ID] = true
			imported = append(imported, b.Project.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &primary.ImportResponse{ImportedProjectIDs: imported}, nil
}

// existingIDs snapshots the stored project ids as a set.
func (s *BoardServiceImpl) existingIDs(ctx context.Context) (map[string]bool, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// remintProject gives an imported board a fresh project id and
// propagates it to every list and item.
func (s *BoardServiceImpl) remintProject(b *board.Board) {
	b.Project.ID = s.ids.NewID()
	for i := range b.Lists {
		b.Lists[i].ProjectID = b.Project.ID
	}
	for i := range b.Items {
		b.Items[i].ProjectID = b.Project.ID
	}
}

// MigrateLegacy converts pre-current-format stores into per-project
// documents. It runs only when no documents exist yet; each detected
// source is split per project, persisted, and then retired (renamed
// with a .legacy suffix). A failed retire is not fatal: the next run
// finds documents present and skips migration.
func (s *BoardServiceImpl) MigrateLegacy(ctx context.Context, sources ...secondary.LegacySource) error {
	return s.queue.Do(func() error {
		ids, err := s.repo.ListIDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to check for existing projects: %w", err)
		}
		if len(ids) > 0 {
			return nil
		}
		for _, src := range sources {
			found, err := src.Detect(ctx)
			if err != nil {
				return fmt.Errorf("failed to detect legacy data: %w", err)
			}
			if !found {
				continue
			}
			boards, err := src.Boards(ctx)
			if err != nil {
				return fmt.Errorf("failed to read legacy data: %w", err)
			}
			for _, b := range boards {
				board.Coerce(b, s.ids)
				if err := s.repo.Save(ctx, b); err != nil {
					return fmt.Errorf("failed to migrate project %s: %w", b.Project.ID, err)
				}
			}
			_ = src.Retire(ctx)
		}
		return nil
	})
}
