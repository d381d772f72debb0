// Package app implements the primary ports: the record store that
// owns board documents and serializes every mutation against them.
package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/ports/primary"
	"github.com/example/corkboard/internal/ports/secondary"
)

// BoardServiceImpl implements the BoardService interface. It owns
// the document lifecycle: load, mutate under the queue, persist.
type BoardServiceImpl struct {
	repo  secondary.DocumentRepository
	ids   board.Minter
	queue *mutationQueue
}

// NewBoardService creates a BoardService with injected dependencies.
// One instance per process is the intended shape; tests construct as
// many isolated instances as they need.
func NewBoardService(repo secondary.DocumentRepository, ids board.Minter) *BoardServiceImpl {
	return &BoardServiceImpl{
		repo:  repo,
		ids:   ids,
		queue: newMutationQueue(),
	}
}

// Close drains the mutation queue and stops its worker.
func (s *BoardServiceImpl) Close() {
	s.queue.Close()
}

// mutate runs one load-modify-write cycle for a project under the
// mutation queue. The document is written only after fn returns
// successfully, so a failing fn leaves persisted state unchanged.
func (s *BoardServiceImpl) mutate(ctx context.Context, projectID string, fn func(b *board.Board) error) (*board.Board, error) {
	var result *board.Board
	err := s.queue.Do(func() error {
		b, err := s.repo.Load(ctx, projectID)
		if err != nil {
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
		if err := s.repo.Save(ctx, b); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateProject creates a new, empty project document.
func (s *BoardServiceImpl) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*primary.Project, error) {
	if err := board.CheckRequiredText("title", req.Title).Err(); err != nil {
		return nil, err
	}

	var created board.Project
	err := s.queue.Do(func() error {
		now := s.ids.Now()
		b := &board.Board{
			Project: board.Project{
				ID:          s.ids.NewID(),
				Title:       strings.TrimSpace(req.Title),
				Description: req.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			Lists: []board.List{},
			Items: []board.Item{},
		}
		if err := s.repo.Save(ctx, b); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		created = b.Project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProject(created), nil
}

// UpdateProject applies a partial patch to a project.
func (s *BoardServiceImpl) UpdateProject(ctx context.Context, req primary.UpdateProjectRequest) (*primary.Project, error) {
	if err := board.CheckPatchText("title", req.Title).Err(); err != nil {
		return nil, err
	}

	b, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		if req.Title != nil {
			b.Project.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			b.Project.Description = *req.Description
		}
		b.Project.UpdatedAt = s.ids.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProject(b.Project), nil
}

// DeleteProject irreversibly removes a project's document.
func (s *BoardServiceImpl) DeleteProject(ctx context.Context, projectID string) error {
	return s.queue.Do(func() error {
		if _, err := s.repo.Load(ctx, projectID); err != nil {
			return err
		}
		return s.repo.Delete(ctx, projectID)
	})
}

// GetProjectBoard retrieves the full board of one project. Reads do
// not enqueue; they observe the latest committed write.
func (s *BoardServiceImpl) GetProjectBoard(ctx context.Context, projectID string) (*primary.ProjectBoard, error) {
	b, err := s.repo.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toProjectBoard(b), nil
}

// ListProjects lists all projects, most recently updated first.
func (s *BoardServiceImpl) ListProjects(ctx context.Context) ([]*primary.Project, error) {
	boards, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]*primary.Project, len(boards))
	for i, b := range boards {
		projects[i] = toProject(b.Project)
	}
	return projects, nil
}

// ListProjectSummaries lists projects with list/item counts, most
// recently updated first.
func (s *BoardServiceImpl) ListProjectSummaries(ctx context.Context) ([]*primary.ProjectSummary, error) {
	boards, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]*primary.ProjectSummary, len(boards))
	for i, b := range boards {
		summaries[i] = &primary.ProjectSummary{
			Project:   *toProject(b.Project),
			ListCount: len(b.Lists),
			ItemCount: len(b.Items),
		}
	}
	return summaries, nil
}

// loadAll loads every stored document, sorted by updatedAt desc.
func (s *BoardServiceImpl) loadAll(ctx context.Context) ([]*board.Board, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	boards := make([]*board.Board, 0, len(ids))
	for _, id := range ids {
		b, err := s.repo.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	sort.SliceStable(boards, func(i, j int) bool {
		a, b := boards[i], boards[j]
		if a.Project.UpdatedAt != b.Project.UpdatedAt {
			return a.Project.UpdatedAt > b.Project.UpdatedAt
		}
		return a.Project.ID < b.Project.ID
	})
	return boards, nil
}

// Ensure BoardServiceImpl implements the interface
var _ primary.BoardService = (*BoardServiceImpl)(nil)
