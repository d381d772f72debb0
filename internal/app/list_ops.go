package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/core/ordering"
	"github.com/example/corkboard/internal/ports/primary"
)

// CreateList appends a new list at the end of the project's columns.
func (s *BoardServiceImpl) CreateList(ctx context.Context, req primary.CreateListRequest) (*primary.List, error) {
	if err := board.CheckRequiredText("title", req.Title).Err(); err != nil {
		return nil, err
	}

	var createdID string
	b, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		l := s.appendList(b, strings.TrimSpace(req.Title), req.Description)
		createdID = l.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toList(b.Lists[b.FindList(createdID)]), nil
}

// appendList creates a list with the next free rank and stamps the
// project. Shared by CreateList, DuplicateList, and suggestions.
func (s *BoardServiceImpl) appendList(b *board.Board, title, description string) *board.List {
	now := s.ids.Now()
	l := board.List{
		ID:          s.ids.NewID(),
		ProjectID:   b.Project.ID,
		Title:       title,
		Description: description,
		Order:       ordering.NextOrder(listEntries(b)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	b.Lists = append(b.Lists, l)
	b.Project.UpdatedAt = now
	return &b.Lists[len(b.Lists)-1]
}

// UpdateList applies a partial patch to a list.
func (s *BoardServiceImpl) UpdateList(ctx context.Context, req primary.UpdateListRequest) (*primary.List, error) {
	if err := board.CheckPatchText("title", req.Title).Err(); err != nil {
		return nil, err
	}

	b, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		i := b.FindList(req.ListID)
		if i < 0 {
			return &board.NotFoundError{Kind: "list", ID: req.ListID}
		}
		l := &b.Lists[i]
		if req.Title != nil {
			l.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			l.Description = *req.Description
		}
		now := s.ids.Now()
		l.UpdatedAt = now
		b.Project.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toList(b.Lists[b.FindList(req.ListID)]), nil
}

// DeleteList removes a list. Its items are not deleted: they are
// reassigned to the loose container, which is then renumbered, and
// the remaining lists are renumbered.
func (s *BoardServiceImpl) DeleteList(ctx context.Context, req primary.DeleteListRequest) error {
	_, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		i := b.FindList(req.ListID)
		if i < 0 {
			return &board.NotFoundError{Kind: "list", ID: req.ListID}
		}
		now := s.ids.Now()
		b.Lists = append(b.Lists[:i], b.Lists[i+1:]...)
		for j := range b.Items {
			if b.Items[j].ListID != nil && *b.Items[j].ListID == req.ListID {
				b.Items[j].ListID = nil
				b.Items[j].UpdatedAt = now
			}
		}
		board.NormalizeItems(b, board.LooseContainer)
		board.NormalizeLists(b)
		b.Project.UpdatedAt = now
		return nil
	})
	return err
}

// DuplicateList clones a list and all of its items. The clone takes
// a "(copy)" title, with "(copy N)" suffixes to dodge collisions
// against existing titles (case-insensitive), and is appended at the
// end of the column order.
func (s *BoardServiceImpl) DuplicateList(ctx context.Context, req primary.DuplicateListRequest) (*primary.DuplicateListResponse, error) {
	var (
		cloneID string
		cloned  int
	)
	b, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		i := b.FindList(req.ListID)
		if i < 0 {
			return &board.NotFoundError{Kind: "list", ID: req.ListID}
		}
		src := b.Lists[i]

		clone := s.appendList(b, copyTitle(b, src.Title), src.Description)
		cloneID = clone.ID

		for _, j := range sortedByOrder(b, src.ID) {
			it := b.Items[j]
			now := s.ids.Now()
			listID := cloneID
			b.Items = append(b.Items, board.Item{
				ID:          s.ids.NewID(),
				ProjectID:   b.Project.ID,
				ListID:      &listID,
				Label:       it.Label,
				Description: it.Description,
				Order:       cloned,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			cloned++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &primary.DuplicateListResponse{
		List:        toList(b.Lists[b.FindList(cloneID)]),
		ClonedItems: cloned,
	}, nil
}

// copyTitle picks "<title> (copy)", then "<title> (copy 2)" and so
// on, until no existing list title matches case-insensitively.
func copyTitle(b *board.Board, title string) string {
	taken := func(candidate string) bool {
		for i := range b.Lists {
			if strings.EqualFold(b.Lists[i].Title, candidate) {
				return true
			}
		}
		return false
	}
	candidate := title + " (copy)"
	for n := 2; taken(candidate); n++ {
		candidate = fmt.Sprintf("%s (copy %d)", title, n)
	}
	return candidate
}

// ReorderLists reorders a project's lists to the named sequence. Ids
// not belonging to the project are silently ignored; lists omitted
// from the sequence keep their relative order after the named ones.
// Returns the lists sorted by resulting rank.
func (s *BoardServiceImpl) ReorderLists(ctx context.Context, req primary.ReorderListsRequest) ([]*primary.List, error) {
	b, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		seen := make(map[string]bool, len(req.IDsInOrder))
		var sequence []string
		for _, id := range req.IDsInOrder {
			if b.FindList(id) < 0 || seen[id] {
				continue
			}
			seen[id] = true
			sequence = append(sequence, id)
		}
		for _, id := range ordering.Normalize(listEntries(b)) {
			if !seen[id] {
				sequence = append(sequence, id)
			}
		}

		now := s.ids.Now()
		for pos, id := range sequence {
			l := &b.Lists[b.FindList(id)]
			if l.Order != pos {
				l.Order = pos
				l.UpdatedAt = now
			}
		}
		b.Project.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	lists := make([]*primary.List, len(b.Lists))
	for i := range b.Lists {
		lists[i] = toList(b.Lists[i])
	}
	sort.SliceStable(lists, func(i, j int) bool { return lists[i].Order < lists[j].Order })
	return lists, nil
}

func listEntries(b *board.Board) []ordering.Entry {
	entries := make([]ordering.Entry, len(b.Lists))
	for i := range b.Lists {
		entries[i] = ordering.Entry{ID: b.Lists[i].ID, Order: b.Lists[i].Order, UpdatedAt: b.Lists[i].UpdatedAt}
	}
	return entries
}

// sortedByOrder returns the indices of a container's items in rank
// order.
func sortedByOrder(b *board.Board, container string) []int {
	idx := b.ItemsIn(container)
	sort.SliceStable(idx, func(i, j int) bool {
		return b.Items[idx[i]].Order < b.Items[idx[j]].Order
	})
	return idx
}
