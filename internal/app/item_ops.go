package app

import (
	"context"
	"strings"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/core/ordering"
	"github.com/example/corkboard/internal/ports/primary"
)

// CreateItem appends a new item at the end of its container. A nil
// ListID creates the item loose; a non-nil ListID must reference an
// existing list.
func (s *BoardServiceImpl) CreateItem(ctx context.Context, req primary.CreateItemRequest) (*primary.Item, error) {
	if err := board.CheckRequiredText("label", req.Label).Err(); err != nil {
		return nil, err
	}

	var createdID string
	b, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		if req.ListID != nil && b.FindList(*req.ListID) < 0 {
			return &board.NotFoundError{Kind: "list", ID: *req.ListID}
		}
		it := s.appendItem(b, req.ListID, strings.TrimSpace(req.Label), req.Description)
		createdID = it.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItem(b.Items[b.FindItem(createdID)]), nil
}

// appendItem creates an item with the next free rank in its
// container and stamps the project.
func (s *BoardServiceImpl) appendItem(b *board.Board, listID *string, label, description string) *board.Item {
	now := s.ids.Now()
	var assigned *string
	container := board.LooseContainer
	if listID != nil {
		id := *listID
		assigned = &id
		container = id
	}
	it := board.Item{
		ID:          s.ids.NewID(),
		ProjectID:   b.Project.ID,
		ListID:      assigned,
		Label:       label,
		Description: description,
		Order:       ordering.NextOrder(itemEntries(b, container)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	b.Items = append(b.Items, it)
	b.Project.UpdatedAt = now
	return &b.Items[len(b.Items)-1]
}

// UpdateItem applies a partial patch to an item.
func (s *BoardServiceImpl) UpdateItem(ctx context.Context, req primary.UpdateItemRequest) (*primary.Item, error) {
	if err := board.CheckPatchText("label", req.Label).Err(); err != nil {
		return nil, err
	}

	b, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		i := b.FindItem(req.ItemID)
		if i < 0 {
			return &board.NotFoundError{Kind: "item", ID: req.ItemID}
		}
		it := &b.Items[i]
		if req.Label != nil {
			it.Label = strings.TrimSpace(*req.Label)
		}
		if req.Description != nil {
			it.Description = *req.Description
		}
		now := s.ids.Now()
		it.UpdatedAt = now
		b.Project.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItem(b.Items[b.FindItem(req.ItemID)]), nil
}

// DeleteItem removes an item and renumbers only the container it
// vacated.
func (s *BoardServiceImpl) DeleteItem(ctx context.Context, req primary.DeleteItemRequest) error {
	_, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		i := b.FindItem(req.ItemID)
		if i < 0 {
			return &board.NotFoundError{Kind: "item", ID: req.ItemID}
		}
		vacated := board.ContainerOf(b.Items[i])
		b.Items = append(b.Items[:i], b.Items[i+1:]...)
		board.NormalizeItems(b, vacated)
		b.Project.UpdatedAt = s.ids.Now()
		return nil
	})
	return err
}

// MoveItem moves an item to a position in a container, within or
// across lists. The target index is clamped; the store renumbers
// even when source and target coincide (no-op detection is the
// caller's business).
func (s *BoardServiceImpl) MoveItem(ctx context.Context, req primary.MoveItemRequest) (*primary.Item, error) {
	b, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		return s.applyMove(b, req.ItemID, req.ToListID, req.ToIndex)
	})
	if err != nil {
		return nil, err
	}
	return toItem(b.Items[b.FindItem(req.ItemID)]), nil
}

// applyMove is the cross-container move algorithm: detach from the
// source container and renumber it, then insert into the target
// sequence at the clamped index and renumber that. When source and
// target coincide only the target pass runs.
func (s *BoardServiceImpl) applyMove(b *board.Board, itemID string, toListID *string, toIndex int) error {
	i := b.FindItem(itemID)
	if i < 0 {
		return &board.NotFoundError{Kind: "item", ID: itemID}
	}
	target := board.LooseContainer
	if toListID != nil {
		if b.FindList(*toListID) < 0 {
			return &board.NotFoundError{Kind: "list", ID: *toListID}
		}
		target = *toListID
	}

	it := &b.Items[i]
	source := board.ContainerOf(*it)
	now := s.ids.Now()

	if toListID != nil {
		id := *toListID
		it.ListID = &id
	} else {
		it.ListID = nil
	}

	if source != target {
		board.NormalizeItems(b, source)
	}
	sequence := ordering.MoveWithin(itemEntries(b, target), itemID, toIndex)
	for pos, id := range sequence {
		b.Items[b.FindItem(id)].Order = pos
	}

	it.UpdatedAt = now
	b.Project.UpdatedAt = now
	return nil
}

func itemEntries(b *board.Board, container string) []ordering.Entry {
	var entries []ordering.Entry
	for _, i := range b.ItemsIn(container) {
		it := b.Items[i]
		entries = append(entries, ordering.Entry{ID: it.ID, Order: it.Order, UpdatedAt: it.UpdatedAt})
	}
	return entries
}
