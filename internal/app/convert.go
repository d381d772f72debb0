package app

import (
	"sort"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/ports/primary"
)

func toProject(p board.Project) *primary.Project {
	return &primary.Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toList(l board.List) *primary.List {
	return &primary.List{
		ID:          l.ID,
		ProjectID:   l.ProjectID,
		Title:       l.Title,
		Description: l.Description,
		Order:       l.Order,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toItem(it board.Item) *primary.Item {
	out := &primary.Item{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Label:       it.Label,
		Description: it.Description,
		Order:       it.Order,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
	if it.ListID != nil {
		id := *it.ListID
		out.ListID = &id
	}
	return out
}

// toProjectBoard converts a document for callers: lists sorted by
// rank, items grouped by container in list rank order (loose last),
// each container's items by rank.
func toProjectBoard(b *board.Board) *primary.ProjectBoard {
	out := &primary.ProjectBoard{
		Project: *toProject(b.Project),
		Lists:   make([]*primary.List, len(b.Lists)),
		Items:   make([]*primary.Item, 0, len(b.Items)),
	}
	for i := range b.Lists {
		out.Lists[i] = toList(b.Lists[i])
	}
	sort.SliceStable(out.Lists, func(i, j int) bool {
		return out.Lists[i].Order < out.Lists[j].Order
	})
	for _, l := range out.Lists {
		out.Items = append(out.Items, containerItems(b, l.ID)...)
	}
	out.Items = append(out.Items, containerItems(b, board.LooseContainer)...)
	return out
}

func containerItems(b *board.Board, container string) []*primary.Item {
	var items []*primary.Item
	for _, i := range b.ItemsIn(container) {
		items = append(items, toItem(b.Items[i]))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	return items
}
