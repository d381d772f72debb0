// Package board contains the domain types for corkboard entities:
// projects, lists (ordered columns), and items (ordered cards).
// Persistence lives in internal/adapters; this package is pure data
// plus the guards, coercion, and codec that keep documents canonical.
package board

// Project is the root of one board document.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// List is an ordered column belonging to exactly one project.
// Order is a zero-based dense rank among all lists of the project.
type List struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Item is an ordered card. A nil ListID places the item in the
// implicit "loose" container. Order is dense within the container
// (items sharing the same ListID, nil included), not globally.
type Item struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	ListID      *string `json:"listId"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Order       int     `json:"order"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Board is the full persisted state of one project. It is the unit
// of storage, locking, and serialization; there are no transactions
// across documents.
type Board struct {
	Project Project `json:"project"`
	Lists   []List  `json:"lists"`
	Items   []Item  `json:"items"`
}

// ContainerOf returns the container key for an item: the list id,
// or LooseContainer for items with no list.
func ContainerOf(it Item) string {
	if it.ListID == nil {
		return LooseContainer
	}
	return *it.ListID
}

// LooseContainer keys the implicit container of items with no list.
// It is never a valid list id (list ids are minted UUIDs).
const LooseContainer = "_loose_"

// FindList returns the index of the list with the given id, or -1.
func (b *Board) FindList(id string) int {
	for i := range b.Lists {
		if b.Lists[i].ID == id {
			return i
		}
	}
	return -1
}

// FindItem returns the index of the item with the given id, or -1.
func (b *Board) FindItem(id string) int {
	for i := range b.Items {
		if b.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// ItemsIn returns the indices of items in the given container.
func (b *Board) ItemsIn(container string) []int {
	var idx []int
	for i := range b.Items {
		if ContainerOf(b.Items[i]) == container {
			idx = append(idx, i)
		}
	}
	return idx
}
