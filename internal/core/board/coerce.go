package board

import (
	"fmt"
	"strings"

	"github.com/example/corkboard/internal/core/ordering"
)

// Minter supplies the ids and timestamps coercion has to invent for
// missing fields.
type Minter interface {
	NewID() string
	Now() string
}

// Default titles for records that arrive without one.
const (
	DefaultProjectTitle = "Untitled project"
)

// Coerce re-derives every field of a possibly-partial document so the
// result satisfies the referential and dense-ordering invariants:
// missing ids are minted, missing titles defaulted, missing timestamps
// stamped with now, dangling item list references forced loose, and
// every container renumbered. Coercing an already-canonical document
// changes nothing, so coercion is idempotent.
func Coerce(b *Board, m Minter) *Board {
	if b == nil {
		b = &Board{}
	}
	now := m.Now()

	if b.Project.ID == "" {
		b.Project.ID = m.NewID()
	}
	if strings.TrimSpace(b.Project.Title) == "" {
		b.Project.Title = DefaultProjectTitle
	}
	if b.Project.CreatedAt == "" {
		b.Project.CreatedAt = now
	}
	if b.Project.UpdatedAt == "" {
		b.Project.UpdatedAt = now
	}

	if b.Lists == nil {
		b.Lists = []List{}
	}
	known := make(map[string]bool, len(b.Lists))
	for i := range b.Lists {
		l := &b.Lists[i]
		if l.ID == "" {
			l.ID = m.NewID()
		}
		l.ProjectID = b.Project.ID
		if strings.TrimSpace(l.Title) == "" {
			l.Title = fmt.Sprintf("List %d", i+1)
		}
		if l.CreatedAt == "" {
			l.CreatedAt = now
		}
		if l.UpdatedAt == "" {
			l.UpdatedAt = now
		}
		known[l.ID] = true
	}

	if b.Items == nil {
		b.Items = []Item{}
	}
	for i := range b.Items {
		it := &b.Items[i]
		if it.ID == "" {
			it.ID = m.NewID()
		}
		it.ProjectID = b.Project.ID
		if strings.TrimSpace(it.Label) == "" {
			it.Label = fmt.Sprintf("Item %d", i+1)
		}
		if it.ListID != nil && !known[*it.ListID] {
			it.ListID = nil
		}
		if it.CreatedAt == "" {
			it.CreatedAt = now
		}
		if it.UpdatedAt == "" {
			it.UpdatedAt = now
		}
	}

	NormalizeLists(b)
	for _, container := range b.Containers() {
		NormalizeItems(b, container)
	}
	return b
}

// Containers returns every item container key present on the board:
// each list id plus the loose container.
func (b *Board) Containers() []string {
	keys := make([]string, 0, len(b.Lists)+1)
	for i := range b.Lists {
		keys = append(keys, b.Lists[i].ID)
	}
	keys = append(keys, LooseContainer)
	return keys
}

// NormalizeLists restores the dense rank invariant across the
// project's lists.
func NormalizeLists(b *Board) {
	entries := make([]ordering.Entry, len(b.Lists))
	for i := range b.Lists {
		entries[i] = ordering.Entry{ID: b.Lists[i].ID, Order: b.Lists[i].Order, UpdatedAt: b.Lists[i].UpdatedAt}
	}
	rank := indexOf(ordering.Normalize(entries))
	for i := range b.Lists {
		b.Lists[i].Order = rank[b.Lists[i].ID]
	}
}

// NormalizeItems restores the dense rank invariant within one item
// container.
func NormalizeItems(b *Board, container string) {
	var entries []ordering.Entry
	for _, i := range b.ItemsIn(container) {
		it := b.Items[i]
		entries = append(entries, ordering.Entry{ID: it.ID, Order: it.Order, UpdatedAt: it.UpdatedAt})
	}
	rank := indexOf(ordering.Normalize(entries))
	for _, i := range b.ItemsIn(container) {
		b.Items[i].Order = rank[b.Items[i].ID]
	}
}

func indexOf(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}
