// Package ordering contains the pure ordering engine for containers.
// A container is any set of records carrying a zero-based dense rank:
// a project's lists, a list's items, or the loose items. The engine
// never touches storage; it computes rank sequences the caller applies.
package ordering

import "sort"

// Entry is a container member as seen by the engine.
type Entry struct {
	ID        string
	Order     int
	UpdatedAt string
}

// Normalize returns the member ids in canonical rank order: stably
// sorted by existing Order, ties broken by UpdatedAt ascending, then
// ID. The caller assigns 0..n-1 along the returned sequence, which
// restores the dense invariant after any delete or reassignment.
func Normalize(entries []Entry) []string {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.UpdatedAt != b.UpdatedAt {
			return a.UpdatedAt < b.UpdatedAt
		}
		return a.ID < b.ID
	})
	ids := make([]string, len(sorted))
	for i, e := range sorted {
		ids[i] = e.ID
	}
	return ids
}

// MoveWithin removes movingID from the sequence, clamps targetIndex
// to [0, len(remaining)], and inserts it at that index. Out-of-range
// targets are clamped rather than rejected, so moving into an empty
// or full container always succeeds. entries must include the moving
// record; its stale Order does not matter.
func MoveWithin(entries []Entry, movingID string, targetIndex int) []string {
	ranked := Normalize(entries)
	remaining := make([]string, 0, len(ranked))
	found := false
	for _, id := range ranked {
		if id == movingID {
			found = true
			continue
		}
		remaining = append(remaining, id)
	}
	if !found {
		return ranked
	}
	idx := clamp(targetIndex, 0, len(remaining))
	out := make([]string, 0, len(ranked))
	out = append(out, remaining[:idx]...)
	out = append(out, movingID)
	out = append(out, remaining[idx:]...)
	return out
}

// NextOrder returns the next free rank for a creation in the
// container: max(existing orders, -1) + 1.
func NextOrder(entries []Entry) int {
	next := 0
	for _, e := range entries {
		if e.Order >= next {
			next = e.Order + 1
		}
	}
	return next
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
