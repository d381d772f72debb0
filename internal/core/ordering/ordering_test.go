package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(id string, order int, updatedAt string) Entry {
	return Entry{ID: id, Order: order, UpdatedAt: updatedAt}
}

func TestNormalizeSortsByOrder(t *testing.T) {
	got := Normalize([]Entry{
		entry("c", 2, "t1"),
		entry("a", 0, "t1"),
		entry("b", 1, "t1"),
	})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestNormalizeBreaksTiesByUpdatedAtThenID(t *testing.T) {
	got := Normalize([]Entry{
		entry("b", 0, "2024-01-02T00:00:00Z"),
		entry("a", 0, "2024-01-01T00:00:00Z"),
		entry("z", 0, "2024-01-01T00:00:00Z"),
	})
	// a and z tie on updatedAt, so id decides; b updated later.
	assert.Equal(t, []string{"a", "z", "b"}, got)
}

func TestNormalizeClosesGaps(t *testing.T) {
	got := Normalize([]Entry{
		entry("a", 3, "t1"),
		entry("b", 7, "t1"),
		entry("c", 100, "t1"),
	})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
}

func TestMoveWithinToFront(t *testing.T) {
	entries := []Entry{entry("a", 0, "t"), entry("b", 1, "t"), entry("c", 2, "t")}
	assert.Equal(t, []string{"c", "a", "b"}, MoveWithin(entries, "c", 0))
}

func TestMoveWithinToMiddle(t *testing.T) {
	entries := []Entry{entry("a", 0, "t"), entry("b", 1, "t"), entry("c", 2, "t")}
	assert.Equal(t, []string{"b", "a", "c"}, MoveWithin(entries, "a", 1))
}

func TestMoveWithinClampsHighIndex(t *testing.T) {
	entries := []Entry{entry("a", 0, "t"), entry("b", 1, "t"), entry("c", 2, "t")}
	assert.Equal(t, []string{"b", "c", "a"}, MoveWithin(entries, "a", 99))
}

func TestMoveWithinClampsNegativeIndex(t *testing.T) {
	entries := []Entry{entry("a", 0, "t"), entry("b", 1, "t")}
	assert.Equal(t, []string{"b", "a"}, MoveWithin(entries, "b", -5))
}

func TestMoveWithinSingleMember(t *testing.T) {
	entries := []Entry{entry("only", 0, "t")}
	assert.Equal(t, []string{"only"}, MoveWithin(entries, "only", 3))
}

func TestMoveWithinUnknownIDLeavesSequence(t *testing.T) {
	entries := []Entry{entry("a", 0, "t"), entry("b", 1, "t")}
	assert.Equal(t, []string{"a", "b"}, MoveWithin(entries, "ghost", 0))
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 0, NextOrder(nil))
	assert.Equal(t, 3, NextOrder([]Entry{entry("a", 0, "t"), entry("b", 2, "t")}))
	assert.Equal(t, 1, NextOrder([]Entry{entry("a", 0, "t")}))
}
