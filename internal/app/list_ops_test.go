package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/ports/primary"
)

func TestCreateListAssignsNextRank(t *testing.T) {
	svc, _ := newTestService(t)
	p := createProject(t, svc, "P")

	first := createList(t, svc, p.ID, "Todo")
	second := createList(t, svc, p.ID, "Doing")

	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
}

func TestCreateListRequiresTitle(t *testing.T) {
	svc, _ := newTestService(t)
	p := createProject(t, svc, "P")

	_, err := svc.CreateList(context.Background(), primary.CreateListRequest{ProjectID: p.ID, Title: " "})
	assert.True(t, board.IsValidation(err))
}

func TestUpdateListNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	p := createProject(t, svc, "P")

	_, err := svc.UpdateList(context.Background(), primary.UpdateListRequest{
		ProjectID: p.ID,
		ListID:    "ghost",
		Title:     strptr("x"),
	})
	assert.True(t, board.IsNotFound(err))
}

func TestDeleteListCascadesItemsToLoose(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p := createProject(t, svc, "P")
	l := createList(t, svc, p.ID, "Doomed")
	createItem(t, svc, p.ID, "", "already loose")
	createItem(t, svc, p.ID, l.ID, "first")
	createItem(t, svc, p.ID, l.ID, "second")

	require.NoError(t, svc.DeleteList(ctx, primary.DeleteListRequest{ProjectID: p.ID, ListID: l.ID}))

	// Reassigned items land after the existing loose ones, densely.
	assert.Equal(t, []string{"already loose", "first", "second"}, containerLabels(t, svc, p.ID, ""))
}

func TestDuplicateList(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p := createProject(t, svc, "P")
	l := createList(t, svc, p.ID, "Doing")
	createList(t, svc, p.ID, "Done")
	createItem(t, svc, p.ID, l.ID, "A")
	createItem(t, svc, p.ID, l.ID, "B")

	resp, err := svc.DuplicateList(ctx, primary.DuplicateListRequest{ProjectID: p.ID, ListID: l.ID})
	require.NoError(t, err)
	assert.Equal(t, "Doing (copy)", resp.List.Title)
	assert.Equal(t, 2, resp.List.Order, "clone appended at the end")
	assert.Equal(t, 2, resp.ClonedItems)

	assert.Equal(t, []string{"A", "B"}, containerLabels(t, svc, p.ID, resp.List.ID))
	assert.Equal(t, []string{"A", "B"}, containerLabels(t, svc, p.ID, l.ID), "source untouched")
}

func TestDuplicateListTitleCollisions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p := createProject(t, svc, "P")
	l := createList(t, svc, p.ID, "Doing")
	// Case-insensitive collision with the first copy title.
	createList(t, svc, p.ID, "doing (COPY)")

	resp, err := svc.DuplicateList(ctx, primary.DuplicateListRequest{ProjectID: p.ID, ListID: l.ID})
	require.NoError(t, err)
	assert.Equal(t, "Doing (copy 2)", resp.List.Title)

	resp, err = svc.DuplicateList(ctx, primary.DuplicateListRequest{ProjectID: p.ID, ListID: l.ID})
	require.NoError(t, err)
	assert.Equal(t, "Doing (copy 3)", resp.List.Title)
}

func TestDuplicateListNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	p := createProject(t, svc, "P")

	_, err := svc.DuplicateList(context.Background(), primary.DuplicateListRequest{ProjectID: p.ID, ListID: "ghost"})
	assert.True(t, board.IsNotFound(err))
}

func TestReorderLists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p := createProject(t, svc, "P")
	a := createList(t, svc, p.ID, "A")
	b := createList(t, svc, p.ID, "B")
	c := createList(t, svc, p.ID, "C")

	lists, err := svc.ReorderLists(ctx, primary.ReorderListsRequest{
		ProjectID:  p.ID,
		IDsInOrder: []string{c.ID, a.ID, b.ID},
	})
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.Equal(t, []string{"C", "A", "B"}, listTitles(lists))
	for i, l := range lists {
		assert.Equal(t, i, l.Order)
	}
}

func TestReorderListsIgnoresForeignIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p := createProject(t, svc, "P")
	a := createList(t, svc, p.ID, "A")
	b := createList(t, svc, p.ID, "B")

	lists, err := svc.ReorderLists(ctx, primary.ReorderListsRequest{
		ProjectID:  p.ID,
		IDsInOrder: []string{"not-ours", b.ID, "also-not-ours", a.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, listTitles(lists))
}

func TestReorderListsOmittedKeepRelativeOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p := createProject(t, svc, "P")
	createList(t, svc, p.ID, "A")
	createList(t, svc, p.ID, "B")
	c := createList(t, svc, p.ID, "C")

	// Only C is named: it moves to the front, A and B follow in
	// their previous relative order.
	lists, err := svc.ReorderLists(ctx, primary.ReorderListsRequest{
		ProjectID:  p.ID,
		IDsInOrder: []string{c.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, listTitles(lists))
}

func listTitles(lists []*primary.List) []string {
	titles := make([]string, len(lists))
	for i, l := range lists {
		titles[i] = l.Title
	}
	return titles
}
