package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/corkboard/internal/adapters/filestore"
	"github.com/example/corkboard/internal/ports/primary"
)

// seqMinter mints readable sequential ids and a strictly advancing
// clock, so ordering tie-breaks are deterministic in tests.
type seqMinter struct {
	mu sync.Mutex
	n  int
	t  time.Time
}

func newSeqMinter() *seqMinter {
	return &seqMinter{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *seqMinter) NewID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return fmt.Sprintf("id-%04d", m.n)
}

func (m *seqMinter) Now() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = m.t.Add(time.Second)
	return m.t.Format(time.RFC3339)
}

// newTestService builds an isolated store over a real filestore in a
// temp directory.
func newTestService(t *testing.T) (*BoardServiceImpl, string) {
	t.Helper()
	dir := t.TempDir()
	ids := newSeqMinter()
	svc := NewBoardService(filestore.New(dir, ids), ids)
	t.Cleanup(svc.Close)
	return svc, dir
}

func documentPath(dir, projectID string) string {
	return filepath.Join(dir, "projects", projectID+".json")
}

// createProject is a fixture shortcut.
func createProject(t *testing.T, svc *BoardServiceImpl, title string) *primary.Project {
	t.Helper()
	p, err := svc.CreateProject(context.Background(), primary.CreateProjectRequest{Title: title})
	require.NoError(t, err)
	return p
}

// createList is a fixture shortcut.
func createList(t *testing.T, svc *BoardServiceImpl, projectID, title string) *primary.List {
	t.Helper()
	l, err := svc.CreateList(context.Background(), primary.CreateListRequest{ProjectID: projectID, Title: title})
	require.NoError(t, err)
	return l
}

// createItem is a fixture shortcut; empty listID means loose.
func createItem(t *testing.T, svc *BoardServiceImpl, projectID, listID, label string) *primary.Item {
	t.Helper()
	req := primary.CreateItemRequest{ProjectID: projectID, Label: label}
	if listID != "" {
		req.ListID = &listID
	}
	it, err := svc.CreateItem(context.Background(), req)
	require.NoError(t, err)
	return it
}

// containerLabels returns the labels of a board's items in one
// container, sorted by rank.
func containerLabels(t *testing.T, svc *BoardServiceImpl, projectID, listID string) []string {
	t.Helper()
	pb, err := svc.GetProjectBoard(context.Background(), projectID)
	require.NoError(t, err)

	byOrder := map[int]string{}
	count := 0
	for _, it := range pb.Items {
		inContainer := (listID == "" && it.ListID == nil) ||
			(listID != "" && it.ListID != nil && *it.ListID == listID)
		if inContainer {
			byOrder[it.Order] = it.Label
			count++
		}
	}
	labels := make([]string, count)
	for order, label := range byOrder {
		require.Less(t, order, count, "orders must be dense 0..n-1")
		labels[order] = label
	}
	return labels
}

func strptr(s string) *string { return &s }
