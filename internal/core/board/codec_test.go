package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := Coerce(&Board{
		Project: Project{Title: "Roadmap"},
		Lists:   []List{{Title: "Doing"}},
		Items:   []Item{{Label: "A"}},
	}, newFakeMinter())

	data, err := EncodeDocument(b)
	require.NoError(t, err)

	got, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestDecodeDocumentRejectsGarbage(t *testing.T) {
	_, err := DecodeDocument([]byte("not json"))
	assert.Error(t, err)
}

func TestDecodeImportSingleDocument(t *testing.T) {
	boards, err := DecodeImport([]byte(`{"project": {"id": "p1", "title": "Imported"}}`))
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "p1", boards[0].Project.ID)
	assert.Equal(t, "Imported", boards[0].Project.Title)
}

func TestDecodeImportLegacyShapeSplitsPerProject(t *testing.T) {
	legacy := `{
		"projects": [{"id": "p1", "title": "One"}, {"id": "p2", "title": "Two"}],
		"lists": [
			{"id": "l1", "projectId": "p1", "title": "Doing"},
			{"id": "l2", "projectId": "p2", "title": "Later"},
			{"id": "l3", "projectId": "orphan", "title": "Dropped"}
		],
		"items": [
			{"id": "i1", "projectId": "p1", "listId": "l1", "label": "A"},
			{"id": "i2", "projectId": "p2", "label": "B"}
		]
	}`
	boards, err := DecodeImport([]byte(legacy))
	require.NoError(t, err)
	require.Len(t, boards, 2)

	assert.Equal(t, "p1", boards[0].Project.ID)
	require.Len(t, boards[0].Lists, 1)
	assert.Equal(t, "l1", boards[0].Lists[0].ID)
	require.Len(t, boards[0].Items, 1)

	assert.Equal(t, "p2", boards[1].Project.ID)
	require.Len(t, boards[1].Lists, 1)
	assert.Equal(t, "l2", boards[1].Lists[0].ID)
	require.Len(t, boards[1].Items, 1)
}

func TestDecodeImportUnsupportedShapes(t *testing.T) {
	for _, payload := range []string{
		`not json at all`,
		`[1, 2, 3]`,
		`"just a string"`,
		`{"boards": []}`,
		`{}`,
	} {
		_, err := DecodeImport([]byte(payload))
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "payload %q", payload)
	}
}
