package board

import (
	"encoding/json"
	"fmt"
)

// EncodeDocument serializes a board to its canonical on-disk bytes.
// Field order follows the struct definitions, so encoding the same
// document always yields identical bytes.
func EncodeDocument(b *Board) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeDocument parses on-disk bytes into a board. The result is
// not yet coerced; callers run Coerce before trusting it.
func DecodeDocument(data []byte) (*Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &b, nil
}

// legacyFile is the pre-split single-file format: every project's
// records in one document, related by foreign keys.
type legacyFile struct {
	Projects []Project `json:"projects"`
	Lists    []List    `json:"lists"`
	Items    []Item    `json:"items"`
}

// SplitLegacy parses the legacy multi-project format and splits it
// into one board per project, filtering lists and items by their
// project foreign key. Records pointing at an unknown project are
// dropped.
func SplitLegacy(data []byte) ([]*Board, error) {
	var legacy legacyFile
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("failed to parse legacy file: %w", err)
	}
	boards := make([]*Board, 0, len(legacy.Projects))
	for _, p := range legacy.Projects {
		b := &Board{Project: p, Lists: []List{}, Items: []Item{}}
		for _, l := range legacy.Lists {
			if l.ProjectID == p.ID {
				b.Lists = append(b.Lists, l)
			}
		}
		for _, it := range legacy.Items {
			if it.ProjectID == p.ID {
				b.Items = append(b.Items, it)
			}
		}
		boards = append(boards, b)
	}
	return boards, nil
}

// DecodeImport dispatches arbitrary import JSON on shape: an object
// with a "project" key is one document; an object with a "projects"
// key is the legacy multi-project format. Anything else fails with
// ErrUnsupportedFormat. Returned boards are not yet coerced.
func DecodeImport(data []byte) ([]*Board, error) {
	var probe struct {
		Project  json.RawMessage `json:"project"`
		Projects json.RawMessage `json:"projects"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, ErrUnsupportedFormat
	}
	switch {
	case len(probe.Project) > 0:
		b, err := DecodeDocument(data)
		if err != nil {
			return nil, ErrUnsupportedFormat
		}
		return []*Board{b}, nil
	case len(probe.Projects) > 0:
		boards, err := SplitLegacy(data)
		if err != nil {
			return nil, ErrUnsupportedFormat
		}
		return boards, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}
