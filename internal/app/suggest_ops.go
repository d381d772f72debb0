package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/corkboard/internal/core/board"
	"github.com/example/corkboard/internal/core/match"
	"github.com/example/corkboard/internal/core/suggest"
	"github.com/example/corkboard/internal/ports/primary"
)

// ApplySuggestions validates a suggestion payload and applies it to
// one project in a single mutation: proposed lists and items are
// created, proposed moves executed. List and item references are
// resolved fuzzily (generators abbreviate ids); an instruction whose
// reference cannot be resolved is skipped and counted, never fatal.
func (s *BoardServiceImpl) ApplySuggestions(ctx context.Context, req primary.ApplySuggestionsRequest) (*primary.ApplySuggestionsResponse, error) {
	parsed := suggest.Parse(req.Payload)
	if !parsed.OK {
		return nil, fmt.Errorf("invalid suggestion payload: %s", parsed.Reason)
	}

	resp := &primary.ApplySuggestionsResponse{}
	_, err := s.mutate(ctx, req.ProjectID, func(b *board.Board) error {
		for _, sl := range parsed.Payload.Lists {
			s.appendList(b, strings.TrimSpace(sl.Title), sl.Description)
			resp.CreatedLists++
		}

		for _, si := range parsed.Payload.Items {
			listID, ok := resolveListRef(b, si.ListRef)
			if !ok {
				resp.Skipped++
				continue
			}
			s.appendItem(b, listID, strings.TrimSpace(si.Label), si.Description)
			resp.CreatedItems++
		}

		for _, mv := range parsed.Payload.Moves {
			itemID, ok := resolveItemRef(b, mv.ItemRef)
			if !ok {
				resp.Skipped++
				continue
			}
			listID, ok := resolveListRef(b, mv.ListRef)
			if !ok {
				resp.Skipped++
				continue
			}
			index := len(b.Items) // past any container end; clamped
			if mv.Index != nil {
				index = *mv.Index
			}
			if err := s.applyMove(b, itemID, listID, index); err != nil {
				return err
			}
			resp.AppliedMoves++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// resolveListRef maps a suggestion's list reference to a list id. An
// empty reference targets the loose container (nil). Ids are matched
// fuzzily first, then titles case-insensitively, since generators
// tend to name columns rather than quote ids.
func resolveListRef(b *board.Board, ref string) (*string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, true
	}
	ids := make([]string, len(b.Lists))
	for i := range b.Lists {
		ids[i] = b.Lists[i].ID
	}
	if id, ok := match.Resolve(ref, ids); ok {
		return &id, true
	}
	for i := range b.Lists {
		if strings.EqualFold(b.Lists[i].Title, ref) {
			id := b.Lists[i].ID
			return &id, true
		}
	}
	return nil, false
}

// resolveItemRef maps a suggestion's item reference to an item id,
// fuzzily by id and then by exact label fold.
func resolveItemRef(b *board.Board, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	ids := make([]string, len(b.Items))
	for i := range b.Items {
		ids[i] = b.Items[i].ID
	}
	if id, ok := match.Resolve(ref, ids); ok {
		return id, true
	}
	for i := range b.Items {
		if strings.EqualFold(b.Items[i].Label, ref) {
			return b.Items[i].ID, true
		}
	}
	return "", false
}
