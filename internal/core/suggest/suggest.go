// Package suggest validates suggestion payloads produced by an
// external generator. The generator is untrusted and loosely typed,
// so parsing never assumes field presence; the outcome is a tagged
// result the store can apply or reject wholesale.
package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// List is a proposed new column.
type List struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Item is a proposed new card. ListRef optionally names the target
// list by a possibly-abbreviated id; empty means loose.
type Item struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	ListRef     string `json:"listRef"`
}

// Move proposes relocating an existing item. Refs are resolved
// fuzzily; a nil Index means "append at the end".
type Move struct {
	ItemRef string `json:"itemRef"`
	ListRef string `json:"listRef"`
	Index   *int   `json:"index"`
}

// Payload is a validated suggestion batch.
type Payload struct {
	Lists []List `json:"lists"`
	Items []Item `json:"items"`
	Moves []Move `json:"moves"`
}

// Result is the tagged outcome of parsing: OK with records, or
// Invalid with a reason.
type Result struct {
	OK      bool
	Reason  string
	Payload Payload
}

func invalid(format string, args ...any) Result {
	return Result{OK: false, Reason: fmt.Sprintf(format, args...)}
}

// Parse decodes and validates raw generator output. Structural
// problems (not a JSON object, empty batch, proposals missing their
// required text) make the whole batch invalid; unresolvable record
// references are not checked here, the store skips those per move.
func Parse(data []byte) Result {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return invalid("payload is not a suggestion object: %v", err)
	}
	if len(p.Lists) == 0 && len(p.Items) == 0 && len(p.Moves) == 0 {
		return invalid("payload proposes nothing")
	}
	for i, l := range p.Lists {
		if strings.TrimSpace(l.Title) == "" {
			return invalid("lists[%d] has no title", i)
		}
	}
	for i, it := range p.Items {
		if strings.TrimSpace(it.Label) == "" {
			return invalid("items[%d] has no label", i)
		}
	}
	for i, m := range p.Moves {
		if strings.TrimSpace(m.ItemRef) == "" {
			return invalid("moves[%d] has no itemRef", i)
		}
	}
	return Result{OK: true, Payload: p}
}
