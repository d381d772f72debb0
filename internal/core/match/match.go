// Package match resolves possibly-truncated record ids against a set
// of known ids. Suggestion payloads reference records by abbreviated
// ids; the resolver favors availability over strictness because the
// caller treats unresolved references as ignorable, not fatal.
package match

import "strings"

// Resolve maps candidate to a known id. A prefix match wins over a
// substring match; within a pass the first id encountered wins. The
// second return is false when nothing matches (callers skip the
// instruction rather than fail).
func Resolve(candidate string, ids []string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	for _, id := range ids {
		if strings.HasPrefix(id, candidate) {
			return id, true
		}
	}
	for _, id := range ids {
		if strings.Contains(id, candidate) {
			return id, true
		}
	}
	return "", false
}
