package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrefix(t *testing.T) {
	ids := []string{"abc-123", "def-456"}
	id, ok := Resolve("abc", ids)
	assert.True(t, ok)
	assert.Equal(t, "abc-123", id)
}

func TestResolvePrefixBeatsSubstring(t *testing.T) {
	// "123" is a substring of the first id but a prefix of the second.
	ids := []string{"abc-123", "123-def"}
	id, ok := Resolve("123", ids)
	assert.True(t, ok)
	assert.Equal(t, "123-def", id)
}

func TestResolveSubstringFallback(t *testing.T) {
	ids := []string{"abc-123", "def-456"}
	id, ok := Resolve("456", ids)
	assert.True(t, ok)
	assert.Equal(t, "def-456", id)
}

func TestResolveFirstEncounteredWins(t *testing.T) {
	ids := []string{"aa-1", "aa-2"}
	id, ok := Resolve("aa", ids)
	assert.True(t, ok)
	assert.Equal(t, "aa-1", id)
}

func TestResolveNoMatch(t *testing.T) {
	_, ok := Resolve("zzz", []string{"abc", "def"})
	assert.False(t, ok)
}

func TestResolveEmptyCandidate(t *testing.T) {
	_, ok := Resolve("", []string{"abc"})
	assert.False(t, ok)
}

func TestResolveExactMatch(t *testing.T) {
	id, ok := Resolve("abc", []string{"abc"})
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}
