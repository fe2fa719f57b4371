package shortcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeIsDeterministic(t *testing.T) {
	ids := []string{
		"abc-123",
		"0f8fad5b-d9cb-469f-a165-70867728950e",
		"7c9e6679-7425-40de-944b-e07fc1f90ae7",
		"",
		"a",
	}
	for _, id := range ids {
		first := Encode(id)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Encode(id), "id %q must always encode to the same code", id)
		}
	}
}

// Fixed vectors pin the wire format: shared permalinks must keep resolving
// across releases, so the encoding can never drift.
func TestEncodeFixedVectors(t *testing.T) {
	vectors := map[string]string{
		"abc-123":     "81497",
		"q-0001":      "37155",
		"hello-world": "82281",
		"0f8fad5b-d9cb-469f-a165-70867728950e": "32882",
		"a": "00097",
		"":  "00000",
	}
	for id, want := range vectors {
		assert.Equal(t, want, Encode(id), "code for %q", id)
	}
}

func TestEncodeAlwaysFiveDigits(t *testing.T) {
	// long ids wrap the 32-bit accumulator negative; abs must still land
	// in [00000, 99999]
	ids := []string{
		"abc-123",
		strings.Repeat("z", 200),
		"quote-with-unicode-ação-愛",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
	}
	for _, id := range ids {
		code := Encode(id)
		require.Len(t, code, Length)
		assert.True(t, Valid(code), "code %q for id %q", code, id)
		assert.True(t, code >= "00000" && code <= "99999")
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("00000"))
	assert.True(t, Valid("99999"))
	assert.False(t, Valid("1234"))
	assert.False(t, Valid("123456"))
	assert.False(t, Valid("12a45"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("12 45"))
}

func TestResolveFindsOriginatingID(t *testing.T) {
	ids := []string{"abc-123", "q-0001", "hello-world"}
	for _, id := range ids {
		got, ok := Resolve(Encode(id), ids)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestResolveMiss(t *testing.T) {
	_, ok := Resolve("00001", []string{"abc-123"})
	assert.False(t, ok)

	_, ok = Resolve("not-a-code", []string{"abc-123"})
	assert.False(t, ok)

	_, ok = Resolve("81497", nil)
	assert.False(t, ok)
}

func TestResolveFirstMatchWinsOnCollision(t *testing.T) {
	// Both entries carry the same id, so they necessarily collide on the
	// same code. Scan order decides the winner.
	ids := []string{"abc-123", "abc-123"}
	got, ok := Resolve("81497", ids)
	require.True(t, ok)
	assert.Equal(t, "abc-123", got)
}
