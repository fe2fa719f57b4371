// Package shortcode derives the 5-digit public codes used in shareable
// quote permalinks.
//
// Codes are computed from the quote's internal id with a small-state
// rolling hash. They are deterministic but not collision-free: the id
// space is unbounded while codes have only 100,000 buckets. There is no
// inverse function; resolution scans a candidate set and returns the
// first id whose code matches (see Resolve).
package shortcode

import (
	"fmt"
	"unicode/utf16"
)

// Length of every public code.
const Length = 5

const buckets = 100000

// Encode maps an internal record id to its 5-digit public code.
//
// The hash runs over the UTF-16 code units of the id with the classic
// h = h*31 + unit recurrence on a wrapping signed 32-bit accumulator,
// then takes abs(h) mod 100000, zero-padded to 5 digits. The same id
// always yields the same code.
func Encode(id string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(id)) {
		h = h*31 + int32(u)
	}
	// abs via int64: -int32 overflows at math.MinInt32
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("%0*d", Length, n%buckets)
}

// Valid reports whether code has the shape of a public code:
// exactly 5 decimal digits.
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// Resolve scans candidate ids in order and returns the first whose code
// equals code. When two candidates collide on the same code the earlier
// one wins; callers pass candidates in the store's default order, which
// makes the collision policy "first match in scan order".
func Resolve(code string, ids []string) (string, bool) {
	if !Valid(code) {
		return "", false
	}
	for _, id := range ids {
		if Encode(id) == code {
			return id, true
		}
	}
	return "", false
}
