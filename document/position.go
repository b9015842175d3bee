package document

import "unicode/utf8"

// Pos is a position or length measured in Unicode code points.
// This is the fundamental position type for the editing algebra.
type Pos = int

// Content is a read-only, code-point-addressed view of document text.
// It is the contract the changeset algebra consumes: implementations must
// be stable for the duration of one apply call. Text satisfies Content;
// so does any external storage exposing the same operations.
type Content interface {
	// Len returns the total length in code points.
	Len() Pos

	// Slice returns the text in [start, end). Bounds outside the valid
	// range are clamped.
	Slice(start, end Pos) string
}

// CharLen returns the length of s in code points.
func CharLen(s string) Pos {
	return utf8.RuneCountInString(s)
}

// CharIndex returns the byte index of the nth code point in s.
// If n is past the end of s, the length of s is returned.
func CharIndex(s string, n Pos) int {
	if n <= 0 {
		return 0
	}
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// SliceChars returns the substring of s covering code points [start, end).
func SliceChars(s string, start, end Pos) string {
	if end <= start {
		return ""
	}
	from := CharIndex(s, start)
	to := from + CharIndex(s[from:], end-start)
	return s[from:to]
}
