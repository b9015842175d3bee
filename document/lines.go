package document

import (
	"sort"
	"strings"
)

// Line addressing follows the convention that a document always has at
// least one line, and a line includes its terminating newline if present.

// LineCount returns the number of lines (newlines + 1).
func (t Text) LineCount() int {
	if len(t.cumLines) == 0 {
		return 1
	}
	return t.cumLines[len(t.cumLines)-1] + 1
}

// CharToLine returns the 0-indexed line containing pos.
// Out-of-range positions are clamped.
func (t Text) CharToLine(pos Pos) int {
	total := t.Len()
	if pos < 0 {
		pos = 0
	}
	if pos > total {
		pos = total
	}
	if len(t.chunks) == 0 {
		return 0
	}

	ci, chunkStart := t.chunkAt(pos)
	lines := 0
	if ci > 0 {
		lines = t.cumLines[ci-1]
	}
	prefix := SliceChars(t.chunks[ci].text, 0, pos-chunkStart)
	return lines + strings.Count(prefix, "\n")
}

// LineToChar returns the position of the first character of the given
// 0-indexed line. Lines past the end resolve to Len().
func (t Text) LineToChar(line int) Pos {
	if line <= 0 {
		return 0
	}
	if line >= t.LineCount() {
		return t.Len()
	}

	// Find the chunk containing the line-th newline.
	ci := sort.Search(len(t.cumLines), func(i int) bool {
		return t.cumLines[i] >= line
	})
	chunkStart := Pos(0)
	before := 0
	if ci > 0 {
		chunkStart = t.cumChars[ci-1]
		before = t.cumLines[ci-1]
	}

	// Scan for the (line - before)th newline within the chunk.
	need := line - before
	offset := Pos(0)
	for _, r := range t.chunks[ci].text {
		offset++
		if r == '\n' {
			need--
			if need == 0 {
				return chunkStart + offset
			}
		}
	}
	return t.Len()
}

// Line returns the text of the given 0-indexed line, including its
// terminating newline if present.
func (t Text) Line(line int) string {
	start := t.LineToChar(line)
	end := t.LineToChar(line + 1)
	return t.Slice(start, end)
}

// LineLen returns the length of the given line in code points, including
// its terminating newline if present.
func (t Text) LineLen(line int) Pos {
	return t.LineToChar(line+1) - t.LineToChar(line)
}
