package movement

import (
	"unicode"

	"github.com/dshills/editcore/document"
	"github.com/dshills/editcore/selection"
)

// Direction selects which way a motion travels.
type Direction uint8

const (
	// Forward moves toward the end of the document.
	Forward Direction = iota

	// Backward moves toward the start of the document.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// destination collapses or extends a range toward pos depending on the
// extend flag. Every motion funnels through here.
func destination(r selection.Range, pos document.Pos, extend bool) selection.Range {
	if extend {
		return r.Extend(pos)
	}
	return selection.Point(pos)
}

// MoveHorizontally moves the head by count grapheme clusters in the given
// direction, clamping at the document boundaries.
func MoveHorizontally(t document.Text, r selection.Range, dir Direction, count int, extend bool) selection.Range {
	pos := r.Head
	for i := 0; i < count; i++ {
		if dir == Forward {
			pos = NextGraphemeBoundary(t, pos)
		} else {
			pos = PrevGraphemeBoundary(t, pos)
		}
	}
	return destination(r, pos, extend)
}

// MoveVertically moves the head by count lines, keeping the current
// column where the target line is long enough and clamping to the target
// line's last character otherwise. On the last line the column may rest
// past the final character.
func MoveVertically(t document.Text, r selection.Range, dir Direction, count int, extend bool) selection.Range {
	line := t.CharToLine(r.Head)
	col := r.Head - t.LineToChar(line)

	lastLine := t.LineCount() - 1
	target := line
	if dir == Forward {
		target += count
		if target > lastLine {
			target = lastLine
		}
	} else {
		target -= count
		if target < 0 {
			target = 0
		}
	}

	// On interior lines the rightmost column sits before the newline.
	maxCol := t.LineLen(target)
	if target != lastLine && maxCol > 0 {
		maxCol--
	}
	if col > maxCol {
		col = maxCol
	}
	return destination(r, t.LineToChar(target)+col, extend)
}

// MoveToLineStart moves the head to the first character of its line.
func MoveToLineStart(t document.Text, r selection.Range, extend bool) selection.Range {
	line := t.CharToLine(r.Head)
	return destination(r, t.LineToChar(line), extend)
}

// MoveToLineEnd moves the head to the last character of its line, or past
// it on the final line.
func MoveToLineEnd(t document.Text, r selection.Range, extend bool) selection.Range {
	line := t.CharToLine(r.Head)
	start := t.LineToChar(line)
	length := t.LineLen(line)

	end := start + length
	if line != t.LineCount()-1 && length > 0 {
		end--
	}
	return destination(r, end, extend)
}

// MoveToFirstNonWhitespace moves the head to the first non-whitespace
// character of its line, or the line start when the line is blank.
func MoveToFirstNonWhitespace(t document.Text, r selection.Range, extend bool) selection.Range {
	line := t.CharToLine(r.Head)
	start := t.LineToChar(line)

	pos := start
	for _, ch := range t.Line(line) {
		if !unicode.IsSpace(ch) {
			break
		}
		pos++
	}
	if pos == start+t.LineLen(line) {
		pos = start
	}
	return destination(r, pos, extend)
}
