package movement

import (
	"testing"

	"github.com/dshills/editcore/document"
	"github.com/dshills/editcore/selection"
)

func TestMoveHorizontally(t *testing.T) {
	text := document.FromString("hello world")

	t.Run("forward", func(t *testing.T) {
		got := MoveHorizontally(text, selection.Point(0), Forward, 1, false)
		if got.Head != 1 {
			t.Errorf("Head = %d, want 1", got.Head)
		}
	})

	t.Run("backward", func(t *testing.T) {
		got := MoveHorizontally(text, selection.Point(5), Backward, 2, false)
		if got.Head != 3 {
			t.Errorf("Head = %d, want 3", got.Head)
		}
	})

	t.Run("forward extend", func(t *testing.T) {
		got := MoveHorizontally(text, selection.Point(0), Forward, 5, true)
		if got.Anchor != 0 || got.Head != 5 {
			t.Errorf("range = %v, want Range(0..5)", got)
		}
	})

	t.Run("clamps at end", func(t *testing.T) {
		got := MoveHorizontally(text, selection.Point(10), Forward, 5, false)
		if got.Head != text.Len() {
			t.Errorf("Head = %d, want %d", got.Head, text.Len())
		}
	})

	t.Run("clamps at start", func(t *testing.T) {
		got := MoveHorizontally(text, selection.Point(1), Backward, 5, false)
		if got.Head != 0 {
			t.Errorf("Head = %d, want 0", got.Head)
		}
	})
}

func TestMoveHorizontallyGraphemes(t *testing.T) {
	// "e" + combining acute is one cluster of two code points; the flag
	// emoji is one cluster of two code points as well.
	text := document.FromString("e\u0301x\U0001F1FA\U0001F1F8y")

	t.Run("combining mark", func(t *testing.T) {
		got := MoveHorizontally(text, selection.Point(0), Forward, 1, false)
		if got.Head != 2 {
			t.Errorf("Head = %d, want 2 (cluster boundary)", got.Head)
		}
	})

	t.Run("flag emoji", func(t *testing.T) {
		got := MoveHorizontally(text, selection.Point(3), Forward, 1, false)
		if got.Head != 5 {
			t.Errorf("Head = %d, want 5", got.Head)
		}
	})

	t.Run("backward over cluster", func(t *testing.T) {
		got := MoveHorizontally(text, selection.Point(5), Backward, 1, false)
		if got.Head != 3 {
			t.Errorf("Head = %d, want 3", got.Head)
		}
	})

	t.Run("two steps span both clusters", func(t *testing.T) {
		got := MoveHorizontally(text, selection.Point(2), Forward, 2, false)
		if got.Head != 5 {
			t.Errorf("Head = %d, want 5", got.Head)
		}
	})
}

func TestMoveVertically(t *testing.T) {
	text := document.FromString("hello\nworld\n")

	t.Run("down", func(t *testing.T) {
		got := MoveVertically(text, selection.Point(2), Forward, 1, false)
		if got.Head != 8 {
			t.Errorf("Head = %d, want 8", got.Head)
		}
	})

	t.Run("up", func(t *testing.T) {
		got := MoveVertically(text, selection.Point(8), Backward, 1, false)
		if got.Head != 2 {
			t.Errorf("Head = %d, want 2", got.Head)
		}
	})

	t.Run("column clamps on short line", func(t *testing.T) {
		long := document.FromString("a long line here\nhi\nanother long line")
		got := MoveVertically(long, selection.Point(10), Forward, 1, false)
		// Line "hi\n" starts at 17; column 10 clamps to the last
		// character before the newline.
		if got.Head != 19 {
			t.Errorf("Head = %d, want 19", got.Head)
		}
	})

	t.Run("clamps at last line", func(t *testing.T) {
		got := MoveVertically(text, selection.Point(2), Forward, 10, false)
		// The trailing newline makes the last line empty; its start is
		// the document end.
		if got.Head != 12 {
			t.Errorf("Head = %d, want 12", got.Head)
		}
	})

	t.Run("clamps at first line", func(t *testing.T) {
		got := MoveVertically(text, selection.Point(8), Backward, 10, false)
		if got.Head != 2 {
			t.Errorf("Head = %d, want 2", got.Head)
		}
	})

	t.Run("extend keeps anchor", func(t *testing.T) {
		got := MoveVertically(text, selection.NewRange(1, 2), Forward, 1, true)
		if got.Anchor != 1 || got.Head != 8 {
			t.Errorf("range = %v, want Range(1..8)", got)
		}
	})
}

func TestMoveToLineStart(t *testing.T) {
	text := document.FromString("hello\nworld\n")
	got := MoveToLineStart(text, selection.Point(8), false)
	if got.Head != 6 {
		t.Errorf("Head = %d, want 6", got.Head)
	}
}

func TestMoveToLineEnd(t *testing.T) {
	text := document.FromString("hello\nworld\n")

	t.Run("interior line stops before newline", func(t *testing.T) {
		got := MoveToLineEnd(text, selection.Point(6), false)
		if got.Head != 11 {
			t.Errorf("Head = %d, want 11", got.Head)
		}
	})

	t.Run("last line without newline", func(t *testing.T) {
		noNL := document.FromString("hello\nworld")
		got := MoveToLineEnd(noNL, selection.Point(6), false)
		if got.Head != 11 {
			t.Errorf("Head = %d, want 11", got.Head)
		}
	})
}

func TestMoveToFirstNonWhitespace(t *testing.T) {
	t.Run("indented line", func(t *testing.T) {
		text := document.FromString("  hello\n")
		got := MoveToFirstNonWhitespace(text, selection.Point(0), false)
		if got.Head != 2 {
			t.Errorf("Head = %d, want 2", got.Head)
		}
	})

	t.Run("blank line falls back to start", func(t *testing.T) {
		text := document.FromString("hello\n   \nworld")
		got := MoveToFirstNonWhitespace(text, selection.Point(7), false)
		if got.Head != 6 {
			t.Errorf("Head = %d, want 6", got.Head)
		}
	})
}

func TestGraphemeBoundaries(t *testing.T) {
	text := document.FromString("ab\r\ncd")

	t.Run("crlf is one cluster", func(t *testing.T) {
		if got := NextGraphemeBoundary(text, 2); got != 4 {
			t.Errorf("NextGraphemeBoundary(2) = %d, want 4", got)
		}
		if got := PrevGraphemeBoundary(text, 4); got != 2 {
			t.Errorf("PrevGraphemeBoundary(4) = %d, want 2", got)
		}
	})

	t.Run("ends clamp", func(t *testing.T) {
		if got := NextGraphemeBoundary(text, 99); got != text.Len() {
			t.Errorf("NextGraphemeBoundary past end = %d, want %d", got, text.Len())
		}
		if got := PrevGraphemeBoundary(text, -1); got != 0 {
			t.Errorf("PrevGraphemeBoundary(-1) = %d, want 0", got)
		}
	})
}
