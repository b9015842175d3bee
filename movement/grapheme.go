package movement

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/editcore/document"
)

// graphemeWindow is the number of code points sliced around a position
// when locating a cluster boundary. Real clusters are far shorter; the
// window only bounds how much text a single step materializes.
const graphemeWindow = 64

// NextGraphemeBoundary returns the first grapheme cluster boundary after
// pos, or the document length if pos is at or past the end.
func NextGraphemeBoundary(t document.Text, pos document.Pos) document.Pos {
	total := t.Len()
	if pos < 0 {
		pos = 0
	}
	if pos >= total {
		return total
	}

	end := pos + graphemeWindow
	if end > total {
		end = total
	}
	for {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(t.Slice(pos, end), -1)
		n := document.CharLen(cluster)
		// A cluster filling the whole window may have been cut short;
		// widen and retry unless the window already reaches the end.
		if pos+n < end || end == total {
			return pos + n
		}
		end += graphemeWindow
		if end > total {
			end = total
		}
	}
}

// PrevGraphemeBoundary returns the last grapheme cluster boundary before
// pos, or 0 if pos is at or before the start.
func PrevGraphemeBoundary(t document.Text, pos document.Pos) document.Pos {
	total := t.Len()
	if pos > total {
		pos = total
	}
	if pos <= 0 {
		return 0
	}

	start := pos - graphemeWindow
	if start < 0 {
		start = 0
	}

	// Walk clusters forward through the window; the last boundary seen
	// before pos is the answer.
	boundary := start
	g := uniseg.NewGraphemes(t.Slice(start, pos))
	at := start
	for g.Next() {
		boundary = at
		at += document.CharLen(g.Str())
	}
	return boundary
}
