package selection

import (
	"testing"

	"github.com/dshills/editcore/changeset"
)

func TestRangeBasics(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		r := NewRange(2, 7)
		if r.Start() != 2 || r.End() != 7 {
			t.Errorf("span = [%d,%d), want [2,7)", r.Start(), r.End())
		}
		if !r.IsForward() || r.IsBackward() {
			t.Error("expected forward range")
		}
		if r.Len() != 5 {
			t.Errorf("Len() = %d, want 5", r.Len())
		}
	})

	t.Run("backward", func(t *testing.T) {
		r := NewRange(7, 2)
		if r.Start() != 2 || r.End() != 7 {
			t.Errorf("span = [%d,%d), want [2,7)", r.Start(), r.End())
		}
		if !r.IsBackward() {
			t.Error("expected backward range")
		}
	})

	t.Run("point", func(t *testing.T) {
		r := Point(4)
		if !r.IsPoint() {
			t.Error("expected point range")
		}
		if r.Len() != 0 {
			t.Errorf("Len() = %d, want 0", r.Len())
		}
		if !r.IsForward() {
			t.Error("point range should count as forward")
		}
	})

	t.Run("flip and direction", func(t *testing.T) {
		r := NewRange(2, 7)
		f := r.Flip()
		if f.Anchor != 7 || f.Head != 2 {
			t.Errorf("Flip() = %v", f)
		}
		if got := f.WithDirection(true); !got.Equal(r) {
			t.Errorf("WithDirection(true) = %v, want %v", got, r)
		}
		if got := r.WithDirection(true); !got.Equal(r) {
			t.Errorf("WithDirection on already-forward changed range to %v", got)
		}
	})

	t.Run("extend keeps anchor", func(t *testing.T) {
		r := NewRange(3, 5).Extend(1)
		if r.Anchor != 3 || r.Head != 1 {
			t.Errorf("Extend(1) = %v, want Range(3..1)", r)
		}
		if !r.IsBackward() {
			t.Error("extending past the anchor should produce a backward range")
		}
	})
}

func TestRangeContains(t *testing.T) {
	r := NewRange(5, 2) // span [2,5)
	cases := []struct {
		pos  int
		want bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.pos); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestRangeOverlapsTouches(t *testing.T) {
	a := NewRange(0, 3)
	b := NewRange(3, 6)
	c := NewRange(2, 6)
	d := NewRange(4, 8)

	if a.Overlaps(b) {
		t.Error("touching spans should not overlap")
	}
	if !a.Touches(b) {
		t.Error("[0,3) and [3,6) should touch")
	}
	if !a.Overlaps(c) {
		t.Error("[0,3) and [2,6) should overlap")
	}
	if a.Overlaps(d) || a.Touches(d) {
		t.Error("[0,3) and [4,8) are disjoint")
	}
	// Direction never affects span predicates.
	if !a.Flip().Overlaps(c.Flip()) {
		t.Error("overlap must be direction-independent")
	}
}

func TestRangeMapPreservesDirection(t *testing.T) {
	// "hello world" -> delete [4,7), leaving "hellorld".
	cs, err := changeset.FromChanges(11, changeset.Change{From: 4, To: 7})
	if err != nil {
		t.Fatalf("FromChanges: %v", err)
	}

	t.Run("backward survives collapse", func(t *testing.T) {
		// Span [5,6) sits inside the deleted region; both endpoints
		// collapse to 4, but the range stays backward.
		r := NewRange(6, 5)
		got, err := r.Map(cs, changeset.AssocAfter)
		if err != nil {
			t.Fatalf("Map: %v", err)
		}
		if !got.IsPoint() || got.Head != 4 {
			t.Errorf("mapped = %v, want Cursor(4)", got)
		}
	})

	t.Run("backward stays backward", func(t *testing.T) {
		r := NewRange(10, 2)
		got, err := r.Map(cs, changeset.AssocBefore)
		if err != nil {
			t.Fatalf("Map: %v", err)
		}
		if !got.IsBackward() {
			t.Errorf("mapped = %v, want a backward range", got)
		}
		if got.Start() != 2 || got.End() != 7 {
			t.Errorf("mapped span = [%d,%d), want [2,7)", got.Start(), got.End())
		}
	})

	t.Run("forward stays forward", func(t *testing.T) {
		r := NewRange(2, 10)
		got, err := r.Map(cs, changeset.AssocBefore)
		if err != nil {
			t.Fatalf("Map: %v", err)
		}
		if !got.IsForward() {
			t.Errorf("mapped = %v, want a forward range", got)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if _, err := NewRange(0, 99).Map(cs, changeset.AssocAfter); err == nil {
			t.Error("expected error mapping a head past the document end")
		}
	})
}
