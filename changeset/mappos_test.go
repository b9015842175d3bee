package changeset

import (
	"errors"
	"testing"

	"github.com/dshills/editcore/document"
)

func TestMapPos(t *testing.T) {
	t.Run("insert boundary associativity", func(t *testing.T) {
		// "hello world" with "X" inserted at 5.
		cs, err := FromChanges(11, Change{From: 5, To: 5, Insert: "X"})
		if err != nil {
			t.Fatal(err)
		}

		after, err := cs.MapPos(5, AssocAfter)
		if err != nil {
			t.Fatal(err)
		}
		if after != 6 {
			t.Errorf("AssocAfter: expected 6, got %d", after)
		}

		before, err := cs.MapPos(5, AssocBefore)
		if err != nil {
			t.Fatal(err)
		}
		if before != 5 {
			t.Errorf("AssocBefore: expected 5, got %d", before)
		}
	})

	t.Run("positions before edit unchanged", func(t *testing.T) {
		cs, err := FromChanges(11, Change{From: 5, To: 5, Insert: "X"})
		if err != nil {
			t.Fatal(err)
		}
		for _, pos := range []document.Pos{0, 2, 4} {
			got, err := cs.MapPos(pos, AssocAfter)
			if err != nil {
				t.Fatal(err)
			}
			if got != pos {
				t.Errorf("pos %d: expected unchanged, got %d", pos, got)
			}
		}
	})

	t.Run("positions after edit shifted", func(t *testing.T) {
		cs, err := FromChanges(11, Change{From: 5, To: 5, Insert: "X"})
		if err != nil {
			t.Fatal(err)
		}
		got, err := cs.MapPos(8, AssocBefore)
		if err != nil {
			t.Fatal(err)
		}
		if got != 9 {
			t.Errorf("expected 9, got %d", got)
		}
	})

	t.Run("inside deleted region collapses", func(t *testing.T) {
		// Delete [2,5) from "hello"; positions 3 and 4 collapse to 2.
		cs, err := FromChanges(5, Change{From: 2, To: 5})
		if err != nil {
			t.Fatal(err)
		}
		for _, pos := range []document.Pos{3, 4} {
			for _, assoc := range []Assoc{AssocBefore, AssocAfter} {
				got, err := cs.MapPos(pos, assoc)
				if err != nil {
					t.Fatal(err)
				}
				if got != 2 {
					t.Errorf("pos %d assoc %v: expected 2, got %d", pos, assoc, got)
				}
			}
		}
	})

	t.Run("inside replaced region resolves by associativity", func(t *testing.T) {
		// Replace [2,5) with "AB": pre-edit position 3 sits inside the
		// replaced text.
		cs, err := FromChanges(10, Change{From: 2, To: 5, Insert: "AB"})
		if err != nil {
			t.Fatal(err)
		}

		before, err := cs.MapPos(3, AssocBefore)
		if err != nil {
			t.Fatal(err)
		}
		if before != 2 {
			t.Errorf("AssocBefore: expected 2, got %d", before)
		}

		after, err := cs.MapPos(3, AssocAfter)
		if err != nil {
			t.Fatal(err)
		}
		if after != 4 {
			t.Errorf("AssocAfter: expected 4 (past replacement), got %d", after)
		}
	})

	t.Run("replace start boundary resolves by associativity", func(t *testing.T) {
		// A position exactly at the start of a replaced region follows
		// the same rule as a pure insert boundary: AssocBefore stays
		// before the new text, AssocAfter lands past it.
		replace, err := FromChanges(10, Change{From: 2, To: 5, Insert: "AB"})
		if err != nil {
			t.Fatal(err)
		}
		insert, err := FromChanges(10, Change{From: 2, To: 2, Insert: "AB"})
		if err != nil {
			t.Fatal(err)
		}

		for _, tc := range []struct {
			assoc Assoc
			want  document.Pos
		}{
			{AssocBefore, 2},
			{AssocAfter, 4},
		} {
			got, err := replace.MapPos(2, tc.assoc)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("replace %v: expected %d, got %d", tc.assoc, tc.want, got)
			}
			ins, err := insert.MapPos(2, tc.assoc)
			if err != nil {
				t.Fatal(err)
			}
			if ins != got {
				t.Errorf("%v: replace mapped to %d but pure insert to %d at the same boundary", tc.assoc, got, ins)
			}
		}
	})

	t.Run("end of document maps to new end", func(t *testing.T) {
		cs, err := FromChanges(5, Change{From: 5, To: 5, Insert: "!"})
		if err != nil {
			t.Fatal(err)
		}
		got, err := cs.MapPos(5, AssocAfter)
		if err != nil {
			t.Fatal(err)
		}
		if got != 6 {
			t.Errorf("expected 6, got %d", got)
		}
	})

	t.Run("out of range rejected", func(t *testing.T) {
		cs := Identity(5)
		if _, err := cs.MapPos(6, AssocBefore); !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("expected ErrPositionOutOfRange, got %v", err)
		}
		if _, err := cs.MapPos(-1, AssocBefore); !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("expected ErrPositionOutOfRange, got %v", err)
		}
	})
}

// TestMapPosAgreement verifies that mapped positions line up with the
// offsets of the corresponding characters in the applied document.
func TestMapPosAgreement(t *testing.T) {
	text := "the quick brown fox"
	doc := document.FromString(text)
	cs, err := FromChanges(doc.Len(),
		Change{From: 4, To: 9, Insert: "slow"}, // "quick" -> "slow"
		Change{From: 10, To: 10, Insert: "and big "},
		Change{From: 16, To: 19}, // delete "fox"
	)
	if err != nil {
		t.Fatal(err)
	}
	applied, err := cs.Apply(doc)
	if err != nil {
		t.Fatal(err)
	}
	if applied != "the slow and big brown " {
		t.Fatalf("unexpected applied text %q", applied)
	}

	// Every position in retained text must map to the offset where that
	// character actually landed. Position 10 sits exactly at the insert
	// boundary and is checked separately: only AssocAfter keeps it glued
	// to its character there.
	appliedRunes := []rune(applied)
	textRunes := []rune(text)
	var retained []document.Pos
	retained = append(retained, 0, 1, 2, 3) // "the "
	retained = append(retained, 9)          // " " before the insert point
	retained = append(retained, 11, 12, 13, 14, 15)
	for _, pos := range retained {
		for _, assoc := range []Assoc{AssocBefore, AssocAfter} {
			mapped, err := cs.MapPos(pos, assoc)
			if err != nil {
				t.Fatal(err)
			}
			if appliedRunes[mapped] != textRunes[pos] {
				t.Errorf("pos %d (%q) assoc %v mapped to %d (%q)",
					pos, textRunes[pos], assoc, mapped, appliedRunes[mapped])
			}
		}
	}

	atInsert, err := cs.MapPos(10, AssocAfter)
	if err != nil {
		t.Fatal(err)
	}
	if appliedRunes[atInsert] != textRunes[10] {
		t.Errorf("boundary pos 10 with AssocAfter mapped to %d (%q)", atInsert, appliedRunes[atInsert])
	}
}
