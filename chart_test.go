package earley

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// TestColumnZeroIsPredictClosureOfSeed checks part of spec §8's "Column
// 0 contains exactly the predict-closure of the seed set for S; no item
// has range.start < 0": every column-0 item has range.start >= 0 and
// range.end == 0, and the P seed item is present. It does not compare
// column 0 against an independently computed closure.
func TestColumnZeroIsPredictClosureOfSeed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earley.chart")
	defer teardown()

	rec, err := NewRecognizer(factoredArithmeticGrammar(), "P")
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}
	col := rec.columns[0]
	sawSeed := false
	col.each(func(it Item[rune], prov Provenance[rune]) {
		if it.Range.Start < 0 {
			t.Errorf("item %s has range.start < 0", it)
		}
		if it.Range.End != 0 {
			t.Errorf("column 0 item %s has range.end != 0", it)
		}
		if it.Name == "P" && len(it.Before) == 0 {
			sawSeed = true
		}
	})
	if !sawSeed {
		t.Errorf("expected the P seed item to survive predict-closure in column 0")
	}
}

// TestEveryItemRangeEndMatchesColumn checks spec §8's "For every item I
// in column c: I.range.end == c."
func TestEveryItemRangeEndMatchesColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earley.chart")
	defer teardown()

	rec, err := NewRecognizer(factoredArithmeticGrammar(), "P")
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}
	for _, tok := range runes("2+3*4") {
		if err := rec.Advance(tok); err != nil {
			t.Fatalf("Advance(%q): %v", tok, err)
		}
	}
	for c, col := range rec.columns {
		col.each(func(it Item[rune], _ Provenance[rune]) {
			if it.Range.End != c {
				t.Errorf("item %s lives in column %d but has range.end=%d", it, c, it.Range.End)
			}
		})
	}
}

// TestEmptyBeforeAndAfterOnlyForEpsilonProductions checks spec §8's
// "An item with empty after and empty before is only possible for
// productions with empty expansion" over the items of column 0.
func TestEmptyBeforeAndAfterOnlyForEpsilonProductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earley.chart")
	defer teardown()

	rec, err := NewRecognizer(reverseSymmetricGrammar(), "S")
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}
	rec.columns[0].each(func(it Item[rune], _ Provenance[rune]) {
		if len(it.Before) == 0 && len(it.After) == 0 {
			exps, _ := reverseSymmetricGrammar().Expansions(it.Name)
			foundEmpty := false
			for _, e := range exps {
				if len(e) == 0 {
					foundEmpty = true
				}
			}
			if !foundEmpty {
				t.Errorf("item %s has empty before and after but %s has no empty expansion", it, it.Name)
			}
		}
	})
}
