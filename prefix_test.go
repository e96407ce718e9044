package earley

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// TestPrefixParserBalancedParens mirrors spec.md §8 scenario 6: feeding
// '(', '(', ')', ')' in sequence succeeds at every step, and finish()
// succeeds once the second ')' has been consumed.
func TestPrefixParserBalancedParens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earley.chart")
	defer teardown()

	pp, err := NewPrefixParser(balancedParensGrammar(), "S")
	if err != nil {
		t.Fatalf("NewPrefixParser: %v", err)
	}

	seq := runes("(())")
	for i, tok := range seq {
		if err := pp.TryNext(tok); err != nil {
			t.Fatalf("TryNext(%q) at step %d: %v", tok, i, err)
		}
		if i == 1 || i == 2 {
			if err := pp.Finish(); !errors.Is(err, ErrIncomplete) {
				t.Errorf("after %d tokens, expected Finish to report ErrIncomplete, got %v", i+1, err)
			}
		}
	}
	if err := pp.Finish(); err != nil {
		t.Fatalf("expected Finish to succeed after %q, got %v", string(seq), err)
	}
}

// TestPrefixParserRejectsUnmatchedClose checks the monotonicity
// invariant of spec §8: a failing tryNext leaves the chart unchanged,
// and legalTokens reflects what would actually succeed.
func TestPrefixParserRejectsUnmatchedClose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earley.chart")
	defer teardown()

	pp, err := NewPrefixParser(balancedParensGrammar(), "S")
	if err != nil {
		t.Fatalf("NewPrefixParser: %v", err)
	}
	before := pp.rec.ColumnCount()

	if err := pp.TryNext(')'); !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("expected ErrUnexpectedToken for a leading ')', got %v", err)
	}
	if got := pp.rec.ColumnCount(); got != before {
		t.Fatalf("expected column count unchanged after a failed TryNext, got %d want %d", got, before)
	}

	legal := pp.LegalTokens()
	if _, ok := legal['(']; !ok {
		t.Errorf("expected '(' to be legal at the start")
	}
	if _, ok := legal[')']; ok {
		t.Errorf("did not expect ')' to be legal at the start")
	}

	if err := pp.TryNext('('); err != nil {
		t.Fatalf("TryNext('('): %v", err)
	}
	if err := pp.TryNext(')'); err != nil {
		t.Fatalf("TryNext(')'): %v", err)
	}

	beforeSecondClose := pp.rec.ColumnCount()
	if err := pp.TryNext(')'); !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("expected a second unmatched ')' to be rejected, got %v", err)
	}
	if got := pp.rec.ColumnCount(); got != beforeSecondClose {
		t.Fatalf("expected column count unchanged after the second failed TryNext, got %d want %d", got, beforeSecondClose)
	}

	legal = pp.LegalTokens()
	if _, ok := legal['(']; !ok {
		t.Errorf("expected '(' to remain legal after a complete group")
	}
	if _, ok := legal[')']; ok {
		t.Errorf("did not expect ')' to be legal once the only open group has closed")
	}

	if err := pp.Finish(); err != nil {
		t.Fatalf("expected Finish to succeed after '()', got %v", err)
	}
	if got := pp.Progress(); string(got) != "()" {
		t.Fatalf("expected progress %q, got %q", "()", string(got))
	}
}
