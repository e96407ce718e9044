package earley

import "github.com/cnf/structhash"

// itemTraceID produces a short stable identifier for (col, it), printed
// with each item in the column dumps (dumpColumn) so trace log lines can
// be correlated. Grounded on lr/earley/earley.go's own
// hash(item, stateno) helper, which keys a completion backlink map the
// same way.
func itemTraceID[T comparable](col int, it Item[T]) string {
	h, err := structhash.Hash(struct {
		col    int
		name   string
		before string
		after  string
		rng    Range
	}{
		col:    col,
		name:   it.Name,
		before: renderTokens(it.Before),
		after:  renderTokens(it.After),
		rng:    it.Range,
	}, 1)
	if err != nil {
		// structhash.Hash over a plain struct of primitives cannot
		// fail; the API still demands we check, same as earley.go.
		panic(err)
	}
	return h
}

func renderTokens[T comparable](toks []Token[T]) string {
	s := ""
	for _, tok := range toks {
		s += tok.String() + "\x00"
	}
	return s
}
