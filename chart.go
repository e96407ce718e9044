package earley

import "fmt"

// Recognizer builds a chart column by column for a fixed grammar and
// start nonterminal. advance is O(|column|²·|grammar|) worst case (the
// complete closure); it performs no I/O and never blocks.
//
// A Recognizer is owned exclusively by its creator: there is no shared
// mutable state between recognizers, and dropping one releases all
// chart memory. Columns, once closed, are never mutated again —
// advance/probe only ever reads prior columns and writes a new one.
type Recognizer[T comparable] struct {
	grammar *Grammar[T]
	start   string
	columns []*column[T]
}

// NewRecognizer produces a recognizer whose column 0 is the
// predict-closure of the seed set for start. Fails with
// ErrUnknownInitial if start is not a key of g, or with
// ErrUnknownNonterminal if the closure references an undefined
// nonterminal.
func NewRecognizer[T comparable](g *Grammar[T], start string) (*Recognizer[T], error) {
	expansions, ok := g.Expansions(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInitial, start)
	}
	col := newColumn[T]()
	for _, exp := range expansions {
		seed := Item[T]{Name: start, After: []Token[T](exp), Range: Range{Start: 0, End: 0}}
		col.add(seed, Provenance[T]{kind: provPredicted})
	}
	r := &Recognizer[T]{grammar: g, start: start}
	colAt := func(k int) *column[T] {
		if k == 0 {
			return col
		}
		return r.columns[k]
	}
	if err := closeColumn(g, colAt, col, 0); err != nil {
		return nil, err
	}
	r.columns = append(r.columns, col)
	dumpColumn(col, 0)
	return r, nil
}

// ColumnCount returns the current number of columns (1 right after
// NewRecognizer, growing by 1 per successful Advance).
func (r *Recognizer[T]) ColumnCount() int {
	return len(r.columns)
}

// Advance scans the incoming terminal t against the last column, closes
// the result under the joint complete/predict fixed point, and appends
// it as a new column. A token that no item can scan is not itself an
// error: the new column is simply empty (see Parser.Parse and
// PrefixParser.TryNext for how callers interpret that).
func (r *Recognizer[T]) Advance(t T) error {
	col, err := r.probe(t)
	if err != nil {
		return err
	}
	r.commit(col)
	return nil
}

// probe computes the column that would result from scanning t against
// the current last column, without appending it to the chart. Callers
// that decide not to commit simply discard the result — the committed
// chart is untouched either way.
func (r *Recognizer[T]) probe(t T) (*column[T], error) {
	j := len(r.columns)
	next := scanColumn(r.columns[j-1], t, j)
	colAt := func(k int) *column[T] {
		if k == j {
			return next
		}
		return r.columns[k]
	}
	if err := closeColumn(r.grammar, colAt, next, j); err != nil {
		return nil, err
	}
	return next, nil
}

// commit appends col, previously produced by probe, as the new last
// column.
func (r *Recognizer[T]) commit(col *column[T]) {
	j := len(r.columns)
	r.columns = append(r.columns, col)
	dumpColumn(col, j)
}

// accepting reports whether the final column contains an item with
// name = start, empty after, and origin 0.
func (r *Recognizer[T]) accepting() bool {
	_, _, ok := r.acceptingItem()
	return ok
}

func (r *Recognizer[T]) acceptingItem() (Item[T], Provenance[T], bool) {
	n := len(r.columns) - 1
	last := r.columns[n]
	var found Item[T]
	var foundProv Provenance[T]
	ok := false
	last.each(func(it Item[T], prov Provenance[T]) {
		if ok || it.Name != r.start || len(it.After) != 0 {
			return
		}
		if it.Range.Start != 0 || it.Range.End != n {
			return
		}
		found, foundProv, ok = it, prov, true
	})
	return found, foundProv, ok
}

// scanColumn applies the scan phase (spec §4.2 step 1): for every item
// in prior whose next symbol is the terminal tok, advance the dot. Ties
// (multiple predecessors producing the same new item) keep the
// first-encountered provenance, which is deterministic because prior's
// enumeration order is itself deterministic (column.each).
func scanColumn[T comparable](prior *column[T], tok T, j int) *column[T] {
	col := newColumn[T]()
	prior.each(func(it Item[T], _ Provenance[T]) {
		if len(it.After) == 0 || !it.After[0].terminal || it.After[0].value != tok {
			return
		}
		adv := advance(it, j)
		col.add(adv, Provenance[T]{kind: provScanned, scanSrc: it.Range})
	})
	return col
}

type pendingAdd[T comparable] struct {
	item Item[T]
	prov Provenance[T]
}

// completeAdditions implements spec §4.2 step 2 for a single round: for
// every complete item [k, j, Y -> gamma .] in col, and every item
// [i, k, X -> alpha . Y beta] in the column at k, propose
// [i, j, X -> alpha Y . beta]. It reads a snapshot of col and the
// source column, so results are only applied by the caller after the
// round finishes.
func completeAdditions[T comparable](colAt func(int) *column[T], col *column[T]) []pendingAdd[T] {
	var out []pendingAdd[T]
	col.each(func(it Item[T], _ Provenance[T]) {
		if len(it.After) != 0 {
			return
		}
		k := it.Range.Start
		src := colAt(k)
		src.each(func(pred Item[T], _ Provenance[T]) {
			if len(pred.After) == 0 || pred.After[0].terminal || pred.After[0].nonterminal != it.Name {
				return
			}
			adv := advance(pred, it.Range.End)
			if col.has(adv) {
				return
			}
			out = append(out, pendingAdd[T]{
				item: adv,
				prov: Provenance[T]{kind: provCompleted, left: pred.Range, right: it.Range},
			})
		})
	})
	return out
}

// predictAdditions implements spec §4.2 step 3 for a single round: for
// every item [i, j, X -> alpha . Y beta] with Y a nonterminal, and every
// expansion gamma of Y, propose [j, j, Y -> . gamma].
func predictAdditions[T comparable](g *Grammar[T], col *column[T], j int) ([]pendingAdd[T], error) {
	var out []pendingAdd[T]
	var err error
	col.each(func(it Item[T], _ Provenance[T]) {
		if err != nil || len(it.After) == 0 || it.After[0].terminal {
			return
		}
		name := it.After[0].nonterminal
		expansions, ok := g.Expansions(name)
		if !ok {
			err = fmt.Errorf("%w: %q", ErrUnknownNonterminal, name)
			return
		}
		for _, exp := range expansions {
			seed := Item[T]{Name: name, After: []Token[T](exp), Range: Range{Start: j, End: j}}
			if !col.has(seed) {
				out = append(out, pendingAdd[T]{item: seed, prov: Provenance[T]{kind: provPredicted}})
			}
		}
	})
	return out, err
}

// closeColumn iterates complete-to-fixed-point, then predict-once,
// re-entering complete whenever predict introduced anything — including
// an immediately-complete item from an epsilon expansion — until a
// round where predict adds nothing new. This is the joint
// complete/predict fixed point spec §4.2 and §9 mandate as the fix for
// the complete-then-predict (non-reentrant) ordering in
// original_source/earley-rs/src/table.rs's next(), which under-
// approximates derivations through nullable nonterminals.
func closeColumn[T comparable](g *Grammar[T], colAt func(int) *column[T], col *column[T], j int) error {
	for {
		for {
			adds := completeAdditions(colAt, col)
			if len(adds) == 0 {
				break
			}
			for _, a := range adds {
				col.add(a.item, a.prov)
			}
		}
		adds, err := predictAdditions(g, col, j)
		if err != nil {
			return err
		}
		if len(adds) == 0 {
			return nil
		}
		for _, a := range adds {
			col.add(a.item, a.prov)
		}
	}
}
