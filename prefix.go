package earley

// PrefixParser is an incremental, online front-end over the same chart
// machinery as Parser: it accepts tokens one at a time, can report
// which next tokens are legal without committing to any of them, and
// can be asked at any point whether the tokens seen so far already form
// a complete, accepting input.
type PrefixParser[T comparable] struct {
	rec      *Recognizer[T]
	progress []T
}

// NewPrefixParser constructs an empty chart (one column) for grammar g
// and start nonterminal start, exactly as NewRecognizer does.
func NewPrefixParser[T comparable](g *Grammar[T], start string) (*PrefixParser[T], error) {
	rec, err := NewRecognizer(g, start)
	if err != nil {
		return nil, err
	}
	return &PrefixParser[T]{rec: rec}, nil
}

// TryNext attempts to advance by t. On success, the committed chart
// grows by exactly one column. On failure (ErrUnexpectedToken), the
// candidate column is discarded without ever having been committed —
// the chart is left byte-identical to its state before the call, and
// the parser remains usable for a different next-token attempt.
func (p *PrefixParser[T]) TryNext(t T) error {
	col, err := p.rec.probe(t)
	if err != nil {
		return err
	}
	if col.size() == 0 {
		return ErrUnexpectedToken
	}
	p.rec.commit(col)
	p.progress = append(p.progress, t)
	return nil
}

// Finish succeeds iff the chart is currently in an accepting state
// (spec §4.3), and fails with ErrIncomplete otherwise.
func (p *PrefixParser[T]) Finish() error {
	if !p.rec.accepting() {
		return ErrIncomplete
	}
	return nil
}

// ParseInfo returns a ParseInfo for the chart built so far, provided it
// is currently accepting (as Finish would report). This lets a caller
// reconstruct a derivation from a prefix parse without going through
// the batch Parser.
func (p *PrefixParser[T]) ParseInfo() (*ParseInfo[T], error) {
	if err := p.Finish(); err != nil {
		return nil, err
	}
	return &ParseInfo[T]{rec: p.rec}, nil
}

// LegalTokens returns the set of terminal values t for which TryNext(t)
// would currently succeed. It is computed without mutating the chart:
// for each distinct terminal value observed as the next symbol of some
// item in the current column, a full speculative scan+complete+predict
// is performed and the resulting column is checked for emptiness — the
// same test TryNext itself performs — so legalTokens is sound and
// complete by construction (spec §4.4, §8) rather than by a separate
// nullable-symbol special case.
func (p *PrefixParser[T]) LegalTokens() map[T]struct{} {
	current := p.rec.columns[len(p.rec.columns)-1]
	candidates := make(map[T]struct{})
	current.each(func(it Item[T], _ Provenance[T]) {
		if len(it.After) == 0 || !it.After[0].terminal {
			return
		}
		candidates[it.After[0].value] = struct{}{}
	})
	legal := make(map[T]struct{}, len(candidates))
	for t := range candidates {
		col, err := p.rec.probe(t)
		if err == nil && col.size() > 0 {
			legal[t] = struct{}{}
		}
	}
	return legal
}

// Progress returns the tokens accepted so far, in the order they were
// consumed.
func (p *PrefixParser[T]) Progress() []T {
	out := make([]T, len(p.progress))
	copy(out, p.progress)
	return out
}
