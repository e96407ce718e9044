package earley

// Parser drives a Recognizer over a finite input slice in one batch and
// decides acceptance once the input is exhausted.
type Parser[T comparable] struct {
	grammar *Grammar[T]
	start   string
}

// NewParser returns a batch parser for grammar g with start
// nonterminal start. No error is possible here: an unknown start is
// only discovered once Parse actually builds a Recognizer, so that a
// Parser value can be constructed ahead of knowing the input.
func NewParser[T comparable](g *Grammar[T], start string) *Parser[T] {
	return &Parser[T]{grammar: g, start: start}
}

// Parse consumes input, one terminal at a time, and decides acceptance:
// the input is accepted iff the final column contains an item
// [0, n, S -> gamma .]. On acceptance it returns a ParseInfo; otherwise
// it returns ErrParseFailed. A malformed grammar (unknown start or an
// undefined nonterminal reached during closure) surfaces as
// ErrUnknownInitial/ErrUnknownNonterminal instead.
func (p *Parser[T]) Parse(input []T) (*ParseInfo[T], error) {
	tracer().Infof("=== parse: %d input tokens, start=%s ===", len(input), p.start)
	rec, err := NewRecognizer(p.grammar, p.start)
	if err != nil {
		return nil, err
	}
	for _, t := range input {
		if err := rec.Advance(t); err != nil {
			return nil, err
		}
	}
	if !rec.accepting() {
		tracer().Infof("REJECT: no accepting item in final column")
		return nil, ErrParseFailed
	}
	tracer().Infof("ACCEPT")
	return &ParseInfo[T]{rec: rec}, nil
}

// ParseInfo wraps a frozen, accepting chart, produced only by a
// successful Parser.Parse.
type ParseInfo[T comparable] struct {
	rec *Recognizer[T]
}
