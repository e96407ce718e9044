package earley

import (
	"fmt"
	"strings"
)

// Range is the origin interval of an Item within the chart: Start is
// the column at which the underlying rule was first predicted, End is
// the column the item currently occupies.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("%d…%d", r.Start, r.End)
}

// Item is a dotted production together with its origin range: before
// is the already-matched prefix, after is the yet-to-match suffix.
// Items are value objects — advancing the dot always produces a new
// Item, never mutates an existing one. Equality considers all four
// fields (name, before, after, range).
type Item[T comparable] struct {
	Name   string
	Before []Token[T]
	After  []Token[T]
	Range  Range
}

func (it Item[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d, %d, %s ->", it.Range.Start, it.Range.End, it.Name)
	for _, tok := range it.Before {
		b.WriteByte(' ')
		b.WriteString(tok.String())
	}
	b.WriteString(" .")
	for _, tok := range it.After {
		b.WriteByte(' ')
		b.WriteString(tok.String())
	}
	b.WriteByte(']')
	return b.String()
}

// key renders a canonical, totally-ordered string for it, used both as
// a map key (item identity) and, via plain string comparison, as the
// column order, so ambiguous-grammar tie-breaking is reproducible.
// Items sort by range.start, then range.end, then by the bytes of
// name, before and after. Fixed-width zero-padded integers keep the
// numeric fields sorting the same way as a string compare and as an
// int compare. The '|' separators mean this is not strictly the
// lexicographic tuple order: a name sorts after a longer name it is a
// prefix of ("S2" before "S"), and likewise for token sequences.
func (it Item[T]) key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%020d|%020d|%s|", it.Range.Start, it.Range.End, it.Name)
	for _, tok := range it.Before {
		b.WriteString(tok.String())
		b.WriteByte(0)
	}
	b.WriteByte('|')
	for _, tok := range it.After {
		b.WriteString(tok.String())
		b.WriteByte(0)
	}
	return b.String()
}

// advance returns a new item with the dot moved one position to the
// right over After[0], with its range extended to newEnd.
func advance[T comparable](it Item[T], newEnd int) Item[T] {
	before := make([]Token[T], len(it.Before)+1)
	copy(before, it.Before)
	before[len(it.Before)] = it.After[0]
	return Item[T]{
		Name:   it.Name,
		Before: before,
		After:  it.After[1:],
		Range:  Range{Start: it.Range.Start, End: newEnd},
	}
}
