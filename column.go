package earley

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// itemRecord pairs an item with the provenance that justified its
// insertion into a column.
type itemRecord[T comparable] struct {
	key  string
	item Item[T]
	prov Provenance[T]
}

// column holds the items live at one chart position together with
// their provenance. Items are kept in a deterministic total order (a
// gods treeset ordered by Item.key) so closures and reconstruction walk
// predecessors reproducibly, the same role lr/tables.go's
// treeset.NewWith(stateComparator) plays for LR state sets, repurposed
// here for Earley columns.
type column[T comparable] struct {
	order *treeset.Set
	byKey map[string]*itemRecord[T]
}

func newColumn[T comparable]() *column[T] {
	cmp := func(a, b interface{}) int {
		ra := a.(*itemRecord[T])
		rb := b.(*itemRecord[T])
		return utils.StringComparator(ra.key, rb.key)
	}
	return &column[T]{
		order: treeset.NewWith(cmp),
		byKey: make(map[string]*itemRecord[T]),
	}
}

// add inserts item with provenance prov if not already present. Ties
// keep the first-encountered provenance (spec §4.2): an item already
// present is never overwritten. Reports whether the item was newly
// inserted.
func (c *column[T]) add(item Item[T], prov Provenance[T]) bool {
	key := item.key()
	if _, exists := c.byKey[key]; exists {
		return false
	}
	rec := &itemRecord[T]{key: key, item: item, prov: prov}
	c.byKey[key] = rec
	c.order.Add(rec)
	return true
}

func (c *column[T]) has(item Item[T]) bool {
	_, ok := c.byKey[item.key()]
	return ok
}

func (c *column[T]) get(item Item[T]) (Provenance[T], bool) {
	rec, ok := c.byKey[item.key()]
	if !ok {
		return Provenance[T]{}, false
	}
	return rec.prov, true
}

func (c *column[T]) size() int {
	return len(c.byKey)
}

// each iterates the column's items in deterministic order. The gods
// treeset's Values() call builds a fresh ordered slice, so it is safe
// for fn to trigger further additions to c without disturbing the
// iteration already in flight.
func (c *column[T]) each(fn func(Item[T], Provenance[T])) {
	for _, v := range c.order.Values() {
		rec := v.(*itemRecord[T])
		fn(rec.item, rec.prov)
	}
}
