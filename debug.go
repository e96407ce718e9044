package earley

// dumpColumn logs every item live at column j, grounded on
// lr/earley/debug.go's dumpState, which does the same for LR state
// sets.
func dumpColumn[T comparable](col *column[T], j int) {
	n := 1
	col.each(func(it Item[T], prov Provenance[T]) {
		tracer().Debugf("[%04d.%2d] %s   id=%s   (%s)", j, n, it.String(), itemTraceID(j, it), prov.String())
		n++
	})
}
