package earley

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'earley.chart', the same pattern
// lr/earley/earley.go uses for its own tracer() helper, scoped to this
// module's own trace channel.
func tracer() tracing.Trace {
	return tracing.Select("earley.chart")
}
