package earley

import "errors"

// Error kinds per spec §7. ErrUnknownInitial and ErrUnknownNonterminal
// are fatal configuration errors that propagate straight to the
// caller. The other three are ordinary outcomes of parsing untrusted
// input — surfaced as typed failures, never panics.
var (
	// ErrUnknownInitial means the requested start nonterminal is not a
	// key of the grammar.
	ErrUnknownInitial = errors.New("earley: start nonterminal not found in grammar")

	// ErrUnknownNonterminal means a predict step referenced a
	// nonterminal absent from the grammar.
	ErrUnknownNonterminal = errors.New("earley: nonterminal referenced but not defined in grammar")

	// ErrUnexpectedToken means a PrefixParser.TryNext call produced an
	// empty column after scan and closure.
	ErrUnexpectedToken = errors.New("earley: token rejected, no item could be scanned")

	// ErrIncomplete means PrefixParser.Finish was called on a
	// non-accepting chart.
	ErrIncomplete = errors.New("earley: chart is not in an accepting state")

	// ErrParseFailed means a batch parse ended on a non-accepting
	// chart.
	ErrParseFailed = errors.New("earley: input is not in the language of the grammar")
)
