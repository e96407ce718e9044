package earley

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
)

// ProofKind discriminates the three shapes a ProofTree node can take,
// mirroring the three Provenance kinds.
type ProofKind int

const (
	// ProofPred is a leaf witness for a predicted item; its Item has an
	// empty Before. Every chain of Mu links ends in one; it is a whole
	// rule's proof on its own only for a production with an empty
	// expansion.
	ProofPred ProofKind = iota
	// ProofScan witnesses an advancement over a terminal; Mu is the
	// proof of the predecessor dotted item.
	ProofScan
	// ProofComp witnesses an advancement over a nonterminal; Mu is the
	// proof of the predecessor, B is the proof of the completed
	// sub-derivation.
	ProofComp
)

// ProofTree is the recursive witness a Reconstruct walk builds: a
// record of which predict/scan/complete inferences, in which order,
// justify a single derivation of the input under the grammar.
type ProofTree[T comparable] struct {
	Kind ProofKind
	Item Item[T]
	Mu   *ProofTree[T]
	B    *ProofTree[T]
}

// Reconstruct recovers a proof tree for the accepting item found in
// pi's final column, by backward traversal on provenance (spec §4.5).
// Under an ambiguous grammar this commits to one witness derivation by
// a deterministic enumeration order (column order, see column.go); it
// never attempts to enumerate all derivations.
func (pi *ParseInfo[T]) Reconstruct() (*ProofTree[T], error) {
	n := len(pi.rec.columns) - 1
	target, prov, ok := pi.rec.acceptingItem()
	if !ok {
		return nil, fmt.Errorf("%w: chart has no accepting item to reconstruct from", ErrIncomplete)
	}
	tracer().Debugf("reconstruct from %s at column %d", target.String(), n)
	return pi.reconstructAt(n, target, prov)
}

// ParseTree walks the proof tree returned by Reconstruct and turns it
// into a syntactic tree with nonterminal interior nodes and terminal
// leaves (spec §4.5, "Proof -> Parse tree").
func (pi *ParseInfo[T]) ParseTree() (*ParseTree[T], error) {
	proof, err := pi.Reconstruct()
	if err != nil {
		return nil, err
	}
	return proofToParseTree(proof)
}

func (pi *ParseInfo[T]) reconstructAt(j int, it Item[T], prov Provenance[T]) (*ProofTree[T], error) {
	switch prov.kind {
	case provPredicted:
		if len(it.Before) != 0 {
			return nil, stuckErr("predicted item %s has a non-empty before", it)
		}
		return &ProofTree[T]{Kind: ProofPred, Item: it}, nil

	case provScanned:
		pred, predProv, err := pi.findScanPredecessor(j, it, prov.scanSrc)
		if err != nil {
			return nil, err
		}
		mu, err := pi.reconstructAt(j-1, pred, predProv)
		if err != nil {
			return nil, err
		}
		return &ProofTree[T]{Kind: ProofScan, Item: it, Mu: mu}, nil

	case provCompleted:
		b, bProv, err := pi.findCompletedChild(j, it, prov.right)
		if err != nil {
			return nil, err
		}
		k := prov.right.Start
		mu, muProv, err := pi.findCompletePredecessor(k, it, prov.left, b.Name)
		if err != nil {
			return nil, err
		}
		bTree, err := pi.reconstructAt(j, b, bProv)
		if err != nil {
			return nil, err
		}
		muTree, err := pi.reconstructAt(k, mu, muProv)
		if err != nil {
			return nil, err
		}
		return &ProofTree[T]{Kind: ProofComp, Item: it, Mu: muTree, B: bTree}, nil
	}
	return nil, stuckErr("item %s has an unrecognized provenance", it)
}

// findScanPredecessor locates, in column j-1, the unique (up to tie-
// breaking) predecessor M with name = it.name, range = src, before =
// it.before minus its last element, and after[0] (the symbol right of
// the dot) = that last element (spec §4.5, Scanned case).
func (pi *ParseInfo[T]) findScanPredecessor(j int, it Item[T], src Range) (Item[T], Provenance[T], error) {
	if len(it.Before) == 0 {
		return Item[T]{}, Provenance[T]{}, stuckErr("scanned item %s has an empty before", it)
	}
	scannedTok := it.Before[len(it.Before)-1]
	wantBefore := it.Before[:len(it.Before)-1]
	col := pi.rec.columns[j-1]

	var result Item[T]
	var resultProv Provenance[T]
	found := false
	col.each(func(cand Item[T], prov Provenance[T]) {
		if found || cand.Name != it.Name || cand.Range != src {
			return
		}
		if len(cand.After) == 0 || !tokenEqual(cand.After[0], scannedTok) {
			return
		}
		if !tokensEqual(cand.Before, wantBefore) {
			return
		}
		result, resultProv, found = cand, prov, true
	})
	if !found {
		return Item[T]{}, Provenance[T]{}, stuckErr("no scan predecessor for %s in column %d", it, j-1)
	}
	return result, resultProv, nil
}

// findCompletedChild locates, in column j, the completed item B with
// name = it.before.last (a nonterminal), range = right, and empty
// after (spec §4.5, Completed case, step 1).
func (pi *ParseInfo[T]) findCompletedChild(j int, it Item[T], right Range) (Item[T], Provenance[T], error) {
	if len(it.Before) == 0 {
		return Item[T]{}, Provenance[T]{}, stuckErr("completed item %s has an empty before", it)
	}
	last := it.Before[len(it.Before)-1]
	if last.terminal {
		return Item[T]{}, Provenance[T]{}, stuckErr("completed item %s last matched a terminal, not a nonterminal", it)
	}
	col := pi.rec.columns[j]

	var result Item[T]
	var resultProv Provenance[T]
	found := false
	col.each(func(cand Item[T], prov Provenance[T]) {
		if found || cand.Name != last.nonterminal || len(cand.After) != 0 || cand.Range != right {
			return
		}
		result, resultProv, found = cand, prov, true
	})
	if !found {
		return Item[T]{}, Provenance[T]{}, stuckErr("no completed child %s=%s in column %d", last.nonterminal, right, j)
	}
	return result, resultProv, nil
}

// findCompletePredecessor locates, in column k, the predecessor M with
// name = it.name, range = left, after[0] = Nonterminal(bName), and
// before = it.before minus its last element (spec §4.5, Completed
// case, step 2).
func (pi *ParseInfo[T]) findCompletePredecessor(k int, it Item[T], left Range, bName string) (Item[T], Provenance[T], error) {
	if len(it.Before) == 0 {
		return Item[T]{}, Provenance[T]{}, stuckErr("completed item %s has an empty before", it)
	}
	wantBefore := it.Before[:len(it.Before)-1]
	col := pi.rec.columns[k]

	var result Item[T]
	var resultProv Provenance[T]
	found := false
	col.each(func(cand Item[T], prov Provenance[T]) {
		if found || cand.Name != it.Name || cand.Range != left {
			return
		}
		if len(cand.After) == 0 || cand.After[0].terminal || cand.After[0].nonterminal != bName {
			return
		}
		if !tokensEqual(cand.Before, wantBefore) {
			return
		}
		result, resultProv, found = cand, prov, true
	})
	if !found {
		return Item[T]{}, Provenance[T]{}, stuckErr("no completion predecessor for %s in column %d", it, k)
	}
	return result, resultProv, nil
}

// stuckErr reports an internal invariant violation during
// reconstruction — never a normal parse-rejection outcome. Grounded on
// lr/earley/parsetree.go's stuck() helper: it logs, then either panics
// (for post-mortem debugging) or returns a plain error (no sentinel to
// match with errors.Is), according to the "panic-on-reconstruct-stuck"
// config flag.
func stuckErr(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("reconstruction stuck: %s", msg)
	if gconf.GetBool("panic-on-reconstruct-stuck") {
		panic(`earley: reconstruction is stuck.

Configuration flag panic-on-reconstruct-stuck is set to true. It is
aimed at helping to debug a malformed chart and do a post-mortem of why
reconstruction failed. However, if this is a production environment and
you did not expect this to panic, please unset panic-on-reconstruct-stuck
to its default (false).

` + msg)
	}
	return fmt.Errorf("earley: reconstruction stuck: %s", msg)
}

// --- Proof tree -> parse tree ----------------------------------------

// ParseTree is a syntactic tree: either a terminal leaf or a
// nonterminal interior node with children in source order.
type ParseTree[T comparable] struct {
	terminal *T
	Rule     string
	Children []*ParseTree[T]
}

// IsTerminal reports whether this node is a terminal leaf.
func (pt *ParseTree[T]) IsTerminal() bool {
	return pt.terminal != nil
}

// Terminal returns the leaf's terminal value. Only meaningful when
// IsTerminal is true.
func (pt *ParseTree[T]) Terminal() T {
	return *pt.terminal
}

func proofToParseTree[T comparable](root *ProofTree[T]) (*ParseTree[T], error) {
	children, ruleName, err := collectRuleChildren(root)
	if err != nil {
		return nil, err
	}
	return &ParseTree[T]{Rule: ruleName, Children: children}, nil
}

// collectRuleChildren walks the chain of proof nodes belonging to one
// rule occurrence — following Mu back through Scan and Comp nodes until
// it reaches the Pred leaf that started the rule — accumulating
// children along the way. Because we walk back-to-front over the RHS,
// children are collected in reverse and must be flipped before
// returning (spec §4.5, "Proof -> Parse tree").
func collectRuleChildren[T comparable](node *ProofTree[T]) ([]*ParseTree[T], string, error) {
	ruleName := node.Item.Name
	var acc []*ParseTree[T]
	cur := node
	for {
		switch cur.Kind {
		case ProofPred:
			for i, j := 0, len(acc)-1; i < j; i, j = i+1, j-1 {
				acc[i], acc[j] = acc[j], acc[i]
			}
			return acc, ruleName, nil

		case ProofScan:
			value := cur.Item.Before[len(cur.Item.Before)-1].value
			acc = append(acc, &ParseTree[T]{terminal: &value})
			cur = cur.Mu

		case ProofComp:
			grandchildren, bName, err := collectRuleChildren(cur.B)
			if err != nil {
				return nil, "", err
			}
			acc = append(acc, &ParseTree[T]{Rule: bName, Children: grandchildren})
			cur = cur.Mu

		default:
			return nil, "", stuckErr("proof node for %s has an unrecognized kind", cur.Item)
		}
	}
}
