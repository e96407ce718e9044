/*
Package earley implements an Earley recognizer and derivation
reconstructor for arbitrary context-free grammars, including grammars
with left recursion, right recursion, ambiguity, and epsilon
productions.

Given a Grammar, a start nonterminal, and an input sequence of
terminals, a Parser decides whether the input is in the grammar's
language; on acceptance, a ParseInfo can reconstruct a witness
derivation as a ProofTree, and from there a ParseTree.

Building a grammar

Grammars are built incrementally, one production at a time. Terminal
values carry an application-chosen comparable type T.

	g := earley.NewGrammar[rune]()
	g.AddProduction("Sum", earley.Expansion[rune]{
		earley.Nonterminal[rune]("Sum"),
		earley.Terminal[rune]('+'),
		earley.Nonterminal[rune]("Product"),
	})
	g.AddProduction("Sum", earley.Expansion[rune]{earley.Nonterminal[rune]("Product")})

Parsing

A batch Parser drives a Recognizer over a finite input slice:

	p := earley.NewParser(g, "Sum")
	info, err := p.Parse(input)

A PrefixParser accepts tokens one at a time, reporting which next
tokens would be accepted without committing to them, suitable for
interactive or streaming front-ends.

Scope

This package implements chart construction and derivation
reconstruction only. It has no lexer, performs no semantic-action
execution, does not normalize or compile the grammar it is given, and
does not enumerate all derivations of an ambiguous input — callers
needing external rendering of a ProofTree or ParseTree (for typesetting,
visualization, or any other presentation) are expected to walk the tree
themselves; this package does not couple to any output format.
*/
package earley
