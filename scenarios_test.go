package earley

// Grammar builders shared by the scenario tests, taken verbatim in
// shape from spec.md §8 (and, for the arithmetic grammar, from
// original_source/earley-rs/src/lib.rs's factored_arith test fixture).

func factoredArithmeticGrammar() *Grammar[rune] {
	g := NewGrammar[rune]()
	g.AddProduction("P", Expansion[rune]{Nonterminal[rune]("S")})

	g.AddProduction("S", Expansion[rune]{Nonterminal[rune]("S"), Terminal[rune]('+'), Nonterminal[rune]("M")})
	g.AddProduction("S", Expansion[rune]{Nonterminal[rune]("M")})

	g.AddProduction("M", Expansion[rune]{Nonterminal[rune]("M"), Terminal[rune]('*'), Nonterminal[rune]("T")})
	g.AddProduction("M", Expansion[rune]{Nonterminal[rune]("T")})

	g.AddProduction("T", Expansion[rune]{Terminal[rune]('1')})
	g.AddProduction("T", Expansion[rune]{Terminal[rune]('2')})
	g.AddProduction("T", Expansion[rune]{Terminal[rune]('3')})
	g.AddProduction("T", Expansion[rune]{Terminal[rune]('4')})
	return g
}

func reverseSymmetricGrammar() *Grammar[rune] {
	g := NewGrammar[rune]()
	g.AddProduction("S", Expansion[rune]{Terminal[rune]('a'), Nonterminal[rune]("S"), Terminal[rune]('a')})
	g.AddProduction("S", Expansion[rune]{Terminal[rune]('b'), Nonterminal[rune]("S"), Terminal[rune]('b')})
	g.AddProduction("S", Expansion[rune]{})
	return g
}

func palindromeGrammar() *Grammar[rune] {
	g := NewGrammar[rune]()
	g.AddProduction("S", Expansion[rune]{Terminal[rune]('a'), Nonterminal[rune]("S"), Terminal[rune]('a')})
	g.AddProduction("S", Expansion[rune]{Terminal[rune]('b'), Nonterminal[rune]("S"), Terminal[rune]('b')})
	g.AddProduction("S", Expansion[rune]{Terminal[rune]('a')})
	g.AddProduction("S", Expansion[rune]{Terminal[rune]('b')})
	g.AddProduction("S", Expansion[rune]{})
	return g
}

func balancedParensGrammar() *Grammar[rune] {
	g := NewGrammar[rune]()
	g.AddProduction("S", Expansion[rune]{Nonterminal[rune]("S"), Nonterminal[rune]("S")})
	g.AddProduction("S", Expansion[rune]{Terminal[rune]('('), Nonterminal[rune]("S"), Terminal[rune](')')})
	g.AddProduction("S", Expansion[rune]{Terminal[rune]('('), Terminal[rune](')')})
	return g
}

func runes(s string) []rune {
	return []rune(s)
}
