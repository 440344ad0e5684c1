package main

// parse.go is a recursive-descent parser for prefix arithmetic.
//
// Grammar:
//
//	E -> + E E | - E E | * E E | / E E | N
//	N -> any int64
//
// Every production takes the remaining tokens and returns what is left
// over after it has consumed its part.

// parse parses toks as exactly one expression.
func parse(toks []Token) (Expr, error) {
	rest, e, err := parseE(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, &ParseError{Kind: TokensNotEmpty, Tokens: rest}
	}
	return e, nil
}

func parseE(toks []Token) ([]Token, Expr, error) {
	if len(toks) == 0 {
		return nil, nil, &ParseError{Kind: TokensEmpty}
	}
	head := toks[0]
	switch {
	case head.Kind.isOp():
		toks, err := matchToken(toks, Token{Kind: head.Kind})
		if err != nil {
			return nil, nil, err
		}
		toks, left, err := parseE(toks)
		if err != nil {
			return nil, nil, err
		}
		toks, right, err := parseE(toks)
		if err != nil {
			return nil, nil, err
		}
		return toks, &BinExpr{Op: head.Kind, Left: left, Right: right}, nil
	case head.Kind == IntTok:
		return parseN(toks)
	default:
		return nil, nil, &ParseError{Kind: ProductionRuleFailure, Rule: "E", Tokens: toks}
	}
}

func parseN(toks []Token) ([]Token, Expr, error) {
	if len(toks) == 0 {
		return nil, nil, &ParseError{Kind: TokensEmpty}
	}
	if toks[0].Kind != IntTok {
		return nil, nil, &ParseError{Kind: ProductionRuleFailure, Rule: "N", Tokens: toks}
	}
	v := toks[0].Value
	toks, err := matchToken(toks, Token{Kind: IntTok, Value: v})
	if err != nil {
		return nil, nil, err
	}
	return toks, &IntExpr{Value: v}, nil
}

// matchToken consumes tok from the front of toks.
func matchToken(toks []Token, tok Token) ([]Token, error) {
	if len(toks) == 0 {
		return nil, &ParseError{Kind: TokensEmpty}
	}
	if toks[0] != tok {
		return nil, &ParseError{Kind: MismatchedToken, Expected: tok, Actual: toks[0], Tokens: toks}
	}
	return toks[1:], nil
}
