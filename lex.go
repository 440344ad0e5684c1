package main

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Kind identifies what sort of token a Token is.
type Kind int

const (
	AddTok Kind = iota + 1
	SubTok
	MultTok
	DivTok
	IntTok
)

var kindNames = [...]string{
	AddTok:  "+",
	SubTok:  "-",
	MultTok: "*",
	DivTok:  "/",
	IntTok:  "Int",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// isOp reports whether k is one of the four binary operators.
func (k Kind) isOp() bool {
	return k >= AddTok && k <= DivTok
}

// A Token is an operator symbol or an integer literal.
// Value is only meaningful for IntTok.
type Token struct {
	Kind  Kind
	Value int64
}

func (t Token) String() string {
	if t.Kind == IntTok {
		return strconv.FormatInt(t.Value, 10)
	}
	return t.Kind.String()
}

// lexer holds the scan state for a single call to tokenize
type lexer struct {
	input string
	pos   int
	toks  []Token
}

// tokenize splits input into tokens, starting at byte offset start.
// Whitespace separates tokens but is never required between them.
func tokenize(input string, start int) ([]Token, error) {
	if start < 0 {
		return nil, &LexError{Kind: InvalidInput, Input: input}
	}
	l := &lexer{input: input, pos: start}
	for l.pos < len(l.input) {
		if err := l.lex(); err != nil {
			return nil, err
		}
	}
	return l.toks, nil
}

// lex consumes one token or one run of whitespace.
func (l *lexer) lex() error {
	c := l.input[l.pos]
	switch c {
	case '+':
		return l.op(AddTok)
	case '-':
		return l.op(SubTok)
	case '*':
		return l.op(MultTok)
	case '/':
		return l.op(DivTok)
	}
	if isDigit(c) {
		return l.number()
	}
	if n := l.space(); n > 0 {
		l.pos += n
		return nil
	}
	return l.invalid(l.pos)
}

func (l *lexer) op(k Kind) error {
	l.toks = append(l.toks, Token{Kind: k})
	l.pos++
	return nil
}

func (l *lexer) number() error {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	n, err := strconv.ParseInt(l.input[start:l.pos], 10, 64)
	if err != nil {
		// the only possible failure for a run of digits is ErrRange
		return l.invalid(start)
	}
	l.toks = append(l.toks, Token{Kind: IntTok, Value: n})
	return nil
}

// space returns the length in bytes of the whitespace run at the current position.
func (l *lexer) space() int {
	n := 0
	for l.pos+n < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos+n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}

func (l *lexer) invalid(at int) error {
	return &LexError{Kind: InvalidInput, Input: l.input[at:]}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
