package main

import (
	"errors"
	"reflect"
	"testing"
)

func add() Token        { return Token{Kind: AddTok} }
func sub() Token        { return Token{Kind: SubTok} }
func mul() Token        { return Token{Kind: MultTok} }
func div() Token        { return Token{Kind: DivTok} }
func num(v int64) Token { return Token{Kind: IntTok, Value: v} }

var tokenizeTests = []struct {
	input string
	toks  []Token
}{
	{"", nil},
	{"   ", nil},
	{"5", []Token{num(5)}},
	{"+ 5 4", []Token{add(), num(5), num(4)}},
	{"- 10 / 12 3", []Token{sub(), num(10), div(), num(12), num(3)}},
	{"* 5 * 4 3", []Token{mul(), num(5), mul(), num(4), num(3)}},
	{"+5", []Token{add(), num(5)}},
	{"5+", []Token{num(5), add()}},
	{"+-*/", []Token{add(), sub(), mul(), div()}},
	{"-5", []Token{sub(), num(5)}},
	{"\t+\n 12\r\n007 ", []Token{add(), num(12), num(7)}},
	{"1 2", []Token{num(1), num(2)}},
	{"+\u00a05\u20284", []Token{add(), num(5), num(4)}},
	{"9223372036854775807", []Token{num(9223372036854775807)}},
	{"5 + 8 + 9 8", []Token{num(5), add(), num(8), add(), num(9), num(8)}},
}

func TestTokenize(t *testing.T) {
	for _, tt := range tokenizeTests {
		toks, err := tokenize(tt.input, 0)
		if err != nil {
			t.Errorf("tokenize(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if len(toks) != len(tt.toks) || (len(toks) > 0 && !reflect.DeepEqual(toks, tt.toks)) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.input, tokenList(toks), tokenList(tt.toks))
		}
	}
}

var tokenizeErrorTests = []struct {
	input string
	rest  string
}{
	{"^", "^"},
	{"+ 5 ^ 4", "^ 4"},
	{"+ 5 4a", "a"},
	{"(+ 1 2)", "(+ 1 2)"},
	{"1.5", ".5"},
	{"+ 1 ٣", "٣"},
	{"9223372036854775808", "9223372036854775808"},
	{"+ 1 99999999999999999999 2", "99999999999999999999 2"},
}

func TestTokenizeError(t *testing.T) {
	for _, tt := range tokenizeErrorTests {
		toks, err := tokenize(tt.input, 0)
		if err == nil {
			t.Errorf("tokenize(%q) = %v, want an error", tt.input, tokenList(toks))
			continue
		}
		if toks != nil {
			t.Errorf("tokenize(%q) returned tokens %v along with an error", tt.input, tokenList(toks))
		}
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Errorf("tokenize(%q): error %v is %T, want *LexError", tt.input, err, err)
			continue
		}
		if lexErr.Kind != InvalidInput || lexErr.Input != tt.rest {
			t.Errorf("tokenize(%q): got %v %q, want InvalidInput %q", tt.input, lexErr.Kind, lexErr.Input, tt.rest)
		}
	}
}

func TestTokenizeOffset(t *testing.T) {
	input := "junk + 1 2"
	toks, err := tokenize(input, 5)
	if err != nil {
		t.Fatalf("tokenize(%q, 5): unexpected error: %v", input, err)
	}
	want := []Token{add(), num(1), num(2)}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("tokenize(%q, 5) = %v, want %v", input, tokenList(toks), tokenList(want))
	}

	if toks, err := tokenize(input, len(input)+3); err != nil || len(toks) != 0 {
		t.Errorf("tokenize past the end = %v, %v; want no tokens and no error", tokenList(toks), err)
	}

	_, err = tokenize(input, -1)
	var lexErr *LexError
	if !errors.As(err, &lexErr) || lexErr.Input != input {
		t.Errorf("tokenize(%q, -1): got error %v, want InvalidInput of the whole input", input, err)
	}
}

func TestTokenString(t *testing.T) {
	toks := []Token{add(), sub(), mul(), div(), num(42), {Kind: 17}}
	got := tokenList(toks)
	want := "[+ - * / 42 Kind(17)]"
	if got != want {
		t.Errorf("tokenList = %q, want %q", got, want)
	}
}
