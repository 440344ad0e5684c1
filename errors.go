package main

import "fmt"

// Each stage of the pipeline reports failures with its own error type:
// *LexError from tokenize, *ParseError from parse and *EvalError from evaluate.
// The driver wraps whichever one it gets in a *StageError.

type LexErrorKind int

const (
	InvalidInput LexErrorKind = iota
)

func (k LexErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	}
	return fmt.Sprintf("LexErrorKind(%d)", int(k))
}

// LexError reports input that no token rule matches.
// Input is the unconsumed text, starting at the offending position.
type LexError struct {
	Kind  LexErrorKind
	Input string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v: invalid input: %q", e.Kind, e.Input)
}

type ParseErrorKind int

const (
	TokensEmpty ParseErrorKind = iota
	MismatchedToken
	TokensNotEmpty
	ProductionRuleFailure
)

var parseErrorKindNames = [...]string{
	TokensEmpty:           "TokensEmpty",
	MismatchedToken:       "MismatchedToken",
	TokensNotEmpty:        "TokensNotEmpty",
	ProductionRuleFailure: "ProductionRuleFailure",
}

func (k ParseErrorKind) String() string {
	if k >= 0 && int(k) < len(parseErrorKindNames) {
		return parseErrorKindNames[k]
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError reports a token sequence that is not a single prefix expression.
//
// Which fields are set depends on Kind:
//
//	TokensEmpty            none
//	MismatchedToken        Expected, Actual, Tokens
//	TokensNotEmpty         Tokens (the leftover tokens)
//	ProductionRuleFailure  Rule, Tokens
type ParseError struct {
	Kind     ParseErrorKind
	Expected Token
	Actual   Token
	Tokens   []Token
	Rule     string
}

// Error prefixes the message with the kind, e.g. "TokensEmpty: token list is empty".
func (e *ParseError) Error() string {
	return e.Kind.String() + ": " + e.detail()
}

func (e *ParseError) detail() string {
	switch e.Kind {
	case TokensEmpty:
		return "token list is empty"
	case MismatchedToken:
		return fmt.Sprintf("expected %v from %s but got %v", e.Expected, tokenList(e.Tokens), e.Actual)
	case TokensNotEmpty:
		return fmt.Sprintf("tokens list: %s", tokenList(e.Tokens))
	case ProductionRuleFailure:
		return fmt.Sprintf("production rule failure: [%s]; tokens list: %s", e.Rule, tokenList(e.Tokens))
	}
	return "parse error"
}

type EvalErrorKind int

const (
	DivideByZero EvalErrorKind = iota
	Overflow
	// InvalidOperandType is reported for a tree the interpreter doesn't know
	// how to evaluate: a node of a foreign type or a BinExpr with a non-operator Op.
	InvalidOperandType
)

var evalErrorKindNames = [...]string{
	DivideByZero:       "DivideByZero",
	Overflow:           "Overflow",
	InvalidOperandType: "InvalidOperandType",
}

func (k EvalErrorKind) String() string {
	if k >= 0 && int(k) < len(evalErrorKindNames) {
		return evalErrorKindNames[k]
	}
	return fmt.Sprintf("EvalErrorKind(%d)", int(k))
}

// EvalError reports a tree that has no integer value.
// Op, Left and Right describe the failing operation for Overflow.
type EvalError struct {
	Kind  EvalErrorKind
	Op    Kind
	Left  int64
	Right int64
	Node  Expr // InvalidOperandType only
}

func (e *EvalError) Error() string {
	return e.Kind.String() + ": " + e.detail()
}

func (e *EvalError) detail() string {
	switch e.Kind {
	case DivideByZero:
		return "division by zero"
	case Overflow:
		return fmt.Sprintf("integer overflow: %d %v %d", e.Left, e.Op, e.Right)
	case InvalidOperandType:
		if b, ok := e.Node.(*BinExpr); ok {
			return fmt.Sprintf("invalid operator %v", b.Op)
		}
		return fmt.Sprintf("invalid operand type %T", e.Node)
	}
	return "eval error"
}

// Stage names a step of the pipeline.
type Stage int

const (
	LexStage Stage = iota
	ParseStage
	EvalStage
)

func (s Stage) String() string {
	switch s {
	case LexStage:
		return "Lexer"
	case ParseStage:
		return "Parser"
	case EvalStage:
		return "Interpreter"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// StageError records which stage of the pipeline produced Err.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage.String() + " error: " + e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }
