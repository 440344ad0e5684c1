package main

import (
	"io"
	"strconv"
)

// etop runs one line through the lexer, parser and interpreter
// and returns the result in decimal.
// A failure is returned as a *StageError wrapping the stage's own error.
func etop(line string) (string, error) {
	return run(line, nil)
}

// run is etop with an optional trace writer.
// If trace is non-nil, the tokens and the tree are dumped to it as they are produced.
func run(line string, trace io.Writer) (string, error) {
	toks, err := tokenize(line, 0)
	if err != nil {
		return "", &StageError{Stage: LexStage, Err: err}
	}
	if trace != nil {
		dump(trace, toks, nil)
	}
	expr, err := parse(toks)
	if err != nil {
		return "", &StageError{Stage: ParseStage, Err: err}
	}
	if trace != nil {
		dump(trace, nil, expr)
	}
	n, err := evaluate(expr)
	if err != nil {
		return "", &StageError{Stage: EvalStage, Err: err}
	}
	return strconv.FormatInt(n, 10), nil
}

// formatResult returns the text shown for line: its value or the error message.
func formatResult(line string) string {
	s, err := etop(line)
	if err != nil {
		return err.Error()
	}
	return s
}
