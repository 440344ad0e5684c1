package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// this file pretty-prints tokens and trees for error messages and debugging

// tokenList formats toks like [+ 5 4]
func tokenList(toks []Token) string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, t := range toks {
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(t.String())
	}
	b.WriteString("]")
	return b.String()
}

// debugstr formats an expression as a parenthesized tree, e.g. (+ 5 (* 4 3))
func debugstr(e Expr) string {
	var b bytes.Buffer
	writeDebug(&b, e)
	return b.String()
}

func writeDebug(b *bytes.Buffer, e Expr) {
	switch e := e.(type) {
	case *IntExpr:
		fmt.Fprint(b, e.Value)
	case *BinExpr:
		b.WriteString("(")
		b.WriteString(e.Op.String())
		b.WriteString(" ")
		writeDebug(b, e.Left)
		b.WriteString(" ")
		writeDebug(b, e.Right)
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "<%T>", e)
	}
}

// dump writes the intermediate forms of a line to w.
// A nil toks or expr is skipped.
func dump(w io.Writer, toks []Token, expr Expr) {
	if toks != nil {
		fmt.Fprintf(w, "tokens: %s\n", tokenList(toks))
		pretty.Fprintf(w, "%# v\n", toks)
	}
	if expr != nil {
		fmt.Fprintf(w, "tree: %s\n", debugstr(expr))
		pretty.Fprintf(w, "%# v\n", expr)
	}
}
