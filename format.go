package main

import (
	"bytes"
	"fmt"
	"strconv"
)

// format.go converts an Expr back to prefix source code.
// Re-parsing the output gives back the same tree as long as
// no literal is negative; negative literals become subtractions.

type formatter struct {
	buf bytes.Buffer
}

func render(expr Expr) string {
	var f formatter
	f.visitExpr(expr)
	return f.buf.String()
}

func (f *formatter) visitExpr(e Expr) {
	switch e := e.(type) {
	case *IntExpr:
		// the lexer has no negative literals, so write them as 0 - n
		if e.Value < 0 {
			f.visitNegative(e.Value)
			return
		}
		f.write(strconv.FormatInt(e.Value, 10))
	case *BinExpr:
		f.write(e.Op.String())
		f.write(" ")
		f.visitExpr(e.Left)
		f.write(" ")
		f.visitExpr(e.Right)
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitExpr: %T", e))
	}
}

func (f *formatter) visitNegative(v int64) {
	// -MinInt64 isn't representable; use - (0 - 1) MaxInt64 instead
	if v == -v {
		f.write("- - 0 1 " + strconv.FormatInt(-(v+1), 10))
		return
	}
	f.write("- 0 " + strconv.FormatInt(-v, 10))
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}
