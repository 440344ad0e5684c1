package main

// Expr is either a *BinExpr or an *IntExpr.
type Expr interface{}

// BinExpr applies Op (AddTok, SubTok, MultTok or DivTok) to Left and Right.
type BinExpr struct {
	Op    Kind
	Left  Expr
	Right Expr
}

type IntExpr struct {
	Value int64
}
