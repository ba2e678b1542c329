package parser

import (
	"wirec/internal/ast"
	"wirec/internal/token"
)

// Binary operator precedence, low to high. The five composition operators
// sit at the bottom; '@' (sample delay as a binary operator) binds tightest.
const (
	precParallel   = 1  // ,
	precSequential = 2  // :
	precSplitMerge = 3  // <: :>
	precRecursive  = 4  // ~
	precLogicalOr  = 5  // ||
	precLogicalAnd = 6  // &&
	precBitOr      = 7  // |
	precBitAnd     = 8  // &
	precComparison = 9  // == != < <= > >=
	precShift      = 10 // << >>
	precAdditive   = 11 // + -
	precMultiplicative = 12 // * / %
	precPower      = 13 // ^
	precDelay      = 14 // @
)

// binaryOpFor returns (op, precedence, right-associative, ok) for a token.
// Sequential composition and power are right-associative.
func binaryOpFor(kind token.Kind) (ast.BinOp, int, bool, bool) {
	switch kind {
	case token.Comma:
		return ast.OpPar, precParallel, false, true
	case token.Colon:
		return ast.OpSeq, precSequential, true, true
	case token.Split:
		return ast.OpSplit, precSplitMerge, false, true
	case token.Merge:
		return ast.OpMerge, precSplitMerge, false, true
	case token.Tilde:
		return ast.OpRec, precRecursive, false, true
	case token.OrOr:
		return ast.OpOr, precLogicalOr, false, true
	case token.AndAnd:
		return ast.OpAnd, precLogicalAnd, false, true
	case token.Pipe:
		return ast.OpBitOr, precBitOr, false, true
	case token.Amp:
		return ast.OpBitAnd, precBitAnd, false, true
	case token.EqEq:
		return ast.OpEq, precComparison, false, true
	case token.BangEq:
		return ast.OpNeq, precComparison, false, true
	case token.Lt:
		return ast.OpLt, precComparison, false, true
	case token.LtEq:
		return ast.OpLe, precComparison, false, true
	case token.Gt:
		return ast.OpGt, precComparison, false, true
	case token.GtEq:
		return ast.OpGe, precComparison, false, true
	case token.Shl:
		return ast.OpShl, precShift, false, true
	case token.Shr:
		return ast.OpShr, precShift, false, true
	case token.Plus:
		return ast.OpAdd, precAdditive, false, true
	case token.Minus:
		return ast.OpSub, precAdditive, false, true
	case token.Star:
		return ast.OpMul, precMultiplicative, false, true
	case token.Slash:
		return ast.OpDiv, precMultiplicative, false, true
	case token.Percent:
		return ast.OpMod, precMultiplicative, false, true
	case token.Caret:
		return ast.OpPow, precPower, true, true
	case token.At:
		return ast.OpDelay, precDelay, false, true
	default:
		return 0, -1, false, false
	}
}

// sectionable reports whether a token may start an operator section such as
// *(0.5) at primary position. '-' is handled separately because it is also
// unary negation.
func sectionable(kind token.Kind) bool {
	switch kind {
	case token.Plus, token.Star, token.Slash, token.Percent, token.Caret, token.At:
		return true
	default:
		return false
	}
}
