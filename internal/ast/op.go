package ast

// BinOp identifies a binary operator.
type BinOp uint8

const (
	// Composition operators, lowest precedence first.
	OpPar   BinOp = iota // ,
	OpSeq                // :
	OpSplit              // <:
	OpMerge              // :>
	OpRec                // ~

	OpOr  // ||
	OpAnd // &&

	OpBitOr  // |
	OpBitAnd // &
	OpShl    // <<
	OpShr    // >>

	OpEq  // ==
	OpNeq // !=
	OpLt  // <
	OpLe  // <=
	OpGt  // >
	OpGe  // >=

	OpAdd // +
	OpSub // -
	OpMul // *
	OpDiv // /
	OpMod // %

	OpPow   // ^
	OpDelay // @
)

var opSpellings = [...]string{
	OpPar:    ",",
	OpSeq:    ":",
	OpSplit:  "<:",
	OpMerge:  ":>",
	OpRec:    "~",
	OpOr:     "||",
	OpAnd:    "&&",
	OpBitOr:  "|",
	OpBitAnd: "&",
	OpShl:    "<<",
	OpShr:    ">>",
	OpEq:     "==",
	OpNeq:    "!=",
	OpLt:     "<",
	OpLe:     "<=",
	OpGt:     ">",
	OpGe:     ">=",
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
	OpPow:    "^",
	OpDelay:  "@",
}

func (op BinOp) String() string {
	if int(op) < len(opSpellings) {
		return opSpellings[op]
	}
	return "?"
}

// IsComposition reports whether the operator is one of the five composition
// operators rather than a numeric one.
func (op BinOp) IsComposition() bool {
	switch op {
	case OpPar, OpSeq, OpSplit, OpMerge, OpRec:
		return true
	default:
		return false
	}
}
