package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. The numeric space is partitioned by
// phase so codes stay stable as new ones are added.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntactic
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectExpression   Code = 2003
	SynExpectIdentifier   Code = 2004
	SynUnclosedParen      Code = 2005
	SynUnclosedBrace      Code = 2006
	SynUnclosedBracket    Code = 2007
	SynExpectSemicolon    Code = 2008
	SynExpectAssign       Code = 2009
	SynBadCaseBranch      Code = 2010
	SynBadRoutePair       Code = 2011
	SynBadLambda          Code = 2012

	// Generation (unsupported-construct degradation, never fatal)
	GenUnmappedFunction         Code = 3001
	GenLetrecUnsupported        Code = 3002
	GenPatternFamilyUnsupported Code = 3003
	GenCasePatternUnsupported   Code = 3004
	GenDeepPartialApplication   Code = 3005

	// I/O
	IOLoadFileError Code = 4001
)

var codeIDs = map[Code]string{
	UnknownCode:                 "UNKNOWN",
	LexUnknownChar:              "LEX_UNKNOWN_CHAR",
	LexUnterminatedString:       "LEX_UNTERMINATED_STRING",
	LexUnterminatedBlockComment: "LEX_UNTERMINATED_BLOCK_COMMENT",
	LexBadNumber:                "LEX_BAD_NUMBER",
	SynUnexpectedToken:          "SYN_UNEXPECTED_TOKEN",
	SynUnexpectedTopLevel:       "SYN_UNEXPECTED_TOP_LEVEL",
	SynExpectExpression:         "SYN_EXPECT_EXPRESSION",
	SynExpectIdentifier:         "SYN_EXPECT_IDENTIFIER",
	SynUnclosedParen:            "SYN_UNCLOSED_PAREN",
	SynUnclosedBrace:            "SYN_UNCLOSED_BRACE",
	SynUnclosedBracket:          "SYN_UNCLOSED_BRACKET",
	SynExpectSemicolon:          "SYN_EXPECT_SEMICOLON",
	SynExpectAssign:             "SYN_EXPECT_ASSIGN",
	SynBadCaseBranch:            "SYN_BAD_CASE_BRANCH",
	SynBadRoutePair:             "SYN_BAD_ROUTE_PAIR",
	SynBadLambda:                "SYN_BAD_LAMBDA",
	GenUnmappedFunction:         "GEN_UNMAPPED_FUNCTION",
	GenLetrecUnsupported:        "GEN_LETREC_UNSUPPORTED",
	GenPatternFamilyUnsupported: "GEN_PATTERN_FAMILY_UNSUPPORTED",
	GenCasePatternUnsupported:   "GEN_CASE_PATTERN_UNSUPPORTED",
	GenDeepPartialApplication:   "GEN_DEEP_PARTIAL_APPLICATION",
	IOLoadFileError:             "IO_LOAD_FILE_ERROR",
}

// ID returns the stable symbolic name of the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("CODE_%04d", uint16(c))
}

func (c Code) String() string {
	return fmt.Sprintf("%04d", uint16(c))
}
