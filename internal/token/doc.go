// Package token defines lexical token kinds for the wire-DSP language.
// Invariants:
//   - Token.Text is copied out of the original source and matches Span exactly.
//   - Comments and whitespace never appear in the token stream; the lexer
//     skips them while tracking positions.
//   - Library prefixes (os, fi, ba, ...) are plain identifiers; qualified
//     names are assembled by the parser from Ident Dot Ident chains.
package token
