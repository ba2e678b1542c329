// Package diag carries diagnostics across compiler phases.
//
// Every phase reports through the Reporter interface and keeps producing a
// best-effort result; diagnostics accumulate in a Bag and are rendered by
// diagfmt at the edge. Codes are grouped by phase: 1000s lexical, 2000s
// syntactic, 3000s generation (unsupported-construct degradation).
package diag
