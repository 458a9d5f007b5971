// Package encode transcodes natural-language text into Cocanb form.
//
// # Overview
//
// Every word is split into a stem, which is written to the output straight
// away, and a tail, which is deferred together with a length code into a
// suffix accumulator. Accumulators are spliced back into the output when a
// sentence ends, when a quote or bracket scope closes, or at end of input.
//
//	"Hello world"  ->  hell worl | non o e d e      (spaces added for clarity)
//	                   ^^^^^^^^^   ^^^^^^^^^^^
//	                   stems       suffix block spliced at offset 8
//
// The offsets at which suffix blocks are spliced in are reported as
// separators alongside the text.
//
// # Scopes
//
// Quotes (" and ') and brackets ((), [], {}, <>) open a scope with its own
// accumulator. A closing delimiter that does not match the innermost open
// scope fails with [ErrMismatchedDelimiter]; input that ends with a scope
// still open fails with [ErrUnterminatedGroup].
//
// With [WithVerbatimTags], everything from < up to the first following > is
// copied unchanged.
//
// # Length codes
//
// A word's code counts its characters, where a run of digits, periods and
// commas counts once. The count is written as one overflow marker (å) per
// full 26 followed by a letter for the remainder (a=1 ... y=25, ` for 0).
//
// Encoding is a single pass with no shared state; concurrent calls on
// independent inputs are safe.
package encode
