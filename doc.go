// Package argparse turns a raw sequence of command-line tokens into a set of
// resolved, handled values. Callers register named arguments (boolean flags
// and string-valued options), each with a handler, an optional priority and an
// optional required marker; parsing matches registered names in the input,
// validates that every required argument is present, and invokes handlers in
// ascending priority order.
//
// Input may be a pre-split token slice or a single raw string. Either way the
// tokens first pass through the quote reconstructor in
// [github.com/wiizerdofwiierd/argparse/pkg/quotesplit], which merges phrases
// that naive whitespace splitting broke apart. The package is deliberately
// permissive: unrecognized tokens are skipped, not rejected, and malformed
// quoting never fails.
package argparse
