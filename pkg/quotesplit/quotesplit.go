// Package quotesplit reconstructs logical tokens from whitespace-split
// command-line input, re-joining runs of tokens that together form a quoted
// phrase. It never fails: malformed quoting degrades to a literal passthrough
// of the original tokens, and no token is ever dropped.
package quotesplit

import "strings"

const quote = `"`

// Split tokenizes a raw input string on whitespace and merges quoted phrases.
// It is equivalent to Merge(strings.Fields(input)).
func Split(input string) []string {
	return Merge(strings.Fields(input))
}

// Merge re-joins tokens that were split by whitespace inside quotation marks.
// A token that starts with a quote opens a span, a token that ends with one
// closes it; the span's tokens are joined with single spaces and the enclosing
// quotes are stripped. A token that starts and ends with a quote (or neither)
// is passed through unchanged when no span is open. A span that never closes
// passes its tokens through literally, one by one, quotes intact.
//
// Some examples:
//
//	input tokens          result
//	one two three         [one two three]
//	"one two" three       [one two, three]
//	"one two" "three"     [one two, "three"]
//	one" "two three"      [one", two three]
//	"one "two "three      ["one, "two, "three]
//	"one                  ["one]
//	one"                  [one"]
func Merge(tokens []string) []string {
	out := make([]string, 0, len(tokens))

	// pending holds the raw tokens of the currently open quoted span. The
	// first element always starts with a quote and lacks a trailing one.
	var pending []string

	for _, tok := range tokens {
		opens := strings.HasPrefix(tok, quote) && !strings.HasSuffix(tok, quote)
		closes := strings.HasSuffix(tok, quote) && !strings.HasPrefix(tok, quote)

		switch {
		case opens:
			// A new opening quote abandons any earlier span: that span is
			// unterminated and its tokens pass through literally.
			out = append(out, pending...)
			pending = []string{tok}
		case closes && pending != nil:
			pending = append(pending, tok)
			joined := strings.Join(pending, " ")
			out = append(out, joined[1:len(joined)-1])
			pending = nil
		case pending != nil:
			pending = append(pending, tok)
		default:
			out = append(out, tok)
		}
	}

	// Unterminated span at end of input: literal passthrough.
	return append(out, pending...)
}
