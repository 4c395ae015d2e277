package argparse

// TokenIterator walks a token sequence left to right. The parser hands it to
// [Argument.Extract] so an argument kind can consume the tokens following its
// name; a flag consumes nothing, a value argument consumes exactly one.
type TokenIterator struct {
	tokens []string
	pos    int
}

func newTokenIterator(tokens []string) *TokenIterator {
	return &TokenIterator{tokens: tokens}
}

// Next returns the next token and advances the iterator. The second return
// value is false once the input is exhausted.
func (it *TokenIterator) Next() (string, bool) {
	if it.pos >= len(it.tokens) {
		return "", false
	}
	tok := it.tokens[it.pos]
	it.pos++
	return tok, true
}
