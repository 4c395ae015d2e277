package argparse

import (
	"cmp"
	"slices"

	"github.com/wiizerdofwiierd/argparse/pkg/quotesplit"
)

// Parser holds an immutable snapshot of argument registrations, built with
// [Builder.Build]. A Parser is safe to reuse across parse passes; each pass
// works on fresh state and nothing survives it but the registrations
// themselves. Concurrent passes on one Parser are not supported, since
// handlers run on the calling goroutine and commonly mutate shared state.
type Parser struct {
	defs   []definition // ordered by name
	byName map[string]definition
	size   int // slot count for ParsedArgs
}

// resolvedValue associates a definition with the value extracted for it
// during a scan. It lives only for the duration of one parse pass.
type resolvedValue struct {
	def   definition
	value Value
}

// Parse reconstructs quoted phrases in tokens, scans the result left to right
// and matches registered names. A matched flag records true; a matched value
// argument consumes and records the following token, or an absent [Value]
// when the input ends first. Unrecognized tokens are skipped. If the same
// name occurs more than once, the last occurrence wins.
//
// When every required argument was matched, each matched argument's handler
// is invoked with its recorded value, in ascending priority order, on the
// calling goroutine, and Parse returns the recorded values as a [ParsedArgs].
// Otherwise Parse returns a [*MissingArgumentsError] and no handler runs.
// Handler panics are not recovered; they propagate to the caller as-is.
func (p *Parser) Parse(tokens []string) (*ParsedArgs, error) {
	return p.parse(quotesplit.Merge(tokens))
}

// ParseString tokenizes a raw input string on whitespace and parses it. See
// [Parser.Parse].
func (p *Parser) ParseString(input string) (*ParsedArgs, error) {
	return p.parse(quotesplit.Split(input))
}

func (p *Parser) parse(tokens []string) (*ParsedArgs, error) {
	it := newTokenIterator(tokens)

	matched := make(map[string]Value)
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		if def, ok := p.byName[tok]; ok {
			matched[def.name] = def.arg.Extract(it)
		}
	}

	// p.defs is ordered by name, so the diagnostic lists missing names in
	// lexical order.
	var missing []string
	for _, def := range p.defs {
		if !def.required {
			continue
		}
		if _, ok := matched[def.name]; !ok {
			missing = append(missing, def.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingArgumentsError{Names: missing}
	}

	resolved := make([]resolvedValue, 0, len(matched))
	for _, def := range p.defs {
		if value, ok := matched[def.name]; ok {
			resolved = append(resolved, resolvedValue{def: def, value: value})
		}
	}
	slices.SortStableFunc(resolved, func(a, b resolvedValue) int {
		if c := cmp.Compare(a.def.priority, b.def.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.def.seq, b.def.seq)
	})

	parsed := NewParsedArgs(p.size)
	for _, r := range resolved {
		parsed.Set(r.def.index, r.value)
		r.def.arg.Handle(r.value)
	}
	return parsed, nil
}
