package argparse

import (
	"cmp"
	"slices"
)

// Builder accumulates argument registrations and produces immutable [Parser]
// snapshots. The zero value is not usable; call [New]. Example usage:
//
//	p := argparse.New().
//		WithArgument("-message", argparse.String(setMessage), argparse.Required()).
//		WithArgument("-v", argparse.Flag(setVerbose), argparse.Priority(-1)).
//		Build()
type Builder struct {
	defs map[string]definition
	seq  int
}

// definition is a registered argument. priority, index and seq are captured
// at registration time and never change afterwards.
type definition struct {
	name     string
	arg      Argument
	priority int
	required bool
	index    int
	seq      int
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{defs: make(map[string]definition)}
}

// Option configures a single registration.
type Option func(*definition)

// Required marks the argument as required: if it is absent from the input,
// the parse pass fails before any handler runs.
func Required() Option {
	return func(d *definition) { d.required = true }
}

// Priority sets the argument's dispatch priority. Lower fires first; ties are
// broken by registration order. The default is the registration order itself.
func Priority(p int) Option {
	return func(d *definition) { d.priority = p }
}

// At assigns the argument's slot in the [ParsedArgs] returned by a parse
// pass. The default is the registration order.
func At(index int) Option {
	return func(d *definition) { d.index = index }
}

// WithArgument registers an argument under name and returns the Builder for
// chaining. A later registration under the same name replaces the earlier one
// entirely. The name is matched against input tokens verbatim; no format is
// enforced, so "-v", "--verbose" and "verbose" are all valid.
func (b *Builder) WithArgument(name string, arg Argument, opts ...Option) *Builder {
	def := definition{
		name:     name,
		arg:      arg,
		priority: b.seq,
		index:    b.seq,
		seq:      b.seq,
	}
	for _, opt := range opts {
		opt(&def)
	}
	b.defs[name] = def
	b.seq++
	return b
}

// Build snapshots the current registrations into a Parser. Further
// registrations on the Builder do not affect parsers already built.
func (b *Builder) Build() *Parser {
	defs := make([]definition, 0, len(b.defs))
	size := len(b.defs)
	for _, d := range b.defs {
		defs = append(defs, d)
		if d.index+1 > size {
			size = d.index + 1
		}
	}
	slices.SortFunc(defs, func(a, b definition) int {
		return cmp.Compare(a.name, b.name)
	})

	byName := make(map[string]definition, len(defs))
	for _, d := range defs {
		byName[d.name] = d
	}
	return &Parser{defs: defs, byName: byName, size: size}
}
