package argparse

import (
	"fmt"
	"slices"
)

// ParsedArgs is a fixed-size indexed record of the values resolved by one
// parse pass. Each registered argument owns one slot, assigned at
// registration time (see [At]); slots of arguments that did not match stay
// absent. It is a convenience output record only and plays no part in
// dispatch.
type ParsedArgs struct {
	values []Value
}

// NewParsedArgs returns a ParsedArgs with size absent slots.
func NewParsedArgs(size int) *ParsedArgs {
	return &ParsedArgs{values: make([]Value, size)}
}

// Len returns the number of slots.
func (p *ParsedArgs) Len() int { return len(p.values) }

// Get returns the value at index, which is absent if the argument owning the
// slot did not match. Out-of-range indexes return an absent Value.
func (p *ParsedArgs) Get(index int) Value {
	if index < 0 || index >= len(p.values) {
		return Value{}
	}
	return p.values[index]
}

// GetOrDefault returns the underlying value at index, or fallback when the
// slot is absent.
func (p *ParsedArgs) GetOrDefault(index int, fallback any) any {
	if v := p.Get(index); v.Present() {
		return v.Any()
	}
	return fallback
}

// Set stores a value at index. Out-of-range indexes are ignored.
func (p *ParsedArgs) Set(index int, value Value) {
	if index < 0 || index >= len(p.values) {
		return
	}
	p.values[index] = value
}

// Values returns a copy of all slots in index order.
func (p *ParsedArgs) Values() []Value {
	return slices.Clone(p.values)
}

// Get retrieves the value at index with type inference. Example usage:
//
//	verbose := argparse.Get[bool](parsed, 0)
//	message := argparse.Get[string](parsed, 1)
//
// An absent slot yields the zero value of T. If the slot holds a value of a
// different type, Get panics: that is a programming error (wrong index or
// wrong type for the registered kind), and it's better to fail LOUD and EARLY
// than to silently return a zero value and cause unexpected behavior.
func Get[T any](p *ParsedArgs, index int) T {
	v := p.Get(index)
	if !v.Present() {
		return *new(T)
	}
	t, ok := v.Any().(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch at index %d: recorded %T, requested %T", index, v.Any(), *new(T)))
	}
	return t
}
