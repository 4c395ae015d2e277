package argparse

var (
	_ Argument = flagArgument{}
	_ Argument = valueArgument{}
)

// Argument is the capability implemented by each argument kind. Extract
// consumes the argument's value from the token iterator when its registered
// name matched; Handle is invoked with that value during dispatch. The two
// built-in kinds are [Flag] and [String]; additional kinds (say, typed numeric
// values) can be added by implementing the same pair.
type Argument interface {
	Extract(args *TokenIterator) Value
	Handle(value Value)
}

// Value is the resolved value recorded for a matched argument: true for a
// flag, the following token for a value argument. The zero Value is absent,
// which is what a value argument records when it matches as the last token of
// the input.
type Value struct {
	v any
}

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value { return Value{v: b} }

// StringValue returns a Value holding s.
func StringValue(s string) Value { return Value{v: s} }

// Present reports whether the Value holds anything.
func (v Value) Present() bool { return v.v != nil }

// Bool returns the underlying boolean, or false if the Value does not hold
// one.
func (v Value) Bool() bool {
	b, _ := v.v.(bool)
	return b
}

// String returns the underlying string, or "" if the Value does not hold one.
func (v Value) String() string {
	s, _ := v.v.(string)
	return s
}

// Any returns the underlying value, or nil when absent.
func (v Value) Any() any { return v.v }

// Flag returns an Argument representing a boolean flag: present means true.
// The handler is only ever invoked with true, since a flag is only recorded
// when its name appears in the input. A flag never consumes a following
// token.
func Flag(handle func(set bool)) Argument {
	return flagArgument{handle: handle}
}

type flagArgument struct {
	handle func(bool)
}

func (flagArgument) Extract(*TokenIterator) Value { return BoolValue(true) }

func (a flagArgument) Handle(value Value) {
	if a.handle != nil {
		a.handle(value.Bool())
	}
}

// String returns an Argument carrying a string value: when its name matches,
// the token immediately following it is consumed and recorded. If the input
// ends before a following token, the argument still counts as matched but the
// handler receives an absent Value.
func String(handle func(value Value)) Argument {
	return valueArgument{handle: handle}
}

type valueArgument struct {
	handle func(Value)
}

func (valueArgument) Extract(args *TokenIterator) Value {
	if tok, ok := args.Next(); ok {
		return StringValue(tok)
	}
	return Value{}
}

func (a valueArgument) Handle(value Value) {
	if a.handle != nil {
		a.handle(value)
	}
}
