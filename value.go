package main

import "fmt"

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindStr
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindStr:
		return "Str"
	default:
		return "None"
	}
}

// Value is a Micron runtime value: exactly one of None, an Int, or a Str.
type Value struct {
	kind Kind
	i    int
	s    string
}

// None is the uninhabited sentinel value.
var None = Value{kind: KindNone}

// Int constructs an Int value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// Str constructs a Str value.
func Str(s string) Value { return Value{kind: KindStr, s: s} }

func (v Value) Kind() Kind { return v.kind }

// AsInt returns v's integer payload, and whether v is actually an Int.
func (v Value) AsInt() (int, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsStr returns v's string payload, and whether v is actually a Str.
func (v Value) AsStr() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.s, true
}

// Truthy implements Micron's truthiness table: None, Int(0) and "" are
// falsy; everything else is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindInt:
		return v.i != 0
	case KindStr:
		return v.s != ""
	default:
		return false
	}
}

// Text renders v the way p:/w: do: Int as decimal, Str as-is, None as the
// literal text "None".
func (v Value) Text() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindStr:
		return v.s
	default:
		return "None"
	}
}

func (v Value) String() string { return v.Text() }

// Equal implements =:'s comparison: equal type and value yields (true, nil);
// mismatched types or either operand being None is a TypeError.
func (v Value) Equal(other Value) (bool, error) {
	if v.kind == KindNone || other.kind == KindNone || v.kind != other.kind {
		return false, &RuntimeError{Kind: ErrType, Message: "=: requires two values of the same non-None type"}
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i, nil
	default:
		return v.s == other.s, nil
	}
}
