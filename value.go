package plorth

// Type is the tag of a plorth value. A value's type never changes after
// construction.
type Type int

const (
	TypeNull Type = iota
	TypeBoolean
	TypeNumber
	TypeString
	TypeArray
	TypeObject
	TypeSymbol
	TypeQuote
	TypeWord
	TypeError
)

// String returns the textual description of the type, as used in type error
// messages and by the typeof word.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeSymbol:
		return "symbol"
	case TypeQuote:
		return "quote"
	case TypeWord:
		return "word"
	case TypeError:
		return "error"
	}
	return "unknown"
}

// Value is implemented by every plorth value. A nil Value is the canonical
// representation of null; use the package level TypeOf, Equal, ToString and
// ToSource helpers when a value might be null.
type Value interface {
	// Type returns the type tag of the value.
	Type() Type
	// Equals tests the value against another for deep equality.
	Equals(that Value) bool
	// String returns the human readable representation of the value.
	String() string
	// Source returns a representation of the value which resembles as
	// accurately as possible what it would look like in source code.
	Source() string

	// eval evaluates the value as an element of an array literal or the
	// value of an object literal's property.
	eval(ctx *Context) (Value, bool)
	// exec executes the value as an element of a running quote.
	exec(ctx *Context) bool
}

// TypeOf returns the type of a possibly null value.
func TypeOf(v Value) Type {
	if v == nil {
		return TypeNull
	}
	return v.Type()
}

// Equal tests two possibly null values for equality.
func Equal(a, b Value) bool {
	if a == nil {
		return b == nil
	}
	return b != nil && a.Equals(b)
}

// ToString returns the human readable representation of a possibly null
// value. Null renders as the empty string.
func ToString(v Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// ToSource returns the source representation of a possibly null value.
func ToSource(v Value) string {
	if v == nil {
		return "null"
	}
	return v.Source()
}

// Exec executes a value as an element of a running quote. Most values push
// themselves onto the context's data stack; symbols resolve through the
// dictionaries and the prototype chain, and words bind themselves into the
// context's local dictionary. Returns false if an error was reported.
func Exec(ctx *Context, v Value) bool {
	if v == nil {
		ctx.Push(nil)
		return true
	}
	return v.exec(ctx)
}

// Eval evaluates a value in a data position, such as an element of an array
// literal. Most values evaluate to themselves; symbols resolve to the
// literal they name. Returns false if an error was reported.
func Eval(ctx *Context, v Value) (Value, bool) {
	if v == nil {
		return nil, true
	}
	return v.eval(ctx)
}

// PrototypeOf determines the prototype object of a value based on its type.
// For objects the own property __proto__ is honored, with the runtime's
// object prototype acting as a fallback. The result is never nil.
func PrototypeOf(rt *Runtime, v Value) *Object {
	switch v := v.(type) {
	case nil:
		return rt.objectProto
	case *Boolean:
		return rt.booleanProto
	case *Number:
		return rt.numberProto
	case *String:
		return rt.stringProto
	case *Array:
		return rt.arrayProto
	case *Object:
		return v.Prototype(rt)
	case *Symbol:
		return rt.symbolProto
	case *Quote:
		return rt.quoteProto
	case *Error:
		return rt.errorProto
	}
	// Words have no prototype of their own; they share the fallback of null.
	return rt.objectProto
}
