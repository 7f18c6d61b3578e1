package plorth

import "fmt"

// Context is per-execution state: the data stack, the local word
// dictionary, the current uncaught error and an optional filename for
// module execution. Contexts are not safe for concurrent use.
type Context struct {
	runtime    *Runtime
	err        *Error
	data       []Value
	dictionary map[string]*Quote
	filename   string
}

// NewContext creates a fresh context with an empty stack, an empty local
// dictionary and no error.
func (rt *Runtime) NewContext() *Context {
	return &Context{
		runtime:    rt,
		dictionary: map[string]*Quote{},
	}
}

// Runtime returns the runtime this context belongs to.
func (ctx *Context) Runtime() *Runtime { return ctx.runtime }

// Error returns the currently uncaught error, or nil.
func (ctx *Context) Error() *Error { return ctx.err }

// SetError replaces the currently uncaught error. A nil error is ignored;
// use ClearError to discard.
func (ctx *Context) SetError(err *Error) {
	if err != nil {
		ctx.err = err
	}
}

// RaiseError constructs an error with the given code and message and sets
// it as the currently uncaught error.
func (ctx *Context) RaiseError(code ErrorCode, message string) {
	ctx.err = ctx.runtime.NewError(code, message)
}

// RaiseErrorf constructs an error with a formatted message and sets it as
// the currently uncaught error.
func (ctx *Context) RaiseErrorf(code ErrorCode, format string, args ...interface{}) {
	ctx.err = ctx.runtime.NewErrorf(code, format, args...)
}

// ClearError discards the currently uncaught error.
func (ctx *Context) ClearError() { ctx.err = nil }

// Filename returns the optional filename of the context, set when the
// context executes a module.
func (ctx *Context) Filename() string { return ctx.filename }

// SetFilename sets the optional filename of the context.
func (ctx *Context) SetFilename(filename string) { ctx.filename = filename }

// Word looks up a name in the context's local dictionary.
func (ctx *Context) Word(name string) (*Quote, bool) {
	q, ok := ctx.dictionary[name]
	return q, ok
}

// Define binds a name to a quote in the context's local dictionary. A
// later binding overwrites an earlier one.
func (ctx *Context) Define(name string, quote *Quote) {
	ctx.dictionary[name] = quote
}

// Words returns a snapshot of the context's local dictionary.
func (ctx *Context) Words() map[string]*Quote {
	words := make(map[string]*Quote, len(ctx.dictionary))
	for k, v := range ctx.dictionary {
		words[k] = v
	}
	return words
}

// Size returns the number of values on the data stack.
func (ctx *Context) Size() int { return len(ctx.data) }

// Empty reports whether the data stack is empty.
func (ctx *Context) Empty() bool { return len(ctx.data) == 0 }

// Clear removes all values from the data stack.
func (ctx *Context) Clear() { ctx.data = nil }

// Stack returns the data stack, bottom first. The caller must not modify
// it.
func (ctx *Context) Stack() []Value { return ctx.data }

// Peek returns the top of the data stack without removing it. The second
// result is false when the stack is empty; no error is reported.
func (ctx *Context) Peek() (Value, bool) {
	if len(ctx.data) == 0 {
		return nil, false
	}
	return ctx.data[len(ctx.data)-1], true
}

// Push pushes a value onto the data stack. A nil value pushes null.
func (ctx *Context) Push(value Value) {
	ctx.data = append(ctx.data, value)
}

// PushBoolean pushes one of the runtime's boolean singletons.
func (ctx *Context) PushBoolean(value bool) {
	ctx.Push(ctx.runtime.NewBoolean(value))
}

// PushInt pushes an integer number value.
func (ctx *Context) PushInt(value int64) {
	ctx.Push(ctx.runtime.NewInt(value))
}

// PushReal pushes a real number value.
func (ctx *Context) PushReal(value float64) {
	ctx.Push(ctx.runtime.NewReal(value))
}

// PushNumber parses textual input and pushes the resulting number, or
// reports a value error.
func (ctx *Context) PushNumber(text string) bool {
	num, err := ctx.runtime.ParseNumber(text)
	if err != nil {
		ctx.SetError(err)
		return false
	}
	ctx.Push(num)
	return true
}

// PushString pushes a string value with the given contents.
func (ctx *Context) PushString(text string) {
	ctx.Push(ctx.runtime.NewString(text))
}

// PushArray pushes an array value with the given elements.
func (ctx *Context) PushArray(elements []Value) {
	ctx.Push(ctx.runtime.NewArray(elements))
}

// PushObject pushes an object value with the given properties.
func (ctx *Context) PushObject(properties map[string]Value) {
	ctx.Push(ctx.runtime.NewObject(properties))
}

// PushSymbol pushes a symbol value with the given identifier.
func (ctx *Context) PushSymbol(id string) {
	ctx.Push(ctx.runtime.NewSymbol(id))
}

// Pop removes and returns the top of the data stack. An empty stack is a
// range error; the second result tells whether the operation succeeded.
func (ctx *Context) Pop() (Value, bool) {
	if len(ctx.data) == 0 {
		ctx.RaiseError(CodeRange, "Stack underflow.")
		return nil, false
	}
	top := ctx.data[len(ctx.data)-1]
	ctx.data = ctx.data[:len(ctx.data)-1]
	return top, true
}

// PopTyped removes and returns the top of the data stack after checking
// its type. An empty stack is a range error; a top value of a different
// type is a type error, and the value stays on the stack.
func (ctx *Context) PopTyped(t Type) (Value, bool) {
	if len(ctx.data) == 0 {
		ctx.RaiseError(CodeRange, "Stack underflow.")
		return nil, false
	}
	top := ctx.data[len(ctx.data)-1]
	if TypeOf(top) != t {
		ctx.RaiseError(CodeType, fmt.Sprintf("Expected %s, got %s instead.", t, TypeOf(top)))
		return nil, false
	}
	ctx.data = ctx.data[:len(ctx.data)-1]
	return top, true
}

// PopBoolean pops a boolean value and returns its bit.
func (ctx *Context) PopBoolean() (bool, bool) {
	top, ok := ctx.PopTyped(TypeBoolean)
	if !ok {
		return false, false
	}
	return top.(*Boolean).Value(), true
}

// PopNumber pops a number value.
func (ctx *Context) PopNumber() (*Number, bool) {
	top, ok := ctx.PopTyped(TypeNumber)
	if !ok {
		return nil, false
	}
	return top.(*Number), true
}

// PopString pops a string value.
func (ctx *Context) PopString() (*String, bool) {
	top, ok := ctx.PopTyped(TypeString)
	if !ok {
		return nil, false
	}
	return top.(*String), true
}

// PopArray pops an array value.
func (ctx *Context) PopArray() (*Array, bool) {
	top, ok := ctx.PopTyped(TypeArray)
	if !ok {
		return nil, false
	}
	return top.(*Array), true
}

// PopObject pops an object value.
func (ctx *Context) PopObject() (*Object, bool) {
	top, ok := ctx.PopTyped(TypeObject)
	if !ok {
		return nil, false
	}
	return top.(*Object), true
}

// PopSymbol pops a symbol value.
func (ctx *Context) PopSymbol() (*Symbol, bool) {
	top, ok := ctx.PopTyped(TypeSymbol)
	if !ok {
		return nil, false
	}
	return top.(*Symbol), true
}

// PopQuote pops a quote value.
func (ctx *Context) PopQuote() (*Quote, bool) {
	top, ok := ctx.PopTyped(TypeQuote)
	if !ok {
		return nil, false
	}
	return top.(*Quote), true
}

// PopWord pops a word value.
func (ctx *Context) PopWord() (*Word, bool) {
	top, ok := ctx.PopTyped(TypeWord)
	if !ok {
		return nil, false
	}
	return top.(*Word), true
}

// PopError pops an error value.
func (ctx *Context) PopError() (*Error, bool) {
	top, ok := ctx.PopTyped(TypeError)
	if !ok {
		return nil, false
	}
	return top.(*Error), true
}
