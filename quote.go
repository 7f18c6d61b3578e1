package plorth

import "strings"

// NativeFn is the callback form of a quote: a function executed against a
// context, performing any number of stack manipulations and possibly
// reporting an error.
type NativeFn func(ctx *Context)

// Quote is an executable value: either a compiled sequence of values or a
// native callback. Quotes compare by identity.
type Quote struct {
	elements []Value
	native   NativeFn
}

// NewQuote creates a compiled quote from a sequence of values. The slice
// is not copied; the caller must not modify it afterwards.
func (rt *Runtime) NewQuote(elements []Value) *Quote {
	return &Quote{elements: elements}
}

// NewNativeQuote creates a quote wrapping a native callback.
func (rt *Runtime) NewNativeQuote(fn NativeFn) *Quote {
	return &Quote{native: fn}
}

// Native reports whether the quote wraps a native callback.
func (q *Quote) Native() bool { return q.native != nil }

// Elements returns the element sequence of a compiled quote. The caller
// must not modify it.
func (q *Quote) Elements() []Value { return q.elements }

// Call executes the quote against the context. A compiled quote executes
// its elements in order and halts as soon as an error is reported; a
// native quote invokes its callback. Returns false if an error was
// reported.
func (q *Quote) Call(ctx *Context) bool {
	if q.native != nil {
		q.native(ctx)
		return ctx.Error() == nil
	}
	for _, elem := range q.elements {
		if !Exec(ctx, elem) || ctx.Error() != nil {
			return false
		}
	}
	return true
}

func (q *Quote) Type() Type { return TypeQuote }

// Equals compares quotes by reference identity.
func (q *Quote) Equals(that Value) bool {
	other, ok := that.(*Quote)
	return ok && q == other
}

func (q *Quote) String() string {
	return q.Source()
}

func (q *Quote) Source() string {
	if q.native != nil {
		return "(native quote)"
	}
	var b strings.Builder
	b.WriteByte('(')
	for _, elem := range q.elements {
		b.WriteByte(' ')
		b.WriteString(ToSource(elem))
	}
	if len(q.elements) > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte(')')
	return b.String()
}

func (q *Quote) eval(ctx *Context) (Value, bool) {
	return q, true
}

func (q *Quote) exec(ctx *Context) bool {
	ctx.Push(q)
	return true
}

func quoteWords() map[string]NativeFn {
	return map[string]NativeFn{
		"call":    wQuoteCall,
		"compose": wQuoteCompose,
		"curry":   wQuoteCurry,
		"negate":  wQuoteNegate,
		">source": wQuoteToSource,
	}
}

// wQuoteCall pops the quote and executes it: ( quote -- ... ).
func wQuoteCall(ctx *Context) {
	if q, ok := ctx.PopQuote(); ok {
		q.Call(ctx)
	}
}

// wQuoteCompose combines two quotes into one which calls them in order:
// ( quote quote -- quote ).
func wQuoteCompose(ctx *Context) {
	b, ok := ctx.PopQuote()
	if !ok {
		return
	}
	a, ok := ctx.PopQuote()
	if !ok {
		return
	}
	ctx.Push(ctx.Runtime().NewNativeQuote(func(ctx *Context) {
		if a.Call(ctx) {
			b.Call(ctx)
		}
	}))
}

// wQuoteCurry binds a value as the first input of a quote:
// ( any quote -- quote ).
func wQuoteCurry(ctx *Context) {
	q, ok := ctx.PopQuote()
	if !ok {
		return
	}
	val, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.Push(ctx.Runtime().NewNativeQuote(func(ctx *Context) {
		ctx.Push(val)
		q.Call(ctx)
	}))
}

// wQuoteNegate builds a quote which calls the original and inverts the
// boolean it leaves on the stack: ( quote -- quote ).
func wQuoteNegate(ctx *Context) {
	q, ok := ctx.PopQuote()
	if !ok {
		return
	}
	ctx.Push(ctx.Runtime().NewNativeQuote(func(ctx *Context) {
		if !q.Call(ctx) {
			return
		}
		if b, ok := ctx.PopBoolean(); ok {
			ctx.PushBoolean(!b)
		}
	}))
}

// wQuoteToSource: ( quote -- string ).
func wQuoteToSource(ctx *Context) {
	if q, ok := ctx.PopQuote(); ok {
		ctx.PushString(q.Source())
	}
}
