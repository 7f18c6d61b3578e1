package plorth

import "fmt"

// globalWords is the default global dictionary: stack shufflers, control
// words, combinators and type predicates. Prototype specific vocabulary
// lives next to each value type.
func globalWords() map[string]NativeFn {
	return map[string]NativeFn{
		"nop":   func(ctx *Context) {},
		"clear": func(ctx *Context) { ctx.Clear() },
		"depth": wDepth,

		"drop":  wDrop,
		"2drop": wDrop2,
		"dup":   wDup,
		"2dup":  wDup2,
		"nip":   wNip,
		"over":  wOver,
		"rot":   wRot,
		"swap":  wSwap,
		"tuck":  wTuck,

		"if":      wIf,
		"if-else": wIfElse,
		"while":   wWhile,

		"compile": wCompile,
		"call":    wCall,
		"curry":   wQuoteCurry,
		"compose": wQuoteCompose,

		"try":      wTry,
		"try-else": wTryElse,

		"print":   wPrint,
		"println": wPrintln,
		"emit":    wEmit,

		"null?":    typePredicate(TypeNull),
		"boolean?": typePredicate(TypeBoolean),
		"number?":  typePredicate(TypeNumber),
		"string?":  typePredicate(TypeString),
		"array?":   typePredicate(TypeArray),
		"object?":  typePredicate(TypeObject),
		"symbol?":  typePredicate(TypeSymbol),
		"quote?":   typePredicate(TypeQuote),
		"word?":    typePredicate(TypeWord),
		"error?":   typePredicate(TypeError),
		"typeof":   wTypeOf,
	}
}

// wDepth: ( -- number ).
func wDepth(ctx *Context) {
	ctx.PushInt(int64(ctx.Size()))
}

// wDrop: ( any -- ).
func wDrop(ctx *Context) {
	ctx.Pop()
}

// wDrop2: ( any any -- ).
func wDrop2(ctx *Context) {
	if _, ok := ctx.Pop(); ok {
		ctx.Pop()
	}
}

// wDup: ( any -- any any ).
func wDup(ctx *Context) {
	if val, ok := ctx.Pop(); ok {
		ctx.Push(val)
		ctx.Push(val)
	}
}

// wDup2: ( a b -- a b a b ).
func wDup2(ctx *Context) {
	b, ok := ctx.Pop()
	if !ok {
		return
	}
	a, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.Push(a)
	ctx.Push(b)
	ctx.Push(a)
	ctx.Push(b)
}

// wNip: ( a b -- b ).
func wNip(ctx *Context) {
	b, ok := ctx.Pop()
	if !ok {
		return
	}
	if _, ok := ctx.Pop(); !ok {
		return
	}
	ctx.Push(b)
}

// wOver: ( a b -- a b a ).
func wOver(ctx *Context) {
	b, ok := ctx.Pop()
	if !ok {
		return
	}
	a, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.Push(a)
	ctx.Push(b)
	ctx.Push(a)
}

// wRot: ( a b c -- b c a ).
func wRot(ctx *Context) {
	c, ok := ctx.Pop()
	if !ok {
		return
	}
	b, ok := ctx.Pop()
	if !ok {
		return
	}
	a, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.Push(b)
	ctx.Push(c)
	ctx.Push(a)
}

// wSwap: ( a b -- b a ).
func wSwap(ctx *Context) {
	b, ok := ctx.Pop()
	if !ok {
		return
	}
	a, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.Push(b)
	ctx.Push(a)
}

// wTuck: ( a b -- b a b ).
func wTuck(ctx *Context) {
	b, ok := ctx.Pop()
	if !ok {
		return
	}
	a, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.Push(b)
	ctx.Push(a)
	ctx.Push(b)
}

// wIf executes a quote when the condition holds:
// ( boolean quote -- ... ).
func wIf(ctx *Context) {
	q, ok := ctx.PopQuote()
	if !ok {
		return
	}
	cond, ok := ctx.PopBoolean()
	if !ok {
		return
	}
	if cond {
		q.Call(ctx)
	}
}

// wIfElse executes one of two quotes depending on the condition:
// ( boolean quote quote -- ... ).
func wIfElse(ctx *Context) {
	elseQ, ok := ctx.PopQuote()
	if !ok {
		return
	}
	thenQ, ok := ctx.PopQuote()
	if !ok {
		return
	}
	cond, ok := ctx.PopBoolean()
	if !ok {
		return
	}
	if cond {
		thenQ.Call(ctx)
	} else {
		elseQ.Call(ctx)
	}
}

// wWhile executes a body quote as long as a test quote gives true:
// ( quote quote -- ... ).
func wWhile(ctx *Context) {
	body, ok := ctx.PopQuote()
	if !ok {
		return
	}
	test, ok := ctx.PopQuote()
	if !ok {
		return
	}
	for {
		if !test.Call(ctx) {
			return
		}
		cond, ok := ctx.PopBoolean()
		if !ok {
			return
		}
		if !cond {
			return
		}
		if !body.Call(ctx) {
			return
		}
	}
}

// wCompile compiles a string into a quote: ( string -- quote ).
func wCompile(ctx *Context) {
	src, ok := ctx.PopString()
	if !ok {
		return
	}
	q := ctx.Compile(src.String(), ctx.Filename())
	if q == nil {
		return
	}
	ctx.Push(q)
}

// wCall pops a quote and executes it: ( quote -- ... ).
func wCall(ctx *Context) {
	if q, ok := ctx.PopQuote(); ok {
		q.Call(ctx)
	}
}

// wTry executes a quote; when it fails, the error is cleared, pushed and a
// handler quote runs: ( quote quote -- ... ).
func wTry(ctx *Context) {
	handler, ok := ctx.PopQuote()
	if !ok {
		return
	}
	body, ok := ctx.PopQuote()
	if !ok {
		return
	}
	if body.Call(ctx) {
		return
	}
	err := ctx.Error()
	ctx.ClearError()
	ctx.Push(err)
	handler.Call(ctx)
}

// wTryElse is try with an additional quote executed when the body
// succeeds: ( quote quote quote -- ... ).
func wTryElse(ctx *Context) {
	elseQ, ok := ctx.PopQuote()
	if !ok {
		return
	}
	handler, ok := ctx.PopQuote()
	if !ok {
		return
	}
	body, ok := ctx.PopQuote()
	if !ok {
		return
	}
	if body.Call(ctx) {
		elseQ.Call(ctx)
		return
	}
	err := ctx.Error()
	ctx.ClearError()
	ctx.Push(err)
	handler.Call(ctx)
}

// wPrint writes the top of the stack to the runtime's output:
// ( any -- ).
func wPrint(ctx *Context) {
	if val, ok := ctx.Pop(); ok {
		fmt.Fprint(ctx.Runtime().Output(), ToString(val))
	}
}

// wPrintln writes the top of the stack and a newline to the runtime's
// output: ( any -- ).
func wPrintln(ctx *Context) {
	if val, ok := ctx.Pop(); ok {
		fmt.Fprintln(ctx.Runtime().Output(), ToString(val))
	}
}

// wEmit writes the code point named by the topmost number:
// ( number -- ).
func wEmit(ctx *Context) {
	num, ok := ctx.PopNumber()
	if !ok {
		return
	}
	fmt.Fprint(ctx.Runtime().Output(), string(rune(num.AsInt())))
}

// typePredicate builds a word testing the type of the top of the stack
// without consuming it: ( any -- any boolean ).
func typePredicate(t Type) NativeFn {
	return func(ctx *Context) {
		val, ok := ctx.Pop()
		if !ok {
			return
		}
		ctx.Push(val)
		ctx.PushBoolean(TypeOf(val) == t)
	}
}

// wTypeOf pushes the type name of the top of the stack without consuming
// it: ( any -- any string ).
func wTypeOf(ctx *Context) {
	val, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.Push(val)
	ctx.PushString(TypeOf(val).String())
}
