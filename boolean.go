package plorth

// Boolean is a boolean value. Each runtime holds exactly two instances, one
// for true and one for false; NewBoolean always returns one of them, so
// booleans may be compared by pointer within one runtime.
type Boolean struct {
	value bool
}

// NewBoolean returns the runtime's singleton for the given truth value.
func (rt *Runtime) NewBoolean(value bool) *Boolean {
	if value {
		return rt.trueValue
	}
	return rt.falseValue
}

// Value returns the wrapped bool.
func (b *Boolean) Value() bool { return b.value }

func (b *Boolean) Type() Type { return TypeBoolean }

func (b *Boolean) Equals(that Value) bool {
	if other, ok := that.(*Boolean); ok {
		return b.value == other.value
	}
	return false
}

func (b *Boolean) String() string {
	if b.value {
		return "true"
	}
	return "false"
}

func (b *Boolean) Source() string {
	return b.String()
}

func (b *Boolean) eval(ctx *Context) (Value, bool) {
	return b, true
}

func (b *Boolean) exec(ctx *Context) bool {
	ctx.Push(b)
	return true
}

func booleanWords() map[string]NativeFn {
	return map[string]NativeFn{
		"and": wBooleanAnd,
		"or":  wBooleanOr,
		"xor": wBooleanXor,
		"not": wBooleanNot,
		"?":   wBooleanChoose,
	}
}

func wBooleanAnd(ctx *Context) {
	if a, ok := ctx.PopBoolean(); ok {
		if b, ok := ctx.PopBoolean(); ok {
			ctx.PushBoolean(a && b)
		}
	}
}

func wBooleanOr(ctx *Context) {
	if a, ok := ctx.PopBoolean(); ok {
		if b, ok := ctx.PopBoolean(); ok {
			ctx.PushBoolean(a || b)
		}
	}
}

func wBooleanXor(ctx *Context) {
	if a, ok := ctx.PopBoolean(); ok {
		if b, ok := ctx.PopBoolean(); ok {
			ctx.PushBoolean(a != b)
		}
	}
}

func wBooleanNot(ctx *Context) {
	if a, ok := ctx.PopBoolean(); ok {
		ctx.PushBoolean(!a)
	}
}

// wBooleanChoose picks between two values: ( a b boolean -- a|b ), leaving
// a when the boolean is true.
func wBooleanChoose(ctx *Context) {
	cond, ok := ctx.PopBoolean()
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
	if cond {
		ctx.Push(a)
	} else {
		ctx.Push(b)
	}
}
