package plorth

import (
	"math"
	"strconv"
	"strings"
)

// Number is a numeric value: either a 64-bit signed integer or a 64-bit
// IEEE 754 double. Arithmetic promotes integer to real when either operand
// is real.
type Number struct {
	real bool
	i    int64
	f    float64
}

// NewInt creates an integer number value.
func (rt *Runtime) NewInt(value int64) *Number {
	return &Number{i: value}
}

// NewReal creates a real number value.
func (rt *Runtime) NewReal(value float64) *Number {
	return &Number{real: true, f: value}
}

// ParseNumber parses textual input into a number value. The result is an
// integer unless the text contains a decimal point or an exponent. Integer
// input which does not fit into 64 bits yields a value error.
func (rt *Runtime) ParseNumber(text string) (*Number, *Error) {
	if !isNumberText(text) {
		return nil, rt.NewErrorf(CodeValue, "Could not convert %q to number.", text)
	}
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, rt.NewErrorf(CodeValue, "Could not convert %q to number.", text)
		}
		return rt.NewReal(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return nil, rt.NewErrorf(CodeValue, "Integer %q is out of range.", text)
		}
		return nil, rt.NewErrorf(CodeValue, "Could not convert %q to number.", text)
	}
	return rt.NewInt(i), nil
}

// isNumberText tests whether text matches the numeric literal syntax:
// optional sign, digits, optional fraction, optional exponent.
func isNumberText(text string) bool {
	s := text
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	digits := func(s string) (int, bool) {
		n := 0
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
		}
		return n, n > 0
	}
	n, ok := digits(s)
	if !ok {
		return false
	}
	s = s[n:]
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		n, ok = digits(s)
		if !ok {
			return false
		}
		s = s[n:]
	}
	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
			s = s[1:]
		}
		n, ok = digits(s)
		if !ok {
			return false
		}
		s = s[n:]
	}
	return len(s) == 0
}

// IsReal reports whether the number is stored as a real.
func (n *Number) IsReal() bool { return n.real }

// AsInt returns the number as an integer, truncating a real value.
func (n *Number) AsInt() int64 {
	if n.real {
		return int64(n.f)
	}
	return n.i
}

// AsReal returns the number as a real.
func (n *Number) AsReal() float64 {
	if n.real {
		return n.f
	}
	return float64(n.i)
}

func (n *Number) Type() Type { return TypeNumber }

// Equals compares by numeric value, promoting integer to real when the
// representations differ.
func (n *Number) Equals(that Value) bool {
	other, ok := that.(*Number)
	if !ok {
		return false
	}
	if n.real || other.real {
		return n.AsReal() == other.AsReal()
	}
	return n.i == other.i
}

func (n *Number) String() string {
	if !n.real {
		return strconv.FormatInt(n.i, 10)
	}
	if math.IsInf(n.f, 1) {
		return "inf"
	}
	if math.IsInf(n.f, -1) {
		return "-inf"
	}
	if math.IsNaN(n.f) {
		return "nan"
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

func (n *Number) Source() string {
	return n.String()
}

func (n *Number) eval(ctx *Context) (Value, bool) {
	return n, true
}

func (n *Number) exec(ctx *Context) bool {
	ctx.Push(n)
	return true
}

func numberWords() map[string]NativeFn {
	return map[string]NativeFn{
		"+":     wNumberAdd,
		"-":     wNumberSub,
		"*":     wNumberMul,
		"/":     wNumberDiv,
		"%":     wNumberMod,
		"<":     wNumberLt,
		">":     wNumberGt,
		"<=":    wNumberLe,
		">=":    wNumberGe,
		"abs":   wNumberAbs,
		"neg":   wNumberNeg,
		"min":   wNumberMin,
		"max":   wNumberMax,
		"ceil":  wNumberCeil,
		"floor": wNumberFloor,
		"round": wNumberRound,
		"times": wNumberTimes,
	}
}

// popBinaryNumbers pops the two operands of a binary number word. The top
// of the stack is the right hand operand.
func popBinaryNumbers(ctx *Context) (lhs, rhs *Number, ok bool) {
	rhs, ok = ctx.PopNumber()
	if !ok {
		return nil, nil, false
	}
	lhs, ok = ctx.PopNumber()
	if !ok {
		return nil, nil, false
	}
	return lhs, rhs, true
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) == (b > 0) {
		return c, true
	}
	return 0, false
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) == (b > 0) {
		return c, true
	}
	return 0, false
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func wNumberAdd(ctx *Context) {
	a, b, ok := popBinaryNumbers(ctx)
	if !ok {
		return
	}
	if a.real || b.real {
		ctx.PushReal(a.AsReal() + b.AsReal())
		return
	}
	if c, ok := addInt64(a.i, b.i); ok {
		ctx.PushInt(c)
	} else {
		ctx.RaiseError(CodeRange, "Integer overflow.")
	}
}

func wNumberSub(ctx *Context) {
	a, b, ok := popBinaryNumbers(ctx)
	if !ok {
		return
	}
	if a.real || b.real {
		ctx.PushReal(a.AsReal() - b.AsReal())
		return
	}
	if c, ok := subInt64(a.i, b.i); ok {
		ctx.PushInt(c)
	} else {
		ctx.RaiseError(CodeRange, "Integer overflow.")
	}
}

func wNumberMul(ctx *Context) {
	a, b, ok := popBinaryNumbers(ctx)
	if !ok {
		return
	}
	if a.real || b.real {
		ctx.PushReal(a.AsReal() * b.AsReal())
		return
	}
	if c, ok := mulInt64(a.i, b.i); ok {
		ctx.PushInt(c)
	} else {
		ctx.RaiseError(CodeRange, "Integer overflow.")
	}
}

// wNumberDiv always divides as reals; division by zero follows IEEE 754.
func wNumberDiv(ctx *Context) {
	a, b, ok := popBinaryNumbers(ctx)
	if !ok {
		return
	}
	ctx.PushReal(a.AsReal() / b.AsReal())
}

func wNumberMod(ctx *Context) {
	a, b, ok := popBinaryNumbers(ctx)
	if !ok {
		return
	}
	if a.real || b.real {
		ctx.PushReal(math.Mod(a.AsReal(), b.AsReal()))
		return
	}
	if b.i == 0 {
		ctx.RaiseError(CodeRange, "Division by zero.")
		return
	}
	ctx.PushInt(a.i % b.i)
}

func compareNumbers(a, b *Number) int {
	if a.real || b.real {
		x, y := a.AsReal(), b.AsReal()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	switch {
	case a.i < b.i:
		return -1
	case a.i > b.i:
		return 1
	}
	return 0
}

func wNumberLt(ctx *Context) {
	if a, b, ok := popBinaryNumbers(ctx); ok {
		ctx.PushBoolean(compareNumbers(a, b) < 0)
	}
}

func wNumberGt(ctx *Context) {
	if a, b, ok := popBinaryNumbers(ctx); ok {
		ctx.PushBoolean(compareNumbers(a, b) > 0)
	}
}

func wNumberLe(ctx *Context) {
	if a, b, ok := popBinaryNumbers(ctx); ok {
		ctx.PushBoolean(compareNumbers(a, b) <= 0)
	}
}

func wNumberGe(ctx *Context) {
	if a, b, ok := popBinaryNumbers(ctx); ok {
		ctx.PushBoolean(compareNumbers(a, b) >= 0)
	}
}

func wNumberAbs(ctx *Context) {
	n, ok := ctx.PopNumber()
	if !ok {
		return
	}
	if n.real {
		ctx.PushReal(math.Abs(n.f))
		return
	}
	if n.i == math.MinInt64 {
		ctx.RaiseError(CodeRange, "Integer overflow.")
		return
	}
	if n.i < 0 {
		ctx.PushInt(-n.i)
	} else {
		ctx.Push(n)
	}
}

func wNumberNeg(ctx *Context) {
	n, ok := ctx.PopNumber()
	if !ok {
		return
	}
	if n.real {
		ctx.PushReal(-n.f)
		return
	}
	if n.i == math.MinInt64 {
		ctx.RaiseError(CodeRange, "Integer overflow.")
		return
	}
	ctx.PushInt(-n.i)
}

func wNumberMin(ctx *Context) {
	if a, b, ok := popBinaryNumbers(ctx); ok {
		if compareNumbers(a, b) <= 0 {
			ctx.Push(a)
		} else {
			ctx.Push(b)
		}
	}
}

func wNumberMax(ctx *Context) {
	if a, b, ok := popBinaryNumbers(ctx); ok {
		if compareNumbers(a, b) >= 0 {
			ctx.Push(a)
		} else {
			ctx.Push(b)
		}
	}
}

func wNumberCeil(ctx *Context) {
	if n, ok := ctx.PopNumber(); ok {
		if n.real {
			ctx.PushReal(math.Ceil(n.f))
		} else {
			ctx.Push(n)
		}
	}
}

func wNumberFloor(ctx *Context) {
	if n, ok := ctx.PopNumber(); ok {
		if n.real {
			ctx.PushReal(math.Floor(n.f))
		} else {
			ctx.Push(n)
		}
	}
}

func wNumberRound(ctx *Context) {
	if n, ok := ctx.PopNumber(); ok {
		if n.real {
			ctx.PushReal(math.Round(n.f))
		} else {
			ctx.Push(n)
		}
	}
}

// wNumberTimes executes a quote a fixed number of times:
// ( quote number -- ).
func wNumberTimes(ctx *Context) {
	n, ok := ctx.PopNumber()
	if !ok {
		return
	}
	q, ok := ctx.PopQuote()
	if !ok {
		return
	}
	for i := int64(0); i < n.AsInt(); i++ {
		if !q.Call(ctx) {
			return
		}
	}
}
