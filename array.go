package plorth

import "strings"

// Array is an ordered, immutable sequence of values. Updates allocate a
// new array.
type Array struct {
	elements []Value
}

// NewArray creates an array value from the given elements. The slice is
// not copied; the caller must not modify it afterwards.
func (rt *Runtime) NewArray(elements []Value) *Array {
	return &Array{elements: elements}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elements) }

// At returns the element at the given index.
func (a *Array) At(i int) Value { return a.elements[i] }

// Elements returns the element slice. The caller must not modify it.
func (a *Array) Elements() []Value { return a.elements }

func (a *Array) Type() Type { return TypeArray }

// Equals compares arrays by pairwise equality of equal length sequences.
func (a *Array) Equals(that Value) bool {
	other, ok := that.(*Array)
	if !ok || len(a.elements) != len(other.elements) {
		return false
	}
	for i, elem := range a.elements {
		if !Equal(elem, other.elements[i]) {
			return false
		}
	}
	return true
}

func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, elem := range a.elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ToString(elem))
	}
	b.WriteByte(']')
	return b.String()
}

func (a *Array) Source() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, elem := range a.elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ToSource(elem))
	}
	b.WriteByte(']')
	return b.String()
}

// eval evaluates each element, so that symbols inside an array literal
// resolve to the literals they name.
func (a *Array) eval(ctx *Context) (Value, bool) {
	elements := make([]Value, len(a.elements))
	for i, elem := range a.elements {
		val, ok := Eval(ctx, elem)
		if !ok {
			return nil, false
		}
		elements[i] = val
	}
	return ctx.Runtime().NewArray(elements), true
}

func (a *Array) exec(ctx *Context) bool {
	val, ok := a.eval(ctx)
	if !ok {
		return false
	}
	ctx.Push(val)
	return true
}

func arrayWords() map[string]NativeFn {
	return map[string]NativeFn{
		"length":    wArrayLength,
		"empty?":    wArrayIsEmpty,
		"reverse":   wArrayReverse,
		"includes?": wArrayIncludes,
		"index-of":  wArrayIndexOf,
		"first":     wArrayFirst,
		"last":      wArrayLast,
		"+":         wArrayConcat,
		"@":         wArrayGet,
		"for-each":  wArrayForEach,
		"map":       wArrayMap,
		"filter":    wArrayFilter,
		"join":      wArrayJoin,
		">quote":    wArrayToQuote,
	}
}

// wArrayLength: ( array -- array number ).
func wArrayLength(ctx *Context) {
	if arr, ok := ctx.PopArray(); ok {
		ctx.Push(arr)
		ctx.PushInt(int64(arr.Len()))
	}
}

// wArrayIsEmpty: ( array -- array boolean ).
func wArrayIsEmpty(ctx *Context) {
	if arr, ok := ctx.PopArray(); ok {
		ctx.Push(arr)
		ctx.PushBoolean(arr.Len() == 0)
	}
}

// wArrayReverse: ( array -- array ).
func wArrayReverse(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	n := arr.Len()
	result := make([]Value, n)
	for i := 0; i < n; i++ {
		result[n-1-i] = arr.At(i)
	}
	ctx.PushArray(result)
}

// wArrayIncludes tests whether the array contains a value equal to the
// given one: ( any array -- boolean ).
func wArrayIncludes(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	val, ok := ctx.Pop()
	if !ok {
		return
	}
	for _, elem := range arr.Elements() {
		if Equal(elem, val) {
			ctx.PushBoolean(true)
			return
		}
	}
	ctx.PushBoolean(false)
}

// wArrayIndexOf finds the index of the first element equal to the given
// value, or null when there is none: ( any array -- number|null ).
func wArrayIndexOf(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	val, ok := ctx.Pop()
	if !ok {
		return
	}
	for i, elem := range arr.Elements() {
		if Equal(elem, val) {
			ctx.PushInt(int64(i))
			return
		}
	}
	ctx.Push(nil)
}

// wArrayFirst: ( array -- any ); range error on an empty array.
func wArrayFirst(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	if arr.Len() == 0 {
		ctx.RaiseError(CodeRange, "Array is empty.")
		return
	}
	ctx.Push(arr.At(0))
}

// wArrayLast: ( array -- any ); range error on an empty array.
func wArrayLast(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	if arr.Len() == 0 {
		ctx.RaiseError(CodeRange, "Array is empty.")
		return
	}
	ctx.Push(arr.At(arr.Len() - 1))
}

// wArrayConcat: ( array array -- array ).
func wArrayConcat(ctx *Context) {
	a, ok := ctx.PopArray()
	if !ok {
		return
	}
	b, ok := ctx.PopArray()
	if !ok {
		return
	}
	result := make([]Value, 0, a.Len()+b.Len())
	result = append(result, b.Elements()...)
	result = append(result, a.Elements()...)
	ctx.PushArray(result)
}

// wArrayGet retrieves an element at the given index. Negative indices
// count backwards from the end: ( number array -- array any ).
func wArrayGet(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	num, ok := ctx.PopNumber()
	if !ok {
		return
	}
	n := int64(arr.Len())
	index := num.AsInt()
	if index < 0 {
		index += n
	}
	ctx.Push(arr)
	if index < 0 || index >= n {
		ctx.RaiseError(CodeRange, "Array index out of bounds.")
		return
	}
	ctx.Push(arr.At(int(index)))
}

// wArrayForEach runs a quote once for each element with the element on the
// stack: ( quote array -- ... ).
func wArrayForEach(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	q, ok := ctx.PopQuote()
	if !ok {
		return
	}
	for _, elem := range arr.Elements() {
		ctx.Push(elem)
		if !q.Call(ctx) {
			return
		}
	}
}

// wArrayMap builds a new array from the results of running a quote on each
// element: ( quote array -- array ).
func wArrayMap(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	q, ok := ctx.PopQuote()
	if !ok {
		return
	}
	result := make([]Value, 0, arr.Len())
	for _, elem := range arr.Elements() {
		ctx.Push(elem)
		if !q.Call(ctx) {
			return
		}
		val, ok := ctx.Pop()
		if !ok {
			return
		}
		result = append(result, val)
	}
	ctx.PushArray(result)
}

// wArrayFilter builds a new array from the elements for which a quote
// gives true: ( quote array -- array ).
func wArrayFilter(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	q, ok := ctx.PopQuote()
	if !ok {
		return
	}
	var result []Value
	for _, elem := range arr.Elements() {
		ctx.Push(elem)
		if !q.Call(ctx) {
			return
		}
		keep, ok := ctx.PopBoolean()
		if !ok {
			return
		}
		if keep {
			result = append(result, elem)
		}
	}
	ctx.PushArray(result)
}

// wArrayJoin joins the string representations of the elements with a
// separator: ( string array -- string ).
func wArrayJoin(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	sep, ok := ctx.PopString()
	if !ok {
		return
	}
	var b strings.Builder
	for i, elem := range arr.Elements() {
		if i > 0 {
			b.WriteString(sep.String())
		}
		b.WriteString(ToString(elem))
	}
	ctx.PushString(b.String())
}

// wArrayToQuote converts the array into a compiled quote whose elements
// are the array's elements: ( array -- quote ).
func wArrayToQuote(ctx *Context) {
	arr, ok := ctx.PopArray()
	if !ok {
		return
	}
	ctx.Push(ctx.Runtime().NewQuote(arr.Elements()))
}
