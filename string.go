package plorth

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// rope is the internal representation of string contents. Three strategies
// exist: a flat buffer of code points, a lazy concatenation of two ropes,
// and a view into a slice of another rope. All are immutable.
type rope interface {
	length() int
	at(i int) rune
}

type flatRope []rune

func (r flatRope) length() int   { return len(r) }
func (r flatRope) at(i int) rune { return r[i] }

type concatRope struct {
	left, right rope
	leftLen     int
}

func (r concatRope) length() int { return r.leftLen + r.right.length() }

func (r concatRope) at(i int) rune {
	if i < r.leftLen {
		return r.left.at(i)
	}
	return r.right.at(i - r.leftLen)
}

type subRope struct {
	base   rope
	offset int
	count  int
}

func (r subRope) length() int   { return r.count }
func (r subRope) at(i int) rune { return r.base.at(r.offset + i) }

// String is a string value: an immutable sequence of Unicode code points
// accessed by index and length.
type String struct {
	rope rope
}

// NewString creates a string value from Go string contents.
func (rt *Runtime) NewString(text string) *String {
	return &String{rope: flatRope(text)}
}

// NewStringRunes creates a string value from a sequence of code points. The
// slice is not copied; the caller must not modify it afterwards.
func (rt *Runtime) NewStringRunes(chars []rune) *String {
	return &String{rope: flatRope(chars)}
}

// NewConcatString creates a lazy concatenation of two strings. When either
// side is empty the other is returned unchanged.
func (rt *Runtime) NewConcatString(left, right *String) *String {
	if left.Empty() {
		return right
	}
	if right.Empty() {
		return left
	}
	return &String{rope: concatRope{left: left.rope, right: right.rope, leftLen: left.Length()}}
}

// NewSubstring creates a view into a slice of a string without copying its
// contents.
func (rt *Runtime) NewSubstring(base *String, offset, count int) *String {
	return &String{rope: subRope{base: base.rope, offset: offset, count: count}}
}

// Length returns the number of code points in the string.
func (s *String) Length() int { return s.rope.length() }

// At returns the code point at the given offset.
func (s *String) At(i int) rune { return s.rope.at(i) }

// Empty reports whether the string has no contents.
func (s *String) Empty() bool { return s.Length() == 0 }

func (s *String) Type() Type { return TypeString }

// Equals compares by code point sequence, regardless of representation.
func (s *String) Equals(that Value) bool {
	other, ok := that.(*String)
	if !ok {
		return false
	}
	n := s.Length()
	if n != other.Length() {
		return false
	}
	for i := 0; i < n; i++ {
		if s.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

// String materializes the contents into a flat Go string.
func (s *String) String() string {
	var b strings.Builder
	n := s.Length()
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteRune(s.At(i))
	}
	return b.String()
}

func (s *String) Source() string {
	return jsonStringify(s.String())
}

func (s *String) eval(ctx *Context) (Value, bool) {
	return s, true
}

func (s *String) exec(ctx *Context) bool {
	ctx.Push(s)
	return true
}

func stringWords() map[string]NativeFn {
	return map[string]NativeFn{
		"length":      wStringLength,
		"chars":       wStringChars,
		"runes":       wStringRunes,
		"words":       wStringWords,
		"lines":       wStringLines,
		"space?":      wStringIsSpace,
		"lower-case?": wStringIsLowerCase,
		"upper-case?": wStringIsUpperCase,
		"reverse":     wStringReverse,
		"upper-case":  wStringUpperCase,
		"lower-case":  wStringLowerCase,
		"swap-case":   wStringSwapCase,
		"capitalize":  wStringCapitalize,
		"trim":        wStringTrim,
		"trim-left":   wStringTrimLeft,
		"trim-right":  wStringTrimRight,
		"normalize":   wStringNormalize,
		">number":     wStringToNumber,
		">symbol":     wStringToSymbol,
		"+":           wStringConcat,
		"*":           wStringRepeat,
		"@":           wStringGet,
	}
}

// wStringLength returns the length of the string: ( string -- string number ).
func wStringLength(ctx *Context) {
	if str, ok := ctx.PopString(); ok {
		ctx.Push(str)
		ctx.PushInt(int64(str.Length()))
	}
}

// wStringChars extracts the characters of the string into an array of
// single character substrings: ( string -- string array ).
func wStringChars(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	n := str.Length()
	output := make([]Value, n)
	for i := 0; i < n; i++ {
		output[i] = ctx.Runtime().NewSubstring(str, i, 1)
	}
	ctx.Push(str)
	ctx.PushArray(output)
}

// wStringRunes extracts the code points of the string into an array of
// numbers: ( string -- string array ).
func wStringRunes(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	n := str.Length()
	output := make([]Value, n)
	for i := 0; i < n; i++ {
		output[i] = ctx.Runtime().NewInt(int64(str.At(i)))
	}
	ctx.Push(str)
	ctx.PushArray(output)
}

// wStringWords extracts the whitespace separated words of the string into
// an array of substring views: ( string -- string array ).
func wStringWords(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	rt := ctx.Runtime()
	n := str.Length()
	var result []Value
	begin, end := 0, 0
	for i := 0; i < n; i++ {
		if isUnicodeSpace(str.At(i)) {
			if end-begin > 0 {
				result = append(result, rt.NewSubstring(str, begin, end-begin))
			}
			begin, end = i+1, i+1
		} else {
			end++
		}
	}
	if end-begin > 0 {
		result = append(result, rt.NewSubstring(str, begin, end-begin))
	}
	ctx.Push(str)
	ctx.PushArray(result)
}

// wStringLines extracts the lines of the string into an array of substring
// views. \n, \r and \r\n all terminate a line: ( string -- string array ).
func wStringLines(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	rt := ctx.Runtime()
	n := str.Length()
	var result []Value
	begin, end := 0, 0
	for i := 0; i < n; i++ {
		c := str.At(i)
		if i+1 < n && c == '\r' && str.At(i+1) == '\n' {
			result = append(result, rt.NewSubstring(str, begin, end-begin))
			i++
			begin, end = i+1, i+1
		} else if c == '\n' || c == '\r' {
			result = append(result, rt.NewSubstring(str, begin, end-begin))
			begin, end = i+1, i+1
		} else {
			end++
		}
	}
	if end-begin > 0 {
		result = append(result, rt.NewSubstring(str, begin, end-begin))
	}
	ctx.Push(str)
	ctx.PushArray(result)
}

// stringEvery tests every character of the string against a predicate.
// Empty strings give false.
func stringEvery(ctx *Context, predicate func(rune) bool) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	n := str.Length()
	ctx.Push(str)
	if n == 0 {
		ctx.PushBoolean(false)
		return
	}
	for i := 0; i < n; i++ {
		if !predicate(str.At(i)) {
			ctx.PushBoolean(false)
			return
		}
	}
	ctx.PushBoolean(true)
}

// wStringIsSpace: ( string -- string boolean ).
func wStringIsSpace(ctx *Context) {
	stringEvery(ctx, isUnicodeSpace)
}

// wStringIsLowerCase: ( string -- string boolean ).
func wStringIsLowerCase(ctx *Context) {
	stringEvery(ctx, isUnicodeLower)
}

// wStringIsUpperCase: ( string -- string boolean ).
func wStringIsUpperCase(ctx *Context) {
	stringEvery(ctx, isUnicodeUpper)
}

// stringMap builds a new string by mapping each character through f.
func stringMap(ctx *Context, f func(i int, r rune) rune) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	n := str.Length()
	result := make([]rune, n)
	for i := 0; i < n; i++ {
		result[i] = f(i, str.At(i))
	}
	ctx.Push(ctx.Runtime().NewStringRunes(result))
}

// wStringReverse: ( string -- string ).
func wStringReverse(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	n := str.Length()
	result := make([]rune, n)
	for i := 0; i < n; i++ {
		result[n-1-i] = str.At(i)
	}
	ctx.Push(ctx.Runtime().NewStringRunes(result))
}

// wStringUpperCase: ( string -- string ).
func wStringUpperCase(ctx *Context) {
	stringMap(ctx, func(i int, r rune) rune { return unicodeToUpper(r) })
}

// wStringLowerCase: ( string -- string ).
func wStringLowerCase(ctx *Context) {
	stringMap(ctx, func(i int, r rune) rune { return unicodeToLower(r) })
}

// wStringSwapCase turns lower case characters into upper case and vice
// versa: ( string -- string ).
func wStringSwapCase(ctx *Context) {
	stringMap(ctx, func(i int, r rune) rune {
		if isUnicodeLower(r) {
			return unicodeToUpper(r)
		}
		return unicodeToLower(r)
	})
}

// wStringCapitalize upper cases the first character and lower cases the
// rest: ( string -- string ).
func wStringCapitalize(ctx *Context) {
	stringMap(ctx, func(i int, r rune) rune {
		if i == 0 {
			return unicodeToUpper(r)
		}
		return unicodeToLower(r)
	})
}

// wStringTrim strips whitespace from both ends of the string, returning a
// substring view when anything was stripped: ( string -- string ).
func wStringTrim(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	n := str.Length()
	i, j := 0, n
	for i < n && isUnicodeSpace(str.At(i)) {
		i++
	}
	for j > i && isUnicodeSpace(str.At(j-1)) {
		j--
	}
	if i != 0 || j != n {
		ctx.Push(ctx.Runtime().NewSubstring(str, i, j-i))
	} else {
		ctx.Push(str)
	}
}

// wStringTrimLeft: ( string -- string ).
func wStringTrimLeft(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	n := str.Length()
	i := 0
	for i < n && isUnicodeSpace(str.At(i)) {
		i++
	}
	if i != 0 {
		ctx.Push(ctx.Runtime().NewSubstring(str, i, n-i))
	} else {
		ctx.Push(str)
	}
}

// wStringTrimRight: ( string -- string ).
func wStringTrimRight(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	n := str.Length()
	j := n
	for j > 0 && isUnicodeSpace(str.At(j-1)) {
		j--
	}
	if j != n {
		ctx.Push(ctx.Runtime().NewSubstring(str, 0, j))
	} else {
		ctx.Push(str)
	}
}

// wStringNormalize converts the string into Unicode normalization form C:
// ( string -- string ).
func wStringNormalize(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	ctx.Push(ctx.Runtime().NewString(norm.NFC.String(str.String())))
}

// wStringToNumber converts the string into a number, or reports a value
// error when it cannot be converted: ( string -- number ).
func wStringToNumber(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	num, err := ctx.Runtime().ParseNumber(str.String())
	if err != nil {
		ctx.SetError(err)
		return
	}
	ctx.Push(num)
}

// wStringToSymbol converts the string into a symbol: ( string -- symbol ).
func wStringToSymbol(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	ctx.Push(ctx.Runtime().NewSymbol(str.String()))
}

// wStringConcat concatenates two strings: ( string string -- string ).
func wStringConcat(ctx *Context) {
	a, ok := ctx.PopString()
	if !ok {
		return
	}
	b, ok := ctx.PopString()
	if !ok {
		return
	}
	ctx.Push(ctx.Runtime().NewConcatString(b, a))
}

// wStringRepeat repeats the string the given number of times:
// ( number string -- string ).
func wStringRepeat(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	num, ok := ctx.PopNumber()
	if !ok {
		return
	}
	count := num.AsInt()
	if count < 0 {
		count = -count
	}
	n := str.Length()
	result := make([]rune, 0, n*int(count))
	for ; count > 0; count-- {
		for i := 0; i < n; i++ {
			result = append(result, str.At(i))
		}
	}
	ctx.Push(ctx.Runtime().NewStringRunes(result))
}

// wStringGet retrieves a character at the given index. Negative indices
// count backwards from the end; out of bounds indices report a range
// error: ( number string -- string string ).
func wStringGet(ctx *Context) {
	str, ok := ctx.PopString()
	if !ok {
		return
	}
	num, ok := ctx.PopNumber()
	if !ok {
		return
	}
	n := int64(str.Length())
	index := num.AsInt()
	if index < 0 {
		index += n
	}
	ctx.Push(str)
	if index < 0 || index >= n {
		ctx.RaiseError(CodeRange, "String index out of bounds.")
		return
	}
	ctx.Push(ctx.Runtime().NewSubstring(str, int(index), 1))
}
