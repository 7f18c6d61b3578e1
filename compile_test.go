package plorth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plorth/plorth"
	"github.com/plorth/plorth/testutils"
)

// compileOne compiles source expected to contain a single element and
// returns that element.
func compileOne(t *testing.T, source string) plorth.Value {
	t.Helper()
	ctx := testutils.TestingRuntime().NewContext()
	q := ctx.Compile(source, "")
	require.NotNil(t, q, "%q failed to compile: %v", source, ctx.Error())
	require.Len(t, q.Elements(), 1, "%q compiled to %d elements", source, len(q.Elements()))
	return q.Elements()[0]
}

func TestCompileLiterals(t *testing.T) {
	rt := testutils.TestingRuntime()
	cases := map[string]struct {
		source string
		want   plorth.Value
	}{
		"Int":            {`42`, rt.NewInt(42)},
		"NegativeInt":    {`-42`, rt.NewInt(-42)},
		"Real":           {`3.5`, rt.NewReal(3.5)},
		"Exponent":       {`1e3`, rt.NewReal(1000)},
		"String":         {`"abc"`, rt.NewString("abc")},
		"EmptyString":    {`""`, rt.NewString("")},
		"Escapes":        {`"\"\\\/\b\f\n\r\t"`, rt.NewString("\"\\/\b\f\n\r\t")},
		"UnicodeEscape":  {`"\u00e4"`, rt.NewString("ä")},
		"SurrogatePair":  {`"\ud83d\ude00"`, rt.NewString("\U0001f600")},
		"EmptyArray":     {`[ ]`, rt.NewArray(nil)},
		"Array":          {`[1, 2, 3]`, rt.NewArray([]plorth.Value{rt.NewInt(1), rt.NewInt(2), rt.NewInt(3)})},
		"TrailingComma":  {`[1, 2,]`, rt.NewArray([]plorth.Value{rt.NewInt(1), rt.NewInt(2)})},
		"NestedArray":    {`[[1], []]`, rt.NewArray([]plorth.Value{rt.NewArray([]plorth.Value{rt.NewInt(1)}), rt.NewArray(nil)})},
		"EmptyObject":    {`{ }`, rt.NewObject(nil)},
		"Object":         {`{"a": 1, "b": "x"}`, rt.NewObject(map[string]plorth.Value{"a": rt.NewInt(1), "b": rt.NewString("x")})},
		"ObjectTrailing": {`{"a": 1,}`, rt.NewObject(map[string]plorth.Value{"a": rt.NewInt(1)})},
		"Symbol":         {`foo`, rt.NewSymbol("foo")},
		"OperatorSymbol": {`>=`, rt.NewSymbol(">=")},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			got := compileOne(t, c.source)
			if !plorth.Equal(got, c.want) {
				t.Errorf("%q compiled to %s, want %s", c.source, plorth.ToSource(got), plorth.ToSource(c.want))
			}
		})
	}
}

func TestCompileQuoteLiteral(t *testing.T) {
	v := compileOne(t, `( dup * )`)
	q, ok := v.(*plorth.Quote)
	require.True(t, ok, "quote literal compiled to %T", v)
	require.Len(t, q.Elements(), 2)
	assert.Equal(t, "dup", plorth.ToString(q.Elements()[0]))
	assert.Equal(t, "*", plorth.ToString(q.Elements()[1]))
}

func TestCompileWordLiteral(t *testing.T) {
	v := compileOne(t, `: square ( dup * ) ;`)
	w, ok := v.(*plorth.Word)
	require.True(t, ok, "word definition compiled to %T", v)
	assert.Equal(t, "square", w.Symbol().ID())
	// A body of a single quote literal becomes the word's quote, so the
	// definition calls dup and * instead of pushing a quote.
	require.Len(t, w.Quote().Elements(), 2)

	v = compileOne(t, `: inc 1 + ;`)
	w, ok = v.(*plorth.Word)
	require.True(t, ok)
	assert.Equal(t, "inc", w.Symbol().ID())
	require.Len(t, w.Quote().Elements(), 2)
}

func TestCompileCommentsAndSpace(t *testing.T) {
	ctx := testutils.TestingRuntime().NewContext()
	q := ctx.Compile("# leading comment\n1 # trailing\n\t 2\r\n# last", "")
	require.NotNil(t, q, "error: %v", ctx.Error())
	assert.Len(t, q.Elements(), 2)
}

func TestCompileEmptySource(t *testing.T) {
	ctx := testutils.TestingRuntime().NewContext()
	q := ctx.Compile("", "")
	require.NotNil(t, q)
	assert.Empty(t, q.Elements())
}

func TestCompileSymbolPosition(t *testing.T) {
	ctx := testutils.TestingRuntime().NewContext()
	q := ctx.Compile("\n  foo", "test.plorth")
	require.NotNil(t, q)
	require.Len(t, q.Elements(), 1)
	sym, ok := q.Elements()[0].(*plorth.Symbol)
	require.True(t, ok)
	pos := sym.Position()
	require.NotNil(t, pos)
	assert.Equal(t, "test.plorth", pos.Filename)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 3, pos.Column)
}

func TestCompileErrors(t *testing.T) {
	cases := map[string]struct {
		source string
		code   plorth.ErrorCode
	}{
		"UnterminatedString": {`"abc`, plorth.CodeSyntax},
		"UnterminatedQuote":  {`( 1 2`, plorth.CodeSyntax},
		"UnterminatedArray":  {`[1, 2`, plorth.CodeSyntax},
		"UnterminatedObject": {`{"a": 1`, plorth.CodeSyntax},
		"UnterminatedWord":   {`: f 1`, plorth.CodeSyntax},
		"MissingWordName":    {`: ;`, plorth.CodeSyntax},
		"BadEscape":          {`"\q"`, plorth.CodeSyntax},
		"BadUnicodeEscape":   {`"\u00zz"`, plorth.CodeSyntax},
		"LoneSurrogate":      {`"\ud83d"`, plorth.CodeSyntax},
		"UnexpectedClose":    {`)`, plorth.CodeSyntax},
		"UnexpectedComma":    {`,`, plorth.CodeSyntax},
		"KeyNotString":       {`{a: 1}`, plorth.CodeSyntax},
		"MissingColon":       {`{"a" 1}`, plorth.CodeSyntax},
		"IntegerOverflow":    {`9223372036854775808`, plorth.CodeValue},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			ctx := testutils.TestingRuntime().NewContext()
			q := ctx.Compile(c.source, "bad.plorth")
			require.Nil(t, q, "%q compiled successfully", c.source)
			err := ctx.Error()
			require.NotNil(t, err, "%q left no error", c.source)
			assert.Equal(t, c.code, err.Code(), "%q reported %v", c.source, err)
			require.NotNil(t, err.Position(), "%q reported no position", c.source)
			assert.Equal(t, "bad.plorth", err.Position().Filename)
			assert.Contains(t, err.String(), "bad.plorth:")
		})
	}
}
