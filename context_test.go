package plorth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plorth/plorth"
	"github.com/plorth/plorth/testutils"
)

func TestContextStack(t *testing.T) {
	ctx := testutils.TestingRuntime().NewContext()
	require.True(t, ctx.Empty(), "fresh context stack is not empty")

	ctx.PushInt(1)
	ctx.PushString("two")
	require.Equal(t, 2, ctx.Size())

	top, ok := ctx.Peek()
	require.True(t, ok)
	assert.Equal(t, plorth.TypeString, plorth.TypeOf(top))
	assert.Equal(t, 2, ctx.Size(), "Peek changed the stack size")

	val, ok := ctx.Pop()
	require.True(t, ok)
	assert.Equal(t, "two", plorth.ToString(val))

	ctx.Clear()
	assert.True(t, ctx.Empty())
	assert.Nil(t, ctx.Error())
}

func TestPopUnderflow(t *testing.T) {
	ctx := testutils.TestingRuntime().NewContext()
	_, ok := ctx.Pop()
	require.False(t, ok)
	err := ctx.Error()
	require.NotNil(t, err)
	assert.Equal(t, plorth.CodeRange, err.Code())
}

// TestTypedPopMismatch checks that a failing typed pop reports a type
// error naming the expected and actual types and leaves the value on the
// stack.
func TestTypedPopMismatch(t *testing.T) {
	ctx := testutils.TestingRuntime().NewContext()
	ctx.PushInt(1)

	_, ok := ctx.PopString()
	require.False(t, ok)
	err := ctx.Error()
	require.NotNil(t, err)
	assert.Equal(t, plorth.CodeType, err.Code())
	assert.Contains(t, err.Message(), "string")
	assert.Contains(t, err.Message(), "number")
	assert.Equal(t, 1, ctx.Size(), "failing typed pop removed the value")

	ctx.ClearError()
	num, ok := ctx.PopNumber()
	require.True(t, ok)
	assert.EqualValues(t, 1, num.AsInt())
}

func TestTypedPopNull(t *testing.T) {
	ctx := testutils.TestingRuntime().NewContext()
	ctx.Push(nil)
	_, ok := ctx.PopBoolean()
	require.False(t, ok)
	require.NotNil(t, ctx.Error())
	assert.Equal(t, plorth.CodeType, ctx.Error().Code())
	assert.Contains(t, ctx.Error().Message(), "null")
}

// TestErrorLatch checks that a reported error stays pending until it is
// cleared: pops do not consult or clear it, and a later failure replaces
// it with its own error.
func TestErrorLatch(t *testing.T) {
	ctx := testutils.TestingRuntime().NewContext()
	ctx.PushInt(1)

	_, ok := ctx.PopString()
	require.False(t, ok)
	first := ctx.Error()
	require.NotNil(t, first)
	assert.Equal(t, plorth.CodeType, first.Code())

	// The value is still on the stack, so a plain pop succeeds, but the
	// pending error remains visible to the executor.
	_, ok = ctx.Pop()
	assert.True(t, ok)
	_, ok = ctx.Pop()
	require.False(t, ok)
	assert.Equal(t, plorth.CodeRange, ctx.Error().Code(), "later failure overwrites the error")

	ctx.ClearError()
	assert.Nil(t, ctx.Error())
}

func TestLocalDictionary(t *testing.T) {
	rt := testutils.TestingRuntime()
	ctx := rt.NewContext()
	q1 := rt.NewQuote(nil)
	q2 := rt.NewQuote(nil)

	_, ok := ctx.Word("f")
	require.False(t, ok)

	ctx.Define("f", q1)
	got, ok := ctx.Word("f")
	require.True(t, ok)
	assert.Same(t, q1, got)

	// A later binding overwrites an earlier one.
	ctx.Define("f", q2)
	got, _ = ctx.Word("f")
	assert.Same(t, q2, got)

	// Words do not leak between contexts.
	other := rt.NewContext()
	_, ok = other.Word("f")
	assert.False(t, ok)
}

func TestSetErrorNilIgnored(t *testing.T) {
	rt := testutils.TestingRuntime()
	ctx := rt.NewContext()
	ctx.SetError(nil)
	assert.Nil(t, ctx.Error())
	ctx.RaiseError(plorth.CodeIO, "boom")
	ctx.SetError(nil)
	require.NotNil(t, ctx.Error())
	assert.Equal(t, "io: boom", ctx.Error().String())
}
