package plorth

import "fmt"

// ErrorCode identifies the category of an error value.
type ErrorCode int

const (
	// CodeSyntax is reported by the compiler when it rejects its input.
	CodeSyntax ErrorCode = iota + 1
	// CodeReference is reported when a symbol cannot be resolved.
	CodeReference
	// CodeType is reported when the top of the stack has the wrong type.
	CodeType
	// CodeValue is reported for domain errors, such as parsing a
	// non-numeric string as a number.
	CodeValue
	// CodeRange is reported for stack underflow, indices out of bounds and
	// integer overflow.
	CodeRange
	// CodeUnknown, CodeImport and CodeIO are reserved for embedders.
	CodeUnknown
	CodeImport
	CodeIO
)

// String returns the name of the error code as used in serialized errors.
func (c ErrorCode) String() string {
	switch c {
	case CodeSyntax:
		return "syntax"
	case CodeReference:
		return "reference"
	case CodeType:
		return "type"
	case CodeValue:
		return "value"
	case CodeRange:
		return "range"
	case CodeImport:
		return "import"
	case CodeIO:
		return "io"
	}
	return "unknown"
}

// Error is a first class error value. Errors are not thrown; they are
// stored in a context's error slot where the executor observes them between
// quote elements. Error also implements Go's error interface so embedders
// can return it directly.
type Error struct {
	code     ErrorCode
	message  string
	position *Position
}

// NewError creates a new error value with the given code and message.
func (rt *Runtime) NewError(code ErrorCode, message string) *Error {
	return &Error{code: code, message: message}
}

// NewErrorf creates a new error value with a formatted message.
func (rt *Runtime) NewErrorf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// NewErrorAt creates a new error value carrying a source position.
func (rt *Runtime) NewErrorAt(code ErrorCode, message string, position *Position) *Error {
	return &Error{code: code, message: message, position: position}
}

// Code returns the error's category.
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the error's human readable message.
func (e *Error) Message() string { return e.message }

// Position returns the source position the error occurred at, or nil if it
// is not known.
func (e *Error) Position() *Position { return e.position }

// Type returns TypeError.
func (e *Error) Type() Type { return TypeError }

// Equals tests another value against this error. Errors are equal when
// their codes and messages match; positions are ignored.
func (e *Error) Equals(that Value) bool {
	if other, ok := that.(*Error); ok {
		return e.code == other.code && e.message == other.message
	}
	return false
}

// String serializes the error as <code>: <message>, prefixed with
// <file>:<line>:<column>: when the position is known.
func (e *Error) String() string {
	var out string
	if e.position != nil {
		out = e.position.String() + ": "
	}
	out += e.code.String()
	if e.message != "" {
		out += ": " + e.message
	}
	return out
}

// Source returns the serialized form of the error. Errors have no literal
// syntax, so this is the same as String.
func (e *Error) Source() string {
	return e.String()
}

// Error implements the Go error interface.
func (e *Error) Error() string {
	return e.String()
}

func (e *Error) eval(ctx *Context) (Value, bool) {
	return e, true
}

func (e *Error) exec(ctx *Context) bool {
	ctx.Push(e)
	return true
}

func errorWords() map[string]NativeFn {
	return map[string]NativeFn{
		"code":     wErrorCode,
		"message":  wErrorMessage,
		"position": wErrorPosition,
		"throw":    wErrorThrow,
	}
}

// wErrorCode pushes the name of the error's category:
// ( error -- error string ).
func wErrorCode(ctx *Context) {
	if err, ok := ctx.PopError(); ok {
		ctx.Push(err)
		ctx.PushString(err.Code().String())
	}
}

// wErrorMessage pushes the error's message, or null when it has none:
// ( error -- error string|null ).
func wErrorMessage(ctx *Context) {
	err, ok := ctx.PopError()
	if !ok {
		return
	}
	ctx.Push(err)
	if err.Message() == "" {
		ctx.Push(nil)
		return
	}
	ctx.PushString(err.Message())
}

// wErrorPosition pushes the source position of the error as an object, or
// null when it is not known: ( error -- error object|null ).
func wErrorPosition(ctx *Context) {
	err, ok := ctx.PopError()
	if !ok {
		return
	}
	ctx.Push(err)
	pos := err.Position()
	if pos == nil {
		ctx.Push(nil)
		return
	}
	rt := ctx.Runtime()
	ctx.Push(rt.NewObject(map[string]Value{
		"filename": rt.NewString(pos.Filename),
		"line":     rt.NewInt(int64(pos.Line)),
		"column":   rt.NewInt(int64(pos.Column)),
	}))
}

// wErrorThrow sets the popped error as the context's uncaught error:
// ( error -- ).
func wErrorThrow(ctx *Context) {
	if err, ok := ctx.PopError(); ok {
		ctx.SetError(err)
	}
}
