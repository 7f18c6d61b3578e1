package plorth

// Symbol is an identifier, with an optional source position when it was
// produced by the compiler. Symbols resolve to values or executable quotes
// at execution time.
type Symbol struct {
	id       string
	position *Position
}

// NewSymbol creates a symbol value from an identifier.
func (rt *Runtime) NewSymbol(id string) *Symbol {
	return &Symbol{id: id}
}

// NewSymbolAt creates a symbol value carrying a source position.
func (rt *Runtime) NewSymbolAt(id string, position *Position) *Symbol {
	return &Symbol{id: id, position: position}
}

// ID returns the identifier of the symbol.
func (s *Symbol) ID() string { return s.id }

// Position returns the source position the symbol was compiled at, or nil.
func (s *Symbol) Position() *Position { return s.position }

func (s *Symbol) Type() Type { return TypeSymbol }

// Equals compares symbols by identifier.
func (s *Symbol) Equals(that Value) bool {
	if other, ok := that.(*Symbol); ok {
		return s.id == other.id
	}
	return false
}

func (s *Symbol) String() string { return s.id }

func (s *Symbol) Source() string { return s.id }

// eval resolves the symbol in a data position. Only literals are allowed
// there: null, true, false and numbers. Anything else is a reference
// error, since words cannot be called in the middle of a literal.
func (s *Symbol) eval(ctx *Context) (Value, bool) {
	switch s.id {
	case "null":
		return nil, true
	case "true":
		return ctx.Runtime().NewBoolean(true), true
	case "false":
		return ctx.Runtime().NewBoolean(false), true
	}
	if isNumberText(s.id) {
		num, err := ctx.Runtime().ParseNumber(s.id)
		if err != nil {
			ctx.SetError(err)
			return nil, false
		}
		return num, true
	}
	ctx.SetError(ctx.Runtime().NewErrorAt(CodeReference, "Unrecognized word: "+s.id, s.position))
	return nil, false
}

// exec resolves and executes the symbol. Resolution order: the context's
// local dictionary, the prototype of the top of the stack, the runtime's
// global dictionary, the literal tokens true / false / null / drop, and
// finally numeric literal text. A resolved quote is called; any other
// value is pushed.
func (s *Symbol) exec(ctx *Context) bool {
	rt := ctx.Runtime()
	if q, ok := ctx.Word(s.id); ok {
		return q.Call(ctx)
	}
	if top, ok := ctx.Peek(); ok {
		proto := PrototypeOf(rt, top)
		if val, found := proto.Property(rt, s.id, true); found {
			if q, isQuote := val.(*Quote); isQuote {
				return q.Call(ctx)
			}
			ctx.Push(val)
			return true
		}
	}
	if val, ok := rt.dictionary[s.id]; ok {
		if q, isQuote := val.(*Quote); isQuote {
			return q.Call(ctx)
		}
		ctx.Push(val)
		return true
	}
	switch s.id {
	case "true":
		ctx.PushBoolean(true)
		return true
	case "false":
		ctx.PushBoolean(false)
		return true
	case "null":
		ctx.Push(nil)
		return true
	case "drop":
		_, ok := ctx.Pop()
		return ok
	}
	if isNumberText(s.id) {
		num, err := rt.ParseNumber(s.id)
		if err != nil {
			ctx.SetError(err)
			return false
		}
		ctx.Push(num)
		return true
	}
	ctx.SetError(rt.NewErrorAt(CodeReference, "Unrecognized word: "+s.id, s.position))
	return false
}

func symbolWords() map[string]NativeFn {
	return map[string]NativeFn{
		"position": wSymbolPosition,
		"call":     wSymbolCall,
		">string":  wSymbolToString,
	}
}

// wSymbolPosition pushes the source position of the symbol as an object,
// or null when the position is not known: ( symbol -- symbol object|null ).
func wSymbolPosition(ctx *Context) {
	sym, ok := ctx.PopSymbol()
	if !ok {
		return
	}
	ctx.Push(sym)
	pos := sym.Position()
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

// wSymbolCall pops the symbol and executes it: ( symbol -- ... ).
func wSymbolCall(ctx *Context) {
	sym, ok := ctx.PopSymbol()
	if !ok {
		return
	}
	sym.exec(ctx)
}

// wSymbolToString: ( symbol -- string ).
func wSymbolToString(ctx *Context) {
	sym, ok := ctx.PopSymbol()
	if !ok {
		return
	}
	ctx.PushString(sym.ID())
}
