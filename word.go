package plorth

import "strings"

// Word is a named binding in its unapplied form: a pair of a symbol and a
// quote. Executing a word installs the pair into the context's local
// dictionary and leaves the stack untouched.
type Word struct {
	symbol *Symbol
	quote  *Quote
}

// NewWord creates a word value from a symbol and a quote.
func (rt *Runtime) NewWord(symbol *Symbol, quote *Quote) *Word {
	return &Word{symbol: symbol, quote: quote}
}

// Symbol returns the name half of the pair.
func (w *Word) Symbol() *Symbol { return w.symbol }

// Quote returns the body half of the pair.
func (w *Word) Quote() *Quote { return w.quote }

func (w *Word) Type() Type { return TypeWord }

// Equals compares the symbol and quote pairs.
func (w *Word) Equals(that Value) bool {
	other, ok := that.(*Word)
	return ok && w.symbol.Equals(other.symbol) && w.quote.Equals(other.quote)
}

func (w *Word) String() string {
	return w.Source()
}

func (w *Word) Source() string {
	var b strings.Builder
	b.WriteString(": ")
	b.WriteString(w.symbol.ID())
	for _, elem := range w.quote.Elements() {
		b.WriteByte(' ')
		b.WriteString(ToSource(elem))
	}
	b.WriteString(" ;")
	return b.String()
}

func (w *Word) eval(ctx *Context) (Value, bool) {
	return w, true
}

func (w *Word) exec(ctx *Context) bool {
	ctx.Define(w.symbol.ID(), w.quote)
	return true
}
