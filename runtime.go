package plorth

import (
	"io"
	"os"
)

// Runtime is the per-interpreter root. It owns the boolean singletons, the
// global dictionary and the prototype objects, and acts as the factory for
// values and contexts. All state is read-mostly after construction;
// mutations of the global dictionary must be externally serialized when
// contexts share a runtime.
type Runtime struct {
	dictionary map[string]Value
	output     io.Writer

	trueValue  *Boolean
	falseValue *Boolean

	arrayProto   *Object
	booleanProto *Object
	errorProto   *Object
	numberProto  *Object
	objectProto  *Object
	quoteProto   *Object
	stringProto  *Object
	symbolProto  *Object
}

// RuntimeOption configures a runtime under construction.
type RuntimeOption func(*runtimeConfig)

type runtimeConfig struct {
	output         io.Writer
	globals        map[string]NativeFn
	prototypeWords map[Type]map[string]NativeFn
}

// WithOutput directs the output of the print, println and emit words to w
// instead of standard output.
func WithOutput(w io.Writer) RuntimeOption {
	return func(cfg *runtimeConfig) {
		cfg.output = w
	}
}

// WithGlobalWords registers additional native words into the global
// dictionary, overriding default words of the same name.
func WithGlobalWords(words map[string]NativeFn) RuntimeOption {
	return func(cfg *runtimeConfig) {
		for name, fn := range words {
			cfg.globals[name] = fn
		}
	}
}

// WithPrototypeWords registers additional native words into the prototype
// of the given type, overriding default words of the same name.
func WithPrototypeWords(t Type, words map[string]NativeFn) RuntimeOption {
	return func(cfg *runtimeConfig) {
		merged := cfg.prototypeWords[t]
		if merged == nil {
			merged = map[string]NativeFn{}
			cfg.prototypeWords[t] = merged
		}
		for name, fn := range words {
			merged[name] = fn
		}
	}
}

// NewRuntime constructs a runtime: the boolean singletons, the global
// dictionary and a prototype object per type, each populated by wrapping
// native callbacks into native quotes. Every prototype is also bound into
// the global dictionary as {"prototype": <proto>} under its type name, so
// source code can reach prototypes by name.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	cfg := &runtimeConfig{
		output:         os.Stdout,
		globals:        globalWords(),
		prototypeWords: map[Type]map[string]NativeFn{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	rt := &Runtime{
		dictionary: map[string]Value{},
		output:     cfg.output,
		trueValue:  &Boolean{value: true},
		falseValue: &Boolean{value: false},
	}

	for name, fn := range cfg.globals {
		rt.dictionary[name] = rt.NewNativeQuote(fn)
	}

	proto := func(t Type, words map[string]NativeFn) *Object {
		for name, fn := range cfg.prototypeWords[t] {
			words[name] = fn
		}
		return rt.makePrototype(t.String(), words)
	}
	rt.arrayProto = proto(TypeArray, arrayWords())
	rt.booleanProto = proto(TypeBoolean, booleanWords())
	rt.errorProto = proto(TypeError, errorWords())
	rt.numberProto = proto(TypeNumber, numberWords())
	rt.objectProto = proto(TypeObject, objectWords())
	rt.quoteProto = proto(TypeQuote, quoteWords())
	rt.stringProto = proto(TypeString, stringWords())
	rt.symbolProto = proto(TypeSymbol, symbolWords())

	return rt
}

// makePrototype builds a prototype object from a native word definition
// and publishes it into the global dictionary under the given name.
func (rt *Runtime) makePrototype(name string, definition map[string]NativeFn) *Object {
	properties := make(map[string]Value, len(definition))
	for word, fn := range definition {
		properties[word] = rt.NewNativeQuote(fn)
	}
	prototype := rt.NewObject(properties)
	rt.dictionary[name] = rt.NewObject(map[string]Value{"prototype": prototype})
	return prototype
}

// Dictionary returns the global word table. Entries are quotes for words
// and objects for the published prototypes; embedders may add or replace
// entries.
func (rt *Runtime) Dictionary() map[string]Value { return rt.dictionary }

// Prototype returns the prototype object of the given type tag. Word
// values share the object prototype with null.
func (rt *Runtime) Prototype(t Type) *Object {
	switch t {
	case TypeArray:
		return rt.arrayProto
	case TypeBoolean:
		return rt.booleanProto
	case TypeError:
		return rt.errorProto
	case TypeNumber:
		return rt.numberProto
	case TypeQuote:
		return rt.quoteProto
	case TypeString:
		return rt.stringProto
	case TypeSymbol:
		return rt.symbolProto
	}
	return rt.objectProto
}

// Output returns the writer used by the print, println and emit words.
func (rt *Runtime) Output() io.Writer { return rt.output }
