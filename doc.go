/*
Package plorth implements the core of the Plorth programming language.

Plorth is a concatenative, stack based, dynamically typed scripting
language in the Forth family, extended with first class quotations,
prototype based objects and Unicode strings.

To embed the interpreter, construct a runtime with NewRuntime, obtain a
context from it and compile and run source code against the context:

	rt := plorth.NewRuntime()
	ctx := rt.NewContext()
	if q := ctx.Compile(`1 2 +`, ""); q != nil {
		q.Call(ctx)
	}
	if err := ctx.Error(); err != nil {
		// handle the error
	}
	// ctx.Stack() now holds the result.

Plorth Primer

A program is a sequence of whitespace separated elements. Literals push
themselves onto the data stack; bare tokens are symbols, resolved when
they execute. The canonical greeting

	"Hello, world!" println

pushes a string and then resolves println, which pops the string and
writes it out. Symbols resolve first through the context's local
dictionary, then through the prototype of the value on top of the stack,
then through the runtime's global dictionary, and finally as the literals
true, false, null and numbers. Resolution through the top of the stack is
what gives Plorth its object flavor: in

	1 2 +

the + symbol is found in the number prototype because the top of the
stack is a number, while in

	"abc" "def" +

it is found in the string prototype and concatenates instead.

Quotations group code into first class values without executing it:

	( dup * )

pushes a quote which can be stored, passed around and executed with call.
Words give quotes names:

	: square ( dup * ) ;
	4 square

Executing a word definition installs it into the context's local
dictionary; it does not touch the data stack.

Objects are immutable mappings with prototype inheritance. An object
literal may carry a __proto__ property, which redirects property lookups
for everything the object does not define itself.

Errors are values, not exceptions. When a word fails it stores an error
in the context's error slot and execution of the enclosing quotes stops;
the embedder (or the try word) inspects and clears the slot.
*/
package plorth
