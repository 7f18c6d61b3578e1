package plorth_test

import (
	"testing"

	"github.com/plorth/plorth"
	"github.com/plorth/plorth/testutils"
)

func TestObjectPropertyLookup(t *testing.T) {
	rt := testutils.TestingRuntime()
	base := rt.NewObject(map[string]plorth.Value{"x": rt.NewInt(1)})
	child := rt.NewObject(map[string]plorth.Value{
		"__proto__": base,
		"y":         rt.NewInt(2),
	})

	if v, ok := child.Property(rt, "y", true); !ok || !plorth.Equal(v, rt.NewInt(2)) {
		t.Error("own property y not found")
	}
	if v, ok := child.Property(rt, "x", true); !ok || !plorth.Equal(v, rt.NewInt(1)) {
		t.Error("inherited property x not found")
	}
	if _, ok := child.Property(rt, "x", false); ok {
		t.Error("inherited property x found with inheritance disabled")
	}
	if _, ok := child.Property(rt, "z", true); ok {
		t.Error("missing property z found")
	}
	// Every object inherits from the runtime's object prototype in the
	// end, so the universal words are reachable.
	if _, ok := child.Property(rt, ">string", true); !ok {
		t.Error("universal word >string not inherited")
	}
}

func TestObjectPrototypeOverride(t *testing.T) {
	rt := testutils.TestingRuntime()
	proto := rt.NewObject(nil)
	obj := rt.NewObject(map[string]plorth.Value{"__proto__": proto})
	if obj.Prototype(rt) != proto {
		t.Error("__proto__ does not override the prototype")
	}
	// A non-object __proto__ falls back to the object prototype.
	bad := rt.NewObject(map[string]plorth.Value{"__proto__": rt.NewInt(1)})
	if bad.Prototype(rt) != rt.Prototype(plorth.TypeObject) {
		t.Error("non-object __proto__ does not fall back")
	}
	plain := rt.NewObject(nil)
	if plain.Prototype(rt) != rt.Prototype(plorth.TypeObject) {
		t.Error("plain object prototype is not the object prototype")
	}
}

// TestObjectPrototypeCycle checks that property lookup terminates when
// __proto__ links form a cycle.
func TestObjectPrototypeCycle(t *testing.T) {
	rt := testutils.TestingRuntime()
	propsA := map[string]plorth.Value{}
	a := rt.NewObject(propsA)
	b := rt.NewObject(map[string]plorth.Value{"__proto__": a})
	propsA["__proto__"] = b

	if _, ok := a.Property(rt, "missing", true); ok {
		t.Error("missing property found in a cyclic chain")
	}
	if v, ok := b.Property(rt, "__proto__", true); !ok || v != a {
		t.Error("own __proto__ not returned from a cyclic chain")
	}
}

func TestObjectFunctionalUpdate(t *testing.T) {
	rt := testutils.TestingRuntime()
	a := rt.NewObject(map[string]plorth.Value{"x": rt.NewInt(1)})
	b := a.With(rt, "y", rt.NewInt(2))
	if a.Size() != 1 {
		t.Error("functional update mutated the original")
	}
	if b.Size() != 2 {
		t.Errorf("updated object has %d properties, want 2", b.Size())
	}
	if _, ok := b.Own("x"); !ok {
		t.Error("updated object lost property x")
	}
}

func TestObjectEquality(t *testing.T) {
	rt := testutils.TestingRuntime()
	a := rt.NewObject(map[string]plorth.Value{"x": rt.NewInt(1)})
	b := rt.NewObject(map[string]plorth.Value{"x": rt.NewInt(1)})
	c := rt.NewObject(map[string]plorth.Value{"x": rt.NewInt(2)})
	d := rt.NewObject(map[string]plorth.Value{"y": rt.NewInt(1)})
	if !a.Equals(b) {
		t.Error("objects with equal properties are not equal")
	}
	if a.Equals(c) {
		t.Error("objects with different values are equal")
	}
	if a.Equals(d) {
		t.Error("objects with different keys are equal")
	}
}
