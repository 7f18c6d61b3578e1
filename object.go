package plorth

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// objectCounter hands out unique IDs for objects. IDs are used to bound
// prototype chain traversal, which must terminate even when __proto__
// links form a cycle.
var objectCounter uintptr

func nextObjectID() uintptr {
	return atomic.AddUintptr(&objectCounter, 1)
}

// Object is an immutable mapping from Unicode strings to values. Updates
// allocate a new object. Insertion order is irrelevant; Keys returns keys
// in sorted order.
type Object struct {
	properties map[string]Value
	id         uintptr
}

// NewObject creates an object value from the given properties. The map is
// not copied; the caller must not modify it afterwards.
func (rt *Runtime) NewObject(properties map[string]Value) *Object {
	if properties == nil {
		properties = map[string]Value{}
	}
	return &Object{properties: properties, id: nextObjectID()}
}

// Size returns the number of own properties.
func (o *Object) Size() int { return len(o.properties) }

// Keys returns the own property names in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.properties))
	for k := range o.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Own retrieves an own property, ignoring the prototype chain.
func (o *Object) Own(name string) (Value, bool) {
	v, ok := o.properties[name]
	return v, ok
}

// Prototype determines the prototype of the object: the own property
// __proto__ when it is present and an object, otherwise the runtime's
// object prototype.
func (o *Object) Prototype(rt *Runtime) *Object {
	if v, ok := o.properties["__proto__"]; ok {
		if proto, ok := v.(*Object); ok {
			return proto
		}
	}
	return rt.objectProto
}

// Property retrieves a property from the object itself and, when inherited
// is true, from its prototype chain. The traversal follows __proto__
// through objects only and is bounded by a visited set, so cyclic chains
// terminate.
func (o *Object) Property(rt *Runtime, name string, inherited bool) (Value, bool) {
	if v, ok := o.properties[name]; ok {
		return v, true
	}
	if !inherited {
		return nil, false
	}
	seen := contains.Set{}
	seen.Add(o.id)
	for cur := o.Prototype(rt); seen.Add(cur.id); cur = cur.Prototype(rt) {
		if v, ok := cur.properties[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// With returns a new object with one property added or replaced.
func (o *Object) With(rt *Runtime, name string, value Value) *Object {
	properties := make(map[string]Value, len(o.properties)+1)
	for k, v := range o.properties {
		properties[k] = v
	}
	properties[name] = value
	return rt.NewObject(properties)
}

func (o *Object) Type() Type { return TypeObject }

// Equals compares objects by key set and pairwise equality of the values.
func (o *Object) Equals(that Value) bool {
	other, ok := that.(*Object)
	if !ok || len(o.properties) != len(other.properties) {
		return false
	}
	for k, v := range o.properties {
		w, ok := other.properties[k]
		if !ok || !Equal(v, w) {
			return false
		}
	}
	return true
}

func (o *Object) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(jsonStringify(k))
		b.WriteString(": ")
		b.WriteString(ToString(o.properties[k]))
	}
	b.WriteByte('}')
	return b.String()
}

func (o *Object) Source() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(jsonStringify(k))
		b.WriteString(": ")
		b.WriteString(ToSource(o.properties[k]))
	}
	b.WriteByte('}')
	return b.String()
}

// eval evaluates each property value, so that symbols inside an object
// literal resolve to the literals they name.
func (o *Object) eval(ctx *Context) (Value, bool) {
	properties := make(map[string]Value, len(o.properties))
	for k, v := range o.properties {
		val, ok := Eval(ctx, v)
		if !ok {
			return nil, false
		}
		properties[k] = val
	}
	return ctx.Runtime().NewObject(properties), true
}

func (o *Object) exec(ctx *Context) bool {
	val, ok := o.eval(ctx)
	if !ok {
		return false
	}
	ctx.Push(val)
	return true
}

func objectWords() map[string]NativeFn {
	return map[string]NativeFn{
		"keys":     wObjectKeys,
		"values":   wObjectValues,
		"size":     wObjectSize,
		"has?":     wObjectHas,
		"has-own?": wObjectHasOwn,
		"@":        wObjectGet,
		"!":        wObjectSet,
		"+":        wObjectMerge,
		"new":      wObjectNew,

		// Inherited by every value through the prototype chain.
		">string": wValueToString,
		">source": wValueToSource,
	}
}

// wObjectKeys: ( object -- object array ).
func wObjectKeys(ctx *Context) {
	obj, ok := ctx.PopObject()
	if !ok {
		return
	}
	rt := ctx.Runtime()
	keys := obj.Keys()
	result := make([]Value, len(keys))
	for i, k := range keys {
		result[i] = rt.NewString(k)
	}
	ctx.Push(obj)
	ctx.PushArray(result)
}

// wObjectValues returns the own property values in key order:
// ( object -- object array ).
func wObjectValues(ctx *Context) {
	obj, ok := ctx.PopObject()
	if !ok {
		return
	}
	keys := obj.Keys()
	result := make([]Value, len(keys))
	for i, k := range keys {
		result[i], _ = obj.Own(k)
	}
	ctx.Push(obj)
	ctx.PushArray(result)
}

// wObjectSize: ( object -- object number ).
func wObjectSize(ctx *Context) {
	if obj, ok := ctx.PopObject(); ok {
		ctx.Push(obj)
		ctx.PushInt(int64(obj.Size()))
	}
}

// wObjectHas tests for a property, inherited ones included:
// ( string object -- boolean ).
func wObjectHas(ctx *Context) {
	obj, ok := ctx.PopObject()
	if !ok {
		return
	}
	name, ok := ctx.PopString()
	if !ok {
		return
	}
	_, found := obj.Property(ctx.Runtime(), name.String(), true)
	ctx.PushBoolean(found)
}

// wObjectHasOwn tests for an own property: ( string object -- boolean ).
func wObjectHasOwn(ctx *Context) {
	obj, ok := ctx.PopObject()
	if !ok {
		return
	}
	name, ok := ctx.PopString()
	if !ok {
		return
	}
	_, found := obj.Own(name.String())
	ctx.PushBoolean(found)
}

// wObjectGet retrieves a property, inherited ones included; a missing
// property is a range error: ( string object -- object any ).
func wObjectGet(ctx *Context) {
	obj, ok := ctx.PopObject()
	if !ok {
		return
	}
	name, ok := ctx.PopString()
	if !ok {
		return
	}
	ctx.Push(obj)
	val, found := obj.Property(ctx.Runtime(), name.String(), true)
	if !found {
		ctx.RaiseErrorf(CodeRange, "No such property: %q.", name.String())
		return
	}
	ctx.Push(val)
}

// wObjectSet returns a new object with a property set:
// ( any string object -- object ).
func wObjectSet(ctx *Context) {
	obj, ok := ctx.PopObject()
	if !ok {
		return
	}
	name, ok := ctx.PopString()
	if !ok {
		return
	}
	val, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.Push(obj.With(ctx.Runtime(), name.String(), val))
}

// wObjectMerge combines the own properties of two objects; properties of
// the topmost win: ( object object -- object ).
func wObjectMerge(ctx *Context) {
	a, ok := ctx.PopObject()
	if !ok {
		return
	}
	b, ok := ctx.PopObject()
	if !ok {
		return
	}
	properties := make(map[string]Value, a.Size()+b.Size())
	for _, k := range b.Keys() {
		properties[k], _ = b.Own(k)
	}
	for _, k := range a.Keys() {
		properties[k], _ = a.Own(k)
	}
	ctx.Push(ctx.Runtime().NewObject(properties))
}

// wObjectNew instantiates an object with the popped object as prototype:
// ( object -- object ).
func wObjectNew(ctx *Context) {
	obj, ok := ctx.PopObject()
	if !ok {
		return
	}
	rt := ctx.Runtime()
	proto := obj
	// The global dictionary publishes prototypes wrapped as
	// {"prototype": <proto>}; unwrap that shape so "object new" works.
	if v, found := obj.Own("prototype"); found {
		if p, isObject := v.(*Object); isObject {
			proto = p
		}
	}
	ctx.Push(rt.NewObject(map[string]Value{"__proto__": proto}))
}

// wValueToString replaces the top of the stack with its human readable
// representation: ( any -- string ).
func wValueToString(ctx *Context) {
	val, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.PushString(ToString(val))
}

// wValueToSource replaces the top of the stack with its source
// representation: ( any -- string ).
func wValueToSource(ctx *Context) {
	val, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.PushString(ToSource(val))
}
