package values

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Class is a shared handle to a class descriptor: a name, an optional
// superclass, and its own method table. `super` is resolved relative to a
// method's declaring class without needing a reference here: every method's
// Function.Closure is that class's class-environment (the scope holding the
// reserved "class" self-binding), and BoundMethod reuses that closure when a
// method calls up to the class it was defined in.
//
// Go's garbage collector traces the Super/self-reference cycles this forms
// (class-env -> method closures -> class-env, and instance -> class ->
// nothing back) without any help, so unlike a reference-counted host there
// is no need to mark either edge weak.
type Class struct {
	Name    string
	Super   *Class
	methods *swiss.Map[string, *Function]
}

// NewClass creates an empty class descriptor; methods are added one at a
// time with AddMethod as the class body is evaluated.
func NewClass(name string, super *Class) *Class {
	return &Class{Name: name, Super: super, methods: swiss.NewMap[string, *Function](uint32(4))}
}

var (
	_ Value    = (*Class)(nil)
	_ Callable = (*Class)(nil)
)

func (c *Class) TypeName() string { return "class" }
func (c *Class) Display() string  { return c.Name }

// AddMethod registers fn as name on c, backed by the same swiss table used
// for scope storage in the environment package.
func (c *Class) AddMethod(name string, fn *Function) {
	c.methods.Put(name, fn)
}

// Arity is the arity of the constructor: that of `init` if the class (or an
// ancestor) defines one, else zero.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(ex Executor, args []Value) (Value, *RuntimeError) {
	return ex.Construct(c, args)
}

// FindMethod looks up name on c, then on each ancestor in turn.
func (c *Class) FindMethod(name string) *Function {
	for cls := c; cls != nil; cls = cls.Super {
		if fn, ok := cls.methods.Get(name); ok {
			return fn
		}
	}
	return nil
}

// Instance is a mutable, shared instance of a Class: a reference to its
// class plus a field table populated lazily by Set expressions.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, fields: swiss.NewMap[string, Value](uint32(4))}
}

func (i *Instance) TypeName() string { return "instance" }
func (i *Instance) Display() string  { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get implements property lookup: instance fields first, then methods on
// the instance's class and its ancestors in order. It returns the bound
// method (so `super` inside it resolves against the declaring class) or the
// field value; ok is false if neither exists.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if fn := i.Class.FindMethod(name); fn != nil {
		return &BoundMethod{Fn: fn, Receiver: i}, true
	}
	return nil, false
}

// Set writes a field, masking any method of the same name for subsequent
// Gets. Methods themselves are never mutated.
func (i *Instance) Set(name string, v Value) {
	i.fields.Put(name, v)
}
