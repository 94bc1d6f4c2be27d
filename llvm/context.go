package llvm

import (
	"fmt"

	"fortio.org/safecast"

	"irkit/llc"
)

// Context owns every module, type and value created through it.  Handles
// derived from a context are only valid until the context is disposed.
type Context struct {
	c llc.ContextRef
}

// NewContext creates a new context.
func NewContext() Context {
	return Context{c: llc.ContextCreate()}
}

// Dispose frees the context.  Any further use of the context or of a value
// created in it panics.
func (c Context) Dispose() {
	llc.ContextDispose(c.c)
}

// Handle returns the engine handle of the context.
func (c Context) Handle() llc.ContextRef {
	return c.c
}

// NewModule creates a new module with the given name in the context.
func (c Context) NewModule(name string) Module {
	return Module{ref: llc.ModuleCreateWithNameInContext(mustCString(name), c.c)}
}

// -----------------------------------------------------------------------------

// VoidType returns the `void` type.
func (c Context) VoidType() Type {
	return Type{ref: llc.VoidTypeInContext(c.c)}
}

// IntType returns an integer type with the given bit width.
func (c Context) IntType(bits int) Type {
	width, err := safecast.Conv[uint32](bits)
	if err != nil || width == 0 {
		panic(fmt.Sprintf("invalid integer bit width: %d", bits))
	}

	return Type{ref: llc.IntTypeInContext(c.c, width)}
}

func (c Context) Int1Type() Type  { return c.IntType(1) }
func (c Context) Int8Type() Type  { return c.IntType(8) }
func (c Context) Int16Type() Type { return c.IntType(16) }
func (c Context) Int32Type() Type { return c.IntType(32) }
func (c Context) Int64Type() Type { return c.IntType(64) }

// FloatType returns the `float` type.
func (c Context) FloatType() Type {
	return Type{ref: llc.FloatTypeInContext(c.c)}
}

// DoubleType returns the `double` type.
func (c Context) DoubleType() Type {
	return Type{ref: llc.DoubleTypeInContext(c.c)}
}

// StructType returns an anonymous structure type with the given fields.
func (c Context) StructType(fields []Type, packed bool) Type {
	return Type{ref: llc.StructTypeInContext(c.c, typeRefs(fields), packed)}
}

// NewPointerType returns a pointer to elemType.
func NewPointerType(elemType Type) Type {
	return Type{ref: llc.PointerType(elemType.ref)}
}

// NewFunctionType returns a function type.
func NewFunctionType(returnType Type, paramTypes []Type, variadic bool) FunctionType {
	return FunctionType{Type{ref: llc.FunctionType(returnType.ref, typeRefs(paramTypes), variadic)}}
}

// -----------------------------------------------------------------------------

// ConstInt creates an integer constant of type intType.
func ConstInt(intType Type, n int64) Value {
	return Value{ref: llc.ConstInt(intType.ref, n)}
}

// ConstNull creates the zero value of typ.
func ConstNull(typ Type) Value {
	return Value{ref: llc.ConstNull(typ.ref)}
}
