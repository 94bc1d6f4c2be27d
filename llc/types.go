package llc

import (
	"github.com/llir/llvm/ir/types"
)

// TypeKind identifies a specific kind of type.
type TypeKind int

// Enumeration of different possible type kinds.
const (
	VoidTypeKind TypeKind = iota
	FloatTypeKind
	DoubleTypeKind
	LabelTypeKind
	IntegerTypeKind
	FunctionTypeKind
	StructTypeKind
	ArrayTypeKind
	PointerTypeKind
	MetadataTypeKind
	VectorTypeKind
	OtherTypeKind
)

// TypeRef is a handle to a type.
type TypeRef struct {
	t   types.Type
	ctx *ctxData
}

// IsNil returns whether the handle refers to no type.
func (t TypeRef) IsNil() bool {
	return t.t == nil
}

// VoidTypeInContext returns the `void` type.
func VoidTypeInContext(c ContextRef) TypeRef {
	c.c.check()
	return TypeRef{t: types.Void, ctx: c.c}
}

// IntTypeInContext returns an integer type of the given bit width.
func IntTypeInContext(c ContextRef, bits uint32) TypeRef {
	c.c.check()

	var t *types.IntType
	switch bits {
	case 1:
		t = types.I1
	case 8:
		t = types.I8
	case 16:
		t = types.I16
	case 32:
		t = types.I32
	case 64:
		t = types.I64
	default:
		t = types.NewInt(uint64(bits))
	}

	return TypeRef{t: t, ctx: c.c}
}

// FloatTypeInContext returns the `float` type.
func FloatTypeInContext(c ContextRef) TypeRef {
	c.c.check()
	return TypeRef{t: types.Float, ctx: c.c}
}

// DoubleTypeInContext returns the `double` type.
func DoubleTypeInContext(c ContextRef) TypeRef {
	c.c.check()
	return TypeRef{t: types.Double, ctx: c.c}
}

// PointerType returns a pointer type to elem.
func PointerType(elem TypeRef) TypeRef {
	elem.ctx.check()
	return TypeRef{t: types.NewPointer(elem.t), ctx: elem.ctx}
}

// FunctionType returns a function type.
func FunctionType(ret TypeRef, params []TypeRef, variadic bool) TypeRef {
	ret.ctx.check()

	paramTypes := make([]types.Type, len(params))
	for i, param := range params {
		paramTypes[i] = param.t
	}

	ft := types.NewFunc(ret.t, paramTypes...)
	ft.Variadic = variadic
	return TypeRef{t: ft, ctx: ret.ctx}
}

// StructTypeInContext returns an anonymous structure type.
func StructTypeInContext(c ContextRef, elems []TypeRef, packed bool) TypeRef {
	c.c.check()

	fields := make([]types.Type, len(elems))
	for i, elem := range elems {
		fields[i] = elem.t
	}

	st := types.NewStruct(fields...)
	st.Packed = packed
	return TypeRef{t: st, ctx: c.c}
}

// -----------------------------------------------------------------------------

// GetTypeKind returns the kind of the type.
func GetTypeKind(t TypeRef) TypeKind {
	t.ctx.check()

	switch v := t.t.(type) {
	case *types.VoidType:
		return VoidTypeKind
	case *types.FloatType:
		if v.Equal(types.Double) {
			return DoubleTypeKind
		}

		return FloatTypeKind
	case *types.LabelType:
		return LabelTypeKind
	case *types.IntType:
		return IntegerTypeKind
	case *types.FuncType:
		return FunctionTypeKind
	case *types.StructType:
		return StructTypeKind
	case *types.ArrayType:
		return ArrayTypeKind
	case *types.PointerType:
		return PointerTypeKind
	case *types.MetadataType:
		return MetadataTypeKind
	case *types.VectorType:
		return VectorTypeKind
	default:
		return OtherTypeKind
	}
}

// GetTypeContext returns the context the type handle was created in.
func GetTypeContext(t TypeRef) ContextRef {
	return ContextRef{c: t.ctx}
}

// PrintTypeToString renders the type in IR syntax.
func PrintTypeToString(t TypeRef) string {
	t.ctx.check()
	return t.t.String()
}

// TypeEqual returns whether two type handles denote structurally equal types.
func TypeEqual(a, b TypeRef) bool {
	if a.t == nil || b.t == nil {
		return a.t == b.t
	}

	return a.t.Equal(b.t)
}

// GetIntTypeWidth returns the bit width of an integer type.
func GetIntTypeWidth(t TypeRef) uint32 {
	t.ctx.check()
	return uint32(mustIntType(t).BitSize)
}

// GetElementType returns the element type of a pointer type.
func GetElementType(t TypeRef) TypeRef {
	t.ctx.check()

	pt, ok := t.t.(*types.PointerType)
	if !ok {
		panic("llc: element type of non-pointer type " + t.t.String())
	}

	return TypeRef{t: pt.ElemType, ctx: t.ctx}
}

// GetReturnType returns the return type of a function type.
func GetReturnType(t TypeRef) TypeRef {
	t.ctx.check()
	return TypeRef{t: mustFuncType(t).RetType, ctx: t.ctx}
}

// CountParamTypes returns the number of parameters of a function type.
func CountParamTypes(t TypeRef) uint32 {
	t.ctx.check()
	return toUint(len(mustFuncType(t).Params))
}

// GetParamTypes returns the parameter types of a function type.
func GetParamTypes(t TypeRef) []TypeRef {
	t.ctx.check()

	ft := mustFuncType(t)
	params := make([]TypeRef, len(ft.Params))
	for i, param := range ft.Params {
		params[i] = TypeRef{t: param, ctx: t.ctx}
	}

	return params
}

// IsFunctionVarArg returns whether a function type is variadic.
func IsFunctionVarArg(t TypeRef) bool {
	t.ctx.check()
	return mustFuncType(t).Variadic
}

// IsPackedStruct returns whether a structure type is packed.
func IsPackedStruct(t TypeRef) bool {
	t.ctx.check()

	st, ok := t.t.(*types.StructType)
	if !ok {
		panic("llc: packed query on non-struct type " + t.t.String())
	}

	return st.Packed
}

// CountStructElementTypes returns the number of fields of a structure type.
func CountStructElementTypes(t TypeRef) uint32 {
	t.ctx.check()

	st, ok := t.t.(*types.StructType)
	if !ok {
		panic("llc: field count of non-struct type " + t.t.String())
	}

	return toUint(len(st.Fields))
}

func mustFuncType(t TypeRef) *types.FuncType {
	ft, ok := t.t.(*types.FuncType)
	if !ok {
		panic("llc: expected function type but got " + t.t.String())
	}

	return ft
}

func mustIntType(t TypeRef) *types.IntType {
	it, ok := t.t.(*types.IntType)
	if !ok {
		panic("llc: expected integer type but got " + t.t.String())
	}

	return it
}
