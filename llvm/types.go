package llvm

import (
	"irkit/llc"
)

// TypeKind identifies a specific kind of type.
type TypeKind llc.TypeKind

// Enumeration of type kinds.
const (
	VoidTypeKind     = TypeKind(llc.VoidTypeKind)
	FloatTypeKind    = TypeKind(llc.FloatTypeKind)
	DoubleTypeKind   = TypeKind(llc.DoubleTypeKind)
	LabelTypeKind    = TypeKind(llc.LabelTypeKind)
	IntegerTypeKind  = TypeKind(llc.IntegerTypeKind)
	FunctionTypeKind = TypeKind(llc.FunctionTypeKind)
	StructTypeKind   = TypeKind(llc.StructTypeKind)
	ArrayTypeKind    = TypeKind(llc.ArrayTypeKind)
	PointerTypeKind  = TypeKind(llc.PointerTypeKind)
	MetadataTypeKind = TypeKind(llc.MetadataTypeKind)
	VectorTypeKind   = TypeKind(llc.VectorTypeKind)
	OtherTypeKind    = TypeKind(llc.OtherTypeKind)
)

// Type is a view over an IR type handle.
type Type struct {
	ref llc.TypeRef
}

// Handle returns the underlying engine handle.
func (t Type) Handle() llc.TypeRef {
	return t.ref
}

// Kind returns the kind of the type.
func (t Type) Kind() TypeKind {
	return TypeKind(llc.GetTypeKind(t.ref))
}

// Equal returns whether t and other are the same type.
func (t Type) Equal(other Type) bool {
	return llc.TypeEqual(t.ref, other.ref)
}

func (t Type) String() string {
	return llc.PrintTypeToString(t.ref)
}

// IntWidth returns the bit width of an integer type.
func (t Type) IntWidth() int {
	return int(llc.GetIntTypeWidth(t.ref))
}

// ElementType returns the element type of a pointer type.
func (t Type) ElementType() Type {
	return Type{ref: llc.GetElementType(t.ref)}
}

// IsPacked returns whether a struct type is packed.
func (t Type) IsPacked() bool {
	return llc.IsPackedStruct(t.ref)
}

// NumFields returns the number of fields of a struct type.
func (t Type) NumFields() int {
	return int(llc.CountStructElementTypes(t.ref))
}

// -----------------------------------------------------------------------------

// FunctionType is a Type known to be a function type.
type FunctionType struct {
	Type
}

// ReturnType returns the return type of the function type.
func (ft FunctionType) ReturnType() Type {
	return Type{ref: llc.GetReturnType(ft.ref)}
}

// NumParams returns the number of parameters of the function type.
func (ft FunctionType) NumParams() int {
	return int(llc.CountParamTypes(ft.ref))
}

// ParamTypes returns the parameter types of the function type.
func (ft FunctionType) ParamTypes() []Type {
	refs := llc.GetParamTypes(ft.ref)

	typs := make([]Type, len(refs))
	for i, ref := range refs {
		typs[i] = Type{ref: ref}
	}

	return typs
}

// IsVariadic returns whether the function type accepts variadic arguments.
func (ft FunctionType) IsVariadic() bool {
	return llc.IsFunctionVarArg(ft.ref)
}
