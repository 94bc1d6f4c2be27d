package llvm

import (
	"irkit/llc"
)

// Value is a typed view over an IR value handle.  A Value does not own the
// value it refers to: it is valid for as long as its context is alive.
type Value struct {
	ref llc.ValueRef
}

// NewStruct creates an anonymous constant structure whose fields are vals.
// Every element of vals must be a constant.
func NewStruct(ctx Context, vals []Value, packed bool) Value {
	return Value{ref: llc.ConstStructInContext(ctx.c, valueRefs(vals), packed)}
}

// Handle returns the underlying engine handle.
func (v Value) Handle() llc.ValueRef {
	return v.ref
}

// Name returns the name of the value.  The flag is false if the value has no
// name at all which is distinct from having the empty name.
func (v Value) Name() (string, bool) {
	cname := llc.GetValueName(v.ref)
	if cname.IsNull() {
		return "", false
	}

	return cname.GoString(), true
}

// SetName sets the name of the value.  It fails without touching the value if
// name contains a null byte.
func (v Value) SetName(name string) error {
	cname, err := llc.NewCString(name)
	if err != nil {
		return err
	}

	llc.SetValueName(v.ref, cname)
	return nil
}

// Type returns the type of the value.
func (v Value) Type() Type {
	return Type{ref: llc.TypeOf(v.ref)}
}

// Context returns the context the value belongs to.
func (v Value) Context() Context {
	return Context{c: llc.GetValueContext(v.ref)}
}

// IsConstant returns whether the value is a constant.
func (v Value) IsConstant() bool {
	return llc.IsConstant(v.ref)
}

// String returns the IR text of the value.
func (v Value) String() string {
	return llc.PrintValueToString(v.ref)
}
