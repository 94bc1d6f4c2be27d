package llc

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// ValueRef is a handle to an IR value.  Handles are comparable: two handles are
// equal exactly when they refer to the same IR object.
type ValueRef struct {
	v   value.Value
	ctx *ctxData
}

// IsNil returns whether the handle refers to no value.
func (v ValueRef) IsNil() bool {
	return v.v == nil
}

// GetValueContext returns the context the value belongs to.
func GetValueContext(v ValueRef) ContextRef {
	return ContextRef{c: v.ctx}
}

// TypeOf returns the type of the value.
func TypeOf(v ValueRef) TypeRef {
	v.ctx.check()
	return TypeRef{t: v.v.Type(), ctx: v.ctx}
}

// IsConstant returns whether the value is a constant.
func IsConstant(v ValueRef) bool {
	v.ctx.check()

	_, ok := v.v.(constant.Constant)
	return ok
}

// -----------------------------------------------------------------------------

// GetValueName returns the name of the value.  The result is the null buffer if
// the value has never been named.
func GetValueName(v ValueRef) CString {
	v.ctx.check()

	var name string
	switch x := v.v.(type) {
	case *ir.Func:
		name = x.GlobalName
	case *ir.Global:
		name = x.GlobalName
	case *ir.Param:
		name = x.LocalName
	case *ir.Block:
		name = x.LocalName
	default:
		if _, ok := v.v.(value.Named); !ok {
			return nil
		}

		if _, ok := v.ctx.named[v.v]; !ok {
			return nil
		}

		name = v.v.(value.Named).Name()
	}

	if name == "" {
		if _, ok := v.ctx.named[v.v]; !ok {
			return nil
		}
	}

	cname, err := NewCString(name)
	if err != nil {
		// names only enter the engine through SetValueName and AddFunction
		// which both take already marshalled buffers
		panic(fmt.Errorf("llc: corrupted value name: %w", err))
	}

	return cname
}

// SetValueName sets the name of the value.  Values which cannot carry a name,
// such as constants, are left unchanged.
func SetValueName(v ValueRef, name CString) {
	v.ctx.check()

	goName := name.GoString()
	switch x := v.v.(type) {
	case *ir.Func:
		x.GlobalName = goName
	case *ir.Global:
		x.GlobalName = goName
	case *ir.Param:
		x.LocalName = goName
	case *ir.Block:
		x.LocalName = goName
	case constant.Constant:
		return
	case value.Named:
		x.SetName(goName)
	default:
		return
	}

	v.ctx.named[v.v] = struct{}{}
}

// PrintValueToString renders the value in IR syntax.
func PrintValueToString(v ValueRef) string {
	v.ctx.check()

	if fn, ok := v.v.(*ir.Func); ok {
		if err := fn.AssignIDs(); err != nil {
			panic(fmt.Errorf("llc: unable to number function %s: %w", fn.Ident(), err))
		}
	}

	if lls, ok := v.v.(interface{ LLString() string }); ok {
		return lls.LLString()
	}

	return v.v.String()
}

// -----------------------------------------------------------------------------

// ConstInt creates an integer constant of type t.
func ConstInt(t TypeRef, n int64) ValueRef {
	t.ctx.check()
	return ValueRef{v: constant.NewInt(mustIntType(t), n), ctx: t.ctx}
}

// ConstNull creates the zero value of type t.
func ConstNull(t TypeRef) ValueRef {
	t.ctx.check()

	var c constant.Constant
	switch typ := t.t.(type) {
	case *types.IntType:
		c = constant.NewInt(typ, 0)
	case *types.FloatType:
		c = constant.NewFloat(typ, 0)
	case *types.PointerType:
		c = constant.NewNull(typ)
	default:
		c = constant.NewZeroInitializer(t.t)
	}

	return ValueRef{v: c, ctx: t.ctx}
}

// ConstStructInContext creates an anonymous constant structure from vals.  Every
// element must be a constant.
func ConstStructInContext(c ContextRef, vals []ValueRef, packed bool) ValueRef {
	c.c.check()

	fieldTypes := make([]types.Type, len(vals))
	fields := make([]constant.Constant, len(vals))
	for i, val := range vals {
		field, ok := val.v.(constant.Constant)
		if !ok {
			panic(fmt.Sprintf("llc: struct element %d is not a constant: %s", i, val.v))
		}

		fieldTypes[i] = field.Type()
		fields[i] = field
	}

	st := types.NewStruct(fieldTypes...)
	st.Packed = packed
	return ValueRef{v: constant.NewStruct(st, fields...), ctx: c.c}
}
