package llc

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
)

// CountParams returns the number of parameters of a function.
func CountParams(fn ValueRef) uint32 {
	fn.ctx.check()
	return toUint(len(mustFunc(fn).Params))
}

// GetParam returns the parameter of a function at ndx.  Like the C API, the
// index is not validated: callers must check it against CountParams.
func GetParam(fn ValueRef, ndx uint32) ValueRef {
	fn.ctx.check()
	return ValueRef{v: mustFunc(fn).Params[ndx], ctx: fn.ctx}
}

// GetParamParent returns the function which declares the parameter.
func GetParamParent(arg ValueRef) ValueRef {
	arg.ctx.check()
	return ValueRef{v: arg.ctx.paramParents[mustParam(arg)], ctx: arg.ctx}
}

// GetParamIndex returns the position of the parameter in its function.
func GetParamIndex(arg ValueRef) uint32 {
	arg.ctx.check()

	p := mustParam(arg)
	for i, param := range arg.ctx.paramParents[p].Params {
		if param == p {
			return toUint(i)
		}
	}

	panic("llc: parameter is not attached to its parent function")
}

// GlobalGetValueType returns the value type of a global value: for a function,
// this is its function type rather than the pointer type returned by TypeOf.
func GlobalGetValueType(fn ValueRef) TypeRef {
	fn.ctx.check()
	return TypeRef{t: mustFunc(fn).Sig, ctx: fn.ctx}
}

// IsDeclaration returns whether the function has no body.
func IsDeclaration(fn ValueRef) bool {
	fn.ctx.check()
	return len(mustFunc(fn).Blocks) == 0
}

// Linkage is the linkage of a global value.
type Linkage int

// Enumeration of the supported linkages.
const (
	ExternalLinkage Linkage = iota
	AvailableExternallyLinkage
	LinkOnceAnyLinkage
	LinkOnceODRLinkage
	WeakAnyLinkage
	WeakODRLinkage
	AppendingLinkage
	InternalLinkage
	PrivateLinkage
	ExternalWeakLinkage
	CommonLinkage
)

var linkageEnums = [...]enum.Linkage{
	ExternalLinkage:            enum.LinkageNone,
	AvailableExternallyLinkage: enum.LinkageAvailableExternally,
	LinkOnceAnyLinkage:         enum.LinkageLinkOnce,
	LinkOnceODRLinkage:         enum.LinkageLinkOnceODR,
	WeakAnyLinkage:             enum.LinkageWeak,
	WeakODRLinkage:             enum.LinkageWeakODR,
	AppendingLinkage:           enum.LinkageAppending,
	InternalLinkage:            enum.LinkageInternal,
	PrivateLinkage:             enum.LinkagePrivate,
	ExternalWeakLinkage:        enum.LinkageExternWeak,
	CommonLinkage:              enum.LinkageCommon,
}

// GetLinkage returns the linkage of a function.
func GetLinkage(fn ValueRef) Linkage {
	fn.ctx.check()

	l := mustFunc(fn).Linkage
	if l == enum.LinkageExternal {
		return ExternalLinkage
	}

	for linkage, e := range linkageEnums {
		if e == l {
			return Linkage(linkage)
		}
	}

	return ExternalLinkage
}

// SetLinkage sets the linkage of a function.  External linkage is left
// implicit in the printed IR.
func SetLinkage(fn ValueRef, linkage Linkage) {
	fn.ctx.check()

	if linkage < 0 || int(linkage) >= len(linkageEnums) {
		panic(fmt.Sprintf("llc: invalid linkage %d", linkage))
	}

	mustFunc(fn).Linkage = linkageEnums[linkage]
}

// -----------------------------------------------------------------------------

// AppendBasicBlockInContext appends a new, empty basic block named name to the
// end of the function.
func AppendBasicBlockInContext(c ContextRef, fn ValueRef, name CString) BasicBlockRef {
	c.c.check()

	if fn.ctx != c.c {
		panic("llc: function does not belong to the given context")
	}

	b := mustFunc(fn).NewBlock(name.GoString())
	c.c.named[b] = struct{}{}
	return BasicBlockRef{b: b, ctx: c.c}
}

// GetEntryBasicBlock returns the first basic block of the function.  The
// returned handle is nil if the function has no blocks.
func GetEntryBasicBlock(fn ValueRef) BasicBlockRef {
	fn.ctx.check()

	f := mustFunc(fn)
	if len(f.Blocks) == 0 {
		return BasicBlockRef{}
	}

	return BasicBlockRef{b: f.Blocks[0], ctx: fn.ctx}
}

// CountBasicBlocks returns the number of basic blocks of the function.
func CountBasicBlocks(fn ValueRef) uint32 {
	fn.ctx.check()
	return toUint(len(mustFunc(fn).Blocks))
}

// GetBasicBlocks returns all basic blocks of the function in order.
func GetBasicBlocks(fn ValueRef) []BasicBlockRef {
	fn.ctx.check()

	f := mustFunc(fn)
	bbs := make([]BasicBlockRef, len(f.Blocks))
	for i, b := range f.Blocks {
		bbs[i] = BasicBlockRef{b: b, ctx: fn.ctx}
	}

	return bbs
}

// -----------------------------------------------------------------------------

// newFunc builds a function of type fnType in m with one unnamed parameter per
// parameter type.
func newFunc(m *ir.Module, ctx *ctxData, name string, fnType TypeRef) *ir.Func {
	ft := mustFuncType(fnType)

	params := make([]*ir.Param, len(ft.Params))
	for i, paramType := range ft.Params {
		params[i] = ir.NewParam("", paramType)
	}

	f := m.NewFunc(name, ft.RetType, params...)
	f.Sig.Variadic = ft.Variadic

	for _, param := range params {
		ctx.paramParents[param] = f
	}

	ctx.named[f] = struct{}{}
	return f
}

func mustFunc(v ValueRef) *ir.Func {
	f, ok := v.v.(*ir.Func)
	if !ok {
		panic(fmt.Sprintf("llc: expected function but got %s", describe(v)))
	}

	return f
}

func mustParam(v ValueRef) *ir.Param {
	p, ok := v.v.(*ir.Param)
	if !ok {
		panic(fmt.Sprintf("llc: expected function parameter but got %s", describe(v)))
	}

	return p
}

func describe(v ValueRef) string {
	if v.v == nil {
		return "nil value"
	}

	return v.v.Type().String()
}
