package llc

import (
	"github.com/llir/llvm/ir"
)

// BasicBlockRef is a handle to a basic block.
type BasicBlockRef struct {
	b   *ir.Block
	ctx *ctxData
}

// IsNil returns whether the handle refers to no block.
func (bb BasicBlockRef) IsNil() bool {
	return bb.b == nil
}

// BasicBlockAsValue returns the value handle of the block.
func BasicBlockAsValue(bb BasicBlockRef) ValueRef {
	return ValueRef{v: bb.b, ctx: bb.ctx}
}

// GetBasicBlockName returns the name of the block.
func GetBasicBlockName(bb BasicBlockRef) CString {
	return GetValueName(BasicBlockAsValue(bb))
}

// GetBasicBlockParent returns the function containing the block.
func GetBasicBlockParent(bb BasicBlockRef) ValueRef {
	bb.ctx.check()
	return ValueRef{v: bb.b.Parent, ctx: bb.ctx}
}

// GetBasicBlockTerminator reports whether the block has been terminated.
func GetBasicBlockTerminator(bb BasicBlockRef) bool {
	bb.ctx.check()
	return bb.b.Term != nil
}

// BuildRetVoid terminates the block with `ret void`.
func BuildRetVoid(bb BasicBlockRef) {
	bb.ctx.check()
	bb.b.NewRet(nil)
}

// BuildRet terminates the block with `ret` of v.
func BuildRet(bb BasicBlockRef, v ValueRef) {
	bb.ctx.check()
	bb.b.NewRet(v.v)
}

// BuildUnreachable terminates the block with `unreachable`.
func BuildUnreachable(bb BasicBlockRef) {
	bb.ctx.check()
	bb.b.NewUnreachable()
}
