package llvm

import (
	"irkit/llc"
)

// BasicBlock represents a basic block of a function body.
type BasicBlock struct {
	ref llc.BasicBlockRef
}

// Handle returns the underlying engine handle.
func (bb BasicBlock) Handle() llc.BasicBlockRef {
	return bb.ref
}

// Name returns the name of the basic block.
func (bb BasicBlock) Name() string {
	return llc.GetBasicBlockName(bb.ref).GoString()
}

// Parent returns the function containing the basic block.
func (bb BasicBlock) Parent() Function {
	return Function{Value{ref: llc.GetBasicBlockParent(bb.ref)}}
}

// Terminated returns whether the basic block ends in a terminator.
func (bb BasicBlock) Terminated() bool {
	return llc.GetBasicBlockTerminator(bb.ref)
}

// RetVoid terminates the block with `ret void`.
func (bb BasicBlock) RetVoid() {
	llc.BuildRetVoid(bb.ref)
}

// Ret terminates the block by returning v.
func (bb BasicBlock) Ret(v Value) {
	llc.BuildRet(bb.ref, v.ref)
}

// Unreachable terminates the block with `unreachable`.
func (bb BasicBlock) Unreachable() {
	llc.BuildUnreachable(bb.ref)
}
