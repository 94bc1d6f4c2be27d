package llvm

import (
	"fmt"

	"fortio.org/safecast"

	"irkit/llc"
)

// IndexError is the panic value of Function.Arg when the requested argument
// does not exist.
type IndexError struct {
	// The requested index.
	Index int

	// The IR text of the function's type.
	Signature string
}

func (ie *IndexError) Error() string {
	return fmt.Sprintf("argument index %d out of bounds for function of type %s", ie.Index, ie.Signature)
}

// Linkage is the linkage of a function.
type Linkage llc.Linkage

// Enumeration of linkages.
const (
	ExternalLinkage            = Linkage(llc.ExternalLinkage)
	AvailableExternallyLinkage = Linkage(llc.AvailableExternallyLinkage)
	LinkOnceAnyLinkage         = Linkage(llc.LinkOnceAnyLinkage)
	LinkOnceODRLinkage         = Linkage(llc.LinkOnceODRLinkage)
	WeakAnyLinkage             = Linkage(llc.WeakAnyLinkage)
	WeakODRLinkage             = Linkage(llc.WeakODRLinkage)
	AppendingLinkage           = Linkage(llc.AppendingLinkage)
	InternalLinkage            = Linkage(llc.InternalLinkage)
	PrivateLinkage             = Linkage(llc.PrivateLinkage)
	ExternalWeakLinkage        = Linkage(llc.ExternalWeakLinkage)
	CommonLinkage              = Linkage(llc.CommonLinkage)
)

// -----------------------------------------------------------------------------

// Function represents an IR function.
type Function struct {
	Value
}

// Name returns the name of the function.  Functions are always named.
func (f Function) Name() string {
	return llc.GetValueName(f.ref).GoString()
}

// Signature returns the function type of the function.
func (f Function) Signature() FunctionType {
	return FunctionType{Type{ref: llc.GlobalGetValueType(f.ref)}}
}

// NumArgs returns the number of formal arguments of the function.
func (f Function) NumArgs() int {
	return int(llc.CountParams(f.ref))
}

// Arg returns the formal argument at index i.  It panics with an *IndexError
// if i is not less than NumArgs.
func (f Function) Arg(i int) Arg {
	ndx, err := safecast.Conv[uint32](i)
	if err != nil || ndx >= llc.CountParams(f.ref) {
		panic(&IndexError{Index: i, Signature: f.Signature().String()})
	}

	return Arg{Value{ref: llc.GetParam(f.ref, ndx)}}
}

// Args returns all formal arguments of the function in order.
func (f Function) Args() []Arg {
	args := make([]Arg, f.NumArgs())
	for i := range args {
		args[i] = f.Arg(i)
	}

	return args
}

// Append adds a new basic block named name to the end of the function.
func (f Function) Append(name string) BasicBlock {
	return BasicBlock{ref: llc.AppendBasicBlockInContext(
		llc.GetValueContext(f.ref),
		f.ref,
		mustCString(name),
	)}
}

// Entry returns the entry block of the function if it has a body.
func (f Function) Entry() (bb BasicBlock, exists bool) {
	bb.ref = llc.GetEntryBasicBlock(f.ref)
	exists = !bb.ref.IsNil()
	return
}

// Blocks returns the basic blocks of the function in order.
func (f Function) Blocks() []BasicBlock {
	refs := llc.GetBasicBlocks(f.ref)

	bbs := make([]BasicBlock, len(refs))
	for i, ref := range refs {
		bbs[i] = BasicBlock{ref: ref}
	}

	return bbs
}

// IsDeclaration returns whether the function has no body.
func (f Function) IsDeclaration() bool {
	return llc.IsDeclaration(f.ref)
}

// Linkage returns the linkage of the function.
func (f Function) Linkage() Linkage {
	return Linkage(llc.GetLinkage(f.ref))
}

// SetLinkage sets the linkage of the function.
func (f Function) SetLinkage(linkage Linkage) {
	llc.SetLinkage(f.ref, llc.Linkage(linkage))
}

// AddAttribute adds attr to the function.
func (f Function) AddAttribute(attr Attribute) {
	llc.AddFunctionAttr(f.ref, attr.Native())
}

// AddAttributes adds all of attrs to the function in a single update.
func (f Function) AddAttributes(attrs ...Attribute) {
	llc.AddFunctionAttr(f.ref, Attribute(0).Union(attrs...).Native())
}

// HasAttribute returns whether the function carries attr.
func (f Function) HasAttribute(attr Attribute) bool {
	return f.Attributes().Has(attr)
}

// RemoveAttribute removes attr from the function.
func (f Function) RemoveAttribute(attr Attribute) {
	llc.RemoveFunctionAttr(f.ref, attr.Native())
}

// Attributes returns the current function attribute set.
func (f Function) Attributes() Attribute {
	return AttributeFromNative(llc.GetFunctionAttr(f.ref))
}

// -----------------------------------------------------------------------------

// Arg is a formal argument of a function.
type Arg struct {
	Value
}

// Index returns the position of the argument in its function.
func (a Arg) Index() int {
	return int(llc.GetParamIndex(a.ref))
}

// Parent returns the function declaring the argument.
func (a Arg) Parent() Function {
	return Function{Value{ref: llc.GetParamParent(a.ref)}}
}

// AddAttribute adds attr to the argument.
func (a Arg) AddAttribute(attr Attribute) {
	llc.AddAttribute(a.ref, attr.Native())
}

// AddAttributes adds all of attrs to the argument in a single update.
func (a Arg) AddAttributes(attrs ...Attribute) {
	llc.AddAttribute(a.ref, Attribute(0).Union(attrs...).Native())
}

// HasAttribute returns whether the argument carries attr.
func (a Arg) HasAttribute(attr Attribute) bool {
	return a.Attributes().Has(attr)
}

// RemoveAttribute removes attr from the argument.
func (a Arg) RemoveAttribute(attr Attribute) {
	llc.RemoveAttribute(a.ref, attr.Native())
}

// Attributes returns the current attribute set of the argument.
func (a Arg) Attributes() Attribute {
	return AttributeFromNative(llc.GetAttribute(a.ref))
}
