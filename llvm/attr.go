package llvm

import (
	"fmt"
	"strings"

	"irkit/llc"
)

// Attribute is a set of parameter or function attributes packed into a single
// word.  Most attributes occupy one bit.  Alignment and StackAlignment are
// multi-bit fields which hold log2 of an alignment in bytes, biased by one.
type Attribute uint32

// Enumeration of attributes.
const (
	ZExt            = Attribute(llc.ZExtAttribute)
	SExt            = Attribute(llc.SExtAttribute)
	NoReturn        = Attribute(llc.NoReturnAttribute)
	InReg           = Attribute(llc.InRegAttribute)
	StructRet       = Attribute(llc.StructRetAttribute)
	NoUnwind        = Attribute(llc.NoUnwindAttribute)
	NoAlias         = Attribute(llc.NoAliasAttribute)
	ByVal           = Attribute(llc.ByValAttribute)
	Nest            = Attribute(llc.NestAttribute)
	ReadNone        = Attribute(llc.ReadNoneAttribute)
	ReadOnly        = Attribute(llc.ReadOnlyAttribute)
	NoInline        = Attribute(llc.NoInlineAttribute)
	AlwaysInline    = Attribute(llc.AlwaysInlineAttribute)
	OptimizeForSize = Attribute(llc.OptimizeForSizeAttribute)
	StackProtect    = Attribute(llc.StackProtectAttribute)
	StackProtectReq = Attribute(llc.StackProtectReqAttribute)
	Alignment       = Attribute(llc.Alignment)
	NoCapture       = Attribute(llc.NoCaptureAttribute)
	NoRedZone       = Attribute(llc.NoRedZoneAttribute)
	NoImplicitFloat = Attribute(llc.NoImplicitFloatAttribute)
	Naked           = Attribute(llc.NakedAttribute)
	InlineHint      = Attribute(llc.InlineHintAttribute)
	StackAlignment  = Attribute(llc.StackAlignment)
	ReturnsTwice    = Attribute(llc.ReturnsTwice)
	UWTable         = Attribute(llc.UWTable)
	NonLazyBind     = Attribute(llc.NonLazyBind)
)

// AlignmentAttr returns the attribute aligning a parameter to align bytes.
// align must be a power of two no larger than 2^30.
func AlignmentAttr(align uint64) (Attribute, error) {
	a, err := llc.EncodeAlignment(align)
	return Attribute(a), err
}

// StackAlignmentAttr returns the attribute aligning the stack of a function
// to align bytes.  align must be a power of two no larger than 64.
func StackAlignmentAttr(align uint64) (Attribute, error) {
	a, err := llc.EncodeStackAlignment(align)
	return Attribute(a), err
}

// AttributeFromNative converts an engine attribute mask.
func AttributeFromNative(a llc.Attribute) Attribute {
	return Attribute(a)
}

// Native returns the engine representation of the attribute set.
func (a Attribute) Native() llc.Attribute {
	return llc.Attribute(a)
}

// Union returns the set containing a and all of others.  A nonzero alignment
// field in a later operand replaces the field of an earlier one, so Union is
// not commutative when two operands carry different values of the same
// alignment field.
func (a Attribute) Union(others ...Attribute) Attribute {
	res := a.Native()
	for _, other := range others {
		res = res.Merge(other.Native())
	}

	return Attribute(res)
}

// Has returns whether every attribute of b is in a.  Alignment fields must
// match exactly: the Alignment and StackAlignment masks are the encodings of
// 2^30 and 64 bytes.  Use HasAlignment and HasStackAlignment to test whether a
// field is set at all.
func (a Attribute) Has(b Attribute) bool {
	return a.Native().Contains(b.Native())
}

// Without returns a with the attributes of b removed.
func (a Attribute) Without(b Attribute) Attribute {
	return Attribute(a.Native().Clear(b.Native()))
}

// HasAlignment returns whether the parameter alignment field is set.
func (a Attribute) HasAlignment() bool {
	return a&Alignment != 0
}

// HasStackAlignment returns whether the stack alignment field is set.
func (a Attribute) HasStackAlignment() bool {
	return a&StackAlignment != 0
}

// AlignmentBytes returns the parameter alignment in bytes or 0 if unset.
func (a Attribute) AlignmentBytes() uint64 {
	return a.Native().AlignmentBytes()
}

// StackAlignmentBytes returns the stack alignment in bytes or 0 if unset.
func (a Attribute) StackAlignmentBytes() uint64 {
	return a.Native().StackAlignmentBytes()
}

// Keywords returns the IR keywords of the attributes in a.
func (a Attribute) Keywords() []string {
	return llc.Keywords(a.Native())
}

func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}

	return strings.Join(a.Keywords(), " ")
}

// ParseAttribute parses a single IR attribute keyword such as `noalias`,
// `align 8` or `alignstack(16)`.
func ParseAttribute(s string) (Attribute, error) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "none" {
		return 0, nil
	}

	if a, ok := llc.ParseKeyword(s); ok {
		return Attribute(a), nil
	}

	return 0, fmt.Errorf("unknown attribute: %q", s)
}

// -----------------------------------------------------------------------------

// AttributeInfo describes one entry of the attribute layout.
type AttributeInfo struct {
	// The Go name of the attribute constant.
	Name string

	// The IR keyword of the attribute.  Multi-bit fields use a placeholder for
	// their magnitude.
	Keyword string

	// The bits occupied by the attribute.
	Mask Attribute
}

// Attributes returns the full attribute layout in bit order.
func Attributes() []AttributeInfo {
	return []AttributeInfo{
		{"ZExt", keywordOf(ZExt), ZExt},
		{"SExt", keywordOf(SExt), SExt},
		{"NoReturn", keywordOf(NoReturn), NoReturn},
		{"InReg", keywordOf(InReg), InReg},
		{"StructRet", keywordOf(StructRet), StructRet},
		{"NoUnwind", keywordOf(NoUnwind), NoUnwind},
		{"NoAlias", keywordOf(NoAlias), NoAlias},
		{"ByVal", keywordOf(ByVal), ByVal},
		{"Nest", keywordOf(Nest), Nest},
		{"ReadNone", keywordOf(ReadNone), ReadNone},
		{"ReadOnly", keywordOf(ReadOnly), ReadOnly},
		{"NoInline", keywordOf(NoInline), NoInline},
		{"AlwaysInline", keywordOf(AlwaysInline), AlwaysInline},
		{"OptimizeForSize", keywordOf(OptimizeForSize), OptimizeForSize},
		{"StackProtect", keywordOf(StackProtect), StackProtect},
		{"StackProtectReq", keywordOf(StackProtectReq), StackProtectReq},
		{"Alignment", "align <n>", Alignment},
		{"NoCapture", keywordOf(NoCapture), NoCapture},
		{"NoRedZone", keywordOf(NoRedZone), NoRedZone},
		{"NoImplicitFloat", keywordOf(NoImplicitFloat), NoImplicitFloat},
		{"Naked", keywordOf(Naked), Naked},
		{"InlineHint", keywordOf(InlineHint), InlineHint},
		{"StackAlignment", "alignstack(<n>)", StackAlignment},
		{"ReturnsTwice", keywordOf(ReturnsTwice), ReturnsTwice},
		{"UWTable", keywordOf(UWTable), UWTable},
		{"NonLazyBind", keywordOf(NonLazyBind), NonLazyBind},
	}
}

func keywordOf(a Attribute) string {
	kw, ok := llc.Keyword(a.Native())
	if !ok {
		panic(fmt.Sprintf("attribute %#x has no keyword", uint32(a)))
	}

	return kw
}
