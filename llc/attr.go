package llc

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/llir/llvm/ir"
)

// Attribute is the engine's packed attribute bitmask.  The layout matches the
// `LLVMAttribute` enumeration of the LLVM C API bit for bit.
type Attribute uint32

// Enumeration of attribute bits.
const (
	ZExtAttribute            Attribute = 1 << 0
	SExtAttribute            Attribute = 1 << 1
	NoReturnAttribute        Attribute = 1 << 2
	InRegAttribute           Attribute = 1 << 3
	StructRetAttribute       Attribute = 1 << 4
	NoUnwindAttribute        Attribute = 1 << 5
	NoAliasAttribute         Attribute = 1 << 6
	ByValAttribute           Attribute = 1 << 7
	NestAttribute            Attribute = 1 << 8
	ReadNoneAttribute        Attribute = 1 << 9
	ReadOnlyAttribute        Attribute = 1 << 10
	NoInlineAttribute        Attribute = 1 << 11
	AlwaysInlineAttribute    Attribute = 1 << 12
	OptimizeForSizeAttribute Attribute = 1 << 13
	StackProtectAttribute    Attribute = 1 << 14
	StackProtectReqAttribute Attribute = 1 << 15
	Alignment                Attribute = 31 << 16
	NoCaptureAttribute       Attribute = 1 << 21
	NoRedZoneAttribute       Attribute = 1 << 22
	NoImplicitFloatAttribute Attribute = 1 << 23
	NakedAttribute           Attribute = 1 << 24
	InlineHintAttribute      Attribute = 1 << 25
	StackAlignment           Attribute = 7 << 26
	ReturnsTwice             Attribute = 1 << 29
	UWTable                  Attribute = 1 << 30
	NonLazyBind              Attribute = 1 << 31
)

// Bit offsets of the two magnitude fields.
const (
	alignmentShift      = 16
	stackAlignmentShift = 26
)

// flagMask covers every single-bit attribute.
const flagMask = ^(Alignment | StackAlignment)

// EncodeAlignment encodes a parameter alignment in bytes into the alignment
// field: the field stores log2(align)+1 so that zero means "unaligned".
func EncodeAlignment(align uint64) (Attribute, error) {
	return encodeField(align, alignmentShift, Alignment, "alignment")
}

// EncodeStackAlignment encodes a stack alignment in bytes into the stack
// alignment field using the same biased representation as EncodeAlignment.
func EncodeStackAlignment(align uint64) (Attribute, error) {
	return encodeField(align, stackAlignmentShift, StackAlignment, "stack alignment")
}

func encodeField(align uint64, shift uint, mask Attribute, what string) (Attribute, error) {
	if align == 0 || align&(align-1) != 0 {
		return 0, fmt.Errorf("%s %d is not a power of two", what, align)
	}

	encoded := Attribute(bits.TrailingZeros64(align)+1) << shift
	if encoded&^mask != 0 || encoded>>shift != Attribute(bits.TrailingZeros64(align)+1) {
		return 0, fmt.Errorf("%s %d does not fit in the attribute field", what, align)
	}

	return encoded, nil
}

// AlignmentBytes decodes the alignment field.  It returns 0 if unset.
func (a Attribute) AlignmentBytes() uint64 {
	return decodeField(a, alignmentShift, Alignment)
}

// StackAlignmentBytes decodes the stack alignment field.  It returns 0 if unset.
func (a Attribute) StackAlignmentBytes() uint64 {
	return decodeField(a, stackAlignmentShift, StackAlignment)
}

func decodeField(a Attribute, shift uint, mask Attribute) uint64 {
	field := (a & mask) >> shift
	if field == 0 {
		return 0
	}

	return 1 << (field - 1)
}

// Merge returns the union of a and b.  Single-bit attributes are OR-ed; a
// nonzero magnitude field in b replaces the corresponding field in a, so Merge
// is not commutative when both operands carry a different value in one field.
func (a Attribute) Merge(b Attribute) Attribute {
	res := a | (b & flagMask)
	for _, mask := range [...]Attribute{Alignment, StackAlignment} {
		if b&mask != 0 {
			res = (res &^ mask) | (b & mask)
		}
	}

	return res
}

// Clear returns a with the attributes of b removed.  Single-bit attributes are
// cleared bit-wise.  A magnitude field in b clears the field in a only if the
// encoded values are equal.
func (a Attribute) Clear(b Attribute) Attribute {
	res := a &^ (b & flagMask)
	for _, mask := range [...]Attribute{Alignment, StackAlignment} {
		if field := b & mask; field != 0 && field == a&mask {
			res &^= mask
		}
	}

	return res
}

// Contains returns whether every attribute of b is present in a.  A magnitude
// field in b must equal the field in a.  The Alignment and StackAlignment masks
// are themselves legal encodings (2^30 and 64 bytes), so they are compared like
// any other value.
func (a Attribute) Contains(b Attribute) bool {
	if a&(b&flagMask) != b&flagMask {
		return false
	}

	for _, mask := range [...]Attribute{Alignment, StackAlignment} {
		if field := b & mask; field != 0 && a&mask != field {
			return false
		}
	}

	return true
}

// -----------------------------------------------------------------------------

// keyword is an attribute rendered verbatim in the IR.  It implements both the
// function and parameter attribute interfaces of the IR library.
type keyword string

func (k keyword) String() string { return string(k) }

func (keyword) IsFuncAttribute() {}

func (keyword) IsParamAttribute() {}

// attrKeywords lists the IR keyword of every single-bit attribute.
var attrKeywords = []struct {
	bit Attribute
	kw  keyword
}{
	{ZExtAttribute, "zeroext"},
	{SExtAttribute, "signext"},
	{NoReturnAttribute, "noreturn"},
	{InRegAttribute, "inreg"},
	{StructRetAttribute, "sret"},
	{NoUnwindAttribute, "nounwind"},
	{NoAliasAttribute, "noalias"},
	{ByValAttribute, "byval"},
	{NestAttribute, "nest"},
	{ReadNoneAttribute, "readnone"},
	{ReadOnlyAttribute, "readonly"},
	{NoInlineAttribute, "noinline"},
	{AlwaysInlineAttribute, "alwaysinline"},
	{OptimizeForSizeAttribute, "optsize"},
	{StackProtectAttribute, "ssp"},
	{StackProtectReqAttribute, "sspreq"},
	{NoCaptureAttribute, "nocapture"},
	{NoRedZoneAttribute, "noredzone"},
	{NoImplicitFloatAttribute, "noimplicitfloat"},
	{NakedAttribute, "naked"},
	{InlineHintAttribute, "inlinehint"},
	{ReturnsTwice, "returns_twice"},
	{UWTable, "uwtable"},
	{NonLazyBind, "nonlazybind"},
}

// Keyword returns the IR keyword of a single-bit attribute.
func Keyword(a Attribute) (string, bool) {
	for _, ak := range attrKeywords {
		if ak.bit == a {
			return string(ak.kw), true
		}
	}

	return "", false
}

// Keywords renders a mask as IR attribute keywords: single-bit attributes in
// bit order followed by the alignment fields.
func Keywords(mask Attribute) []string {
	kws := render(mask)
	strs := make([]string, len(kws))
	for i, kw := range kws {
		strs[i] = string(kw)
	}

	return strs
}

// ParseKeyword converts a single IR attribute keyword into its mask.
func ParseKeyword(s string) (Attribute, bool) {
	return decode(keyword(s))
}

// render converts a mask into IR attributes in bit order.
func render(mask Attribute) []keyword {
	var kws []keyword
	for _, ak := range attrKeywords {
		if mask&ak.bit != 0 {
			kws = append(kws, ak.kw)
		}
	}

	if align := mask.AlignmentBytes(); align != 0 {
		kws = append(kws, keyword("align "+strconv.FormatUint(align, 10)))
	}

	if align := mask.StackAlignmentBytes(); align != 0 {
		kws = append(kws, keyword("alignstack("+strconv.FormatUint(align, 10)+")"))
	}

	return kws
}

// decode converts a single IR attribute into its mask.  It returns false for
// attributes that have no bitmask representation.
func decode(attr fmt.Stringer) (Attribute, bool) {
	s := attr.String()
	for _, ak := range attrKeywords {
		if string(ak.kw) == s {
			return ak.bit, true
		}
	}

	if rest, ok := strings.CutPrefix(s, "align "); ok {
		if n, err := strconv.ParseUint(rest, 10, 64); err == nil {
			if enc, err := EncodeAlignment(n); err == nil {
				return enc, true
			}
		}
	}

	if rest, ok := strings.CutPrefix(s, "alignstack("); ok {
		if n, err := strconv.ParseUint(strings.TrimSuffix(rest, ")"), 10, 64); err == nil {
			if enc, err := EncodeStackAlignment(n); err == nil {
				return enc, true
			}
		}
	}

	return 0, false
}

// -----------------------------------------------------------------------------

// GetAttribute returns the attribute mask of a function parameter.
func GetAttribute(arg ValueRef) Attribute {
	arg.ctx.check()

	var mask Attribute
	for _, attr := range mustParam(arg).Attrs {
		if a, ok := decode(attr); ok {
			mask = mask.Merge(a)
		}
	}

	return mask
}

// AddAttribute adds the attributes of mask to a function parameter.
func AddAttribute(arg ValueRef, mask Attribute) {
	setParamAttrs(mustParam(arg), GetAttribute(arg).Merge(mask))
}

// RemoveAttribute removes the attributes of mask from a function parameter.
func RemoveAttribute(arg ValueRef, mask Attribute) {
	setParamAttrs(mustParam(arg), GetAttribute(arg).Clear(mask))
}

func setParamAttrs(p *ir.Param, mask Attribute) {
	var attrs []ir.ParamAttribute
	for _, attr := range p.Attrs {
		if _, ok := decode(attr); !ok {
			attrs = append(attrs, attr)
		}
	}

	for _, kw := range render(mask) {
		attrs = append(attrs, kw)
	}

	p.Attrs = attrs
}

// GetFunctionAttr returns the function-level attribute mask of a function.
func GetFunctionAttr(fn ValueRef) Attribute {
	fn.ctx.check()

	var mask Attribute
	for _, attr := range mustFunc(fn).FuncAttrs {
		if a, ok := decode(attr); ok {
			mask = mask.Merge(a)
		}
	}

	return mask
}

// AddFunctionAttr adds the attributes of mask to a function.
func AddFunctionAttr(fn ValueRef, mask Attribute) {
	setFuncAttrs(mustFunc(fn), GetFunctionAttr(fn).Merge(mask))
}

// RemoveFunctionAttr removes the attributes of mask from a function.
func RemoveFunctionAttr(fn ValueRef, mask Attribute) {
	setFuncAttrs(mustFunc(fn), GetFunctionAttr(fn).Clear(mask))
}

func setFuncAttrs(f *ir.Func, mask Attribute) {
	var attrs []ir.FuncAttribute
	for _, attr := range f.FuncAttrs {
		if _, ok := decode(attr); !ok {
			attrs = append(attrs, attr)
		}
	}

	for _, kw := range render(mask) {
		attrs = append(attrs, kw)
	}

	f.FuncAttrs = attrs
}
