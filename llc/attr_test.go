package llc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Values of the LLVMAttribute enumeration as published in llvm-c/Core.h.
var llvmCAttributes = map[Attribute]uint32{
	ZExtAttribute:            0x1,
	SExtAttribute:            0x2,
	NoReturnAttribute:        0x4,
	InRegAttribute:           0x8,
	StructRetAttribute:       0x10,
	NoUnwindAttribute:        0x20,
	NoAliasAttribute:         0x40,
	ByValAttribute:           0x80,
	NestAttribute:            0x100,
	ReadNoneAttribute:        0x200,
	ReadOnlyAttribute:        0x400,
	NoInlineAttribute:        0x800,
	AlwaysInlineAttribute:    0x1000,
	OptimizeForSizeAttribute: 0x2000,
	StackProtectAttribute:    0x4000,
	StackProtectReqAttribute: 0x8000,
	Alignment:                0x1f0000,
	NoCaptureAttribute:       0x200000,
	NoRedZoneAttribute:       0x400000,
	NoImplicitFloatAttribute: 0x800000,
	NakedAttribute:           0x1000000,
	InlineHintAttribute:      0x2000000,
	StackAlignment:           0x1c000000,
	ReturnsTwice:             0x20000000,
	UWTable:                  0x40000000,
	NonLazyBind:              0x80000000,
}

func TestAttribute_LayoutMatchesCAPI(t *testing.T) {
	for attr, want := range llvmCAttributes {
		assert.Equal(t, want, uint32(attr))
	}
}

func TestAttribute_BitsAreDisjoint(t *testing.T) {
	var seen Attribute
	for attr := range llvmCAttributes {
		assert.Zero(t, seen&attr, "attribute %#x overlaps", uint32(attr))
		seen |= attr
	}

	assert.Equal(t, Attribute(0xffffffff), seen)
}

func TestEncodeAlignment(t *testing.T) {
	enc, err := EncodeAlignment(1)
	require.NoError(t, err)
	assert.Equal(t, Attribute(1<<16), enc)

	enc, err = EncodeAlignment(8)
	require.NoError(t, err)
	assert.Equal(t, Attribute(4<<16), enc)
	assert.Equal(t, uint64(8), enc.AlignmentBytes())

	enc, err = EncodeAlignment(1 << 30)
	require.NoError(t, err)
	assert.Equal(t, Alignment, enc)

	_, err = EncodeAlignment(12)
	assert.Error(t, err)

	_, err = EncodeAlignment(0)
	assert.Error(t, err)

	_, err = EncodeAlignment(1 << 31)
	assert.Error(t, err)
}

func TestEncodeStackAlignment(t *testing.T) {
	enc, err := EncodeStackAlignment(16)
	require.NoError(t, err)
	assert.Equal(t, Attribute(5<<26), enc)
	assert.Equal(t, uint64(16), enc.StackAlignmentBytes())
	assert.Zero(t, enc.AlignmentBytes())

	enc, err = EncodeStackAlignment(64)
	require.NoError(t, err)
	assert.Equal(t, StackAlignment, enc)

	_, err = EncodeStackAlignment(128)
	assert.Error(t, err)
}

func TestAttribute_MergeReplacesFields(t *testing.T) {
	a4, _ := EncodeAlignment(4)
	a16, _ := EncodeAlignment(16)

	merged := (NoAliasAttribute | a4).Merge(NoCaptureAttribute | a16)
	assert.Equal(t, NoAliasAttribute|NoCaptureAttribute|a16, merged)

	// a zero field in the right operand keeps the left field
	assert.Equal(t, a4|NestAttribute, a4.Merge(NestAttribute))
}

func TestAttribute_Clear(t *testing.T) {
	a8, _ := EncodeAlignment(8)
	a4, _ := EncodeAlignment(4)
	mask := NoAliasAttribute | NoCaptureAttribute | a8

	assert.Equal(t, NoCaptureAttribute|a8, mask.Clear(NoAliasAttribute))
	assert.Equal(t, NoAliasAttribute|NoCaptureAttribute, mask.Clear(a8))
	assert.Equal(t, mask, mask.Clear(Alignment))
	assert.Equal(t, mask, mask.Clear(a4))
	assert.Equal(t, mask, mask.Clear(InRegAttribute))
}

func TestAttribute_Contains(t *testing.T) {
	a8, _ := EncodeAlignment(8)
	a4, _ := EncodeAlignment(4)
	mask := NoAliasAttribute | a8

	assert.True(t, mask.Contains(NoAliasAttribute))
	assert.False(t, mask.Contains(Alignment))
	assert.True(t, mask.Contains(a8))
	assert.True(t, mask.Contains(NoAliasAttribute|a8))
	assert.False(t, mask.Contains(a4))
	assert.False(t, mask.Contains(NoCaptureAttribute))
	assert.False(t, mask.Contains(StackAlignment))
	assert.True(t, mask.Contains(0))
}

func TestAttribute_FullFieldValuesCompareExactly(t *testing.T) {
	s16, _ := EncodeStackAlignment(16)
	s64, err := EncodeStackAlignment(64)
	require.NoError(t, err)
	a8, _ := EncodeAlignment(8)
	aMax, err := EncodeAlignment(1 << 30)
	require.NoError(t, err)

	assert.False(t, s16.Contains(s64))
	assert.Equal(t, s16, s16.Clear(s64))
	assert.True(t, s64.Contains(s64))
	assert.Zero(t, s64.Clear(s64))

	assert.False(t, a8.Contains(aMax))
	assert.Equal(t, a8, a8.Clear(aMax))
	assert.True(t, aMax.Contains(aMax))
	assert.Zero(t, aMax.Clear(aMax))
}

func TestRenderDecode_RoundTrip(t *testing.T) {
	a32, _ := EncodeAlignment(32)
	s8, _ := EncodeStackAlignment(8)
	mask := ZExtAttribute | ByValAttribute | NonLazyBind | a32 | s8

	var decoded Attribute
	for _, kw := range render(mask) {
		a, ok := decode(kw)
		require.True(t, ok, "keyword %q", kw)
		decoded = decoded.Merge(a)
	}

	assert.Equal(t, mask, decoded)
}

func TestRender_Keywords(t *testing.T) {
	a8, _ := EncodeAlignment(8)
	kws := render(NoAliasAttribute | NoCaptureAttribute | a8)

	require.Len(t, kws, 3)
	assert.Equal(t, "noalias", kws[0].String())
	assert.Equal(t, "nocapture", kws[1].String())
	assert.Equal(t, "align 8", kws[2].String())
}

func TestKeyword(t *testing.T) {
	kw, ok := Keyword(UWTable)
	assert.True(t, ok)
	assert.Equal(t, "uwtable", kw)

	_, ok = Keyword(Alignment)
	assert.False(t, ok)
}
