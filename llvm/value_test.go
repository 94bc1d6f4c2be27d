package llvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irkit/llc"
)

func TestValue_NameTriState(t *testing.T) {
	_, _, fn := testModule(t)
	arg := fn.Arg(0)

	name, ok := arg.Name()
	assert.False(t, ok)
	assert.Empty(t, name)

	require.NoError(t, arg.SetName(""))
	name, ok = arg.Name()
	assert.True(t, ok)
	assert.Equal(t, "", name)

	require.NoError(t, arg.SetName("x"))
	name, ok = arg.Name()
	assert.True(t, ok)
	assert.Equal(t, "x", name)
}

func TestValue_SetNameRejectsNul(t *testing.T) {
	_, _, fn := testModule(t)
	arg := fn.Arg(1)
	require.NoError(t, arg.SetName("dst"))

	err := arg.SetName("d\x00st")

	var nulErr *llc.NulError
	require.ErrorAs(t, err, &nulErr)
	assert.Equal(t, 1, nulErr.Pos)

	name, ok := arg.Name()
	assert.True(t, ok)
	assert.Equal(t, "dst", name)
}

func TestValue_ConstantHasNoName(t *testing.T) {
	ctx := NewContext()
	k := ConstInt(ctx.Int64Type(), 42)

	_, ok := k.Name()
	assert.False(t, ok)
	assert.True(t, k.IsConstant())
	assert.Equal(t, IntegerTypeKind, k.Type().Kind())
	assert.Equal(t, 64, k.Type().IntWidth())
}

func TestNewStruct(t *testing.T) {
	ctx := NewContext()
	vals := []Value{ConstInt(ctx.Int32Type(), 1), ConstNull(ctx.DoubleType())}

	s := NewStruct(ctx, vals, false)
	require.Equal(t, StructTypeKind, s.Type().Kind())
	assert.False(t, s.Type().IsPacked())
	assert.Equal(t, 2, s.Type().NumFields())
	assert.True(t, s.Type().Equal(ctx.StructType([]Type{ctx.Int32Type(), ctx.DoubleType()}, false)))

	packed := NewStruct(ctx, vals, true)
	assert.True(t, packed.Type().IsPacked())
	assert.False(t, packed.Type().Equal(s.Type()))
}

func TestNewStruct_NonConstantOperand(t *testing.T) {
	ctx, _, fn := testModule(t)

	assert.Panics(t, func() {
		NewStruct(ctx, []Value{fn.Arg(0).Value}, false)
	})
}

func TestValue_Context(t *testing.T) {
	ctx, mod, fn := testModule(t)

	assert.Equal(t, ctx, fn.Context())
	assert.Equal(t, ctx, fn.Arg(1).Context())
	assert.Equal(t, ctx, mod.Context())
	assert.NotEqual(t, NewContext(), fn.Context())
}

func TestContext_Dispose(t *testing.T) {
	ctx, _, fn := testModule(t)
	ctx.Dispose()

	assert.Panics(t, func() { fn.NumArgs() })
	assert.Panics(t, func() { ctx.Int32Type() })
}

func TestContext_IntType(t *testing.T) {
	ctx := NewContext()

	assert.Equal(t, 1, ctx.Int1Type().IntWidth())
	assert.Equal(t, 16, ctx.Int16Type().IntWidth())
	assert.Equal(t, 24, ctx.IntType(24).IntWidth())
	assert.Panics(t, func() { ctx.IntType(0) })
	assert.Panics(t, func() { ctx.IntType(-8) })
}
