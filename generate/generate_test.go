package generate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irkit/llvm"
	"irkit/manifest"
)

func TestConvType(t *testing.T) {
	ctx := llvm.NewContext()
	g := NewGenerator(ctx, &manifest.Manifest{Name: "types"})

	cases := []struct {
		src  string
		want llvm.Type
	}{
		{"void", ctx.VoidType()},
		{"i1", ctx.Int1Type()},
		{"i64", ctx.Int64Type()},
		{"i24", ctx.IntType(24)},
		{"float", ctx.FloatType()},
		{"double", ctx.DoubleType()},
		{"i8*", llvm.NewPointerType(ctx.Int8Type())},
		{"i8 * *", llvm.NewPointerType(llvm.NewPointerType(ctx.Int8Type()))},
		{"{}", ctx.StructType(nil, false)},
		{"{i32, double}", ctx.StructType([]llvm.Type{ctx.Int32Type(), ctx.DoubleType()}, false)},
		{"<{i8, i32}>", ctx.StructType([]llvm.Type{ctx.Int8Type(), ctx.Int32Type()}, true)},
		{"{i8*, {i1}}*", llvm.NewPointerType(ctx.StructType([]llvm.Type{
			llvm.NewPointerType(ctx.Int8Type()),
			ctx.StructType([]llvm.Type{ctx.Int1Type()}, false),
		}, false))},
	}

	for _, c := range cases {
		got, err := g.convType(c.src)
		require.NoError(t, err, c.src)
		assert.True(t, c.want.Equal(got), "%s: got %s", c.src, got)
	}
}

func TestConvType_Errors(t *testing.T) {
	g := NewGenerator(llvm.NewContext(), &manifest.Manifest{Name: "types"})

	for _, src := range []string{"", "i0", "i", "int", "void*", "{i32", "{i32 i8}", "{void}", "i32 i8", "<{i8}"} {
		_, err := g.convType(src)
		assert.Error(t, err, src)
	}
}

func TestGenerate_Demo(t *testing.T) {
	man, err := manifest.Load(filepath.Join("..", "manifest", "testdata", "demo.toml"))
	require.NoError(t, err)

	ctx := llvm.NewContext()
	defer ctx.Dispose()

	mod, err := Generate(ctx, man)
	require.NoError(t, err)
	assert.Equal(t, "demo", mod.Name())

	fns := mod.Functions()
	require.Len(t, fns, 3)
	assert.Equal(t, "memcpy", fns[0].Name())
	assert.Equal(t, "printf", fns[1].Name())
	assert.Equal(t, "helper", fns[2].Name())

	memcpy, ok := mod.GetFunction("memcpy")
	require.True(t, ok)
	assert.Equal(t, fns[0], memcpy)
	assert.True(t, memcpy.HasAttribute(llvm.NoUnwind))

	dst := memcpy.Arg(0)
	name, ok := dst.Name()
	assert.True(t, ok)
	assert.Equal(t, "dst", name)
	align8, _ := llvm.AlignmentAttr(8)
	assert.Equal(t, llvm.NoAlias.Union(llvm.NoCapture, align8), dst.Attributes())

	name, ok = memcpy.Arg(1).Name()
	assert.True(t, ok)
	assert.Equal(t, "", name)
	assert.True(t, memcpy.Arg(1).HasAttribute(llvm.ReadOnly))

	_, ok = memcpy.Arg(2).Name()
	assert.False(t, ok)
	assert.Zero(t, memcpy.Arg(2).Attributes())

	entry, ok := memcpy.Entry()
	require.True(t, ok)
	assert.Equal(t, "entry", entry.Name())
	assert.True(t, entry.Terminated())

	printf := fns[1]
	assert.True(t, printf.IsDeclaration())
	assert.True(t, printf.Signature().IsVariadic())
	_, ok = printf.Entry()
	assert.False(t, ok)

	helper := fns[2]
	assert.Equal(t, llvm.InternalLinkage, helper.Linkage())
	assert.True(t, helper.HasAttribute(llvm.AlwaysInline))
	assert.Equal(t, uint64(16), helper.Attributes().StackAlignmentBytes())
	assert.Len(t, helper.Blocks(), 2)
	assert.Equal(t, llvm.StructTypeKind, helper.Signature().ReturnType().Kind())

	text := mod.String()
	assert.Contains(t, text, "@memcpy")
	assert.Contains(t, text, "%dst")
	assert.Contains(t, text, "align 8")
	assert.Contains(t, text, "alignstack(16)")
}

func TestGenerate_NoReturnBlocks(t *testing.T) {
	man := &manifest.Manifest{
		Name: "m",
		Functions: []*manifest.Function{
			{Name: "abort", Returns: "void", Attrs: []string{"noreturn"}, Blocks: []string{"entry"}},
			{Name: "zero", Returns: "i32", Blocks: []string{"entry"}},
		},
	}

	mod, err := Generate(llvm.NewContext(), man)
	require.NoError(t, err)

	text := mod.String()
	assert.Contains(t, text, "unreachable")
	assert.Contains(t, text, "ret i32 0")
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name string
		fn   *manifest.Function
		msg  string
	}{
		{"bad return", &manifest.Function{Name: "f", Returns: "i0"}, "integer width"},
		{"void param", &manifest.Function{Name: "f", Returns: "void", Params: []*manifest.Param{{Type: "void"}}}, "parameter 0"},
		{"bad param attr", &manifest.Function{Name: "f", Returns: "void", Params: []*manifest.Param{{Type: "i8*", Attrs: []string{"align 3"}}}}, "unknown attribute"},
		{"bad function attr", &manifest.Function{Name: "f", Returns: "void", Attrs: []string{"fast"}}, "unknown attribute"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			man := &manifest.Manifest{Name: "m", Functions: []*manifest.Function{c.fn}}

			_, err := Generate(llvm.NewContext(), man)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "function `f`")
			assert.Contains(t, err.Error(), c.msg)
		})
	}
}
