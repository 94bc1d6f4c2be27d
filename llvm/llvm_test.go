package llvm

import (
	"testing"
)

// testModule declares `i32 @f(i32, i8*)` in a fresh module.
func testModule(t *testing.T) (Context, Module, Function) {
	t.Helper()

	ctx := NewContext()
	mod := ctx.NewModule("test")
	fn := mod.AddFunction("f", NewFunctionType(
		ctx.Int32Type(),
		[]Type{ctx.Int32Type(), NewPointerType(ctx.Int8Type())},
		false,
	))

	return ctx, mod, fn
}

func allAttributes() []Attribute {
	var attrs []Attribute
	for _, info := range Attributes() {
		attrs = append(attrs, info.Mask)
	}

	return attrs
}
