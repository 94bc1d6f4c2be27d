package generate

import (
	"fmt"

	"irkit/llvm"
	"irkit/manifest"
)

// Generator lowers a manifest into an IR module.  Everything it builds goes
// through the typed value API: names, attributes and blocks alike.
type Generator struct {
	// ctx is the context owning the generated module.
	ctx llvm.Context

	// man is the manifest being lowered.
	man *manifest.Manifest

	// mod is the module being generated.
	mod llvm.Module

	// typeCache maps type strings that have already been converted to their
	// IR types.
	typeCache map[string]llvm.Type
}

// NewGenerator creates a new generator for man in ctx.
func NewGenerator(ctx llvm.Context, man *manifest.Manifest) *Generator {
	return &Generator{
		ctx:       ctx,
		man:       man,
		typeCache: make(map[string]llvm.Type),
	}
}

// Generate builds the module described by the manifest.
func (g *Generator) Generate() (llvm.Module, error) {
	g.mod = g.ctx.NewModule(g.man.Name)

	for _, fn := range g.man.Functions {
		if err := g.genFunction(fn); err != nil {
			return llvm.Module{}, fmt.Errorf("function `%s`: %w", fn.Name, err)
		}
	}

	return g.mod, nil
}

// Generate is a shorthand for creating a generator and running it.
func Generate(ctx llvm.Context, man *manifest.Manifest) (llvm.Module, error) {
	return NewGenerator(ctx, man).Generate()
}

// -----------------------------------------------------------------------------

func (g *Generator) genFunction(mfn *manifest.Function) error {
	retType, err := g.convType(mfn.Returns)
	if err != nil {
		return err
	}

	paramTypes := make([]llvm.Type, len(mfn.Params))
	for i, param := range mfn.Params {
		paramTypes[i], err = g.convType(param.Type)
		if err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}

		if paramTypes[i].Kind() == llvm.VoidTypeKind {
			return fmt.Errorf("parameter %d: parameters cannot be of type void", i)
		}
	}

	fn := g.mod.AddFunction(mfn.Name, llvm.NewFunctionType(retType, paramTypes, mfn.Variadic))

	for i, param := range mfn.Params {
		if err := g.genParam(fn.Arg(i), param); err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
	}

	fnAttrs, err := convAttrs(mfn.Attrs)
	if err != nil {
		return err
	}
	fn.AddAttributes(fnAttrs...)

	if mfn.Linkage != "" {
		fn.SetLinkage(linkages[mfn.Linkage])
	}

	g.genBody(fn, mfn.Blocks)
	return nil
}

func (g *Generator) genParam(arg llvm.Arg, param *manifest.Param) error {
	if param.Name != nil {
		if err := arg.SetName(*param.Name); err != nil {
			return err
		}
	}

	attrs, err := convAttrs(param.Attrs)
	if err != nil {
		return err
	}

	arg.AddAttributes(attrs...)
	return nil
}

// genBody appends the named blocks to fn.  Every block is terminated: by
// `unreachable` in functions that never return and otherwise by returning
// the zero value of the return type.
func (g *Generator) genBody(fn llvm.Function, blocks []string) {
	retType := fn.Signature().ReturnType()
	noReturn := fn.HasAttribute(llvm.NoReturn)

	for _, name := range blocks {
		bb := fn.Append(name)

		switch {
		case noReturn:
			bb.Unreachable()
		case retType.Kind() == llvm.VoidTypeKind:
			bb.RetVoid()
		default:
			bb.Ret(llvm.ConstNull(retType))
		}
	}
}

// -----------------------------------------------------------------------------

func convAttrs(strs []string) ([]llvm.Attribute, error) {
	attrs := make([]llvm.Attribute, len(strs))
	for i, s := range strs {
		attr, err := llvm.ParseAttribute(s)
		if err != nil {
			return nil, err
		}

		attrs[i] = attr
	}

	return attrs, nil
}

// linkages maps manifest linkage names to linkages.
var linkages = map[string]llvm.Linkage{
	"external":             llvm.ExternalLinkage,
	"available_externally": llvm.AvailableExternallyLinkage,
	"linkonce":             llvm.LinkOnceAnyLinkage,
	"linkonce_odr":         llvm.LinkOnceODRLinkage,
	"weak":                 llvm.WeakAnyLinkage,
	"weak_odr":             llvm.WeakODRLinkage,
	"appending":            llvm.AppendingLinkage,
	"internal":             llvm.InternalLinkage,
	"private":              llvm.PrivateLinkage,
	"extern_weak":          llvm.ExternalWeakLinkage,
	"common":               llvm.CommonLinkage,
}
