package llc

import (
	"io"
	"strings"

	"github.com/llir/llvm/ir"
)

// ModuleRef is a handle to a module.
type ModuleRef struct {
	m   *ir.Module
	ctx *ctxData
}

// IsNil returns whether the handle refers to no module.
func (m ModuleRef) IsNil() bool {
	return m.m == nil
}

// ModuleCreateWithNameInContext creates a new, empty module.
func ModuleCreateWithNameInContext(name CString, c ContextRef) ModuleRef {
	c.c.check()

	m := ir.NewModule()
	m.SourceFilename = name.GoString()
	c.c.modules = append(c.c.modules, m)
	return ModuleRef{m: m, ctx: c.c}
}

// GetModuleContext returns the context owning the module.
func GetModuleContext(m ModuleRef) ContextRef {
	return ContextRef{c: m.ctx}
}

// GetModuleIdentifier returns the name of the module.
func GetModuleIdentifier(m ModuleRef) CString {
	m.ctx.check()

	cname, err := NewCString(m.m.SourceFilename)
	if err != nil {
		panic(err)
	}

	return cname
}

// AddFunction declares a new function of type fnType in the module.  The
// parameters of the function are unnamed.
func AddFunction(m ModuleRef, name CString, fnType TypeRef) ValueRef {
	m.ctx.check()
	return ValueRef{v: newFunc(m.m, m.ctx, name.GoString(), fnType), ctx: m.ctx}
}

// GetNamedFunction looks up a function of the module by name.  The returned
// handle is nil if no such function exists.
func GetNamedFunction(m ModuleRef, name CString) ValueRef {
	m.ctx.check()

	goName := name.GoString()
	for _, f := range m.m.Funcs {
		if f.GlobalName == goName {
			return ValueRef{v: f, ctx: m.ctx}
		}
	}

	return ValueRef{}
}

// GetFunctions returns all functions of the module in declaration order.
func GetFunctions(m ModuleRef) []ValueRef {
	m.ctx.check()

	fns := make([]ValueRef, len(m.m.Funcs))
	for i, f := range m.m.Funcs {
		fns[i] = ValueRef{v: f, ctx: m.ctx}
	}

	return fns
}

// PrintModuleToString renders the module in IR syntax.
func PrintModuleToString(m ModuleRef) string {
	sb := &strings.Builder{}
	if err := WriteModule(m, sb); err != nil {
		panic(err)
	}

	return sb.String()
}

// WriteModule writes the IR of the module to w.
func WriteModule(m ModuleRef, w io.Writer) error {
	m.ctx.check()

	for _, f := range m.m.Funcs {
		if err := f.AssignIDs(); err != nil {
			return err
		}
	}

	_, err := m.m.WriteTo(w)
	return err
}
