package llvm

import (
	"bufio"
	"io"
	"os"

	"irkit/llc"
)

// Module represents an IR module.
type Module struct {
	ref llc.ModuleRef
}

// Handle returns the underlying engine handle.
func (m Module) Handle() llc.ModuleRef {
	return m.ref
}

// Name returns the name of the module.
func (m Module) Name() string {
	return llc.GetModuleIdentifier(m.ref).GoString()
}

// Context returns the context owning the module.
func (m Module) Context() Context {
	return Context{c: llc.GetModuleContext(m.ref)}
}

// AddFunction declares a new function named name of type fnType.  The
// arguments of the new function are unnamed.
func (m Module) AddFunction(name string, fnType FunctionType) Function {
	return Function{Value{ref: llc.AddFunction(m.ref, mustCString(name), fnType.ref)}}
}

// GetFunction looks up a function of the module by name.
func (m Module) GetFunction(name string) (fn Function, exists bool) {
	cname, err := llc.NewCString(name)
	if err != nil {
		return
	}

	fn.ref = llc.GetNamedFunction(m.ref, cname)
	exists = !fn.ref.IsNil()
	return
}

// Functions returns the functions of the module in declaration order.
func (m Module) Functions() []Function {
	refs := llc.GetFunctions(m.ref)

	fns := make([]Function, len(refs))
	for i, ref := range refs {
		fns[i] = Function{Value{ref: ref}}
	}

	return fns
}

// String returns the IR text of the module.
func (m Module) String() string {
	return llc.PrintModuleToString(m.ref)
}

// Print writes the IR text of the module to w.
func (m Module) Print(w io.Writer) error {
	return llc.WriteModule(m.ref, w)
}

// WriteToFile writes the IR text of the module to a file.
func (m Module) WriteToFile(filepath string) error {
	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := m.Print(bw); err != nil {
		return err
	}

	return bw.Flush()
}
