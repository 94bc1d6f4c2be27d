package llc

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

// ctxData is the engine-side state of a context.  Every handle carries a
// pointer to the context it was created in so that the engine can enforce the
// lifetime boundary of the context.
type ctxData struct {
	// The modules created in this context.
	modules []*ir.Module

	// named records the values which have been explicitly assigned a name
	// (possibly the empty name).  Values absent from this set which also carry
	// no name in the IR report a null name.
	named map[value.Value]struct{}

	// paramParents maps each parameter created by this context to the function
	// which declares it.
	paramParents map[*ir.Param]*ir.Func

	// Indicates whether the context has been disposed.
	disposed bool
}

// check panics if the context is no longer valid.
func (cd *ctxData) check() {
	if cd == nil {
		panic("llc: use of nil context")
	}

	if cd.disposed {
		panic("llc: use of disposed context")
	}
}

// ContextRef is a handle to an engine context.
type ContextRef struct {
	c *ctxData
}

// ContextCreate creates a new context.
func ContextCreate() ContextRef {
	return ContextRef{c: &ctxData{
		named:        make(map[value.Value]struct{}),
		paramParents: make(map[*ir.Param]*ir.Func),
	}}
}

// ContextDispose invalidates the context and every handle derived from it.
func ContextDispose(c ContextRef) {
	c.c.check()

	c.c.modules = nil
	c.c.named = nil
	c.c.paramParents = nil
	c.c.disposed = true
}

// IsNil returns whether the handle refers to no context.
func (c ContextRef) IsNil() bool {
	return c.c == nil
}

// IsDisposed returns whether the context has been disposed.
func (c ContextRef) IsDisposed() bool {
	return c.c != nil && c.c.disposed
}

// -----------------------------------------------------------------------------

// CString is a null-terminated byte buffer handed across the engine boundary.
// A nil CString is the null pointer: it is distinct from the empty string which
// is a buffer containing only the terminator.
type CString []byte

// NulError is returned when a Go string cannot be marshalled into a CString
// because it contains an embedded null byte.
type NulError struct {
	// The string that failed to marshal.
	Str string

	// The byte offset of the first null byte.
	Pos int
}

func (ne *NulError) Error() string {
	return fmt.Sprintf("string %q contains a null byte at offset %d", ne.Str, ne.Pos)
}

// NewCString marshals s into a null-terminated buffer.
func NewCString(s string) (CString, error) {
	if pos := strings.IndexByte(s, 0); pos >= 0 {
		return nil, &NulError{Str: s, Pos: pos}
	}

	cs := make(CString, len(s)+1)
	copy(cs, s)
	return cs, nil
}

// IsNull returns whether the buffer is the null pointer.
func (cs CString) IsNull() bool {
	return cs == nil
}

// GoString converts the buffer back into a Go string, stopping at the first
// null byte.  The null buffer converts to the empty string.
func (cs CString) GoString() string {
	if cs == nil {
		return ""
	}

	for i, b := range cs {
		if b == 0 {
			return string(cs[:i])
		}
	}

	return string(cs)
}

// -----------------------------------------------------------------------------

// toUint converts a Go length into the engine's unsigned integer type.
func toUint(n int) uint32 {
	u, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("llc: count overflows engine integer: %w", err))
	}

	return u
}
