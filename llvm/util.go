package llvm

import (
	"irkit/llc"
)

// mustCString marshals a name chosen by the program itself.  A name with an
// embedded null byte is a programming error.
func mustCString(s string) llc.CString {
	cs, err := llc.NewCString(s)
	if err != nil {
		panic(err)
	}

	return cs
}

func typeRefs(typs []Type) []llc.TypeRef {
	refs := make([]llc.TypeRef, len(typs))
	for i, typ := range typs {
		refs[i] = typ.ref
	}

	return refs
}

func valueRefs(vals []Value) []llc.ValueRef {
	refs := make([]llc.ValueRef, len(vals))
	for i, val := range vals {
		refs[i] = val.ref
	}

	return refs
}
