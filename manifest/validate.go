package manifest

import (
	"fmt"
	"strings"
)

// Error is a validation error of a manifest.
type Error struct {
	// The manifest path, if known.
	Path string

	// The function the error occurred in.  Empty for module-level errors.
	Function string

	Message string
}

func (e *Error) Error() string {
	sb := strings.Builder{}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}

	if e.Function != "" {
		fmt.Fprintf(&sb, "function `%s`: ", e.Function)
	}

	sb.WriteString(e.Message)
	return sb.String()
}

// Validate checks that the manifest is well-formed.  It does not interpret
// type or attribute strings.
func Validate(m *Manifest) error {
	mkErr := func(fn, format string, args ...interface{}) error {
		return &Error{Path: m.Path, Function: fn, Message: fmt.Sprintf(format, args...)}
	}

	if m.Name == "" {
		return mkErr("", "missing module name")
	}

	if hasNul(m.Name) {
		return mkErr("", "module name contains a null byte")
	}

	names := make(map[string]struct{})
	for i, fn := range m.Functions {
		if fn == nil || fn.Name == "" {
			return mkErr("", "function %d is missing a name", i)
		}

		if hasNul(fn.Name) {
			return mkErr(fn.Name, "name contains a null byte")
		}

		if _, ok := names[fn.Name]; ok {
			return mkErr(fn.Name, "multiple functions with the same name")
		}
		names[fn.Name] = struct{}{}

		if fn.Returns == "" {
			return mkErr(fn.Name, "missing return type")
		}

		if fn.Linkage != "" && !isLinkage(fn.Linkage) {
			return mkErr(fn.Name, "unknown linkage `%s`", fn.Linkage)
		}

		for j, param := range fn.Params {
			if param == nil || param.Type == "" {
				return mkErr(fn.Name, "parameter %d is missing a type", j)
			}

			if param.Name != nil && hasNul(*param.Name) {
				return mkErr(fn.Name, "name of parameter %d contains a null byte", j)
			}
		}

		blocks := make(map[string]struct{})
		for _, block := range fn.Blocks {
			if hasNul(block) {
				return mkErr(fn.Name, "block name contains a null byte")
			}

			if block == "" {
				continue
			}

			if _, ok := blocks[block]; ok {
				return mkErr(fn.Name, "multiple blocks named `%s`", block)
			}
			blocks[block] = struct{}{}
		}
	}

	return nil
}

func hasNul(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}

func isLinkage(s string) bool {
	for _, linkage := range Linkages {
		if linkage == s {
			return true
		}
	}

	return false
}
