package generate

import (
	"fmt"
	"strconv"
	"strings"

	"irkit/llvm"
)

// convType converts a manifest type string such as `i8*` or `<{i32, double}>`
// into an IR type.
func (g *Generator) convType(src string) (llvm.Type, error) {
	if typ, ok := g.typeCache[src]; ok {
		return typ, nil
	}

	tp := &typeParser{g: g, src: src}
	typ, err := tp.parseType()
	if err != nil {
		return llvm.Type{}, err
	}

	tp.skipSpace()
	if tp.pos < len(tp.src) {
		return llvm.Type{}, tp.errorf("unexpected `%s`", tp.src[tp.pos:])
	}

	g.typeCache[src] = typ
	return typ, nil
}

// typeParser is a recursive descent parser for manifest type strings.
type typeParser struct {
	g   *Generator
	src string
	pos int
}

func (tp *typeParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("invalid type `%s`: %s", tp.src, fmt.Sprintf(format, args...))
}

func (tp *typeParser) skipSpace() {
	for tp.pos < len(tp.src) && (tp.src[tp.pos] == ' ' || tp.src[tp.pos] == '\t') {
		tp.pos++
	}
}

func (tp *typeParser) consume(tok string) bool {
	tp.skipSpace()
	if strings.HasPrefix(tp.src[tp.pos:], tok) {
		tp.pos += len(tok)
		return true
	}

	return false
}

func (tp *typeParser) parseType() (llvm.Type, error) {
	var typ llvm.Type
	var err error

	switch {
	case tp.consume("<{"):
		typ, err = tp.parseStruct("}>", true)
	case tp.consume("{"):
		typ, err = tp.parseStruct("}", false)
	default:
		typ, err = tp.parsePrimType()
	}

	if err != nil {
		return llvm.Type{}, err
	}

	for tp.consume("*") {
		if typ.Kind() == llvm.VoidTypeKind {
			return llvm.Type{}, tp.errorf("pointer to void")
		}

		typ = llvm.NewPointerType(typ)
	}

	return typ, nil
}

func (tp *typeParser) parseStruct(closer string, packed bool) (llvm.Type, error) {
	var fields []llvm.Type
	if !tp.consume(closer) {
		for {
			field, err := tp.parseType()
			if err != nil {
				return llvm.Type{}, err
			}

			if field.Kind() == llvm.VoidTypeKind {
				return llvm.Type{}, tp.errorf("struct field of type void")
			}

			fields = append(fields, field)

			if tp.consume(closer) {
				break
			}

			if !tp.consume(",") {
				return llvm.Type{}, tp.errorf("expected `,` or `%s`", closer)
			}
		}
	}

	return tp.g.ctx.StructType(fields, packed), nil
}

func (tp *typeParser) parsePrimType() (llvm.Type, error) {
	tp.skipSpace()

	start := tp.pos
	for tp.pos < len(tp.src) && isWordByte(tp.src[tp.pos]) {
		tp.pos++
	}

	word := tp.src[start:tp.pos]
	switch word {
	case "":
		return llvm.Type{}, tp.errorf("expected a type")
	case "void":
		return tp.g.ctx.VoidType(), nil
	case "float":
		return tp.g.ctx.FloatType(), nil
	case "double":
		return tp.g.ctx.DoubleType(), nil
	}

	if bits, err := strconv.Atoi(strings.TrimPrefix(word, "i")); err == nil && word[0] == 'i' {
		if bits < 1 || bits > maxIntBits {
			return llvm.Type{}, tp.errorf("integer width %d out of range", bits)
		}

		return tp.g.ctx.IntType(bits), nil
	}

	return llvm.Type{}, tp.errorf("unknown type `%s`", word)
}

// maxIntBits is the widest integer type the IR allows.
const maxIntBits = 1<<23 - 1

func isWordByte(b byte) bool {
	return 'a' <= b && b <= 'z' || '0' <= b && b <= '9' || b == '_'
}
