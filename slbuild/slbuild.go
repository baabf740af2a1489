package slbuild

import (
	"errors"
	"fmt"
	"strconv"
)

// Indent is the indentation unit of emitted ShaderLab source.
const Indent = '\t'

var (
	// ErrInvalidArgument is wrapped by every error returned when user supplied
	// code or arguments are rejected.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNoDeclaration     = fmt.Errorf("%w: no declaration found", ErrInvalidArgument)
	ErrDuplicate         = fmt.Errorf("%w: already exists", ErrInvalidArgument)
	ErrNotFound          = fmt.Errorf("%w: not found", ErrInvalidArgument)
	ErrNoDeclarationType = fmt.Errorf("%w: no type for this variant", ErrInvalidArgument)
	ErrIndexRange        = fmt.Errorf("%w: index out of range", ErrInvalidArgument)
	ErrNonASCII          = fmt.Errorf("%w: non-ASCII source", ErrInvalidArgument)
)

// AppendFloat appends the shortest decimal representation of v that
// round-trips as a float32, i.e: 0.5, 1, -60000, 1e+07.
func AppendFloat(b []byte, v float32) []byte {
	return strconv.AppendFloat(b, float64(v), 'g', -1, 32)
}

// AppendFloats appends the values separated by sep followed by a space.
//
//	AppendFloats(b, ',', 1, 0.5) // "1, 0.5"
func AppendFloats(b []byte, sep byte, s ...float32) []byte {
	for i, v := range s {
		b = AppendFloat(b, v)
		if sep != 0 && i != len(s)-1 {
			b = append(b, sep, ' ')
		}
	}
	return b
}

// AppendIndent appends n indentation units.
func AppendIndent(b []byte, n int) []byte {
	for i := 0; i < n; i++ {
		b = append(b, Indent)
	}
	return b
}

// AppendReflow appends code to b indenting every line after the first by
// depth indentation units. The indentation is inserted immediately after each
// newline regardless of the code's original indentation, so multi-line bodies
// stay nested under the surrounding block.
func AppendReflow(b []byte, code string, depth int) []byte {
	start := 0
	for i := 0; i < len(code); i++ {
		if code[i] != '\n' {
			continue
		}
		b = append(b, code[start:i+1]...)
		b = AppendIndent(b, depth)
		start = i + 1
	}
	return append(b, code[start:]...)
}

// AppendDeclaration appends a `<typename> <varname>;` line at depth.
func AppendDeclaration(b []byte, depth int, typename, varname string) []byte {
	b = AppendIndent(b, depth)
	b = append(b, typename...)
	b = append(b, ' ')
	b = append(b, varname...)
	b = append(b, ';', '\n')
	return b
}

// AppendPragma appends a `#pragma <directive>` line at depth.
func AppendPragma(b []byte, depth int, directive string) []byte {
	b = AppendIndent(b, depth)
	b = append(b, "#pragma "...)
	b = append(b, directive...)
	b = append(b, '\n')
	return b
}

// AppendQuoted appends s surrounded by double quotes. No escaping is performed
// since ShaderLab string literals have no escape sequences.
func AppendQuoted(b []byte, s string) []byte {
	b = append(b, '"')
	b = append(b, s...)
	return append(b, '"')
}

// AppendTag appends a `"key" = "value" ` tag entry, trailing space included.
func AppendTag(b []byte, key, value string) []byte {
	b = AppendQuoted(b, key)
	b = append(b, " = "...)
	b = AppendQuoted(b, value)
	return append(b, ' ')
}
