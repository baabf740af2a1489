package slbuild

import (
	"fmt"
	"regexp"
)

var (
	structHeader = regexp.MustCompile(`^struct\s+([A-Za-z_][A-Za-z0-9_]*)`)
	// A leading identifier, any number of further words (return type, name,
	// qualifiers) and a parameter list without nested parentheses.
	functionSignature = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(?:\s+\w+)*\s*\([^),]*(?:\s*,\s*[^),]*)*\)`)
)

// StructIdentity returns the name of the struct declared at the very start of
// code. Code must begin with the struct keyword, leading whitespace is not accepted.
//
//	StructIdentity("struct Input {\n\tfloat2 uv_MainTex;\n};") // "Input"
func StructIdentity(code string) (string, error) {
	match := structHeader.FindStringSubmatch(code)
	if match == nil {
		return "", fmt.Errorf("struct: %w", ErrNoDeclaration)
	}
	return match[1], nil
}

// FunctionSignature splits code into its leading function signature and the
// remainder of the code following it. The signature is the registry identity
// of the function.
//
//	sig, body, _ := FunctionSignature("void surf(Input IN, inout SurfaceOutput o)\n{\n}")
//	// sig:  "void surf(Input IN, inout SurfaceOutput o)"
//	// body: "\n{\n}"
func FunctionSignature(code string) (signature, body string, err error) {
	loc := functionSignature.FindStringIndex(code)
	if loc == nil {
		return "", "", fmt.Errorf("function signature: %w", ErrNoDeclaration)
	}
	return code[:loc[1]], code[loc[1]:], nil
}
