package shaderlab

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/soypat/shaderlab/slbuild"
)

// Errors returned by [Shader] operations. All wrap [ErrInvalidArgument].
var (
	ErrInvalidArgument   = slbuild.ErrInvalidArgument
	ErrNoDeclaration     = slbuild.ErrNoDeclaration
	ErrDuplicate         = slbuild.ErrDuplicate
	ErrNotFound          = slbuild.ErrNotFound
	ErrNoDeclarationType = slbuild.ErrNoDeclarationType
	ErrIndexRange        = slbuild.ErrIndexRange
	ErrNonASCII          = slbuild.ErrNonASCII
)

// ProgramKind selects the code block dialect of a [Shader].
type ProgramKind uint8

const (
	// LegacyProgram wraps code in CGPROGRAM/ENDCG.
	LegacyProgram ProgramKind = iota
	// ModernProgram wraps code in HLSLPROGRAM/ENDHLSL.
	ModernProgram
)

func (pk ProgramKind) String() string {
	switch pk {
	case LegacyProgram:
		return "cg"
	case ModernProgram:
		return "hlsl"
	}
	return fmt.Sprintf("ProgramKind(%d)", uint8(pk))
}

// ParseProgramKind parses "cg" or "hlsl", case insensitive.
func ParseProgramKind(s string) (ProgramKind, error) {
	switch strings.ToLower(s) {
	case "cg", "cgprogram":
		return LegacyProgram, nil
	case "hlsl", "hlslprogram":
		return ModernProgram, nil
	}
	return 0, fmt.Errorf("program kind %q: %w", s, ErrInvalidArgument)
}

func (pk ProgramKind) markers() (begin, end string) {
	if pk == LegacyProgram {
		return "CGPROGRAM", "ENDCG"
	}
	return "HLSLPROGRAM", "ENDHLSL"
}

// Tag is a SubShader tag key-value pair, i.e: {"RenderType", "Opaque"}.
type Tag struct {
	Key, Value string
}

// Shader is a ShaderLab document under construction. Shader methods mutate
// the document in place and return it for chaining, except [Shader.Inherit]
// which returns a new independent document.
//
// A method that fails records its error and leaves the document unchanged.
// Recorded errors are returned by [Shader.Err] and prevent serialization.
//
// A Shader is not safe for concurrent use.
type Shader struct {
	Name    string
	Program ProgramKind

	properties []Property
	// commands are stored but not written to source.
	commands []string
	tags     slbuild.Table[string]
	pragmas  []string
	// structs maps struct name to its full code.
	structs slbuild.Table[string]
	// functions maps signature to the code following it.
	functions slbuild.Table[string]
	fallback  string
	accumErrs []error
}

// New returns an empty document.
func New(name string, program ProgramKind) *Shader {
	return &Shader{Name: name, Program: program}
}

// Err returns all errors recorded by failed operations joined, or nil.
func (sh *Shader) Err() error {
	if len(sh.accumErrs) == 0 {
		return nil
	}
	return errors.Join(sh.accumErrs...)
}

func (sh *Shader) errorf(msg string, args ...any) *Shader {
	sh.accumErrs = append(sh.accumErrs, fmt.Errorf(msg, args...))
	return sh
}

// AddProperties appends properties to the Properties block. Variable names are
// not checked for uniqueness. If any property is invalid none are added.
func (sh *Shader) AddProperties(props ...Property) *Shader {
	for i := range props {
		if err := props[i].Validate(); err != nil {
			return sh.errorf("add property %d: %w", i, err)
		}
	}
	sh.properties = append(sh.properties, props...)
	return sh
}

// AddCommands appends ShaderLab commands. Commands are kept but currently not written.
func (sh *Shader) AddCommands(commands ...string) *Shader {
	sh.commands = append(sh.commands, commands...)
	return sh
}

// AddTags appends tags. A key already present, or repeated in tags, fails the whole call.
func (sh *Shader) AddTags(tags ...Tag) *Shader {
	if err := validateTags(&sh.tags, tags); err != nil {
		return sh.errorf("add tags: %w", err)
	}
	for _, tag := range tags {
		sh.tags.Add(tag.Key, tag.Value)
	}
	return sh
}

// SetTags replaces all tags with tags.
func (sh *Shader) SetTags(tags ...Tag) *Shader {
	if err := validateTags(nil, tags); err != nil {
		return sh.errorf("set tags: %w", err)
	}
	sh.tags.Reset()
	return sh.AddTags(tags...)
}

// ClearTags removes all tags.
func (sh *Shader) ClearTags() *Shader {
	sh.tags.Reset()
	return sh
}

func validateTags(existing *slbuild.Table[string], tags []Tag) error {
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if tag.Key == "" {
			return fmt.Errorf("empty tag key: %w", ErrInvalidArgument)
		}
		_, repeated := seen[tag.Key]
		if repeated || (existing != nil && existing.Contains(tag.Key)) {
			return fmt.Errorf("tag %q: %w", tag.Key, ErrDuplicate)
		}
		seen[tag.Key] = struct{}{}
	}
	return nil
}

// AddPragmaticDirectives appends #pragma directives, i.e: "vertex vert".
func (sh *Shader) AddPragmaticDirectives(directives ...string) *Shader {
	sh.pragmas = append(sh.pragmas, directives...)
	return sh
}

// AddToPragmaticDirective appends a space and addition to the last directive.
func (sh *Shader) AddToPragmaticDirective(addition string) *Shader {
	return sh.AddToPragmaticDirectiveFromEnd(1, addition)
}

// AddToPragmaticDirectiveFromEnd appends a space and addition to the directive
// indexFromEnd positions from the end. An indexFromEnd of 1 is the last directive.
func (sh *Shader) AddToPragmaticDirectiveFromEnd(indexFromEnd int, addition string) *Shader {
	i, err := sh.pragmaIndex(indexFromEnd)
	if err != nil {
		return sh.errorf("add to pragma: %w", err)
	}
	sh.pragmas[i] += " " + addition
	return sh
}

// SetPragmaticDirective replaces the last directive.
func (sh *Shader) SetPragmaticDirective(directive string) *Shader {
	return sh.SetPragmaticDirectiveFromEnd(1, directive)
}

// SetPragmaticDirectiveFromEnd replaces the directive indexFromEnd positions from the end.
func (sh *Shader) SetPragmaticDirectiveFromEnd(indexFromEnd int, directive string) *Shader {
	i, err := sh.pragmaIndex(indexFromEnd)
	if err != nil {
		return sh.errorf("set pragma: %w", err)
	}
	sh.pragmas[i] = directive
	return sh
}

func (sh *Shader) pragmaIndex(indexFromEnd int) (int, error) {
	i := len(sh.pragmas) - indexFromEnd
	if indexFromEnd < 1 || i < 0 {
		return 0, fmt.Errorf("pragma %d from end of %d: %w", indexFromEnd, len(sh.pragmas), ErrIndexRange)
	}
	return i, nil
}

// AddStruct adds a struct declaration. code must start with "struct <Name>"
// and no struct of the same name may exist.
func (sh *Shader) AddStruct(code string) *Shader {
	name, err := slbuild.StructIdentity(code)
	if err == nil {
		err = sh.structs.Add(name, code)
	}
	if err != nil {
		return sh.errorf("add struct: %w", err)
	}
	return sh
}

// OverrideStruct replaces the code of an existing struct of the same name.
func (sh *Shader) OverrideStruct(code string) *Shader {
	name, err := slbuild.StructIdentity(code)
	if err == nil {
		err = sh.structs.Override(name, code)
	}
	if err != nil {
		return sh.errorf("override struct: %w", err)
	}
	return sh
}

// AddFunction adds a function before all existing functions. code must start
// with the function signature and no function with the same signature may exist.
func (sh *Shader) AddFunction(code string) *Shader {
	return sh.InsertFunction(0, code)
}

// InsertFunction adds a function at position index of the emitted function
// order. index must be in the range [0, number of functions].
func (sh *Shader) InsertFunction(index int, code string) *Shader {
	sig, body, err := slbuild.FunctionSignature(code)
	if err == nil {
		err = sh.functions.Insert(index, sig, body)
	}
	if err != nil {
		return sh.errorf("add function: %w", err)
	}
	return sh
}

// OverrideFunction replaces the code of an existing function with the same
// signature, keeping its position.
func (sh *Shader) OverrideFunction(code string) *Shader {
	sig, body, err := slbuild.FunctionSignature(code)
	if err == nil {
		err = sh.functions.Override(sig, body)
	}
	if err != nil {
		return sh.errorf("override function: %w", err)
	}
	return sh
}

// SetFallback sets the Fallback shader name. An empty name removes the fallback.
func (sh *Shader) SetFallback(name string) *Shader {
	sh.fallback = name
	return sh
}

// Inherit returns a new document named newName with copies of all of the
// receiver's contents and recorded errors. Mutations of either document do
// not affect the other.
func (sh *Shader) Inherit(newName string) *Shader {
	return &Shader{
		Name:       newName,
		Program:    sh.Program,
		properties: slices.Clone(sh.properties),
		commands:   slices.Clone(sh.commands),
		tags:       sh.tags.Clone(),
		pragmas:    slices.Clone(sh.pragmas),
		structs:    sh.structs.Clone(),
		functions:  sh.functions.Clone(),
		fallback:   sh.fallback,
		accumErrs:  slices.Clone(sh.accumErrs),
	}
}

// Properties returns a copy of the property list.
func (sh *Shader) Properties() []Property { return slices.Clone(sh.properties) }

// Commands returns a copy of the command list.
func (sh *Shader) Commands() []string { return slices.Clone(sh.commands) }

// PragmaticDirectives returns a copy of the directive list.
func (sh *Shader) PragmaticDirectives() []string { return slices.Clone(sh.pragmas) }

// Fallback returns the fallback shader name, empty if unset.
func (sh *Shader) Fallback() string { return sh.fallback }

// Tags returns a copy of the tags in emission order.
func (sh *Shader) Tags() []Tag {
	tags := make([]Tag, 0, sh.tags.Len())
	for k, v := range sh.tags.All() {
		tags = append(tags, Tag{Key: k, Value: v})
	}
	return tags
}

// Structs iterates over struct names and their code in emission order.
func (sh *Shader) Structs() iter.Seq2[string, string] { return sh.structs.All() }

// Functions iterates over function signatures and the code following them in emission order.
func (sh *Shader) Functions() iter.Seq2[string, string] { return sh.functions.All() }

// HasStruct reports whether a struct of the given name was added.
func (sh *Shader) HasStruct(name string) bool { return sh.structs.Contains(name) }

// HasFunction reports whether a function with the given signature was added.
func (sh *Shader) HasFunction(signature string) bool { return sh.functions.Contains(signature) }
