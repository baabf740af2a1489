// Package manifest builds ShaderLab documents from YAML manifests.
//
//	name: Custom/Glow
//	program: hlsl
//	properties:
//	  - {name: _Glow, display: Glow, float: 0.5}
//	tags: {RenderType: Opaque}
//	pragmas: ["surface surf Lambert"]
//	structs: [{include: input_uv.hlsl}]
//	functions: [{include: surf_lambert.hlsl}]
//	variants:
//	  - name: Custom/Glow Transparent
//	    tags: {RenderType: Transparent, Queue: Transparent}
//
// Variants are built with [shaderlab.Shader.Inherit] from the base document.
package manifest

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/soypat/shaderlab"
	"github.com/soypat/shaderlab/slbuild"
)

// Manifest describes a base document and its variants.
type Manifest struct {
	Name       string     `yaml:"name"`
	Program    string     `yaml:"program"`
	Properties []Property `yaml:"properties"`
	Commands   []string   `yaml:"commands"`
	// Tags keeps the order in which tags are written.
	Tags      yaml.MapSlice `yaml:"tags"`
	Pragmas   []string      `yaml:"pragmas"`
	Structs   []Code        `yaml:"structs"`
	Functions []Code        `yaml:"functions"`
	Fallback  string        `yaml:"fallback"`
	Variants  []Variant     `yaml:"variants"`
}

// Variant is a document derived from the base document of a [Manifest].
type Variant struct {
	Name       string     `yaml:"name"`
	Properties []Property `yaml:"properties"`
	Commands   []string   `yaml:"commands"`
	// Tags replace all inherited tags when set.
	Tags yaml.MapSlice `yaml:"tags"`
	// Pragmas are appended to the inherited directives.
	Pragmas   []string  `yaml:"pragmas"`
	Structs   []Code    `yaml:"structs"`
	Functions []Code    `yaml:"functions"`
	Overrides Overrides `yaml:"overrides"`
	// Fallback replaces the inherited fallback when set. An empty string removes it.
	Fallback *string `yaml:"fallback"`
}

// Overrides replace inherited structs and functions with the same identity.
type Overrides struct {
	Structs   []Code `yaml:"structs"`
	Functions []Code `yaml:"functions"`
}

// Code is a struct or function given literally or by include file name.
// Exactly one of Code and Include must be set.
type Code struct {
	Code    string `yaml:"code"`
	Include string `yaml:"include"`
	// Index is the emitted position of a new function. Functions without an
	// index are emitted after all functions added before them.
	Index *int `yaml:"index"`
}

// Parse decodes a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalWithOptions(data, &m, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Load reads and decodes the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Build returns the base document followed by one document per variant.
// Include files are read from fsys, which may be nil if no includes are used.
func (m *Manifest) Build(fsys fs.FS) ([]*shaderlab.Shader, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("manifest without name: %w", shaderlab.ErrInvalidArgument)
	}
	program := shaderlab.LegacyProgram
	if m.Program != "" {
		var err error
		program, err = shaderlab.ParseProgramKind(m.Program)
		if err != nil {
			return nil, fmt.Errorf("shader %q: %w", m.Name, err)
		}
	}
	b := builder{fsys: fsys, sh: shaderlab.New(m.Name, program)}
	b.properties(m.Properties)
	b.sh.AddCommands(m.Commands...)
	b.tags(m.Tags, false)
	b.sh.AddPragmaticDirectives(m.Pragmas...)
	b.structs(m.Structs, false)
	b.functions(m.Functions, false)
	b.sh.SetFallback(m.Fallback)
	if err := b.err(); err != nil {
		return nil, err
	}

	shaders := []*shaderlab.Shader{b.sh}
	names := map[string]struct{}{m.Name: {}}
	for i := range m.Variants {
		v := &m.Variants[i]
		if v.Name == "" {
			return nil, fmt.Errorf("variant %d of %q without name: %w", i, m.Name, shaderlab.ErrInvalidArgument)
		} else if _, dup := names[v.Name]; dup {
			return nil, fmt.Errorf("variant %q: %w", v.Name, shaderlab.ErrDuplicate)
		}
		names[v.Name] = struct{}{}

		vb := builder{fsys: fsys, sh: b.sh.Inherit(v.Name)}
		vb.properties(v.Properties)
		vb.sh.AddCommands(v.Commands...)
		if len(v.Tags) > 0 {
			vb.tags(v.Tags, true)
		}
		vb.sh.AddPragmaticDirectives(v.Pragmas...)
		vb.structs(v.Overrides.Structs, true)
		vb.functions(v.Overrides.Functions, true)
		vb.structs(v.Structs, false)
		vb.functions(v.Functions, false)
		if v.Fallback != nil {
			vb.sh.SetFallback(*v.Fallback)
		}
		if err := vb.err(); err != nil {
			return nil, err
		}
		shaders = append(shaders, vb.sh)
	}
	return shaders, nil
}

// builder applies manifest entries to a document. Errors of malformed entries
// are kept apart from those recorded by the document.
type builder struct {
	fsys fs.FS
	sh   *shaderlab.Shader
	errs []error
}

func (b *builder) errorf(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
}

func (b *builder) err() error {
	err := b.sh.Err()
	if err == nil && len(b.errs) > 0 {
		err = b.errs[0]
	}
	if err != nil {
		return fmt.Errorf("shader %q: %w", b.sh.Name, err)
	}
	return nil
}

func (b *builder) properties(props []Property) {
	built := make([]shaderlab.Property, 0, len(props))
	for i := range props {
		prop, err := props[i].Property()
		if err != nil {
			b.errorf("property %d: %w", i, err)
			return
		}
		built = append(built, prop)
	}
	b.sh.AddProperties(built...)
}

func (b *builder) tags(items yaml.MapSlice, replace bool) {
	tags := make([]shaderlab.Tag, len(items))
	for i, item := range items {
		tags[i] = shaderlab.Tag{Key: fmt.Sprint(item.Key), Value: fmt.Sprint(item.Value)}
	}
	if replace {
		b.sh.SetTags(tags...)
	} else {
		b.sh.AddTags(tags...)
	}
}

func (b *builder) structs(codes []Code, override bool) {
	for i, c := range codes {
		if c.Index != nil {
			b.errorf("struct %d: index is only valid for functions: %w", i, shaderlab.ErrInvalidArgument)
			return
		}
		code, err := c.source(b.fsys)
		if err != nil {
			b.errorf("struct %d: %w", i, err)
			return
		}
		if override {
			b.sh.OverrideStruct(code)
		} else {
			b.sh.AddStruct(code)
		}
	}
}

func (b *builder) functions(codes []Code, override bool) {
	n := 0
	for range b.sh.Functions() {
		n++
	}
	for i, c := range codes {
		code, err := c.source(b.fsys)
		if err != nil {
			b.errorf("function %d: %w", i, err)
			return
		}
		switch {
		case override && c.Index != nil:
			b.errorf("function %d: index is not valid for overrides: %w", i, shaderlab.ErrInvalidArgument)
			return
		case override:
			b.sh.OverrideFunction(code)
		case c.Index != nil:
			b.sh.InsertFunction(*c.Index, code)
			n++
		default:
			b.sh.InsertFunction(n, code)
			n++
		}
	}
}

func (c Code) source(fsys fs.FS) (string, error) {
	switch {
	case c.Code != "" && c.Include != "":
		return "", fmt.Errorf("both code and include set: %w", shaderlab.ErrInvalidArgument)
	case c.Code != "":
		return c.Code, nil
	case c.Include == "":
		return "", fmt.Errorf("neither code nor include set: %w", shaderlab.ErrInvalidArgument)
	case fsys == nil:
		return "", fmt.Errorf("include %q without include root: %w", c.Include, shaderlab.ErrInvalidArgument)
	}
	return slbuild.ReadASCII(fsys, c.Include)
}
