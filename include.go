package shaderlab

import (
	"io/fs"

	"github.com/soypat/shaderlab/slbuild"
)

// The FS variants of the struct and function operations read the named ASCII
// file from an include root and pass its contents to the literal operation.
// The include root is usually [os.DirFS] or an embedded library such as hlsllib.FS.

// AddStructFS is [Shader.AddStruct] with code read from fsys.
func (sh *Shader) AddStructFS(fsys fs.FS, name string) *Shader {
	code, err := slbuild.ReadASCII(fsys, name)
	if err != nil {
		return sh.errorf("add struct: %w", err)
	}
	return sh.AddStruct(code)
}

// OverrideStructFS is [Shader.OverrideStruct] with code read from fsys.
func (sh *Shader) OverrideStructFS(fsys fs.FS, name string) *Shader {
	code, err := slbuild.ReadASCII(fsys, name)
	if err != nil {
		return sh.errorf("override struct: %w", err)
	}
	return sh.OverrideStruct(code)
}

// AddFunctionFS is [Shader.AddFunction] with code read from fsys.
func (sh *Shader) AddFunctionFS(fsys fs.FS, name string) *Shader {
	return sh.InsertFunctionFS(fsys, 0, name)
}

// InsertFunctionFS is [Shader.InsertFunction] with code read from fsys.
func (sh *Shader) InsertFunctionFS(fsys fs.FS, index int, name string) *Shader {
	code, err := slbuild.ReadASCII(fsys, name)
	if err != nil {
		return sh.errorf("add function: %w", err)
	}
	return sh.InsertFunction(index, code)
}

// OverrideFunctionFS is [Shader.OverrideFunction] with code read from fsys.
func (sh *Shader) OverrideFunctionFS(fsys fs.FS, name string) *Shader {
	code, err := slbuild.ReadASCII(fsys, name)
	if err != nil {
		return sh.errorf("override function: %w", err)
	}
	return sh.OverrideFunction(code)
}
