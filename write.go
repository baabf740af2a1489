package shaderlab

import (
	"io"
	"os"

	"github.com/soypat/shaderlab/slbuild"
)

// Indentation depths of the emitted source.
const (
	depthBlock = 1 // Properties, SubShader, Fallback.
	depthEntry = 2 // Property lines, Tags, program code.
)

var _ io.WriterTo = (*Shader)(nil) // Interface implementation compile-time check.

// AppendSource appends the ShaderLab source of the document to b and returns
// the result. It fails if the document has recorded errors.
//
// Struct and function code is reflowed so every line is nested under the
// program block no matter its original indentation.
func (sh *Shader) AppendSource(b []byte) ([]byte, error) {
	if err := sh.Err(); err != nil {
		return b, err
	}
	b = append(b, "Shader "...)
	b = slbuild.AppendQuoted(b, sh.Name)
	b = append(b, "\n{\n"...)

	b = appendBlockOpen(b, "Properties")
	for _, prop := range sh.properties {
		b = slbuild.AppendIndent(b, depthEntry)
		b = prop.AppendDescription(b)
		b = append(b, '\n')
	}
	b = appendBlockClose(b)
	b = append(b, '\n')

	b = appendBlockOpen(b, "SubShader")
	b = slbuild.AppendIndent(b, depthEntry)
	b = append(b, "Tags { "...)
	for k, v := range sh.tags.All() {
		b = slbuild.AppendTag(b, k, v)
	}
	b = append(b, "}\n\n"...)

	begin, end := sh.Program.markers()
	b = slbuild.AppendIndent(b, depthEntry)
	b = append(b, begin...)
	b = append(b, "\n\n"...)
	b = sh.appendProgram(b)
	b = slbuild.AppendIndent(b, depthEntry)
	b = append(b, end...)
	b = append(b, '\n')
	b = appendBlockClose(b)
	b = append(b, '\n')

	if sh.fallback != "" {
		b = slbuild.AppendIndent(b, depthBlock)
		b = append(b, "Fallback "...)
		b = slbuild.AppendQuoted(b, sh.fallback)
		b = append(b, '\n')
	}
	b = append(b, "}\n"...)
	return b, nil
}

// appendProgram appends the contents of the program block: directives,
// structs, property declarations and functions.
func (sh *Shader) appendProgram(b []byte) []byte {
	for _, directive := range sh.pragmas {
		b = slbuild.AppendPragma(b, depthEntry, directive)
	}
	b = append(b, '\n')

	for _, code := range sh.structs.All() {
		b = slbuild.AppendIndent(b, depthEntry)
		b = slbuild.AppendReflow(b, code, depthEntry)
		b = append(b, "\n\n"...)
	}

	for _, prop := range sh.properties {
		if !prop.GeneratesDeclaration() {
			continue
		}
		typename, err := prop.DeclarationType()
		if err != nil {
			continue // Variant has no declaration type such as Color or Cubemap.
		}
		b = slbuild.AppendDeclaration(b, depthEntry, typename, prop.Name())
	}
	b = append(b, '\n')

	for sig, body := range sh.functions.All() {
		b = slbuild.AppendIndent(b, depthEntry)
		b = append(b, sig...)
		b = slbuild.AppendReflow(b, body, depthEntry)
		b = append(b, "\n\n"...)
	}
	return b
}

func appendBlockOpen(b []byte, name string) []byte {
	b = slbuild.AppendIndent(b, depthBlock)
	b = append(b, name...)
	b = append(b, '\n')
	b = slbuild.AppendIndent(b, depthBlock)
	return append(b, "{\n"...)
}

func appendBlockClose(b []byte) []byte {
	b = slbuild.AppendIndent(b, depthBlock)
	return append(b, "}\n"...)
}

// WriteTo writes the ShaderLab source of the document to w. Implements [io.WriterTo].
func (sh *Shader) WriteTo(w io.Writer) (int64, error) {
	src, err := sh.AppendSource(nil)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(src)
	return int64(n), err
}

// Serialize returns the ShaderLab source of the document.
func (sh *Shader) Serialize() (string, error) {
	src, err := sh.AppendSource(nil)
	if err != nil {
		return "", err
	}
	return string(src), nil
}

// SaveAs writes the ShaderLab source of the document to the named file,
// creating or truncating it. No file is created if the document has errors.
func (sh *Shader) SaveAs(filename string) (err error) {
	src, err := sh.AppendSource(nil)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if errClose := fp.Close(); err == nil {
			err = errClose
		}
	}()
	_, err = fp.Write(src)
	return err
}
