package main

import (
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/soypat/shaderlab"
)

type declsCmd struct {
	Compact  bool   `help:"Write compact JSON." short:"c"`
	Manifest string `arg:"" help:"Manifest file." type:"existingfile"`
}

type declReport struct {
	Shader       string        `json:"shader"`
	Program      string        `json:"program"`
	Declarations []declaration `json:"declarations"`
	Structs      []string      `json:"structs"`
	Functions    []string      `json:"functions"`
}

type declaration struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	// Type is empty for properties without a code block type.
	Type     string `json:"type,omitempty"`
	Declared bool   `json:"declared"`
}

func (d *declsCmd) Run(env *environment) error {
	shaders, err := loadShaders(env.config(""), d.Manifest)
	if err != nil {
		return err
	}
	reports := make([]declReport, len(shaders))
	for i, sh := range shaders {
		reports[i] = newDeclReport(sh)
	}
	var data []byte
	if d.Compact {
		data, err = json.Marshal(reports)
	} else {
		data, err = json.MarshalIndent(reports, "", "  ")
	}
	if err != nil {
		return errWriteOutput.With(slog.String("file", d.Manifest)).Wrap(err)
	}
	data = append(data, '\n')
	if _, err = env.stdout.Write(data); err != nil {
		return errWriteOutput.Wrap(err)
	}
	return nil
}

func newDeclReport(sh *shaderlab.Shader) declReport {
	report := declReport{
		Shader:       sh.Name,
		Program:      sh.Program.String(),
		Declarations: []declaration{},
		Structs:      []string{},
		Functions:    []string{},
	}
	for _, prop := range sh.Properties() {
		typename, err := prop.DeclarationType()
		decl := declaration{
			Name:     prop.Name(),
			Kind:     prop.Value().Kind().String(),
			Declared: err == nil && prop.GeneratesDeclaration(),
		}
		if err == nil {
			decl.Type = typename
		}
		report.Declarations = append(report.Declarations, decl)
	}
	for name := range sh.Structs() {
		report.Structs = append(report.Structs, name)
	}
	for sig := range sh.Functions() {
		report.Functions = append(report.Functions, sig)
	}
	return report
}
