package main

import (
	"log/slog"

	"github.com/soypat/shaderlab"
)

type printCmd struct {
	Variant  string `help:"Name of the document to print. Defaults to the base document." short:"v"`
	Manifest string `arg:"" help:"Manifest file." type:"existingfile"`
}

func (p *printCmd) Run(env *environment) error {
	shaders, err := loadShaders(env.config(""), p.Manifest)
	if err != nil {
		return err
	}
	sh := shaders[0]
	if p.Variant != "" {
		sh = nil
		for _, s := range shaders {
			if s.Name == p.Variant {
				sh = s
				break
			}
		}
		if sh == nil {
			return errNoVariant.With(slog.String("file", p.Manifest), slog.String("variant", p.Variant))
		}
	}
	return writeShader(env, sh)
}

func writeShader(env *environment, sh *shaderlab.Shader) error {
	if _, err := sh.WriteTo(env.stdout); err != nil {
		return errWriteOutput.With(slog.String("shader", sh.Name)).Wrap(err)
	}
	return nil
}
