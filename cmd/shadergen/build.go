package main

import (
	"log/slog"

	"github.com/soypat/shaderlab"
	"github.com/soypat/shaderlab/manifest"
	"github.com/soypat/shaderlab/slaux"
)

type buildCmd struct {
	Out       string   `default:"." help:"Output directory, created if missing." short:"o" type:"path"`
	Manifests []string `arg:"" help:"Manifest files." name:"manifest" type:"existingfile"`
}

// Run builds every manifest before writing so no output is written when any fails.
func (b *buildCmd) Run(env *environment) error {
	cfg := env.config(b.Out)
	var all []*shaderlab.Shader
	for _, path := range b.Manifests {
		shaders, err := loadShaders(cfg, path)
		if err != nil {
			return err
		}
		all = append(all, shaders...)
	}
	for _, sh := range all {
		_, err := cfg.SaveContext(env.ctx, sh, slaux.FileName(sh.Name))
		if err != nil {
			return errWriteOutput.With(slog.String("shader", sh.Name)).Wrap(err)
		}
	}
	env.log.DebugContext(env.ctx, "build done", slog.Int("shaders", len(all)))
	return nil
}

func (env *environment) config(outputRoot string) slaux.Config {
	return slaux.Config{
		IncludeRoot: env.include,
		OutputRoot:  outputRoot,
		Logger:      env.log,
	}
}

func loadShaders(cfg slaux.Config, path string) ([]*shaderlab.Shader, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, errLoadManifest.With(slog.String("file", path)).Wrap(err)
	}
	shaders, err := m.Build(cfg.Includes())
	if err != nil {
		return nil, errBuildShader.With(slog.String("file", path)).Wrap(err)
	}
	return shaders, nil
}
