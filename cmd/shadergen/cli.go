package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
)

const (
	appName        = "shadergen"
	appDescription = "Build ShaderLab documents from YAML manifests."
)

type cli struct {
	Log logConfig `embed:"" group:"log" prefix:"log-"`

	Include string `help:"Include root directory. Defaults to the embedded snippet library." short:"I" type:"existingdir"`

	Build buildCmd `cmd:"" help:"Write every document of the manifests to the output directory."`
	Print printCmd `cmd:"" help:"Write one document of a manifest to standard output."`
	Decls declsCmd `cmd:"" help:"Write the code block declarations of the manifest documents as JSON."`
}

// run parses args and runs the selected command. Logs and usage are written to
// stderr, command output to stdout.
func run(ctx context.Context, stdout, stderr io.Writer, exit func(int), args ...string) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.ExplicitGroups([]kong.Group{c.Log.group()}),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
	)
	if err != nil {
		return err
	}
	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	logger := c.Log.logger(stderr)
	slog.SetDefault(logger)
	logger.DebugContext(ctx, "logger initialized",
		slog.String("level", c.Log.Level),
		slog.String("format", c.Log.Format),
	)

	env := &environment{
		ctx:     ctx,
		stdout:  stdout,
		log:     logger,
		include: c.Include,
	}
	return ktx.Run(env)
}

// environment is bound to every command's Run method.
type environment struct {
	ctx     context.Context
	stdout  io.Writer
	log     *slog.Logger
	include string
}
