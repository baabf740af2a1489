package main

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
)

type logConfig struct {
	Level  string `default:"info" enum:"debug,info,warn,error" help:"Set log level."`
	Format string `default:"text" enum:"json,text"             help:"Set log format."`
	Caller bool   `default:"false"                             help:"Include caller information." negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group
	group.Key = "log"
	group.Title = "Logging options"
	return group
}

func (f *logConfig) logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: f.Caller}
	if f.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
