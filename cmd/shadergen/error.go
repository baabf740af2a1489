package main

import (
	"log/slog"
	"strings"
)

// cmdError is a command error carrying attributes for structured logging.
type cmdError struct {
	msg   string
	err   error
	attrs []slog.Attr
}

func newError(msg string) *cmdError { return &cmdError{msg: msg} }

func (e *cmdError) Error() string {
	part := make([]string, 0, 2)
	if e.msg != "" {
		part = append(part, e.msg)
	}
	if e.err != nil {
		part = append(part, e.err.Error())
	}
	return strings.Join(part, ": ")
}

func (e *cmdError) Unwrap() error { return e.err }

func (e *cmdError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)
	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}
	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}
	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e wrapping err.
func (e *cmdError) Wrap(err error) *cmdError {
	return &cmdError{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with attrs added.
func (e *cmdError) With(attrs ...slog.Attr) *cmdError {
	newAttrs := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	newAttrs = append(newAttrs, e.attrs...)
	return &cmdError{msg: e.msg, err: e.err, attrs: append(newAttrs, attrs...)}
}

var (
	errLoadManifest = newError("load manifest")
	errBuildShader  = newError("build shader")
	errNoVariant    = newError("variant not found")
	errWriteOutput  = newError("write output")
)
