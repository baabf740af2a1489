// Package slaux provides auxiliary helpers to load shader code from an include
// root and save ShaderLab documents to an output directory. Applications with
// particular needs should use the io.WriterTo and fs.FS methods of
// [shaderlab.Shader] directly.
package slaux

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soypat/shaderlab"
	"github.com/soypat/shaderlab/slbuild/hlsllib"
)

// Config holds the file locations used by the helpers. The zero value reads
// includes from [hlsllib.FS], saves to the working directory and does not log.
type Config struct {
	// IncludeRoot is the directory struct and function files are read from.
	// If empty the embedded snippet library is used.
	IncludeRoot string
	// OutputRoot is the directory documents are saved to. It is created on save if missing.
	OutputRoot string
	// Logger receives debug and info events. Nil discards them.
	Logger *slog.Logger
}

// Includes returns the include root as a file system.
func (cfg Config) Includes() fs.FS {
	if cfg.IncludeRoot == "" {
		return hlsllib.FS
	}
	return os.DirFS(cfg.IncludeRoot)
}

// OutputPath returns the path a document saved as fileName is written to.
func (cfg Config) OutputPath(fileName string) string {
	return filepath.Join(cfg.OutputRoot, fileName)
}

// FileName returns the file name a document named shaderName is saved as by
// default: "Custom/Glow Transparent" becomes "Custom_Glow_Transparent.shader".
func FileName(shaderName string) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '_'
		}
		return r
	}, shaderName)
	return base + Ext
}

// Ext is the file extension of ShaderLab documents.
const Ext = ".shader"

// AddStructFile adds the struct in the named include file to sh.
func (cfg Config) AddStructFile(sh *shaderlab.Shader, name string) *shaderlab.Shader {
	cfg.logger().Debug("include struct", slog.String("shader", sh.Name), slog.String("file", name))
	return sh.AddStructFS(cfg.Includes(), name)
}

// AddFunctionFile adds the function in the named include file to sh before all other functions.
func (cfg Config) AddFunctionFile(sh *shaderlab.Shader, name string) *shaderlab.Shader {
	cfg.logger().Debug("include function", slog.String("shader", sh.Name), slog.String("file", name))
	return sh.AddFunctionFS(cfg.Includes(), name)
}

// Save writes sh to fileName under the output root and returns the written path.
func (cfg Config) Save(sh *shaderlab.Shader, fileName string) (string, error) {
	return cfg.SaveContext(context.Background(), sh, fileName)
}

// SaveContext is [Config.Save] with a context for the logger.
func (cfg Config) SaveContext(ctx context.Context, sh *shaderlab.Shader, fileName string) (string, error) {
	log := cfg.logger()
	if err := sh.Err(); err != nil {
		log.ErrorContext(ctx, "document has errors", slog.String("shader", sh.Name), slog.Any("error", err))
		return "", err
	}
	if cfg.OutputRoot != "" {
		if err := os.MkdirAll(cfg.OutputRoot, 0o755); err != nil {
			return "", err
		}
	}
	path := cfg.OutputPath(fileName)
	watch := stopwatch()
	if err := sh.SaveAs(path); err != nil {
		return "", err
	}
	log.InfoContext(ctx, "saved shader",
		slog.String("shader", sh.Name),
		slog.String("path", path),
		slog.Duration("took", watch()),
	)
	return path, nil
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return discard
	}
	return cfg.Logger
}

var discard = slog.New(slog.DiscardHandler)

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
