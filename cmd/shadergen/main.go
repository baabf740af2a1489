// Command shadergen builds ShaderLab documents from YAML manifests.
//
//	shadergen build -o Assets/Shaders glow.yaml
//	shadergen print --variant "Custom/Glow Transparent" glow.yaml
//	shadergen decls glow.yaml
package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	err := run(context.Background(), os.Stdout, os.Stderr, os.Exit, os.Args[1:]...)
	if err != nil {
		slog.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
