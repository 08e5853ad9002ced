// Package gotool invokes the external Go toolchain for cross-compilation.
package gotool

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/gowheel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler using os/exec.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile runs "go build" in the source module directory with the target's
// GOOS/GOARCH, CGO disabled, and stripped symbols. Stderr is captured and
// attached to the error on a nonzero exit.
func (c *Compiler) Compile(ctx context.Context, req ports.CompileRequest) error {
	goBinary := req.GoBinary
	if goBinary == "" {
		goBinary = "go"
	}

	//nolint:gosec // The compiler path and arguments come from the caller's flags
	cmd := exec.CommandContext(ctx, goBinary,
		"build",
		"-ldflags="+buildLDFlags(req.LDFlags),
		"-o", req.OutputPath,
		".",
	)
	cmd.Dir = req.SourceDir
	cmd.Env = buildEnv(os.Environ(), req.Platform)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "platform", req.Platform.Key),
			"stderr", strings.TrimSpace(stderr.String()),
		)
	}
	return nil
}

// buildLDFlags composes the linker flags: symbols are always stripped, extra
// caller flags are appended so they can override the defaults.
func buildLDFlags(extra string) string {
	flags := "-s -w"
	if extra != "" {
		flags += " " + extra
	}
	return flags
}

// buildEnv overlays the target selection onto the inherited environment.
// CGO is disabled so the binary has no native-library linkage.
func buildEnv(sysEnv []string, plat domain.Platform) []string {
	env := make([]string, 0, len(sysEnv)+3)
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if ok && (k == "GOOS" || k == "GOARCH" || k == "CGO_ENABLED") {
			continue
		}
		env = append(env, entry)
	}
	return append(env,
		"GOOS="+plat.GOOS,
		"GOARCH="+plat.Arch,
		"CGO_ENABLED=0",
	)
}
