// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/gowheel/internal/core/domain"
)

// CompileRequest describes one cross-compilation of the source module.
type CompileRequest struct {
	// SourceDir is the Go module directory to build.
	SourceDir string
	// OutputPath is where the compiled binary is written.
	OutputPath string
	// Platform selects GOOS and GOARCH.
	Platform domain.Platform
	// LDFlags are extra linker flags appended to the default "-s -w".
	LDFlags string
	// GoBinary overrides the compiler executable. Empty means "go".
	GoBinary string
}

// Compiler defines the interface for invoking the external Go toolchain.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile cross-compiles the source module for the requested platform.
	// On a nonzero compiler exit the returned error carries the captured
	// stderr text.
	Compile(ctx context.Context, req CompileRequest) error
}
