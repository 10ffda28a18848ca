package bnkextr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"bnk-converter/domain/bank"
	"bnk-converter/infrastructure/execrunner"
	"bnk-converter/infrastructure/filesystem"
)

// DefaultExecutable is the bnkextr executable name resolved from PATH
const DefaultExecutable = "bnkextr"

// Extractor implements bank.Extractor using the external bnkextr tool
type Extractor struct {
	toolPath string
	runner   execrunner.CommandRunner
}

// Option is a functional option for configuring Extractor
type Option func(*Extractor)

// WithToolPath sets a custom bnkextr executable path
func WithToolPath(path string) Option {
	return func(e *Extractor) {
		if path != "" {
			e.toolPath = path
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner execrunner.CommandRunner) Option {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// New creates a bnkextr-based extractor
func New(opts ...Option) *Extractor {
	e := &Extractor{
		toolPath: DefaultExecutable,
		runner:   &execrunner.ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract implements bank.Extractor. bnkextr unpacks next to its argument, so
// the container is copied into destDir first and the tool runs with destDir
// as its working directory. The copy is removed afterwards on all paths.
func (e *Extractor) Extract(ctx context.Context, req *bank.ExtractionRequest, destDir string) error {
	name := filepath.Base(req.ContainerPath)
	staged := filepath.Join(destDir, name)

	if err := filesystem.CopyFile(req.ContainerPath, staged); err != nil {
		return fmt.Errorf("staging container for extraction: %w", err)
	}
	defer os.Remove(staged)

	if err := e.runner.RunInDir(ctx, destDir, e.toolPath, name); err != nil {
		return fmt.Errorf("%w: %s: %v", bank.ErrExtractionFailed, name, err)
	}

	return nil
}

// VerifyInstalled checks that bnkextr is available. bnkextr exits non-zero
// when run without a file argument, so only a total failure to start the
// process counts as missing.
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	err := e.runner.Run(ctx, e.toolPath)
	if execrunner.IsStartFailure(err) {
		return fmt.Errorf("%w: %s: %v", bank.ErrToolNotFound, e.toolPath, err)
	}
	return nil
}

// Ensure Extractor implements bank.Extractor
var _ bank.Extractor = (*Extractor)(nil)
